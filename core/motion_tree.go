package core

import "slices"

// Action computes the state change for a resolved command. It receives a
// snapshot of the editor state and must not mutate it; buffers are edited
// through copies (see State.EditActive).
type Action func(state State) StateUpdate

// Command is a named action stored at a trie leaf.
type Command struct {
	Name   string
	Action Action
}

// MotionTree is a node of a per-mode prefix tree over input atoms: either a
// *MotionBranch or a *MotionLeaf.
type MotionTree interface {
	isMotionTree()
}

// MotionBranch maps each atom to the subtree that continues the command.
type MotionBranch struct {
	children map[KeyEvent]MotionTree
}

// MotionLeaf terminates a command path.
type MotionLeaf struct {
	Command Command
}

func (*MotionBranch) isMotionTree() {}
func (*MotionLeaf) isMotionTree()   {}

// NewMotionTree returns an empty root.
func NewMotionTree() *MotionBranch {
	return &MotionBranch{children: make(map[KeyEvent]MotionTree)}
}

// Child returns the subtree reached by key.
func (b *MotionBranch) Child(key KeyEvent) (MotionTree, bool) {
	child, ok := b.children[key]
	return child, ok
}

// Len returns the number of atoms bound directly under b.
func (b *MotionBranch) Len() int {
	return len(b.children)
}

// Insert binds seq to cmd.
//
// Every atom but the last walks or creates a branch; the last atom gets a
// leaf. Binding a sequence that is a strict prefix of a registered one, or
// that extends a registered one, fails with ErrMotionConflict and leaves the
// tree unchanged. Re-binding an identical sequence replaces its command.
func (b *MotionBranch) Insert(seq []KeyEvent, cmd Command) error {
	if len(seq) == 0 {
		return ErrEmptyMotion
	}

	if err := b.checkInsert(seq); err != nil {
		return err
	}

	node := b
	for _, key := range seq[:len(seq)-1] {
		child, ok := node.children[key]
		if !ok {
			child = NewMotionTree()
			node.children[key] = child
		}
		node = child.(*MotionBranch)
	}
	node.children[seq[len(seq)-1]] = &MotionLeaf{Command: cmd}

	return nil
}

// checkInsert validates seq against the existing paths without mutating.
func (b *MotionBranch) checkInsert(seq []KeyEvent) error {
	node := b
	last := len(seq) - 1

	for i, key := range seq {
		child, ok := node.children[key]
		if !ok {
			// The remainder of the path is fresh.
			return nil
		}

		switch c := child.(type) {
		case *MotionLeaf:
			if i < last {
				return &MotionConflictError{Sequence: slices.Clone(seq[:i+1])}
			}
			return nil
		case *MotionBranch:
			if i == last {
				return &MotionConflictError{Sequence: slices.Clone(seq)}
			}
			node = c
		}
	}

	return nil
}

// Lookup walks seq from b and returns the node it ends on.
func (b *MotionBranch) Lookup(seq []KeyEvent) (MotionTree, bool) {
	var node MotionTree = b
	for _, key := range seq {
		branch, ok := node.(*MotionBranch)
		if !ok {
			return nil, false
		}
		node, ok = branch.children[key]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// Walk calls fn for every leaf with the atom path that reaches it.
func (b *MotionBranch) Walk(fn func(seq []KeyEvent, cmd Command)) {
	b.walk(nil, fn)
}

func (b *MotionBranch) walk(prefix []KeyEvent, fn func([]KeyEvent, Command)) {
	for key, child := range b.children {
		path := append(slices.Clone(prefix), key)
		switch c := child.(type) {
		case *MotionLeaf:
			fn(path, c.Command)
		case *MotionBranch:
			c.walk(path, fn)
		}
	}
}
