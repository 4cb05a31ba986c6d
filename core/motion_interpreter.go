package core

import "slices"

// InterpreterState is the progress of resolving atoms into a command: either
// Pending with the atoms consumed so far, or Done with the resolved command.
type InterpreterState interface {
	isInterpreterState()
}

// Pending holds the atoms of a command that is not complete yet.
type Pending struct {
	Atoms []KeyEvent
}

// Done holds a resolved command. It must be replaced by an empty Pending
// before the next atom is fed.
type Done struct {
	Command Command
}

func (Pending) isInterpreterState() {}
func (Done) isInterpreterState()    {}

// NewInterpreterState returns an empty Pending state.
func NewInterpreterState() InterpreterState {
	return Pending{}
}

// UpdateInterpreter feeds atom to the interpreter.
//
// The buffered atoms are replayed from the root of tree first. A leaf reached
// during the replay resolves immediately. Otherwise atom is looked up in the
// branch the replay ends on: a leaf resolves to Done, a branch extends
// Pending, and a missing child fails with an *UnknownMotionError carrying the
// buffered atoms plus atom. Calling it on Done fails with ErrPendingMotion.
//
// The input state is never modified.
func UpdateInterpreter(state InterpreterState, tree *MotionBranch, atom KeyEvent) (InterpreterState, error) {
	pending, ok := state.(Pending)
	if !ok {
		return state, ErrPendingMotion
	}

	node := tree
	for i, key := range pending.Atoms {
		child, ok := node.children[key]
		if !ok {
			return NewInterpreterState(), &UnknownMotionError{Sequence: slices.Clone(pending.Atoms[:i+1])}
		}
		switch c := child.(type) {
		case *MotionLeaf:
			return Done{Command: c.Command}, nil
		case *MotionBranch:
			node = c
		}
	}

	seq := make([]KeyEvent, 0, len(pending.Atoms)+1)
	seq = append(seq, pending.Atoms...)
	seq = append(seq, atom)

	child, ok := node.children[atom]
	if !ok {
		return NewInterpreterState(), &UnknownMotionError{Sequence: seq}
	}

	switch c := child.(type) {
	case *MotionLeaf:
		return Done{Command: c.Command}, nil
	default:
		return Pending{Atoms: seq}, nil
	}
}
