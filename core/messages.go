package core

var (
	EmptyMessage        = ""
	YankMessage         = "selection yanked"
	LinesDeletedMessage = "line deleted"
	NewBufferMessage    = "new buffer"
	NormalStatusLine    = "-- NORMAL --"
	InsertStatusLine    = "-- INSERT --"
	VisualStatusLine    = "-- VISUAL --"
)
