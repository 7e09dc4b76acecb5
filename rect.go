package xdgshell

// Rect is an integer window-geometry or popup rectangle, X/Y relative to
// whatever coordinate space its owner documents.
type Rect struct {
	X, Y, W, H int
}
