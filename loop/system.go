package loop

// System represents a behavior that runs once per frame. Systems never call
// engine commands directly; they queue actions on frame.Commands so every
// mutation happens in one place, in order, at the end of the frame.
type System interface {
	Execute(frame *Frame)
}
