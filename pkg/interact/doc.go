// Package interact converts pointer and keyboard input into normalized
// handle writes.
//
// # States
//
// A Machine is Idle until the primary button goes down on a handle. If that
// handle sits alone it moves straight to Dragging. If other handles share
// its value the press is ambiguous and the machine waits in Pending until the
// pointer has travelled further than the drag threshold: moving right picks
// the highest index of the stack, moving left the lowest. Releasing the
// button anywhere returns to Idle and emits one change notification.
//
//	Idle --down(handle, alone)--> Dragging --up--> Idle
//	Idle --down(handle, stack)--> Pending --move > threshold--> Dragging
//	Pending --up--> Idle
//
// A press on the bare track never starts a session: the nearest handle jumps
// to the pressed value and input then change fire immediately.
//
// Keyboard adjustments are atomic. Each accepted key writes once and emits
// input followed by change.
package interact
