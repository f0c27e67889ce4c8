// Package field simulates a small population of bouncing circular bodies
// that react to a single pointer.
//
// The package is organised around one owner type:
//
//   - [Field]: the bodies, the pointer and the viewport bounds
//   - [Body]: one simulated ball
//   - [Params]: tunable constants for motion, collisions and input
//   - [Surface]: anything that can fill circles ([Field.Draw] renders to it)
//
// # Frame contract
//
// [Field.Step] advances one animation frame. Free bodies wander, are speed
// clamped, pushed away from the pointer, integrated and bounced off the
// walls. A single pass then resolves every overlapping pair. Finally the
// dragged body, if any, is snapped to the pointer and given a throw
// velocity derived from the pointer's movement during the frame.
//
// # Example
//
//	f, _ := field.New(field.DefaultParams(), 42)
//	f.Resize(800, 600)
//	f.Press(120, 80)
//	f.Move(140, 90)
//	f.Step()
//	f.Release()
//
// # Thread Safety
//
// Field is NOT thread-safe. Pointer handlers and the frame loop must run on
// the same goroutine, which is how both hosts in this module drive it.
package field
