// Package playback delivers the steps of a step.Sequence to a listener one
// at a time, pacing them with a clock and honouring pause, resume, cancel
// and reset.
//
// State machine:
//
//	Idle ──Start──▶ Running ──last step──▶ Completed
//	                 │  ▲
//	            Pause│  │Resume
//	                 ▼  │
//	                Paused
//
//	Running, Paused ──Cancel──▶ Cancelled
//	any             ──Reset───▶ Idle
//
// Completed and Cancelled accept a new Start, as does Idle. A Start while
// Running or Paused is rejected with ErrAlreadyActive, so at most one run
// is active per Controller.
//
// Two drivers are provided. Advance delivers exactly one step and returns,
// which lets tests walk a run without any time passing. Run delivers every
// remaining step, waiting each step's delay on the Controller's clock
// between deliveries; with a clock.Mock the waits are driven by Mock.Add.
// Only one driver may be used for a given run at a time.
//
// Pause takes effect at the next step boundary: the delay already being
// waited runs out, then no further step is delivered until Resume. Cancel
// and Reset interrupt a wait immediately. Steps already delivered are never
// retracted; the run is considered complete as soon as its last step has
// been delivered.
//
// The listener is called without internal locks held, so it may call back
// into the Controller (for example to Pause or Cancel).
package playback
