// Package step defines the unit of observable state the engine produces and
// the ordered, finite Sequence of them that a renderer plays back.
//
// A Step carries:
//
//   - Highlight: the current Target (index, matrix cell, node, bucket or
//     none), the Visited identities so far, and an optional current Edge.
//   - Mutation:  an optional change to apply to the structure at that point.
//   - Caption:   optional human-readable text.
//   - Delay:     how long playback waits after delivering the step.
//
// Replaying a Sequence (applying each Mutation in order to a copy of the
// structure the Sequence was built from) reproduces Sequence.Final exactly.
//
// Builder keeps a working copy of the structure, applies each recorded
// Mutation to it as the step is added, and hands the copy over as Final.
package step
