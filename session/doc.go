// Package session owns one live data structure and everything needed to
// animate operations on it: validation, step generation, playback and
// reset to the seed state.
//
// Sessions share nothing, so separate sessions (one per structure panel)
// may run concurrently without coordination. Within a session at most one
// run is active at a time.
//
// Mutations reach the live structure as the steps carrying them are
// delivered, not when the run is prepared. Cancelling a run therefore
// keeps whatever mutations were already delivered; Reset discards the run
// and restores the origin state (the kind's seed unless WithOrigin says
// otherwise).
package session
