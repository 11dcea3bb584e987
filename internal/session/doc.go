// Package session owns the authentication lifecycle of the client: who is
// signed in, the transitions between signed-out and signed-in, and the closed
// set of business errors every auth operation resolves to.
//
// The manager never flips session state itself on success paths; state
// follows the account-change notifications published by the identity adapter,
// so every observer (navigation, UI) sees the same ordered stream of
// transitions.
package session
