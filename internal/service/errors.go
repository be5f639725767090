package service

import "errors"

// Error kinds surfaced verbatim to the presentation layer. None are
// recoverable inside the engine; a caller that ignores one and proceeds
// risks corrupting the single-open-session invariant, so the engine
// refuses rather than auto-corrects.
var (
	// ErrAlreadyClockedIn is returned by ClockIn while a session is open.
	ErrAlreadyClockedIn = errors.New("already clocked in")

	// ErrNoOpenSession is returned by ClockOut while idle.
	ErrNoOpenSession = errors.New("no open session")

	// ErrNonPositiveDuration is returned by ClockOut when the clock-out
	// instant is at or before the session's clock-in. The session stays
	// open so a later clock-out can still succeed.
	ErrNonPositiveDuration = errors.New("clock out must be after clock in")

	// ErrConfigOutOfRange rejects a configuration update that violates a
	// stated bound.
	ErrConfigOutOfRange = errors.New("configuration value out of range")
)
