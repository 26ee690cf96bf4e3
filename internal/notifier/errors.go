package notifier

import (
	"errors"
	"strings"
)

const (
	// ErrNotConnected is returned by Send while no bot session is established.
	ErrNotConnected = constError("notifier is not connected")
	// ErrConflict marks a send that failed because another session holds the bot token.
	ErrConflict = constError("conflicting bot session")
)

// IsConflict checks if the error reports a simultaneous session for the same bot token.
func IsConflict(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConflict) {
		return true
	}
	return strings.Contains(err.Error(), "Conflict:")
}

// IsNotConnected checks if the error was caused by a missing bot session.
func IsNotConnected(err error) bool {
	return errors.Is(err, ErrNotConnected)
}

type constError string

func (e constError) Error() string {
	return string(e)
}
