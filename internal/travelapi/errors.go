package travelapi

import (
	"fmt"

	"github.com/travelapp/travelplanner-client/internal/errors"
)

// Sentinel errors for remote call outcomes the client distinguishes. The
// page layer shows them all the same way; the route guard uses
// ErrUnauthorized to send the user back to login.
var (
	ErrUnauthorized = errors.Unauthorized("travel api: unauthorized")
	ErrForbidden    = errors.Forbidden("travel api: forbidden")
	ErrNotFound     = errors.NotFound("travel api: not found")
)

// RemoteError carries a failure status the client has no special handling
// for, with whatever message the server attached.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("travel api: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("travel api: status %d: %s", e.Status, e.Body)
}

// Is lets errors.Is match RemoteError against the generic remote code.
func (e *RemoteError) Is(target error) bool {
	var t *errors.Error
	if errors.As(target, &t) {
		return t.Code == errors.CodeRemote
	}
	return false
}
