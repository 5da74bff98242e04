package registry

import (
	"errors"
	"fmt"
)

// Rejected transitions. The messages are the reasons reported to callers.
var (
	ErrAlreadyExists     = errors.New("Profile already exists")
	ErrRecipientNotFound = errors.New("Recipient profile does not exist")
	ErrDuplicateRequest  = errors.New("Request already sent")
	ErrNoSuchRequest     = errors.New("No pending request from requester")
	ErrNotRegistered     = errors.New("Profile not registered")
	ErrIndexOutOfRange   = errors.New("Event index out of range")
	ErrSelfRequest       = errors.New("Cannot send request to yourself")
	ErrMissingIdentity   = errors.New("Caller identity is required")

	// ErrReverseRequestPending and ErrAlreadyFriends are DuplicateRequest-class.
	ErrReverseRequestPending = fmt.Errorf("%w: recipient has a pending request to you, accept it instead", ErrDuplicateRequest)
	ErrAlreadyFriends        = fmt.Errorf("%w: already friends", ErrDuplicateRequest)
)

var rejections = []error{
	ErrAlreadyExists,
	ErrRecipientNotFound,
	ErrDuplicateRequest,
	ErrNoSuchRequest,
	ErrNotRegistered,
	ErrIndexOutOfRange,
	ErrSelfRequest,
	ErrMissingIdentity,
}

// IsRejection reports whether err is a rejected transition rather than a
// storage failure.
func IsRejection(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
