package reveal

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below via errors.Is.
var (
	ErrDuplicateRegistration = errors.New("reveal: duplicate registration")
	ErrInvalidSpec           = errors.New("reveal: invalid spec")
	ErrUnknownNode           = errors.New("reveal: unknown node")
)

// DuplicateRegistrationError reports a node registered twice, or an element
// claimed by a second group.
type DuplicateRegistrationError struct {
	ID    NodeID
	Group NodeID // set when the conflict is group membership
}

func (e *DuplicateRegistrationError) Error() string {
	if e.Group != "" {
		return fmt.Sprintf("reveal: node %q already belongs to group %q", e.ID, e.Group)
	}
	return fmt.Sprintf("reveal: node %q is already registered", e.ID)
}

func (e *DuplicateRegistrationError) Is(target error) bool {
	return target == ErrDuplicateRegistration
}

// InvalidSpecError reports a malformed MotionSpec, Trigger, Group or
// Transient, caught at registration.
type InvalidSpecError struct {
	ID     NodeID
	Spec   string
	Reason string
}

func (e *InvalidSpecError) Error() string {
	if e.Spec != "" {
		return fmt.Sprintf("reveal: node %q: spec %q: %s", e.ID, e.Spec, e.Reason)
	}
	return fmt.Sprintf("reveal: node %q: %s", e.ID, e.Reason)
}

func (e *InvalidSpecError) Is(target error) bool {
	return target == ErrInvalidSpec
}

// UnknownNodeError reports an operation on a node that was never registered
// or has been unmounted.
type UnknownNodeError struct {
	ID NodeID
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("reveal: unknown node %q", e.ID)
}

func (e *UnknownNodeError) Is(target error) bool {
	return target == ErrUnknownNode
}
