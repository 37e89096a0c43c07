package store

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Typed Errors
// --------------------------------------------------------------------------

// NotFoundError reports an update that targeted an identity not present in
// the store. KnownIDs carries the full ordered identity set at the time of
// the call so failing tests can print what the store actually held.
type NotFoundError[ID comparable] struct {
	ID       ID
	KnownIDs []ID
}

// Error implements the error interface.
func (e *NotFoundError[ID]) Error() string {
	return fmt.Sprintf("element %v not found (known identities: %v)", e.ID, e.KnownIDs)
}

// ExistsError reports an insert that targeted an identity already present in
// the store.
type ExistsError[ID comparable] struct {
	ID ID
}

// Error implements the error interface.
func (e *ExistsError[ID]) Error() string {
	return fmt.Sprintf("element %v already exists", e.ID)
}

// IdentityChangedError reports an update request whose mutation altered the
// identity of the element it was applied to. Such updates are rejected and
// leave the store unchanged.
type IdentityChangedError[ID comparable] struct {
	From ID
	To   ID
}

// Error implements the error interface.
func (e *IdentityChangedError[ID]) Error() string {
	return fmt.Sprintf("update changed element identity from %v to %v", e.From, e.To)
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

// IsNotFound returns whether err is a *NotFoundError for the identity type ID.
func IsNotFound[ID comparable](err error) bool {
	var target *NotFoundError[ID]
	return errors.As(err, &target)
}

// IsExists returns whether err is an *ExistsError for the identity type ID.
func IsExists[ID comparable](err error) bool {
	var target *ExistsError[ID]
	return errors.As(err, &target)
}

// IsIdentityChanged returns whether err is an *IdentityChangedError for the
// identity type ID.
func IsIdentityChanged[ID comparable](err error) bool {
	var target *IdentityChangedError[ID]
	return errors.As(err, &target)
}
