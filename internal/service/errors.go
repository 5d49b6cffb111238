package service

import "errors"

// Domain error taxonomy. Handlers map these to HTTP statuses; everything else
// surfaces as an internal error.
var (
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNotOwner            = errors.New("not the owner of this transaction")
)

// RequireOwner is the single ownership guard: every read, update, and delete
// of a transaction passes through it so the check cannot diverge between
// endpoints. The caller email always comes from a resolved token, never from
// client-supplied fields.
func RequireOwner(callerEmail, ownerEmail string) error {
	if callerEmail != ownerEmail {
		return ErrNotOwner
	}
	return nil
}
