package ledger

import "errors"

var (
	// ErrUnknownAccount means no account with the given id exists.
	ErrUnknownAccount = errors.New("unknown account")
	// ErrUnknownCustomer means no customer with the given id exists.
	ErrUnknownCustomer = errors.New("unknown customer")
)
