package accounts

import "errors"

// FormError maps field names to localized messages. The reserved key
// "general" carries the failure summary for the whole form. Fields without
// problems are simply absent.
type FormError map[string]string

// General is the reserved key for the form-wide failure message.
const General = "general"

func (e FormError) HasFieldErrors() bool {
	for k := range e {
		if k != General {
			return true
		}
	}
	return false
}

var (
	// ErrInvalidCredentials is returned by Authenticate for any mismatch
	// between email and password, without distinguishing which was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenInvalid covers unknown tokens and tokens whose user no longer
	// exists. Deliberately indistinct so the response is not an oracle.
	ErrTokenInvalid = errors.New("reset token invalid")

	ErrTokenUsed    = errors.New("reset token already used")
	ErrTokenExpired = errors.New("reset token expired")
)
