// internal/services/errors.go
package services

import (
	"errors"

	"github.com/elnet/electronics-network/internal/models"
)

var (
	// ErrNotFound is returned for missing records and for records outside the
	// caller's owner scope.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden is returned when a non-superuser calls a privileged operation.
	ErrForbidden = errors.New("superuser privileges required")

	// ErrReferenceNotFound is returned when a request names a supplier, product
	// or party id that does not exist.
	ErrReferenceNotFound = errors.New("referenced record does not exist")

	ErrUsernameTaken = errors.New("username already taken")
)

func validationKind(err error) (models.ValidationKind, bool) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return ve.Kind, true
	}
	return "", false
}
