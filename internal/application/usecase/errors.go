package usecase

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmailTaken rejects a registration with an email that is already in use.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials is returned for unknown emails and wrong passwords
// alike, so a caller cannot probe which of the two failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// InvalidInputError reports malformed or missing caller input. It is raised
// before any store access and names the offending fields.
type InvalidInputError struct {
	Fields []string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Fields, ", "))
}

func invalidInput(fields ...string) error {
	return &InvalidInputError{Fields: fields}
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var iie *InvalidInputError

	return errors.As(err, &iie)
}
