package adapters

import (
	"errors"
	"fmt"

	"datacache/core/entity"
	"datacache/core/jsonapi"
)

// ErrDecoding is the sentinel matched by every *DecodingError.
var ErrDecoding = errors.New("decoding failure")

// DecodingError reports a resource of a recognized kind that could not be converted
// into its typed entity.
type DecodingError struct {
	Kind  entity.Kind
	ID    string
	Field string
	Err   error
}

func (e *DecodingError) Error() string {
	subject := string(e.Kind)
	if e.ID != "" {
		subject += " " + e.ID
	}
	if e.Field != "" {
		return fmt.Sprintf("decoding %s: field %s: %v", subject, e.Field, e.Err)
	}
	return fmt.Sprintf("decoding %s: %v", subject, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDecoding) true for any DecodingError.
func (e *DecodingError) Is(target error) bool { return target == ErrDecoding }

func newDecodingError(res jsonapi.Resource, field string, err error) *DecodingError {
	return &DecodingError{
		Kind:  res.Kind(),
		ID:    res.ID,
		Field: field,
		Err:   err,
	}
}
