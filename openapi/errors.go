package openapi

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// InputError means the document could not be read, was not valid
// YAML/JSON, or was missing `paths`. Fatal: no graph is produced.
type InputError struct{ *goerrors.Error }

func newInputError(format string, args ...interface{}) *InputError {
	return &InputError{goerrors.Wrap(fmt.Errorf(format, args...), 1)}
}

// OperationIDCollision means two extracted operations share an ID. Fatal.
type OperationIDCollision struct {
	*goerrors.Error
	ID string
}

func newOperationIDCollision(id string) *OperationIDCollision {
	return &OperationIDCollision{
		Error: goerrors.Wrap(fmt.Errorf("operation id collision: %q is declared by more than one path/method pair", id), 1),
		ID:    id,
	}
}

// ReferenceWarning records a non-fatal unresolved $ref: the core skips that
// schema subtree and continues. Collected on Document.Warnings, never
// returned as an error.
type ReferenceWarning struct {
	Pointer string
	Reason  string
}

func (w ReferenceWarning) String() string {
	return fmt.Sprintf("unresolved $ref %q: %s", w.Pointer, w.Reason)
}
