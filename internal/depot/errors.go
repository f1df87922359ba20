package depot

import (
	"errors"
	"fmt"
)

// ErrUnknownType reports a query against a product type that has never
// been loaded into the depot. It signals a pipeline wiring bug and is
// surfaced immediately rather than degraded into an empty result.
var ErrUnknownType = errors.New("unknown product type")

// ErrInvalidStatus reports a usage-status argument outside the enumerated
// set.
var ErrInvalidStatus = errors.New("invalid usage status")

func unknownType(typeName string) error {
	return fmt.Errorf("%w: depot has not been loaded with any products of type %q", ErrUnknownType, typeName)
}

func invalidStatus(status Status) error {
	return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
}
