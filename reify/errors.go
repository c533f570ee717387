package reify

import (
	"errors"
	"fmt"

	"github.com/vasalvit/svgkit/geom"
)

// ErrUnsupportedTransform matches every UnsupportedTransformError.
var ErrUnsupportedTransform = errors.New("unsupported transform")

// UnsupportedTransformError is returned when an element can express the
// transform neither through its attributes nor as a path.
type UnsupportedTransformError struct {
	Kind   string
	Matrix geom.Matrix
}

func (e *UnsupportedTransformError) Error() string {
	return fmt.Sprintf("reify: <%s> cannot take %v without path conversion", e.Kind, e.Matrix)
}

func (e *UnsupportedTransformError) Is(target error) bool {
	return target == ErrUnsupportedTransform
}
