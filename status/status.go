// Package status maps the library's sentinel errors onto a closed set of
// numeric codes, for callers that need a flat status word rather than a Go
// error value (foreign bindings, existing integrations). The error values
// returned by the library packages remain the primary reporting mechanism;
// this package is an adapter over them.
package status

import (
	"errors"

	"github.com/numkit/numkit/algebra"
	"github.com/numkit/numkit/calculus"
	"github.com/numkit/numkit/combin"
	"github.com/numkit/numkit/interval"
	"github.com/numkit/numkit/poly"
)

// Status is a numeric outcome code. Codes are grouped by hundreds per
// subsystem and the set is closed: new failure kinds require a new code.
type Status int

const (
	// OK reports a successful operation.
	OK Status = 0
	// AllocationFailure reports exhausted dynamic memory. It is part of the
	// closed code set for compatibility but is never produced on
	// garbage-collected targets.
	AllocationFailure Status = 101
	// InvalidArgument reports a missing or out-of-contract argument.
	InvalidArgument Status = 102
	// InvalidOperation reports an operation outside its mathematical domain.
	InvalidOperation Status = 201
	// IndexExceedsDegree reports a coefficient read past the degree.
	IndexExceedsDegree Status = 401
	// FactorialOverflow reports a factorial exceeding its result type.
	FactorialOverflow Status = 501
	// InvalidRange reports an interval with min > max.
	InvalidRange Status = 506
	// NegativeStep reports a negative differentiation step.
	NegativeStep Status = 601
)

// Code returns the numeric code for err. A nil err maps to OK; an error that
// is not one of the library's sentinels maps to InvalidArgument.
func Code(err error) Status {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, interval.ErrInvalidRange):
		return InvalidRange
	case errors.Is(err, poly.ErrIndexExceedsDegree):
		return IndexExceedsDegree
	case errors.Is(err, combin.ErrOverflow):
		return FactorialOverflow
	case errors.Is(err, calculus.ErrNegativeStep):
		return NegativeStep
	case errors.Is(err, algebra.ErrUndefined):
		return InvalidOperation
	default:
		return InvalidArgument
	}
}

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case AllocationFailure:
		return "allocation failure"
	case InvalidArgument:
		return "invalid argument"
	case InvalidOperation:
		return "invalid operation"
	case IndexExceedsDegree:
		return "index exceeds degree"
	case FactorialOverflow:
		return "factorial overflow"
	case InvalidRange:
		return "invalid range"
	case NegativeStep:
		return "negative step"
	default:
		return "unknown"
	}
}
