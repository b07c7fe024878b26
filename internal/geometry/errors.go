package geometry

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidGeometry is the sentinel wrapped by every DataError.
var ErrInvalidGeometry = errors.New("invalid geometry")

// DataError reports a component parameter that cannot produce a faithful mesh.
type DataError struct {
	Component string // "motor", "nosecone", "fins", "tail", "rocket"
	Field     string
	Value     string
	Reason    string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s: %s=%s: %s", e.Component, e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidGeometry.
func (e *DataError) Unwrap() error {
	return ErrInvalidGeometry
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// check collects the first failing field of a record.
type check struct {
	component string
	err       *DataError
}

func (c *check) fail(field string, v float64, reason string) {
	if c.err == nil {
		c.err = &DataError{Component: c.component, Field: field, Value: formatValue(v), Reason: reason}
	}
}

func (c *check) finite(field string, v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		c.fail(field, v, "must be finite")
		return false
	}
	return true
}

func (c *check) positive(field string, v float64) {
	if c.finite(field, v) && v <= 0 {
		c.fail(field, v, "must be positive")
	}
}

func (c *check) nonNegative(field string, v float64) {
	if c.finite(field, v) && v < 0 {
		c.fail(field, v, "must not be negative")
	}
}

func (c *check) result() error {
	if c.err == nil {
		return nil
	}
	return c.err
}
