package models

import "fmt"

// InvalidCoordinatesError reports which axis of a coordinate pair is out of range.
type InvalidCoordinatesError struct {
	Axis  Axis
	Value float64
}

func (e *InvalidCoordinatesError) Error() string {
	limit := 90
	if e.Axis == AxisLongitude {
		limit = 180
	}
	return fmt.Sprintf("invalid %s %v: must be within [-%d, %d]", e.Axis, e.Value, limit, limit)
}

// SchemaError reports a document that decoded as JSON but does not have the
// expected structure.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema mismatch at %s: %s", e.Field, e.Reason)
}
