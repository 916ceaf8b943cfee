package engine

import "fmt"

// ReadOnlyParameterError reports a write to a parameter the provider computes
// itself (metering and other derived values).
type ReadOnlyParameterError struct {
	Component  string
	Identifier string
}

func (e *ReadOnlyParameterError) Error() string {
	return fmt.Sprintf("parameter %s.%s is read-only", e.Component, e.Identifier)
}
