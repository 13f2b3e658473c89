package bot

import "fmt"

// The handlers return typed errors so the transport can render distinct,
// recovery-oriented messages without matching on error text.

// ValidationError reports a required field missing from a parsed record.
type ValidationError struct {
	Field string
	Hint  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// UsageError reports a command invoked with insufficient or invalid
// arguments. Help carries the command's usage text shown to the user.
type UsageError struct {
	Help string
}

func (e *UsageError) Error() string {
	return "invalid command usage"
}

// ServiceError reports a failed external call (rate lookup or sheet
// access). The cause is attached; there is no automatic retry.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
