package cli

import "fmt"

// ExitError carries a specific process exit status out of Execute. An
// empty Message means the diagnostics were already written.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("exit status %d", e.Code)
}
