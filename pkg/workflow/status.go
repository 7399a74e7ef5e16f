package workflow

// Internal workflow_run statuses (mirrors the ent enum).
const (
	StatusPending             = "pending"
	StatusRunning             = "running"
	StatusCompleted           = "completed"
	StatusCompletedWithErrors = "completed_with_errors"
	StatusFailed              = "failed"
	StatusCanceling           = "canceling"
	StatusCanceled            = "canceled"
)

// Display statuses exposed at the API boundary.
const (
	DisplayPending   = "PENDING"
	DisplaySuccess   = "SUCCESS"
	DisplayError     = "ERROR"
	DisplayWarning   = "WARNING"
	DisplayCancelled = "CANCELLED"
)

// IsTerminal reports whether an internal status is terminal.
func IsTerminal(status string) bool {
	switch status {
	case StatusCompleted, StatusCompletedWithErrors, StatusFailed, StatusCanceled:
		return true
	}
	return false
}

// DisplayStatus maps an internal status to the display set.
func DisplayStatus(status string) string {
	switch status {
	case StatusCompleted:
		return DisplaySuccess
	case StatusCompletedWithErrors:
		return DisplayWarning
	case StatusFailed:
		return DisplayError
	case StatusCanceled:
		return DisplayCancelled
	default:
		// pending, running, canceling — in flight from the client's view.
		return DisplayPending
	}
}

// InternalStatuses returns the internal statuses a display status filter
// expands to (the inverse of DisplayStatus).
func InternalStatuses(display string) []string {
	switch display {
	case DisplaySuccess:
		return []string{StatusCompleted}
	case DisplayWarning:
		return []string{StatusCompletedWithErrors}
	case DisplayError:
		return []string{StatusFailed}
	case DisplayCancelled:
		return []string{StatusCanceled}
	case DisplayPending:
		return []string{StatusPending, StatusRunning, StatusCanceling}
	}
	return nil
}
