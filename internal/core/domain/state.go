package domain

import "strings"

// TaskState represents the lifecycle state of a Task.
type TaskState string

const (
	// TaskStateIdle indicates the task is not being worked on.
	TaskStateIdle TaskState = "idle"
	// TaskStateInProgress indicates an active interval is open.
	TaskStateInProgress TaskState = "in_progress"
	// TaskStateCompleted indicates the task has been completed. It is terminal.
	TaskStateCompleted TaskState = "completed"
)

// String returns the string representation of the state.
func (s TaskState) String() string {
	return string(s)
}

// IsTerminal reports whether no transition leaves the state.
func (s TaskState) IsTerminal() bool {
	return s == TaskStateCompleted
}

// NormalizeTaskState converts a string to a TaskState, defaulting to idle if unknown.
func NormalizeTaskState(s string) TaskState {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(TaskStateInProgress), "in-progress", "inprogress":
		return TaskStateInProgress
	case string(TaskStateCompleted):
		return TaskStateCompleted
	default:
		return TaskStateIdle
	}
}
