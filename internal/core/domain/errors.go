package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskNotFound is returned when a task path does not resolve on a board.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrTaskAlreadyExists is returned when adding a task whose path is already taken.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrParentNotFound is returned when adding a sub-task under a path that does not exist.
	ErrParentNotFound = zerr.New("parent task not found")

	// ErrInvalidTaskName is returned for empty task names or names containing a path separator.
	ErrInvalidTaskName = zerr.New("invalid task name")

	// ErrUnknownAction is returned when a timeline event names an action that does not exist.
	ErrUnknownAction = zerr.New("unknown action")

	// ErrInvalidTimeline is returned when session events are negative or out of order.
	ErrInvalidTimeline = zerr.New("invalid timeline")

	// ErrUnsupportedVersion is returned when a session file declares an unknown schema version.
	ErrUnsupportedVersion = zerr.New("unsupported session version")

	// ErrNoSessionsSpecified is returned when a replay is requested without any session files.
	ErrNoSessionsSpecified = zerr.New("no sessions specified")

	// ErrReplayFailed is returned when one or more sessions failed to replay.
	ErrReplayFailed = zerr.New("replay failed")

	// ErrUnknownFormat is returned when a report format is not recognised.
	ErrUnknownFormat = zerr.New("unknown report format")
)
