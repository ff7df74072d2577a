package domain

import (
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// Action is an operation applied to a task during a replay.
type Action string

const (
	// ActionStart opens an active interval.
	ActionStart Action = "start"
	// ActionPause flushes the active interval and leaves the task idle.
	ActionPause Action = "pause"
	// ActionComplete completes the task and flushes the active interval.
	ActionComplete Action = "complete"
	// ActionNote replaces the task's note with the event text.
	ActionNote Action = "note"
	// ActionDescribe replaces the task's description with the event text.
	ActionDescribe Action = "describe"
)

// ParseAction converts a string into an Action.
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionStart, ActionPause, ActionComplete, ActionNote, ActionDescribe:
		return a, nil
	default:
		return "", zerr.With(ErrUnknownAction, "action", s)
	}
}

// Apply performs the action on t. Text is only used by note and describe.
func (a Action) Apply(t *Task, text string) {
	switch a {
	case ActionStart:
		t.Start()
	case ActionPause:
		t.Pause()
	case ActionComplete:
		t.Complete()
	case ActionNote:
		t.SetNote(text)
	case ActionDescribe:
		t.SetDescription(text)
	}
}

// Flushes reports whether the action closes an active interval.
func (a Action) Flushes() bool {
	return a == ActionPause || a == ActionComplete
}

// TaskSpec declares a task and its sub-tasks.
type TaskSpec struct {
	Name        string
	Description string
	Note        string
	SubTasks    []TaskSpec
}

// Event is one timeline entry. At is the offset from the start of the session.
type Event struct {
	At     time.Duration
	Task   TaskPath
	Action Action
	Text   string
}

// Session is a declared task forest plus a timeline of actions to replay against it.
type Session struct {
	Name   string
	Tasks  []TaskSpec
	Events []Event
}

// Validate checks that the timeline is non-negative and sorted.
func (s *Session) Validate() error {
	var last time.Duration
	for i, ev := range s.Events {
		if ev.At < 0 {
			return zerr.With(zerr.With(ErrInvalidTimeline, "event_index", i), "reason", "negative offset")
		}
		if ev.At < last {
			return zerr.With(zerr.With(ErrInvalidTimeline, "event_index", i), "reason", "out of order")
		}
		last = ev.At
	}
	return nil
}

// Populate adds every declared task to the board, parents before children.
func (s *Session) Populate(b *Board) error {
	var add func(parent TaskPath, specs []TaskSpec) error
	add = func(parent TaskPath, specs []TaskSpec) error {
		for _, spec := range specs {
			if !ValidTaskName(spec.Name) {
				return zerr.With(ErrInvalidTaskName, "task_name", spec.Name)
			}
			path := parent.Child(spec.Name)
			if _, err := b.Add(path, spec.Description, spec.Note); err != nil {
				return err
			}
			if err := add(path, spec.SubTasks); err != nil {
				return err
			}
		}
		return nil
	}
	return add(TaskPath{}, s.Tasks)
}
