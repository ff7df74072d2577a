package domain

import "time"

// MinimumIncrement is the smallest amount of time a flushed interval adds to a task.
// Intervals shorter than this are assumed to come from automation rather than a person.
const MinimumIncrement = time.Second

// Task represents a unit of trackable work.
// Description and note are freely settable; every other field changes only through
// Start, Pause and Complete. A Task is not safe for concurrent use.
type Task struct {
	description string
	note        string
	blocked     bool
	completed   bool
	inProgress  bool
	subTasks    []*Task
	timeTaken   time.Duration

	// activeStart is nil when no interval is open.
	activeStart *time.Time
	clock       Clock
}

// TaskOption configures a Task during construction.
type TaskOption func(*Task)

// WithClock sets the time source used to measure active intervals.
func WithClock(c Clock) TaskOption {
	return func(t *Task) {
		if c != nil {
			t.clock = c
		}
	}
}

// NewTask creates an idle task with no description, no note and no time taken.
func NewTask(opts ...TaskOption) *Task {
	t := &Task{
		subTasks: []*Task{},
		clock:    SystemClock,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Description returns the task's description.
func (t *Task) Description() string { return t.description }

// SetDescription replaces the task's description.
func (t *Task) SetDescription(description string) { t.description = description }

// Note returns the task's note.
func (t *Task) Note() string { return t.note }

// SetNote replaces the task's note.
func (t *Task) SetNote(note string) { t.note = note }

// Blocked reports whether the task is blocked. Nothing sets it yet.
func (t *Task) Blocked() bool { return t.blocked }

// IsCompleted reports whether Complete has been called.
func (t *Task) IsCompleted() bool { return t.completed }

// InProgress reports whether the task has been started and not paused since.
func (t *Task) InProgress() bool { return t.inProgress }

// TimeTaken returns the accumulated duration of all flushed intervals.
func (t *Task) TimeTaken() time.Duration { return t.timeTaken }

// SubTasks returns the child tasks in insertion order.
// The returned slice is a copy; the children themselves are shared.
func (t *Task) SubTasks() []*Task {
	out := make([]*Task, len(t.subTasks))
	copy(out, t.subTasks)
	return out
}

// AddSubTask appends a child task. Child state never rolls up into the parent.
func (t *Task) AddSubTask(child *Task) {
	if child == nil {
		return
	}
	t.subTasks = append(t.subTasks, child)
}

// State derives the lifecycle state of the task.
func (t *Task) State() TaskState {
	switch {
	case t.completed:
		return TaskStateCompleted
	case t.inProgress:
		return TaskStateInProgress
	default:
		return TaskStateIdle
	}
}

// Start opens a new active interval and marks the task in progress.
// An interval that is already open is replaced without being counted.
func (t *Task) Start() {
	t.inProgress = true
	now := t.clock.Now()
	t.activeStart = &now
}

// Pause marks the task as not in progress and flushes the open interval, if any.
func (t *Task) Pause() {
	t.inProgress = false
	t.flush()
}

// Complete marks the task completed and flushes the open interval, if any.
// It does not clear the in-progress flag.
func (t *Task) Complete() {
	t.completed = true
	t.flush()
}

func (t *Task) flush() {
	if t.activeStart == nil {
		return
	}

	elapsed := t.clock.Now().Sub(*t.activeStart)
	if elapsed < MinimumIncrement {
		elapsed = MinimumIncrement
	}

	t.timeTaken += elapsed
	t.activeStart = nil
}
