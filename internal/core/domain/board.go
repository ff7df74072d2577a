// Package domain contains the core domain models for time-tracked tasks.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Board owns a forest of tasks addressed by TaskPath.
// All tasks on a board share the board's clock.
type Board struct {
	clock Clock
	tasks map[TaskPath]*Task
	roots []TaskPath
	order []TaskPath
}

// NewBoard creates an empty Board whose tasks read time from clock.
func NewBoard(clock Clock) *Board {
	if clock == nil {
		clock = SystemClock
	}
	return &Board{
		clock: clock,
		tasks: make(map[TaskPath]*Task),
	}
}

// Add creates a task at path and attaches it to its parent, if any.
func (b *Board) Add(path TaskPath, description, note string) (*Task, error) {
	if path.IsZero() || !ValidTaskName(path.Base()) {
		return nil, zerr.With(ErrInvalidTaskName, "task_path", path.String())
	}
	if _, exists := b.tasks[path]; exists {
		return nil, zerr.With(ErrTaskAlreadyExists, "task_path", path.String())
	}

	var parent *Task
	if parentPath := path.Parent(); !parentPath.IsZero() {
		p, ok := b.tasks[parentPath]
		if !ok {
			return nil, zerr.With(ErrParentNotFound, "task_path", path.String())
		}
		parent = p
	}

	t := NewTask(WithClock(b.clock))
	t.SetDescription(description)
	t.SetNote(note)

	b.tasks[path] = t
	b.order = append(b.order, path)
	if parent != nil {
		parent.AddSubTask(t)
	} else {
		b.roots = append(b.roots, path)
	}
	return t, nil
}

// Get resolves a task by path.
func (b *Board) Get(path TaskPath) (*Task, error) {
	t, ok := b.tasks[path]
	if !ok {
		return nil, zerr.With(ErrTaskNotFound, "task_path", path.String())
	}
	return t, nil
}

// Len returns the number of tasks on the board.
func (b *Board) Len() int {
	return len(b.tasks)
}

// Roots yields root paths in insertion order.
func (b *Board) Roots() iter.Seq[TaskPath] {
	return func(yield func(TaskPath) bool) {
		for _, p := range b.roots {
			if !yield(p) {
				return
			}
		}
	}
}

// Walk yields every path and its task in insertion order.
func (b *Board) Walk() iter.Seq2[TaskPath, *Task] {
	return func(yield func(TaskPath, *Task) bool) {
		for _, p := range b.order {
			if !yield(p, b.tasks[p]) {
				return
			}
		}
	}
}

// Summaries returns one summary tree per root task.
func (b *Board) Summaries() []Summary {
	out := make([]Summary, 0, len(b.roots))
	for root := range b.Roots() {
		out = append(out, b.summarize(root))
	}
	return out
}

func (b *Board) summarize(path TaskPath) Summary {
	s := summaryOf(path, b.tasks[path])
	for _, p := range b.order {
		if p.Parent() == path {
			s.SubTasks = append(s.SubTasks, b.summarize(p))
		}
	}
	return s
}
