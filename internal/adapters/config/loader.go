// Package config provides the session file loader for stint.
package config

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/stint/internal/core/domain"
	"go.trai.ch/stint/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the session file used when none is given.
const DefaultFilename = "stint.yaml"

var _ ports.SessionLoader = (*Loader)(nil)

// Loader implements ports.SessionLoader using YAML files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the session file at path.
func (l *Loader) Load(path string) (*domain.Session, error) {
	session, err := Load(path)
	if err != nil {
		return nil, err
	}
	if len(session.Events) == 0 && l.logger != nil {
		l.logger.Warn("session " + session.Name + " has no events")
	}
	return session, nil
}

// Load reads a session file from the given path and returns a domain.Session.
func Load(path string) (*domain.Session, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read session file"), "path", path)
	}
	return Parse(data, defaultName(path))
}

// Parse decodes session YAML. name is used when the file does not declare one.
func Parse(data []byte, name string) (*domain.Session, error) {
	var file Sessionfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse session file")
	}

	if file.Version != SupportedVersion {
		return nil, zerr.With(domain.ErrUnsupportedVersion, "version", file.Version)
	}

	session := &domain.Session{Name: file.Name}
	if session.Name == "" {
		session.Name = name
	}

	tasks, err := convertTasks(file.Tasks)
	if err != nil {
		return nil, err
	}
	session.Tasks = tasks

	events, err := convertEvents(file.Events)
	if err != nil {
		return nil, err
	}
	session.Events = events

	if err := session.Validate(); err != nil {
		return nil, err
	}
	return session, nil
}

// convertTasks maps task DTOs to specs in sorted name order so that loading is deterministic.
func convertTasks(dtos map[string]TaskDTO) ([]domain.TaskSpec, error) {
	if len(dtos) == 0 {
		return nil, nil
	}

	specs := make([]domain.TaskSpec, 0, len(dtos))
	for _, name := range slices.Sorted(maps.Keys(dtos)) {
		if !domain.ValidTaskName(name) {
			return nil, zerr.With(domain.ErrInvalidTaskName, "task_name", name)
		}

		dto := dtos[name]
		subTasks, err := convertTasks(dto.SubTasks)
		if err != nil {
			return nil, err
		}

		specs = append(specs, domain.TaskSpec{
			Name:        name,
			Description: dto.Description,
			Note:        dto.Note,
			SubTasks:    subTasks,
		})
	}
	return specs, nil
}

func convertEvents(dtos []EventDTO) ([]domain.Event, error) {
	events := make([]domain.Event, 0, len(dtos))
	for i, dto := range dtos {
		at, err := parseOffset(dto.At)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid event offset"), "event_index", i)
		}

		action, err := domain.ParseAction(dto.Action)
		if err != nil {
			return nil, err
		}

		if strings.TrimSpace(dto.Task) == "" {
			return nil, zerr.With(domain.ErrInvalidTaskName, "event_index", i)
		}

		events = append(events, domain.Event{
			At:     at,
			Task:   domain.NewTaskPath(dto.Task),
			Action: action,
			Text:   dto.Text,
		})
	}
	return events, nil
}

// parseOffset accepts Go duration strings. An empty offset means the session start.
func parseOffset(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

func defaultName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
