package config

// SupportedVersion is the only session schema version understood by the loader.
const SupportedVersion = "1"

// Sessionfile represents the structure of a stint.yaml session file.
type Sessionfile struct {
	Version string             `yaml:"version"`
	Name    string             `yaml:"name"`
	Tasks   map[string]TaskDTO `yaml:"tasks"`
	Events  []EventDTO         `yaml:"events"`
}

// TaskDTO represents a task declaration in the session file.
type TaskDTO struct {
	Description string             `yaml:"description"`
	Note        string             `yaml:"note"`
	SubTasks    map[string]TaskDTO `yaml:"subtasks"`
}

// EventDTO represents one timeline entry in the session file.
type EventDTO struct {
	At     string `yaml:"at"`
	Task   string `yaml:"task"`
	Action string `yaml:"action"`
	Text   string `yaml:"text"`
}
