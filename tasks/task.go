package tasks

import "fmt"

type Type int

const (
	Meeting Type = iota
	Documentation
	Development
	Testing
	Research
	General
)

var typeNames = [...]string{
	Meeting:       "Meeting",
	Documentation: "Documentation",
	Development:   "Development",
	Testing:       "Testing",
	Research:      "Research",
	General:       "General",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

const (
	MinPriority = 0
	MaxPriority = 100
)

// Task is ordered by descending priority; tasks with the same priority are
// ordered by ascending id, so older tasks come first.
type Task struct {
	id          int
	priority    int
	typ         Type
	description string
}

// NewTask creates a task without an id; the id is assigned by Manager.AssignTask.
// The priority is clamped to [MinPriority, MaxPriority].
func NewTask(priority int, typ Type, description string) Task {
	return Task{
		priority:    clampPriority(priority),
		typ:         typ,
		description: description,
	}
}

func (t Task) ID() int {
	return t.id
}

func (t Task) Priority() int {
	return t.priority
}

func (t Task) Type() Type {
	return t.typ
}

func (t Task) Description() string {
	return t.description
}

func (t Task) Before(o Task) bool {
	if t.priority == o.priority {
		return t.id < o.id
	}
	return t.priority > o.priority
}

func (t Task) String() string {
	return fmt.Sprintf("Task ID: %d, Priority: %d, Type: %v, Description: %s", t.id, t.priority, t.typ, t.description)
}

func (t Task) withID(id int) Task {
	t.id = id
	return t
}

func (t Task) withPriority(priority int) Task {
	t.priority = clampPriority(priority)
	return t
}

func clampPriority(p int) int {
	return min(max(p, MinPriority), MaxPriority)
}
