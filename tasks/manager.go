package tasks

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/ddirect/sortedlist/sorted"
)

const DefaultCapacity = 10

var ErrCapacity = errors.New("tasks: max number of people reached")

// Manager assigns tasks to a fixed number of people. It is not safe to call any
// method concurrently from different goroutines.
type Manager struct {
	people []*Person
	nextID int
}

// NewManager creates a manager which can hold up to capacity people.
// capacity must be at least 1.
func NewManager(capacity int) *Manager {
	if capacity < 1 {
		panic(fmt.Errorf("tasks: invalid capacity: %d", capacity))
	}
	return &Manager{
		people: make([]*Person, 0, capacity),
	}
}

// AssignTask stamps t with a new id and adds it to the tasks of the named
// person, who is added if not known yet. It returns the stamped task.
func (m *Manager) AssignTask(name string, t Task) (Task, error) {
	p := m.find(name)
	if p == nil {
		if len(m.people) == cap(m.people) {
			return t, fmt.Errorf("assigning task to %q: %w", name, ErrCapacity)
		}
		p = newPerson(name)
		m.people = append(m.people, p)
	}
	t = t.withID(m.nextID)
	m.nextID++
	p.assignTask(t)
	return t, nil
}

// CompleteTask removes the highest priority task of the named person.
// It returns false if the person is unknown or has no tasks.
func (m *Manager) CompleteTask(name string) bool {
	if p := m.find(name); p != nil {
		return p.completeTask()
	}
	return false
}

// BumpPriorityByType raises by delta the priority of all the tasks of the given
// type. Non positive deltas are ignored.
func (m *Manager) BumpPriorityByType(typ Type, delta int) {
	if delta <= 0 {
		return
	}
	for _, p := range m.people {
		p.setTasks(p.tasks.Apply(func(t Task) Task {
			if t.typ == typ {
				return t.withPriority(t.priority + delta)
			}
			return t
		}))
	}
}

func (m *Manager) Person(name string) (*Person, bool) {
	p := m.find(name)
	return p, p != nil
}

// People returns the known people in the order they were added.
func (m *Manager) People() iter.Seq[*Person] {
	return slices.Values(m.people)
}

// Tasks returns a copy of the tasks of the named person.
func (m *Manager) Tasks(name string) *sorted.List[Task] {
	if p := m.find(name); p != nil {
		return p.tasks.Clone()
	}
	return sorted.New[Task]()
}

// AllTasks returns the tasks of all people in a single list.
func (m *Manager) AllTasks() *sorted.List[Task] {
	l := sorted.New[Task]()
	for _, p := range m.people {
		l.InsertSeq(p.tasks.All())
	}
	return l
}

func (m *Manager) TasksByType(typ Type) *sorted.List[Task] {
	return m.AllTasks().Filter(func(t Task) bool {
		return t.typ == typ
	})
}

func (m *Manager) PrintEmployees(w io.Writer) error {
	for _, p := range m.people {
		if err := p.print(w); err != nil {
			return fmt.Errorf("printing %q: %w", p.name, err)
		}
	}
	return nil
}

func (m *Manager) PrintAllTasks(w io.Writer) error {
	return printTasks(w, m.AllTasks())
}

func (m *Manager) PrintTasksByType(w io.Writer, typ Type) error {
	return printTasks(w, m.TasksByType(typ))
}

func (m *Manager) find(name string) *Person {
	for _, p := range m.people {
		if p.name == name {
			return p
		}
	}
	return nil
}
