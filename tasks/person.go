package tasks

import (
	"fmt"
	"io"

	"github.com/ddirect/sortedlist/sorted"
)

type Person struct {
	name  string
	tasks *sorted.List[Task]
}

func newPerson(name string) *Person {
	return &Person{
		name:  name,
		tasks: sorted.New[Task](),
	}
}

func (p *Person) Name() string {
	return p.name
}

// Tasks returns the tasks of the person, highest priority first. The list must
// not be modified.
func (p *Person) Tasks() *sorted.List[Task] {
	return p.tasks
}

func (p *Person) assignTask(t Task) {
	p.tasks.Insert(t)
}

func (p *Person) completeTask() bool {
	if p.tasks.Len() == 0 {
		return false
	}
	p.tasks.Remove(p.tasks.Begin())
	return true
}

func (p *Person) setTasks(l *sorted.List[Task]) {
	p.tasks.Assign(l)
}

func (p *Person) print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Person: %s\n", p.name); err != nil {
		return err
	}
	if p.tasks.Len() == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Tasks:"); err != nil {
		return err
	}
	return printTasks(w, p.tasks)
}

func printTasks(w io.Writer, l *sorted.List[Task]) error {
	for t := range l.All() {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}
