package sorted_test

import (
	"cmp"
	"flag"
	"fmt"
	"os"
	"slices"
	"testing"

	"github.com/ddirect/sortedlist"
	"github.com/ddirect/sortedlist/sorted"
)

type LogFunc func(t *testing.T, data []byte)

var logFile string

func init() {
	flag.StringVar(&logFile, "logfile", "", "logfile to use")
}

func makeLogFunc(logFile string) LogFunc {
	if logFile == "" {
		return func(t *testing.T, data []byte) {
			t.Logf("%s\n", data)
		}
	}

	logout, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(fmt.Errorf("open: %w", err))
	}

	return func(t *testing.T, data []byte) {
		if _, err := logout.Write(append(data, '\n')); err != nil {
			panic(fmt.Errorf("write: %w", err))
		}
	}
}

type int32B int32

func (a int32B) Before(b int32B) bool {
	return a > b
}

// keyed is ordered by key only; seq tells apart elements with the same key
type keyed struct {
	key int
	seq int
}

func (a keyed) Before(b keyed) bool {
	return a.key > b.key
}

// descending sorts the reference the way the list is expected to be ordered
func descending(ref []keyed) []keyed {
	return slices.SortedStableFunc(slices.Values(ref), func(a, b keyed) int {
		return cmp.Compare(b.key, a.key)
	})
}

func collect[T sortedlist.Comparer[T]](l *sorted.List[T]) []T {
	var res []T
	for v := range l.All() {
		res = append(res, v)
	}
	return res
}

// walk traverses l with cursors only
func walk[T sortedlist.Comparer[T]](t *testing.T, l *sorted.List[T]) []T {
	var res []T
	for c := l.Begin(); c != l.End(); {
		v, err := c.Value()
		if err != nil {
			t.Fatal(err)
		}
		res = append(res, v)
		if c, err = c.Next(); err != nil {
			t.Fatal(err)
		}
	}
	return res
}

func cursorAt[T sortedlist.Comparer[T]](l *sorted.List[T], i int) sorted.Cursor[T] {
	c := l.Begin()
	for range i {
		c, _ = c.Next()
	}
	return c
}

func isDescending(s []keyed) bool {
	return slices.IsSortedFunc(s, func(a, b keyed) int {
		return cmp.Compare(b.key, a.key)
	})
}
