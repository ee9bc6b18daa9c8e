// Package domain defines the entity model shared by the generator and both
// sinks: users, hierarchical teams, factorization task lists, and the tasks
// derived from a list's numeric range. Entities are immutable once the
// population driver hands the assembled graph to a sink.
package domain

import (
	"fmt"
	"math/big"

	"github.com/dustin/go-humanize"
)

// EntityType identifies the type component of an entity reference (EUID).
type EntityType string

// Entity types recognised by the downstream policy evaluator.
const (
	TypeUser        EntityType = "User"
	TypeTeam        EntityType = "Team"
	TypeList        EntityType = "List"
	TypeApplication EntityType = "Application"
)

// FormatEUID renders the cross-sink entity reference `Type::"identifier"`.
func FormatEUID(t EntityType, id string) string {
	return fmt.Sprintf("%s::%q", t, id)
}

// ApplicationName is the identifier of the singleton application root.
const ApplicationName = "TinyTodo"

// ApplicationEUID is the entity reference of the application root, the
// implicit parent of every team and of every user without explicit teams.
const ApplicationEUID = `Application::"TinyTodo"`

// Team is a named membership group. Default teams carry a fixed label and
// may declare parents among other default teams; extra teams are minted with
// a generated unique token and never have parents of their own.
type Team struct {
	Name    string
	Parents []*Team
}

// EUID returns the team's entity reference.
func (t *Team) EUID() string { return FormatEUID(TypeTeam, t.Name) }

// User is a person with a direct (non-transitive) team membership set.
type User struct {
	UID   string
	Name  string
	Teams []*Team
}

// EUID returns the user's entity reference.
func (u *User) EUID() string { return FormatEUID(TypeUser, u.UID) }

// TaskList is a factorization task list owned by one user and shared with a
// readers team and an editors team. Its tasks are never stored: they are
// re-derived from the [Start, End] range on demand.
type TaskList struct {
	UID     string
	Owner   *User
	Name    string
	Readers *Team
	Editors *Team
	Start   uint64
	End     uint64
}

// NewTaskList assembles a list and derives its display name from the range.
func NewTaskList(uid string, owner *User, readers, editors *Team, start, end uint64) *TaskList {
	return &TaskList{
		UID:     uid,
		Owner:   owner,
		Name:    ListName(start, end),
		Readers: readers,
		Editors: editors,
		Start:   start,
		End:     end,
	}
}

// EUID returns the list's entity reference.
func (l *TaskList) EUID() string { return FormatEUID(TypeList, l.UID) }

// Tasks derives the list's task sequence: one task per integer in
// [Start, End] inclusive, ascending, all initially not done. Every call
// produces the identical sequence.
func (l *TaskList) Tasks() []Task {
	tasks := make([]Task, 0, l.End-l.Start+1)
	for n := l.Start; ; n++ {
		tasks = append(tasks, Task{Name: TaskName(n)})
		if n == l.End {
			break
		}
	}
	return tasks
}

// Task is a single unit of work in a list. Tasks have no identity of their
// own; their serialized id is the zero-based position in the derived
// sequence.
type Task struct {
	Name string
	Done bool
}

// ListName renders a list display name with thousands separators, e.g.
// "Factorize the numbers from 9,223,372,036,854,775,808 to ...".
func ListName(start, end uint64) string {
	return fmt.Sprintf("Factorize the numbers from %s to %s", commaUint64(start), commaUint64(end))
}

// TaskName renders a task display name for one integer in a list's range.
func TaskName(n uint64) string {
	return fmt.Sprintf("Factorize the number %s", commaUint64(n))
}

// commaUint64 goes through big.Int because the range bounds live in
// [2^63, 2^64), beyond humanize.Comma's int64 domain.
func commaUint64(v uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(v))
}
