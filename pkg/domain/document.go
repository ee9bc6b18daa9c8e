package domain

// TaskStateUnchecked is the document rendering of a task that is not done.
const TaskStateUnchecked = "Unchecked"

// Document is the nested entity document consumed by the policy evaluator.
// The top-level groups are keyed by EUID; field values embed related
// entities' EUIDs directly instead of foreign-key columns.
type Document struct {
	Users map[string]UserDoc `json:"users"`
	Lists map[string]ListDoc `json:"lists"`
	Teams map[string]TeamDoc `json:"teams"`
	App   AppDoc             `json:"app"`
}

// UserDoc renders a user; Parents holds the user's team EUIDs followed by
// the application root sentinel.
type UserDoc struct {
	EUID    string   `json:"euid"`
	Name    string   `json:"name"`
	Parents []string `json:"parents"`
}

// TeamDoc renders a team; Parents holds the explicit parent-team EUIDs
// followed by the application root sentinel.
type TeamDoc struct {
	UID     string   `json:"uid"`
	Parents []string `json:"parents"`
}

// ListDoc renders a task list with its tasks fully materialized inline.
type ListDoc struct {
	UID     string    `json:"uid"`
	Owner   string    `json:"owner"`
	Name    string    `json:"name"`
	Readers string    `json:"readers"`
	Editors string    `json:"editors"`
	Tasks   []TaskDoc `json:"tasks"`
}

// TaskDoc renders one derived task; ID is the zero-based position in the
// list's ascending task sequence, not the underlying integer.
type TaskDoc struct {
	Name  string `json:"name"`
	State string `json:"state"`
	ID    int    `json:"id"`
}

// AppDoc is the singleton application root entry.
type AppDoc struct {
	EUID string `json:"euid"`
}
