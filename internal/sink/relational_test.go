package sink_test

import (
	"testing"

	"todoseed/internal/gen"
	"todoseed/internal/sink"
	"todoseed/pkg/domain"
)

// fixtureGraph is a small hand-built graph with known counts: two users,
// the three default teams plus one extra team, and one list with six tasks.
func fixtureGraph() *domain.Graph {
	temp := &domain.Team{Name: "temp"}
	admin := &domain.Team{Name: "admin"}
	interns := &domain.Team{Name: "interns", Parents: []*domain.Team{temp}}
	extra := &domain.Team{Name: "7a1988c2-07a6-4d00-9e6c-d9d6b16a71b5"}

	u1 := &domain.User{UID: "u1", Name: "Maja Rossi", Teams: []*domain.Team{temp, extra}}
	u2 := &domain.User{UID: "u2", Name: "Omar Chan", Teams: []*domain.Team{interns, temp}}

	list := domain.NewTaskList("l1", u1, extra, temp, 1<<63, 1<<63+5)

	return &domain.Graph{
		Users:        []*domain.User{u1, u2},
		DefaultTeams: []*domain.Team{temp, admin, interns},
		ExtraTeams:   []*domain.Team{extra},
		Lists:        []*domain.TaskList{list},
	}
}

func TestRelationalRowsCounts(t *testing.T) {
	rows := sink.RelationalRows(fixtureGraph())

	if len(rows.Users) != 2 {
		t.Fatalf("users rows = %d", len(rows.Users))
	}
	if len(rows.Teams) != 4 {
		t.Fatalf("teams rows = %d", len(rows.Teams))
	}
	// One explicit edge (interns, temp) plus one application-root edge per team.
	if len(rows.Subteams) != 5 {
		t.Fatalf("subteams rows = %d", len(rows.Subteams))
	}
	if len(rows.Memberships) != 4 {
		t.Fatalf("membership rows = %d", len(rows.Memberships))
	}
	if len(rows.Lists) != 1 {
		t.Fatalf("lists rows = %d", len(rows.Lists))
	}
	if len(rows.Tasks) != 6 {
		t.Fatalf("tasks rows = %d", len(rows.Tasks))
	}
}

func TestRelationalRowsHierarchyEdges(t *testing.T) {
	rows := sink.RelationalRows(fixtureGraph())

	foundExplicit := false
	appEdges := make(map[string]bool)
	for _, r := range rows.Subteams {
		switch r.Parent {
		case domain.ApplicationName:
			appEdges[r.Child] = true
		case "temp":
			if r.Child == "interns" {
				foundExplicit = true
			}
		default:
			t.Fatalf("unexpected subteam edge (%s, %s)", r.Child, r.Parent)
		}
	}
	if !foundExplicit {
		t.Fatalf("missing (interns, temp) edge")
	}
	for _, team := range rows.Teams {
		if !appEdges[team.UID] {
			t.Fatalf("team %s missing application-root edge", team.UID)
		}
	}
}

func TestRelationalRowsListColumns(t *testing.T) {
	rows := sink.RelationalRows(fixtureGraph())
	l := rows.Lists[0]
	if l.UID != "l1" || l.Owner != "u1" {
		t.Fatalf("list row identity = %+v", l)
	}
	// Owner carries the bare user uid; readers/editors carry team names.
	if l.Readers != "7a1988c2-07a6-4d00-9e6c-d9d6b16a71b5" || l.Editors != "temp" {
		t.Fatalf("list row teams = %+v", l)
	}
	for i, task := range rows.Tasks {
		if task.Done {
			t.Fatalf("task row %d materialized done", i)
		}
		if task.ListUID != "l1" {
			t.Fatalf("task row %d list_uid = %s", i, task.ListUID)
		}
	}
}

func TestRelationalReferentialClosure(t *testing.T) {
	graph, err := gen.Generate(gen.Config{Users: 40, Lists: 60, Seed: 0xCEDAA})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	rows := sink.RelationalRows(graph)

	users := make(map[string]bool)
	for _, r := range rows.Users {
		users[r.UID] = true
	}
	teams := make(map[string]bool)
	for _, r := range rows.Teams {
		teams[r.UID] = true
	}
	lists := make(map[string]bool)
	for _, r := range rows.Lists {
		lists[r.UID] = true
	}

	for _, r := range rows.Memberships {
		if !users[r.UserUID] || !teams[r.TeamUID] {
			t.Fatalf("dangling membership (%s, %s)", r.UserUID, r.TeamUID)
		}
	}
	for _, r := range rows.Subteams {
		if !teams[r.Child] {
			t.Fatalf("dangling subteam child %s", r.Child)
		}
		if !teams[r.Parent] && r.Parent != domain.ApplicationName {
			t.Fatalf("subteam parent %s is neither a team nor the application root", r.Parent)
		}
	}
	for _, r := range rows.Lists {
		if !users[r.Owner] {
			t.Fatalf("list %s has dangling owner %s", r.UID, r.Owner)
		}
		if !teams[r.Readers] || !teams[r.Editors] {
			t.Fatalf("list %s has dangling readers/editors", r.UID)
		}
	}
	for _, r := range rows.Tasks {
		if !lists[r.ListUID] {
			t.Fatalf("task %q has dangling list %s", r.Name, r.ListUID)
		}
	}
}
