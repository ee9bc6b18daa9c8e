// Package sink projects a finished entity graph into its two serialized
// renderings: relational row tuples and the nested entity document. Both
// projections are pure functions over the immutable graph, so each can be
// tested without re-running generation.
package sink

import "todoseed/pkg/domain"

// Schema is the relational DDL, one statement per table. Column order is
// significant: it is the insertion tuple contract. The REFERENCES markers
// document intent; the application root sentinel in subteams.parent_team is
// deliberately not a teams row.
var Schema = []string{
	`CREATE TABLE users (
		uid TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE teams (uid TEXT PRIMARY KEY)`,
	`CREATE TABLE subteams (child_team REFERENCES teams, parent_team REFERENCES teams)`,
	`CREATE TABLE team_memberships (
		user_uid REFERENCES users,
		team_uid REFERENCES teams
	)`,
	`CREATE TABLE lists (uid TEXT PRIMARY KEY, owner REFERENCES users, name TEXT NOT NULL, readers REFERENCES teams, editors REFERENCES teams)`,
	`CREATE TABLE tasks (name TEXT NOT NULL, state BOOLEAN NOT NULL, list_uid REFERENCES lists)`,
}

// Tables lists the table names in insertion order: reference tables before
// the tables that point at them.
var Tables = []string{"users", "teams", "subteams", "team_memberships", "lists", "tasks"}

// UserRow is one users tuple.
type UserRow struct {
	UID  string
	Name string
}

// TeamRow is one teams tuple; the uid column carries the team name.
type TeamRow struct {
	UID string
}

// SubteamRow is one team->parent edge. Parent is either another team name
// or the application root sentinel.
type SubteamRow struct {
	Child  string
	Parent string
}

// MembershipRow is one (user, team) direct-membership pair.
type MembershipRow struct {
	UserUID string
	TeamUID string
}

// ListRow is one lists tuple. Owner carries the bare user uid; Readers and
// Editors carry team names.
type ListRow struct {
	UID     string
	Owner   string
	Name    string
	Readers string
	Editors string
}

// TaskRow is one eagerly materialized task tuple.
type TaskRow struct {
	Name    string
	Done    bool
	ListUID string
}

// Rows is the complete relational rendering of a graph, per table, in
// insertion order within each table.
type Rows struct {
	Users       []UserRow
	Teams       []TeamRow
	Subteams    []SubteamRow
	Memberships []MembershipRow
	Lists       []ListRow
	Tasks       []TaskRow
}

// RelationalRows walks the graph once and produces every insert tuple.
// Subteams include one row per explicit team->parent edge plus the implicit
// application-root edge per team, appended here from the constant sentinel
// rather than stored as a graph edge.
func RelationalRows(g *domain.Graph) Rows {
	var rows Rows

	for _, u := range g.Users {
		rows.Users = append(rows.Users, UserRow{UID: u.UID, Name: u.Name})
		for _, t := range u.Teams {
			rows.Memberships = append(rows.Memberships, MembershipRow{UserUID: u.UID, TeamUID: t.Name})
		}
	}

	for _, t := range g.Teams() {
		rows.Teams = append(rows.Teams, TeamRow{UID: t.Name})
		for _, p := range t.Parents {
			rows.Subteams = append(rows.Subteams, SubteamRow{Child: t.Name, Parent: p.Name})
		}
		rows.Subteams = append(rows.Subteams, SubteamRow{Child: t.Name, Parent: domain.ApplicationName})
	}

	for _, l := range g.Lists {
		rows.Lists = append(rows.Lists, ListRow{
			UID:     l.UID,
			Owner:   l.Owner.UID,
			Name:    l.Name,
			Readers: l.Readers.Name,
			Editors: l.Editors.Name,
		})
		for _, task := range l.Tasks() {
			rows.Tasks = append(rows.Tasks, TaskRow{Name: task.Name, Done: task.Done, ListUID: l.UID})
		}
	}

	return rows
}
