package sink

import (
	"encoding/json"

	"todoseed/pkg/domain"
)

// BuildDocument projects the graph into the nested entity document. Each
// entity embeds the same underlying identifiers as the relational rendering,
// wrapped in EUID form, so the two sinks stay mutually consistent.
func BuildDocument(g *domain.Graph) domain.Document {
	doc := domain.Document{
		Users: make(map[string]domain.UserDoc, len(g.Users)),
		Lists: make(map[string]domain.ListDoc, len(g.Lists)),
		Teams: make(map[string]domain.TeamDoc),
		App:   domain.AppDoc{EUID: domain.ApplicationEUID},
	}

	for _, u := range g.Users {
		parents := make([]string, 0, len(u.Teams)+1)
		for _, t := range u.Teams {
			parents = append(parents, t.EUID())
		}
		parents = append(parents, domain.ApplicationEUID)
		doc.Users[u.EUID()] = domain.UserDoc{EUID: u.EUID(), Name: u.Name, Parents: parents}
	}

	for _, t := range g.Teams() {
		parents := make([]string, 0, len(t.Parents)+1)
		for _, p := range t.Parents {
			parents = append(parents, p.EUID())
		}
		parents = append(parents, domain.ApplicationEUID)
		doc.Teams[t.EUID()] = domain.TeamDoc{UID: t.EUID(), Parents: parents}
	}

	for _, l := range g.Lists {
		derived := l.Tasks()
		tasks := make([]domain.TaskDoc, 0, len(derived))
		for i, task := range derived {
			tasks = append(tasks, domain.TaskDoc{Name: task.Name, State: domain.TaskStateUnchecked, ID: i})
		}
		doc.Lists[l.EUID()] = domain.ListDoc{
			UID:     l.EUID(),
			Owner:   l.Owner.EUID(),
			Name:    l.Name,
			Readers: l.Readers.EUID(),
			Editors: l.Editors.EUID(),
			Tasks:   tasks,
		}
	}

	return doc
}

// EncodeDocument renders the document as indented JSON. Map keys are emitted
// in sorted order, which is deterministic run-to-run; the top-level group
// order (users, lists, teams, app) is fixed by the struct.
func EncodeDocument(g *domain.Graph) ([]byte, error) {
	return json.MarshalIndent(BuildDocument(g), "", "    ")
}
