package domain_test

import (
	"encoding/json"
	"testing"

	"todoseed/pkg/domain"
)

func TestDocumentMarshalShape(t *testing.T) {
	doc := domain.Document{
		Users: map[string]domain.UserDoc{
			`User::"u1"`: {EUID: `User::"u1"`, Name: "Kira Novak", Parents: []string{`Team::"temp"`, domain.ApplicationEUID}},
		},
		Lists: map[string]domain.ListDoc{
			`List::"l1"`: {
				UID:     `List::"l1"`,
				Owner:   `User::"u1"`,
				Name:    "Factorize the numbers from 1 to 6",
				Readers: `Team::"temp"`,
				Editors: `Team::"admin"`,
				Tasks:   []domain.TaskDoc{{Name: "Factorize the number 1", State: domain.TaskStateUnchecked, ID: 0}},
			},
		},
		Teams: map[string]domain.TeamDoc{
			`Team::"temp"`: {UID: `Team::"temp"`, Parents: []string{domain.ApplicationEUID}},
		},
		App: domain.AppDoc{EUID: domain.ApplicationEUID},
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}
	for _, group := range []string{"users", "lists", "teams", "app"} {
		if _, ok := decoded[group]; !ok {
			t.Fatalf("document missing top-level group %q", group)
		}
	}

	var app struct {
		EUID string `json:"euid"`
	}
	if err := json.Unmarshal(decoded["app"], &app); err != nil {
		t.Fatalf("unmarshal app group: %v", err)
	}
	if app.EUID != `Application::"TinyTodo"` {
		t.Fatalf("app euid = %s", app.EUID)
	}

	var lists map[string]struct {
		Tasks []struct {
			State string `json:"state"`
			ID    int    `json:"id"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal(decoded["lists"], &lists); err != nil {
		t.Fatalf("unmarshal lists group: %v", err)
	}
	task := lists[`List::"l1"`].Tasks[0]
	if task.State != "Unchecked" || task.ID != 0 {
		t.Fatalf("task rendering = %+v", task)
	}
}
