package sessionstore

import (
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/go-todos/internal/domain/session"
	"github.com/jsamuelsen11/go-todos/internal/domain/todo"
	"github.com/jsamuelsen11/go-todos/internal/domain/todolist"
)

// Hydrate rebuilds a list collection from stored records, keeping ids,
// titles, done flags and order exactly as stored.
func Hydrate(records []ListDTO) *todolist.Collection {
	lists := make([]*todolist.TodoList, len(records))
	for i := range records {
		rec := &records[i]
		todos := make([]*todo.Todo, len(rec.Todos))
		for j, t := range rec.Todos {
			todos[j] = todo.Restore(t.ID, t.Title, t.Done)
		}
		lists[i] = todolist.Restore(rec.ID, rec.Title, todos)
	}
	return todolist.NewCollection(lists...)
}

// Dehydrate converts a list collection into stored records.
func Dehydrate(c *todolist.Collection) []ListDTO {
	lists := c.All()
	records := make([]ListDTO, len(lists))
	for i, l := range lists {
		todos := l.Todos()
		rec := ListDTO{ID: l.ID, Title: l.Title, Todos: make([]TodoDTO, len(todos))}
		for j, t := range todos {
			rec.Todos[j] = TodoDTO{ID: t.ID, Title: t.Title, Done: t.Done}
		}
		records[i] = rec
	}
	return records
}

// ToDomainState converts a stored session into domain state.
func ToDomainState(dto StateDTO) *session.State {
	state := &session.State{Lists: Hydrate(dto.Lists)}
	for _, f := range dto.Flash {
		state.AddFlash(session.FlashKind(f.Kind), f.Message)
	}
	return state
}

// ToStateDTO converts domain state into its stored form.
func ToStateDTO(state *session.State) StateDTO {
	dto := StateDTO{Lists: Dehydrate(state.Lists)}
	for _, f := range state.Flash {
		dto.Flash = append(dto.Flash, FlashDTO{Kind: string(f.Kind), Message: f.Message})
	}
	return dto
}

// Encode serializes state to JSON.
func Encode(state *session.State) ([]byte, error) {
	data, err := json.Marshal(ToStateDTO(state))
	if err != nil {
		return nil, fmt.Errorf("encoding session state: %w", err)
	}
	return data, nil
}

// Decode parses JSON produced by Encode. Empty input yields empty state.
func Decode(data []byte) (*session.State, error) {
	if len(data) == 0 {
		return session.NewState(), nil
	}
	var dto StateDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("decoding session state: %w", err)
	}
	return ToDomainState(dto), nil
}
