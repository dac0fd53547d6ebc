package sessionstore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-todos/internal/domain/session"
	"github.com/jsamuelsen11/go-todos/internal/domain/todo"
	"github.com/jsamuelsen11/go-todos/internal/domain/todolist"
)

func sampleRecords() []ListDTO {
	return []ListDTO{
		{
			ID:    1,
			Title: "Work",
			Todos: []TodoDTO{
				{ID: 1, Title: "Email", Done: false},
				{ID: 3, Title: "Call", Done: true},
			},
		},
		{ID: 2, Title: "Empty", Todos: []TodoDTO{}},
		{
			ID:    5,
			Title: "Home",
			Todos: []TodoDTO{{ID: 1, Title: "Dishes", Done: true}},
		},
	}
}

func TestHydrate_PreservesFields(t *testing.T) {
	t.Parallel()

	c := Hydrate(sampleRecords())
	require.Equal(t, 3, c.Len())

	work, err := c.Find(1)
	require.NoError(t, err)
	require.Equal(t, "Work", work.Title)

	todos := work.Todos()
	require.Len(t, todos, 2)
	require.Equal(t, int64(3), todos[1].ID)
	require.Equal(t, "Call", todos[1].Title)
	require.True(t, todos[1].Done)

	home, err := c.Find(5)
	require.NoError(t, err)
	require.Equal(t, 1, home.Size())
}

func TestRoundTrip_RecordsFirst(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	require.Equal(t, records, Dehydrate(Hydrate(records)))
}

func TestRoundTrip_CollectionFirst(t *testing.T) {
	t.Parallel()

	c := todolist.NewCollection()
	work, err := c.Create("Work")
	require.NoError(t, err)
	email, err := todo.New("Email")
	require.NoError(t, err)
	work.Add(email)
	call, err := todo.New("Call")
	require.NoError(t, err)
	work.Add(call).MarkDone()
	_, err = c.Create("Empty")
	require.NoError(t, err)

	got := Hydrate(Dehydrate(c))

	require.Equal(t, c.Len(), got.Len())
	for _, want := range c.All() {
		l, err := got.Find(want.ID)
		require.NoError(t, err)
		require.Equal(t, want.Title, l.Title)
		require.Equal(t, want.Todos(), l.Todos())
	}
}

func TestRoundTrip_EmptyCollection(t *testing.T) {
	t.Parallel()

	records := Dehydrate(todolist.NewCollection())
	require.Empty(t, records)
	require.Equal(t, 0, Hydrate(records).Len())
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	state := ToDomainState(StateDTO{Lists: sampleRecords()})
	state.AddFlash(session.FlashSuccess, "The todo list has been created.")

	data, err := Encode(state)
	require.NoError(t, err)
	require.Contains(t, string(data), `"lists"`)
	require.Contains(t, string(data), `"done":true`)

	got, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, ToStateDTO(state), ToStateDTO(got))
	require.Equal(t, []session.Flash{{Kind: session.FlashSuccess, Message: "The todo list has been created."}}, got.Flash)
}

func TestDecode_Empty(t *testing.T) {
	t.Parallel()

	got, err := Decode(nil)
	require.NoError(t, err)
	require.Equal(t, 0, got.Lists.Len())
	require.Empty(t, got.Flash)
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("{not json"))
	require.Error(t, err)
}
