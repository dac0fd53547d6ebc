// Package sessionstore implements the session store port. State is
// serialized to JSON records and kept in memory or in SQLite, optionally
// behind a circuit breaker.
package sessionstore

// StateDTO is the stored form of one session.
type StateDTO struct {
	Lists []ListDTO  `json:"lists"`
	Flash []FlashDTO `json:"flash,omitempty"`
}

// ListDTO is the stored form of a todo list.
type ListDTO struct {
	ID    int64     `json:"id"`
	Title string    `json:"title"`
	Todos []TodoDTO `json:"todos"`
}

// TodoDTO is the stored form of a todo.
type TodoDTO struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// FlashDTO is the stored form of a flash message.
type FlashDTO struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
