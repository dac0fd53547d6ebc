// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo, domain/todolist,
// domain/session). This root package holds sentinel errors, the title rule
// shared by lists and todos, and domain-level interfaces (Action, WriteStager).
package domain
