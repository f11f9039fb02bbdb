package entity

import "github.com/google/uuid"

// Entity is implemented by every persisted record. An entity whose ID is
// uuid.Nil has not been stored yet; the repository assigns one on insert.
type Entity interface {
	GetID() uuid.UUID
	SetID(id uuid.UUID)
}

// Pointer constrains a type parameter to a pointer to T that implements Entity.
type Pointer[T any] interface {
	*T
	Entity
}
