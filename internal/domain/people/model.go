package people

import "time"

// Person es un personaje del catálogo. Los campos numéricos y homeworld
// son opcionales en storage (nullable); homeworld es texto libre, no FK.
type Person struct {
	ID   int64
	Name string // natural key, única

	Height    *int
	Mass      *int
	BirthYear *int
	Homeworld *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
