package favorites

import (
	"fmt"
	"strings"
	"time"

	"starwars-blog-api/internal/domain/people"
	"starwars-blog-api/internal/domain/planets"
)

// Kind indica la tabla de unión: favorites_people o favorites_planets.
type Kind string

const (
	KindPeople Kind = "people"
	KindPlanet Kind = "planet"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindPeople, KindPlanet:
		return k, nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, s)
	}
}

// EntityNotFound es el error para una persona/planeta inexistente según Kind.
func (k Kind) EntityNotFound() error {
	if k == KindPeople {
		return ErrPersonNotFound
	}
	return ErrPlanetNotFound
}

// Link es una fila de la tabla de unión. EntityID apunta a people o planets según Kind.
type Link struct {
	ID       int64
	UserID   int64
	Kind     Kind
	EntityID int64

	CreatedAt time.Time
}

type FavoritePerson struct {
	LinkID int64
	Person people.Person
}

type FavoritePlanet struct {
	LinkID int64
	Planet planets.Planet
}

// Favorites: registros expandidos, en orden de inserción de los links.
type Favorites struct {
	People  []FavoritePerson
	Planets []FavoritePlanet
}
