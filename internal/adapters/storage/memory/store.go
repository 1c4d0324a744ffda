package memory

import (
	"sync"

	"starwars-blog-api/internal/domain/favorites"
	"starwars-blog-api/internal/domain/people"
	"starwars-blog-api/internal/domain/planets"
	"starwars-blog-api/internal/domain/users"
)

// Store agrupa las tablas in-memory bajo un único lock. Los links de
// favoritos se comportan como FKs ON DELETE RESTRICT: el insert exige que
// existan el usuario y la entidad, y una persona/planeta referenciado no se
// puede borrar. Todo se decide con el write lock tomado.
type Store struct {
	mu sync.RWMutex

	users     *usersRepo
	people    *peopleRepo
	planets   *planetsRepo
	favorites *favoritesRepo
}

func NewStore() *Store {
	s := &Store{}
	s.users = &usersRepo{st: s}
	s.people = &peopleRepo{st: s, byID: make(map[int64]people.Person)}
	s.planets = &planetsRepo{st: s, byID: make(map[int64]planets.Planet)}
	s.favorites = &favoritesRepo{
		st: s,
		tables: map[favorites.Kind]*favoritesTable{
			favorites.KindPeople: {pairs: make(map[pairKey]int64)},
			favorites.KindPlanet: {pairs: make(map[pairKey]int64)},
		},
	}
	return s
}

func (s *Store) Users() users.Repository { return s.users }
func (s *Store) People() people.Repository { return s.people }
func (s *Store) Planets() planets.Repository { return s.planets }
func (s *Store) Favorites() favorites.Repository { return s.favorites }

// Los helpers de abajo asumen s.mu tomado.

func (s *Store) userExists(id int64) bool {
	return id > 0 && id <= int64(len(s.users.items))
}

func (s *Store) entityExists(kind favorites.Kind, id int64) bool {
	switch kind {
	case favorites.KindPeople:
		_, ok := s.people.byID[id]
		return ok
	case favorites.KindPlanet:
		_, ok := s.planets.byID[id]
		return ok
	}
	return false
}

func (s *Store) referenced(kind favorites.Kind, entityID int64) bool {
	t, ok := s.favorites.tables[kind]
	if !ok {
		return false
	}
	for _, l := range t.rows {
		if l.EntityID == entityID {
			return true
		}
	}
	return false
}
