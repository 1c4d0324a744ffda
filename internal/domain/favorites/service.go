package favorites

import (
	"context"
	"errors"
	"fmt"
	"time"

	"starwars-blog-api/internal/domain/people"
	"starwars-blog-api/internal/domain/planets"
	"starwars-blog-api/internal/platform/metrics"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("favorite exists")

	ErrUserNotFound   = fmt.Errorf("user %w", ErrNotFound)
	ErrPersonNotFound = fmt.Errorf("person %w", ErrNotFound)
	ErrPlanetNotFound = fmt.Errorf("planet %w", ErrNotFound)
	ErrLinkNotFound   = fmt.Errorf("favorite %w", ErrNotFound)

	// ErrDanglingLink: un link apunta a una fila que ya no existe. El storage
	// no debería permitirlo; si aparece es un 500, no un favorito omitido.
	ErrDanglingLink = errors.New("favorite references a missing row")
)

// Lookups hacia los otros módulos; los Service de users/people/planets
// las satisfacen tal cual.
type UserLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type PeopleLookup interface {
	GetByID(ctx context.Context, id int64) (people.Person, error)
}

type PlanetLookup interface {
	GetByID(ctx context.Context, id int64) (planets.Planet, error)
}

type Service struct {
	repo    Repository
	users   UserLookup
	people  PeopleLookup
	planets PlanetLookup
	now     func() time.Time
}

func NewService(repo Repository, users UserLookup, pp PeopleLookup, pl PlanetLookup) *Service {
	return &Service{
		repo:    repo,
		users:   users,
		people:  pp,
		planets: pl,
		now:     time.Now,
	}
}

// AddFavorite crea el link (user, entity). El usuario se valida antes que
// la entidad y nada se inserta si alguno falta.
func (s *Service) AddFavorite(ctx context.Context, userID int64, kind Kind, entityID int64) (Link, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return Link{}, err
	}

	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return Link{}, err
	}
	if !ok {
		return Link{}, ErrUserNotFound
	}

	if err := s.ensureEntity(ctx, kind, entityID); err != nil {
		return Link{}, err
	}

	if _, err := s.repo.Find(ctx, kind, userID, entityID); err == nil {
		metrics.RecordFavorite(string(kind), "conflict")
		return Link{}, ErrConflict
	} else if !errors.Is(err, ErrNotFound) {
		return Link{}, err
	}

	l, err := s.repo.Create(ctx, Link{
		UserID:    userID,
		Kind:      kind,
		EntityID:  entityID,
		CreatedAt: s.now(),
	})
	if err != nil {
		// perdedor de la carrera check-then-insert
		if errors.Is(err, ErrConflict) {
			metrics.RecordFavorite(string(kind), "conflict")
		}
		return Link{}, err
	}

	metrics.RecordFavorite(string(kind), "add")
	return l, nil
}

// RemoveFavorite borra por id de link, no por el par (user, entity).
func (s *Service) RemoveFavorite(ctx context.Context, kind Kind, linkID int64) error {
	if _, err := ParseKind(string(kind)); err != nil {
		return err
	}
	if linkID <= 0 {
		return ErrLinkNotFound
	}

	if err := s.repo.Delete(ctx, kind, linkID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrLinkNotFound
		}
		return err
	}

	metrics.RecordFavorite(string(kind), "remove")
	return nil
}

func (s *Service) ListFavorites(ctx context.Context, userID int64) (Favorites, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return Favorites{}, err
	}
	if !ok {
		return Favorites{}, ErrUserNotFound
	}

	out := Favorites{
		People:  []FavoritePerson{},
		Planets: []FavoritePlanet{},
	}

	links, err := s.repo.ListByUser(ctx, KindPeople, userID)
	if err != nil {
		return Favorites{}, err
	}
	for _, l := range links {
		p, err := s.people.GetByID(ctx, l.EntityID)
		if errors.Is(err, people.ErrNotFound) {
			return Favorites{}, fmt.Errorf("%w: favorites_people %d -> person %d", ErrDanglingLink, l.ID, l.EntityID)
		}
		if err != nil {
			return Favorites{}, err
		}
		out.People = append(out.People, FavoritePerson{LinkID: l.ID, Person: p})
	}

	links, err = s.repo.ListByUser(ctx, KindPlanet, userID)
	if err != nil {
		return Favorites{}, err
	}
	for _, l := range links {
		p, err := s.planets.GetByID(ctx, l.EntityID)
		if errors.Is(err, planets.ErrNotFound) {
			return Favorites{}, fmt.Errorf("%w: favorites_planets %d -> planet %d", ErrDanglingLink, l.ID, l.EntityID)
		}
		if err != nil {
			return Favorites{}, err
		}
		out.Planets = append(out.Planets, FavoritePlanet{LinkID: l.ID, Planet: p})
	}

	return out, nil
}

// ListLinks devuelve las filas crudas de una tabla de unión (vista admin).
func (s *Service) ListLinks(ctx context.Context, kind Kind) ([]Link, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	return s.repo.ListAll(ctx, kind)
}

func (s *Service) ensureEntity(ctx context.Context, kind Kind, id int64) error {
	var err error
	switch kind {
	case KindPeople:
		_, err = s.people.GetByID(ctx, id)
		if errors.Is(err, people.ErrNotFound) {
			return kind.EntityNotFound()
		}
	case KindPlanet:
		_, err = s.planets.GetByID(ctx, id)
		if errors.Is(err, planets.ErrNotFound) {
			return kind.EntityNotFound()
		}
	}
	return err
}

// -------------------------
// Contadores para people/planets (borrado restringido)
// -------------------------

type personRefs struct{ repo Repository }

func (r personRefs) CountByPerson(ctx context.Context, personID int64) (int, error) {
	return r.repo.CountByEntity(ctx, KindPeople, personID)
}

type planetRefs struct{ repo Repository }

func (r planetRefs) CountByPlanet(ctx context.Context, planetID int64) (int, error) {
	return r.repo.CountByEntity(ctx, KindPlanet, planetID)
}

func PersonRefs(repo Repository) people.FavoriteRefs { return personRefs{repo: repo} }

func PlanetRefs(repo Repository) planets.FavoriteRefs { return planetRefs{repo: repo} }
