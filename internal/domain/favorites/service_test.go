package favorites

import (
	"context"
	"errors"
	"testing"

	"starwars-blog-api/internal/domain/people"
	"starwars-blog-api/internal/domain/planets"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	nextID int64
	links  []Link
	// failCreate simula el perdedor de una carrera: el storage detecta el duplicado.
	failCreate error
}

func (r *testRepo) Create(ctx context.Context, l Link) (Link, error) {
	if r.failCreate != nil {
		return Link{}, r.failCreate
	}
	r.nextID++
	l.ID = r.nextID
	r.links = append(r.links, l)
	return l, nil
}

func (r *testRepo) GetByID(ctx context.Context, kind Kind, id int64) (Link, error) {
	for _, l := range r.links {
		if l.Kind == kind && l.ID == id {
			return l, nil
		}
	}
	return Link{}, ErrNotFound
}

func (r *testRepo) Find(ctx context.Context, kind Kind, userID, entityID int64) (Link, error) {
	for _, l := range r.links {
		if l.Kind == kind && l.UserID == userID && l.EntityID == entityID {
			return l, nil
		}
	}
	return Link{}, ErrNotFound
}

func (r *testRepo) Delete(ctx context.Context, kind Kind, id int64) error {
	for i, l := range r.links {
		if l.Kind == kind && l.ID == id {
			r.links = append(r.links[:i], r.links[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *testRepo) ListByUser(ctx context.Context, kind Kind, userID int64) ([]Link, error) {
	var out []Link
	for _, l := range r.links {
		if l.Kind == kind && l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *testRepo) ListAll(ctx context.Context, kind Kind) ([]Link, error) {
	var out []Link
	for _, l := range r.links {
		if l.Kind == kind {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *testRepo) CountByEntity(ctx context.Context, kind Kind, entityID int64) (int, error) {
	n := 0
	for _, l := range r.links {
		if l.Kind == kind && l.EntityID == entityID {
			n++
		}
	}
	return n, nil
}

type fakeUsers map[int64]bool

func (f fakeUsers) Exists(ctx context.Context, id int64) (bool, error) { return f[id], nil }

type fakePeople map[int64]people.Person

func (f fakePeople) GetByID(ctx context.Context, id int64) (people.Person, error) {
	p, ok := f[id]
	if !ok {
		return people.Person{}, people.ErrNotFound
	}
	return p, nil
}

type fakePlanets map[int64]planets.Planet

func (f fakePlanets) GetByID(ctx context.Context, id int64) (planets.Planet, error) {
	p, ok := f[id]
	if !ok {
		return planets.Planet{}, planets.ErrNotFound
	}
	return p, nil
}

func newFixture() (*Service, *testRepo) {
	repo := &testRepo{}
	svc := NewService(
		repo,
		fakeUsers{1: true, 2: true},
		fakePeople{
			10: {ID: 10, Name: "Luke Skywalker"},
			11: {ID: 11, Name: "Leia Organa"},
		},
		fakePlanets{
			20: {ID: 20, Name: "Tatooine"},
		},
	)
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestAddFavorite_OnceThenConflict(t *testing.T) {
	svc, repo := newFixture()
	ctx := context.Background()

	l, err := svc.AddFavorite(ctx, 1, KindPeople, 10)
	if err != nil {
		t.Fatalf("AddFavorite error: %v", err)
	}
	if l.ID == 0 || l.UserID != 1 || l.EntityID != 10 || l.Kind != KindPeople {
		t.Fatalf("unexpected link: %+v", l)
	}

	_, err = svc.AddFavorite(ctx, 1, KindPeople, 10)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(repo.links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(repo.links))
	}

	// mismo usuario, otra tabla: no es duplicado
	if _, err := svc.AddFavorite(ctx, 1, KindPlanet, 20); err != nil {
		t.Fatalf("AddFavorite planet error: %v", err)
	}
}

func TestAddFavorite_UnknownUser_NotFound_BeforeEntityCheck(t *testing.T) {
	svc, repo := newFixture()

	// la entidad tampoco existe; el error debe ser el del usuario
	_, err := svc.AddFavorite(context.Background(), 99, KindPeople, 999)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(repo.links) != 0 {
		t.Fatalf("no link must be inserted")
	}
}

func TestAddFavorite_UnknownEntity_NotFound(t *testing.T) {
	svc, repo := newFixture()

	_, err := svc.AddFavorite(context.Background(), 1, KindPlanet, 404)
	if !errors.Is(err, ErrNotFound) || errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected entity not found, got %v", err)
	}
	if err.Error() != "planet not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if len(repo.links) != 0 {
		t.Fatalf("no link must be inserted")
	}
}

func TestAddFavorite_StoreConflict_Propagates(t *testing.T) {
	svc, repo := newFixture()
	repo.failCreate = ErrConflict

	_, err := svc.AddFavorite(context.Background(), 1, KindPeople, 10)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict from store, got %v", err)
	}
}

func TestAddFavorite_UnknownKind_InvalidInput(t *testing.T) {
	svc, _ := newFixture()
	_, err := svc.AddFavorite(context.Background(), 1, Kind("starships"), 1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRemoveFavorite_NeverCreated_And_AlreadyRemoved(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	if err := svc.RemoveFavorite(ctx, KindPeople, 1); !errors.Is(err, ErrLinkNotFound) {
		t.Fatalf("expected ErrLinkNotFound, got %v", err)
	}

	l, _ := svc.AddFavorite(ctx, 1, KindPeople, 10)
	if err := svc.RemoveFavorite(ctx, KindPeople, l.ID); err != nil {
		t.Fatalf("RemoveFavorite error: %v", err)
	}
	if err := svc.RemoveFavorite(ctx, KindPeople, l.ID); !errors.Is(err, ErrLinkNotFound) {
		t.Fatalf("expected ErrLinkNotFound on second remove, got %v", err)
	}
}

func TestRemoveFavorite_WrongTable_NotFound(t *testing.T) {
	svc, _ := newFixture()
	l, _ := svc.AddFavorite(context.Background(), 1, KindPeople, 10)

	if err := svc.RemoveFavorite(context.Background(), KindPlanet, l.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListFavorites_ExpandedInInsertionOrder(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	// planeta primero: el orden de llamadas no importa
	if _, err := svc.AddFavorite(ctx, 1, KindPlanet, 20); err != nil {
		t.Fatal(err)
	}
	leia, err := svc.AddFavorite(ctx, 1, KindPeople, 11)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddFavorite(ctx, 1, KindPeople, 10); err != nil {
		t.Fatal(err)
	}
	// favorito de otro usuario, no debe aparecer
	if _, err := svc.AddFavorite(ctx, 2, KindPeople, 10); err != nil {
		t.Fatal(err)
	}

	favs, err := svc.ListFavorites(ctx, 1)
	if err != nil {
		t.Fatalf("ListFavorites error: %v", err)
	}
	if len(favs.People) != 2 || len(favs.Planets) != 1 {
		t.Fatalf("unexpected counts: %+v", favs)
	}
	if favs.People[0].Person.Name != "Leia Organa" || favs.People[0].LinkID != leia.ID {
		t.Fatalf("expected Leia first with her link id, got %+v", favs.People[0])
	}
	if favs.People[1].Person.Name != "Luke Skywalker" {
		t.Fatalf("expected Luke second, got %+v", favs.People[1])
	}
	if favs.Planets[0].Planet.Name != "Tatooine" {
		t.Fatalf("expected Tatooine, got %+v", favs.Planets[0])
	}
}

func TestListFavorites_UnknownUser_NotFound(t *testing.T) {
	svc, _ := newFixture()
	if _, err := svc.ListFavorites(context.Background(), 77); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestListFavorites_NoLinks_EmptySlices(t *testing.T) {
	svc, _ := newFixture()
	favs, err := svc.ListFavorites(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListFavorites error: %v", err)
	}
	if favs.People == nil || favs.Planets == nil || len(favs.People)+len(favs.Planets) != 0 {
		t.Fatalf("expected empty non-nil slices, got %+v", favs)
	}
}

func TestRefs_CountLinks(t *testing.T) {
	svc, repo := newFixture()
	ctx := context.Background()
	_, _ = svc.AddFavorite(ctx, 1, KindPeople, 10)
	_, _ = svc.AddFavorite(ctx, 2, KindPeople, 10)
	_, _ = svc.AddFavorite(ctx, 1, KindPlanet, 20)

	n, err := PersonRefs(repo).CountByPerson(ctx, 10)
	if err != nil || n != 2 {
		t.Fatalf("expected 2 person refs, got %d %v", n, err)
	}
	n, err = PlanetRefs(repo).CountByPlanet(ctx, 20)
	if err != nil || n != 1 {
		t.Fatalf("expected 1 planet ref, got %d %v", n, err)
	}
}

func TestListFavorites_DanglingLink_IsAnError(t *testing.T) {
	svc, repo := newFixture()
	// fila que el storage nunca debería aceptar: persona 99 no existe
	repo.links = append(repo.links, Link{ID: 1, UserID: 1, Kind: KindPeople, EntityID: 99})

	_, err := svc.ListFavorites(context.Background(), 1)
	if !errors.Is(err, ErrDanglingLink) {
		t.Fatalf("expected ErrDanglingLink, got %v", err)
	}
}
