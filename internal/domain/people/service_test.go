package people

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	nextID int64
	byID   map[int64]Person
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Person{}}
}

func (r *testRepo) Create(ctx context.Context, p Person) (Person, error) {
	for _, e := range r.byID {
		if e.Name == p.Name {
			return Person{}, ErrConflict
		}
	}
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) Update(ctx context.Context, p Person) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Person, error) {
	p, ok := r.byID[id]
	if !ok {
		return Person{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) GetByName(ctx context.Context, name string) (Person, error) {
	for _, p := range r.byID {
		if p.Name == name {
			return p, nil
		}
	}
	return Person{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]Person, error) {
	out := make([]Person, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeRefs map[int64]int

func (f fakeRefs) CountByPerson(ctx context.Context, personID int64) (int, error) {
	return f[personID], nil
}

func intp(v int) *int { return &v }
func strp(v string) *string { return &v }

func seedLuke(t *testing.T, svc *Service) Person {
	t.Helper()
	p, err := svc.Create(context.Background(), CreateInput{
		Name:      "Luke Skywalker",
		Height:    intp(172),
		Mass:      intp(77),
		BirthYear: intp(19),
		Homeworld: strp("Tatooine"),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	return p
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_AssignsID_AndTimestamps(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	now := time.Date(2025, 2, 21, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p := seedLuke(t, svc)
	if p.ID != 1 {
		t.Fatalf("expected id 1, got %d", p.ID)
	}
	if p.CreatedAt != now || p.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
}

func TestService_Create_DuplicateName_Conflict_NoInsert(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	seedLuke(t, svc)

	_, err := svc.Create(context.Background(), CreateInput{Name: "  Luke Skywalker "})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected row count unchanged (1), got %d", len(repo.byID))
	}
}

func TestService_Create_BlankName_InvalidInput(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	_, err := svc.Create(context.Background(), CreateInput{Name: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Update_OnlyPresentFields(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	p := seedLuke(t, svc)

	updated, err := svc.Update(context.Background(), p.ID, UpdateInput{Height: intp(170)})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if *updated.Height != 170 {
		t.Fatalf("expected height 170, got %d", *updated.Height)
	}
	if updated.Name != p.Name || *updated.Mass != 77 || *updated.BirthYear != 19 || *updated.Homeworld != "Tatooine" {
		t.Fatalf("expected other fields untouched, got %+v", updated)
	}

	stored, _ := svc.GetByID(context.Background(), p.ID)
	if *stored.Height != 170 {
		t.Fatalf("expected stored height 170, got %d", *stored.Height)
	}
}

func TestService_Update_RenameOntoExisting_Conflict(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	seedLuke(t, svc)
	leia, err := svc.Create(context.Background(), CreateInput{Name: "Leia Organa"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	_, err = svc.Update(context.Background(), leia.ID, UpdateInput{Name: strp("Luke Skywalker")})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// renombrar a su propio nombre no es conflicto
	if _, err := svc.Update(context.Background(), leia.ID, UpdateInput{Name: strp("Leia Organa")}); err != nil {
		t.Fatalf("self rename error: %v", err)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	_, err := svc.Update(context.Background(), 99, UpdateInput{Height: intp(1)})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete_RejectsWhenReferenced(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, fakeRefs{1: 2})
	p := seedLuke(t, svc)

	err := svc.Delete(context.Background(), p.ID)
	if !errors.Is(err, ErrInUse) || !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrInUse (a conflict), got %v", err)
	}
	if _, ok := repo.byID[p.ID]; !ok {
		t.Fatalf("person must not be deleted while referenced")
	}
}

func TestService_Delete_Unreferenced(t *testing.T) {
	svc := NewService(newTestRepo(), fakeRefs{})
	p := seedLuke(t, svc)

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := svc.Delete(context.Background(), p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestService_TextLongerThanColumn_InvalidInput(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Name: strings.Repeat("x", 51)})
	if !errors.Is(err, ErrInvalidInput) || !strings.Contains(err.Error(), "field too long: name") {
		t.Fatalf("expected name too long, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("no row must be inserted")
	}

	// 50 caracteres (multibyte incluidos) entran
	if _, err := svc.Create(ctx, CreateInput{Name: strings.Repeat("é", 50)}); err != nil {
		t.Fatalf("expected 50 chars to fit, got %v", err)
	}

	p := seedLuke(t, svc)
	_, err = svc.Update(ctx, p.ID, UpdateInput{Homeworld: strp(strings.Repeat("t", 51))})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput on update, got %v", err)
	}
	got, _ := svc.GetByID(ctx, p.ID)
	if *got.Homeworld != "Tatooine" {
		t.Fatalf("homeworld must be unchanged, got %q", *got.Homeworld)
	}
}
