package memory

import (
	"context"
	"fmt"
	"sort"

	"starwars-blog-api/internal/domain/favorites"
	"starwars-blog-api/internal/domain/people"
)

type peopleRepo struct {
	st     *Store
	nextID int64
	byID   map[int64]people.Person
}

// NewPeopleRepo es una tabla suelta, sin favoritos que la referencien.
func NewPeopleRepo() people.Repository {
	return NewStore().People()
}

func (r *peopleRepo) Create(ctx context.Context, p people.Person) (people.Person, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	// unicidad de name bajo el write lock (equivalente al UNIQUE de Postgres)
	for _, e := range r.byID {
		if e.Name == p.Name {
			return people.Person{}, fmt.Errorf("%w: name %q", people.ErrConflict, p.Name)
		}
	}

	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *peopleRepo) Update(ctx context.Context, p people.Person) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, ok := r.byID[p.ID]; !ok {
		return people.ErrNotFound
	}
	for _, e := range r.byID {
		if e.ID != p.ID && e.Name == p.Name {
			return fmt.Errorf("%w: name %q", people.ErrConflict, p.Name)
		}
	}
	r.byID[p.ID] = p
	return nil
}

func (r *peopleRepo) GetByID(ctx context.Context, id int64) (people.Person, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return people.Person{}, people.ErrNotFound
	}
	return p, nil
}

func (r *peopleRepo) GetByName(ctx context.Context, name string) (people.Person, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	for _, p := range r.byID {
		if p.Name == name {
			return p, nil
		}
	}
	return people.Person{}, people.ErrNotFound
}

func (r *peopleRepo) List(ctx context.Context) ([]people.Person, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	out := make([]people.Person, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *peopleRepo) Delete(ctx context.Context, id int64) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return people.ErrNotFound
	}
	if r.st.referenced(favorites.KindPeople, id) {
		return fmt.Errorf("%w: id %d", people.ErrInUse, id)
	}
	delete(r.byID, id)
	return nil
}
