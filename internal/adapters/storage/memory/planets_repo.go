package memory

import (
	"context"
	"fmt"
	"sort"

	"starwars-blog-api/internal/domain/favorites"
	"starwars-blog-api/internal/domain/planets"
)

type planetsRepo struct {
	st     *Store
	nextID int64
	byID   map[int64]planets.Planet
}

// NewPlanetsRepo es una tabla suelta, sin favoritos que la referencien.
func NewPlanetsRepo() planets.Repository {
	return NewStore().Planets()
}

func (r *planetsRepo) Create(ctx context.Context, p planets.Planet) (planets.Planet, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	// unicidad de name bajo el write lock (equivalente al UNIQUE de Postgres)
	for _, e := range r.byID {
		if e.Name == p.Name {
			return planets.Planet{}, fmt.Errorf("%w: name %q", planets.ErrConflict, p.Name)
		}
	}

	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *planetsRepo) Update(ctx context.Context, p planets.Planet) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, ok := r.byID[p.ID]; !ok {
		return planets.ErrNotFound
	}
	for _, e := range r.byID {
		if e.ID != p.ID && e.Name == p.Name {
			return fmt.Errorf("%w: name %q", planets.ErrConflict, p.Name)
		}
	}
	r.byID[p.ID] = p
	return nil
}

func (r *planetsRepo) GetByID(ctx context.Context, id int64) (planets.Planet, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return planets.Planet{}, planets.ErrNotFound
	}
	return p, nil
}

func (r *planetsRepo) GetByName(ctx context.Context, name string) (planets.Planet, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	for _, p := range r.byID {
		if p.Name == name {
			return p, nil
		}
	}
	return planets.Planet{}, planets.ErrNotFound
}

func (r *planetsRepo) List(ctx context.Context) ([]planets.Planet, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	out := make([]planets.Planet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *planetsRepo) Delete(ctx context.Context, id int64) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return planets.ErrNotFound
	}
	if r.st.referenced(favorites.KindPlanet, id) {
		return fmt.Errorf("%w: id %d", planets.ErrInUse, id)
	}
	delete(r.byID, id)
	return nil
}
