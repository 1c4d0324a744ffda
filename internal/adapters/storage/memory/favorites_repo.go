package memory

import (
	"context"
	"fmt"

	"starwars-blog-api/internal/domain/favorites"
)

type pairKey struct {
	userID   int64
	entityID int64
}

// favoritesTable es una tabla de unión (favorites_people o favorites_planets).
type favoritesTable struct {
	nextID int64
	rows   []favorites.Link // orden de inserción
	pairs  map[pairKey]int64
}

// favoritesRepo vive dentro de un Store: necesita ver users/people/planets
// para validar las referencias como lo haría una FK.
type favoritesRepo struct {
	st     *Store
	tables map[favorites.Kind]*favoritesTable
}

func (r *favoritesRepo) table(kind favorites.Kind) (*favoritesTable, error) {
	t, ok := r.tables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown kind %q", favorites.ErrInvalidInput, kind)
	}
	return t, nil
}

func (r *favoritesRepo) Create(ctx context.Context, l favorites.Link) (favorites.Link, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	t, err := r.table(l.Kind)
	if err != nil {
		return favorites.Link{}, err
	}

	if !r.st.userExists(l.UserID) {
		return favorites.Link{}, fmt.Errorf("%w: id %d", favorites.ErrUserNotFound, l.UserID)
	}
	if !r.st.entityExists(l.Kind, l.EntityID) {
		return favorites.Link{}, fmt.Errorf("%w: id %d", l.Kind.EntityNotFound(), l.EntityID)
	}

	key := pairKey{userID: l.UserID, entityID: l.EntityID}
	if _, dup := t.pairs[key]; dup {
		return favorites.Link{}, fmt.Errorf("%w: user %d, %s %d", favorites.ErrConflict, l.UserID, l.Kind, l.EntityID)
	}

	t.nextID++
	l.ID = t.nextID
	t.rows = append(t.rows, l)
	t.pairs[key] = l.ID
	return l, nil
}

func (r *favoritesRepo) GetByID(ctx context.Context, kind favorites.Kind, id int64) (favorites.Link, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	t, err := r.table(kind)
	if err != nil {
		return favorites.Link{}, err
	}
	for _, l := range t.rows {
		if l.ID == id {
			return l, nil
		}
	}
	return favorites.Link{}, favorites.ErrNotFound
}

func (r *favoritesRepo) Find(ctx context.Context, kind favorites.Kind, userID, entityID int64) (favorites.Link, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	t, err := r.table(kind)
	if err != nil {
		return favorites.Link{}, err
	}
	id, ok := t.pairs[pairKey{userID: userID, entityID: entityID}]
	if !ok {
		return favorites.Link{}, favorites.ErrNotFound
	}
	for _, l := range t.rows {
		if l.ID == id {
			return l, nil
		}
	}
	return favorites.Link{}, favorites.ErrNotFound
}

func (r *favoritesRepo) Delete(ctx context.Context, kind favorites.Kind, id int64) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	t, err := r.table(kind)
	if err != nil {
		return err
	}
	for i, l := range t.rows {
		if l.ID == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			delete(t.pairs, pairKey{userID: l.UserID, entityID: l.EntityID})
			return nil
		}
	}
	return favorites.ErrNotFound
}

func (r *favoritesRepo) ListByUser(ctx context.Context, kind favorites.Kind, userID int64) ([]favorites.Link, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	t, err := r.table(kind)
	if err != nil {
		return nil, err
	}
	out := make([]favorites.Link, 0)
	for _, l := range t.rows {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *favoritesRepo) ListAll(ctx context.Context, kind favorites.Kind) ([]favorites.Link, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	t, err := r.table(kind)
	if err != nil {
		return nil, err
	}
	out := make([]favorites.Link, len(t.rows))
	copy(out, t.rows)
	return out, nil
}

func (r *favoritesRepo) CountByEntity(ctx context.Context, kind favorites.Kind, entityID int64) (int, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	t, err := r.table(kind)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, l := range t.rows {
		if l.EntityID == entityID {
			n++
		}
	}
	return n, nil
}
