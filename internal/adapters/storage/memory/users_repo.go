package memory

import (
	"context"
	"fmt"

	"starwars-blog-api/internal/domain/users"
)

type usersRepo struct {
	st    *Store
	items []users.User // ids secuenciales: el orden del slice es el orden de id
}

func NewUsersRepo() users.Repository {
	return NewStore().Users()
}

func (r *usersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, e := range r.items {
		if e.Email == u.Email {
			return users.User{}, fmt.Errorf("%w: email %q", users.ErrConflict, u.Email)
		}
	}

	u.ID = int64(len(r.items)) + 1
	r.items = append(r.items, u)
	return u, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	if id <= 0 || id > int64(len(r.items)) {
		return users.User{}, users.ErrNotFound
	}
	return r.items[id-1], nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	for _, u := range r.items {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *usersRepo) List(ctx context.Context) ([]users.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	out := make([]users.User, len(r.items))
	copy(out, r.items)
	return out, nil
}
