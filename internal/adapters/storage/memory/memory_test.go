package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"starwars-blog-api/internal/domain/favorites"
	"starwars-blog-api/internal/domain/people"
	"starwars-blog-api/internal/domain/planets"
	"starwars-blog-api/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeopleRepo_SequentialIDs_AndUniqueName(t *testing.T) {
	ctx := context.Background()
	repo := NewPeopleRepo()

	luke, err := repo.Create(ctx, people.Person{Name: "Luke Skywalker"})
	require.NoError(t, err)
	leia, err := repo.Create(ctx, people.Person{Name: "Leia Organa"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), luke.ID)
	assert.Equal(t, int64(2), leia.ID)

	_, err = repo.Create(ctx, people.Person{Name: "Luke Skywalker"})
	assert.ErrorIs(t, err, people.ErrConflict)

	leia.Name = "Luke Skywalker"
	assert.ErrorIs(t, repo.Update(ctx, leia), people.ErrConflict)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Luke Skywalker", list[0].Name)

	require.NoError(t, repo.Delete(ctx, luke.ID))
	assert.ErrorIs(t, repo.Delete(ctx, luke.ID), people.ErrNotFound)
	_, err = repo.GetByID(ctx, luke.ID)
	assert.ErrorIs(t, err, people.ErrNotFound)
}

func TestUsersRepo_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUsersRepo()

	u, err := repo.Create(ctx, users.User{Name: "Luke", Email: "luke@rebels.org"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	_, err = repo.Create(ctx, users.User{Name: "Other", Email: "luke@rebels.org"})
	assert.ErrorIs(t, err, users.ErrConflict)

	got, err := repo.GetByEmail(ctx, "luke@rebels.org")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = repo.GetByID(ctx, 2)
	assert.ErrorIs(t, err, users.ErrNotFound)
}

// seededStore: user 1, persona 1 (Luke), planeta 1 (Tatooine).
func seededStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	st := NewStore()

	_, err := st.Users().Create(ctx, users.User{Name: "Luke", Email: "luke@rebels.org"})
	require.NoError(t, err)
	_, err = st.People().Create(ctx, people.Person{Name: "Luke Skywalker"})
	require.NoError(t, err)
	_, err = st.Planets().Create(ctx, planets.Planet{Name: "Tatooine"})
	require.NoError(t, err)
	return st
}

func TestFavoritesRepo_TablesAreIndependent(t *testing.T) {
	ctx := context.Background()
	repo := seededStore(t).Favorites()

	p, err := repo.Create(ctx, favorites.Link{UserID: 1, Kind: favorites.KindPeople, EntityID: 1})
	require.NoError(t, err)
	pl, err := repo.Create(ctx, favorites.Link{UserID: 1, Kind: favorites.KindPlanet, EntityID: 1})
	require.NoError(t, err)

	// cada tabla tiene su propia secuencia
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, int64(1), pl.ID)

	n, err := repo.CountByEntity(ctx, favorites.KindPeople, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, repo.Delete(ctx, favorites.KindPeople, p.ID))
	_, err = repo.Find(ctx, favorites.KindPeople, 1, 1)
	assert.ErrorIs(t, err, favorites.ErrNotFound)

	// el par quedó libre tras el borrado
	again, err := repo.Create(ctx, favorites.Link{UserID: 1, Kind: favorites.KindPeople, EntityID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.ID)
}

func TestFavoritesRepo_ConcurrentDuplicates_ExactlyOneRow(t *testing.T) {
	ctx := context.Background()
	repo := seededStore(t).Favorites()

	const workers = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, favorites.Link{UserID: 1, Kind: favorites.KindPlanet, EntityID: 1})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, favorites.ErrConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, conflicts)

	rows, err := repo.ListByUser(ctx, favorites.KindPlanet, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestFavoritesRepo_UnknownKind(t *testing.T) {
	_, err := NewStore().Favorites().ListAll(context.Background(), favorites.Kind("starships"))
	assert.ErrorIs(t, err, favorites.ErrInvalidInput)
}

func TestFavoritesRepo_Create_RequiresExistingRows(t *testing.T) {
	ctx := context.Background()
	repo := seededStore(t).Favorites()

	_, err := repo.Create(ctx, favorites.Link{UserID: 9, Kind: favorites.KindPeople, EntityID: 1})
	assert.ErrorIs(t, err, favorites.ErrUserNotFound)

	_, err = repo.Create(ctx, favorites.Link{UserID: 1, Kind: favorites.KindPeople, EntityID: 9})
	assert.ErrorIs(t, err, favorites.ErrPersonNotFound)

	_, err = repo.Create(ctx, favorites.Link{UserID: 1, Kind: favorites.KindPlanet, EntityID: 9})
	assert.ErrorIs(t, err, favorites.ErrPlanetNotFound)

	rows, err := repo.ListAll(ctx, favorites.KindPeople)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStore_DeleteReferencedRow_InUse(t *testing.T) {
	ctx := context.Background()
	st := seededStore(t)

	_, err := st.Favorites().Create(ctx, favorites.Link{UserID: 1, Kind: favorites.KindPeople, EntityID: 1})
	require.NoError(t, err)
	_, err = st.Favorites().Create(ctx, favorites.Link{UserID: 1, Kind: favorites.KindPlanet, EntityID: 1})
	require.NoError(t, err)

	assert.ErrorIs(t, st.People().Delete(ctx, 1), people.ErrInUse)
	assert.ErrorIs(t, st.Planets().Delete(ctx, 1), planets.ErrInUse)

	_, err = st.People().GetByID(ctx, 1)
	assert.NoError(t, err)
}

// deletingLookup borra la persona justo después de que AddFavorite la encontró,
// antes del insert del link.
type deletingLookup struct {
	svc *people.Service
	t   *testing.T
}

func (d deletingLookup) GetByID(ctx context.Context, id int64) (people.Person, error) {
	p, err := d.svc.GetByID(ctx, id)
	if err == nil {
		require.NoError(d.t, d.svc.Delete(ctx, id))
	}
	return p, err
}

func TestStore_PersonDeletedBetweenCheckAndInsert_NoOrphan(t *testing.T) {
	ctx := context.Background()
	st := seededStore(t)

	usersSvc := users.NewService(st.Users())
	peopleSvc := people.NewService(st.People(), favorites.PersonRefs(st.Favorites()))
	planetsSvc := planets.NewService(st.Planets(), favorites.PlanetRefs(st.Favorites()))
	favSvc := favorites.NewService(st.Favorites(), usersSvc, deletingLookup{svc: peopleSvc, t: t}, planetsSvc)

	_, err := favSvc.AddFavorite(ctx, 1, favorites.KindPeople, 1)
	assert.ErrorIs(t, err, favorites.ErrPersonNotFound)

	rows, err := st.Favorites().ListAll(ctx, favorites.KindPeople)
	require.NoError(t, err)
	assert.Empty(t, rows)

	favs, err := favSvc.ListFavorites(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, favs.People)
}

// linkingRefs agrega un favorito después de que Delete contó cero referencias.
type linkingRefs struct {
	repo favorites.Repository
	t    *testing.T
}

func (l linkingRefs) CountByPerson(ctx context.Context, personID int64) (int, error) {
	_, err := l.repo.Create(ctx, favorites.Link{UserID: 1, Kind: favorites.KindPeople, EntityID: personID})
	require.NoError(l.t, err)
	return 0, nil
}

func TestStore_FavoriteAddedBetweenCountAndDelete_InUse(t *testing.T) {
	ctx := context.Background()
	st := seededStore(t)

	peopleSvc := people.NewService(st.People(), linkingRefs{repo: st.Favorites(), t: t})

	err := peopleSvc.Delete(ctx, 1)
	assert.ErrorIs(t, err, people.ErrInUse)

	_, err = st.People().GetByID(ctx, 1)
	assert.NoError(t, err)
}
