//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"starwars-blog-api/internal/domain/favorites"
	"starwars-blog-api/internal/domain/people"
	"starwars-blog-api/internal/domain/planets"
	"starwars-blog-api/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres levanta postgres:16-alpine y devuelve un *sql.DB migrado.
func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "starwars",
			"POSTGRES_PASSWORD": "starwars",
			"POSTGRES_DB":       "starwars",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://starwars:starwars@%s:%s/starwars?sslmode=disable", host, port.Port())
	db, err := Open(dsn, PoolOptions{MaxOpenConns: 4})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	applied, err := Migrate(ctx, db)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, applied)

	return db
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db := startPostgres(t)

	again, err := Migrate(context.Background(), db)
	require.NoError(t, err)
	assert.Empty(t, again)

	// 0002 eliminó la columna name de las tablas de unión
	var n int
	err = db.QueryRow(`
		SELECT count(*) FROM information_schema.columns
		WHERE table_name IN ('favorites_people', 'favorites_planets') AND column_name = 'name'
	`).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestRepos_Constraints(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	now := time.Now().UTC()

	usersRepo := NewUsersRepo(db)
	peopleRepo := NewPeopleRepo(db)
	planetsRepo := NewPlanetsRepo(db)
	favRepo := NewFavoritesRepo(db)

	u, err := usersRepo.Create(ctx, users.User{Name: "Luke", LastName: "Skywalker", Email: "luke@rebels.org", PasswordHash: "x", CreatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	_, err = usersRepo.Create(ctx, users.User{Name: "L", LastName: "S", Email: "luke@rebels.org", PasswordHash: "x", CreatedAt: now})
	assert.ErrorIs(t, err, users.ErrConflict)

	height := 172
	luke, err := peopleRepo.Create(ctx, people.Person{Name: "Luke Skywalker", Height: &height, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	got, err := peopleRepo.GetByID(ctx, luke.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Height)
	assert.Equal(t, 172, *got.Height)
	assert.Nil(t, got.Mass)

	_, err = peopleRepo.Create(ctx, people.Person{Name: "Luke Skywalker", CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, people.ErrConflict)

	tatooine, err := planetsRepo.Create(ctx, planets.Planet{Name: "Tatooine", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	link, err := favRepo.Create(ctx, favorites.Link{UserID: u.ID, Kind: favorites.KindPeople, EntityID: luke.ID, CreatedAt: now})
	require.NoError(t, err)
	_, err = favRepo.Create(ctx, favorites.Link{UserID: u.ID, Kind: favorites.KindPeople, EntityID: luke.ID, CreatedAt: now})
	assert.ErrorIs(t, err, favorites.ErrConflict)

	// FK violada: la fila que falta, no un conflicto
	_, err = favRepo.Create(ctx, favorites.Link{UserID: 99, Kind: favorites.KindPeople, EntityID: luke.ID, CreatedAt: now})
	assert.ErrorIs(t, err, favorites.ErrUserNotFound)
	_, err = favRepo.Create(ctx, favorites.Link{UserID: u.ID, Kind: favorites.KindPlanet, EntityID: 99, CreatedAt: now})
	assert.ErrorIs(t, err, favorites.ErrPlanetNotFound)

	_, err = planetsRepo.Create(ctx, planets.Planet{Name: strings.Repeat("x", 51), CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, planets.ErrInvalidInput)

	_, err = favRepo.Create(ctx, favorites.Link{UserID: u.ID, Kind: favorites.KindPlanet, EntityID: tatooine.ID, CreatedAt: now})
	require.NoError(t, err)

	// ON DELETE RESTRICT
	err = peopleRepo.Delete(ctx, luke.ID)
	assert.ErrorIs(t, err, people.ErrInUse)

	n, err := favRepo.CountByEntity(ctx, favorites.KindPeople, luke.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, favRepo.Delete(ctx, favorites.KindPeople, link.ID))
	assert.ErrorIs(t, favRepo.Delete(ctx, favorites.KindPeople, link.ID), favorites.ErrNotFound)
	require.NoError(t, peopleRepo.Delete(ctx, luke.ID))

	_, err = peopleRepo.GetByID(ctx, luke.ID)
	assert.ErrorIs(t, err, people.ErrNotFound)
}
