package planets

import "context"

type Repository interface {
	Create(ctx context.Context, p Planet) (Planet, error)
	Update(ctx context.Context, p Planet) error
	GetByID(ctx context.Context, id int64) (Planet, error)
	GetByName(ctx context.Context, name string) (Planet, error)
	List(ctx context.Context) ([]Planet, error)
	Delete(ctx context.Context, id int64) error
}

// FavoriteRefs evita importar favorites.
type FavoriteRefs interface {
	CountByPlanet(ctx context.Context, planetID int64) (int, error)
}
