package favorites

import "context"

// Repository: una fila única por (kind, user, entity). Create devuelve
// ErrConflict si el storage detecta el duplicado.
type Repository interface {
	Create(ctx context.Context, l Link) (Link, error)
	GetByID(ctx context.Context, kind Kind, id int64) (Link, error)
	Find(ctx context.Context, kind Kind, userID, entityID int64) (Link, error)
	Delete(ctx context.Context, kind Kind, id int64) error
	ListByUser(ctx context.Context, kind Kind, userID int64) ([]Link, error)
	ListAll(ctx context.Context, kind Kind) ([]Link, error)
	CountByEntity(ctx context.Context, kind Kind, entityID int64) (int, error)
}
