package people

import "context"

// Repository: las implementaciones devuelven ErrNotFound / ErrConflict
// de este paquete (ErrConflict también ante violaciones de unicidad o FK).
type Repository interface {
	Create(ctx context.Context, p Person) (Person, error)
	Update(ctx context.Context, p Person) error
	GetByID(ctx context.Context, id int64) (Person, error)
	GetByName(ctx context.Context, name string) (Person, error)
	List(ctx context.Context) ([]Person, error)
	Delete(ctx context.Context, id int64) error
}

// FavoriteRefs cuenta links de favoritos que apuntan a una persona.
// Se define acá para no importar favorites (rompe ciclos).
type FavoriteRefs interface {
	CountByPerson(ctx context.Context, personID int64) (int, error)
}
