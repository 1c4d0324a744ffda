package people

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"starwars-blog-api/internal/platform/validation"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("person not found")
	ErrConflict     = errors.New("person exists")

	// ErrInUse: la persona está referenciada por favoritos; no se borra.
	ErrInUse = fmt.Errorf("%w: referenced by favorites", ErrConflict)
)

// maxTextLen es el largo de las columnas VARCHAR(50) de people.
const maxTextLen = 50

type Service struct {
	repo Repository
	refs FavoriteRefs
	now  func() time.Time
}

// NewService: refs puede ser nil; en ese caso el borrado confía en la FK del storage.
func NewService(repo Repository, refs FavoriteRefs) *Service {
	return &Service{
		repo: repo,
		refs: refs,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name      string
	Height    *int
	Mass      *int
	BirthYear *int
	Homeworld *string
}

// UpdateInput: punteros para update parcial, nil = no tocar.
type UpdateInput struct {
	Name      *string
	Height    *int
	Mass      *int
	BirthYear *int
	Homeworld *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Person, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Person{}, fmt.Errorf("%w: missing field: name", ErrInvalidInput)
	}

	homeworld := trimPtr(in.Homeworld)
	if err := checkLengths(name, homeworld); err != nil {
		return Person{}, err
	}

	if _, err := s.repo.GetByName(ctx, name); err == nil {
		return Person{}, ErrConflict
	} else if !errors.Is(err, ErrNotFound) {
		return Person{}, err
	}

	now := s.now()
	p := Person{
		Name:      name,
		Height:    in.Height,
		Mass:      in.Mass,
		BirthYear: in.BirthYear,
		Homeworld: homeworld,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Person, error) {
	if id <= 0 {
		return Person{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Person, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Person, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Person{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Person{}, fmt.Errorf("%w: name must not be blank", ErrInvalidInput)
		}
		if name != p.Name {
			other, err := s.repo.GetByName(ctx, name)
			if err == nil && other.ID != p.ID {
				return Person{}, ErrConflict
			}
			if err != nil && !errors.Is(err, ErrNotFound) {
				return Person{}, err
			}
		}
		p.Name = name
	}
	if in.Height != nil {
		p.Height = in.Height
	}
	if in.Mass != nil {
		p.Mass = in.Mass
	}
	if in.BirthYear != nil {
		p.BirthYear = in.BirthYear
	}
	if in.Homeworld != nil {
		p.Homeworld = trimPtr(in.Homeworld)
	}
	if err := checkLengths(p.Name, p.Homeworld); err != nil {
		return Person{}, err
	}
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Person{}, err
	}
	return p, nil
}

// Delete rechaza el borrado si hay favoritos apuntando a la persona.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if s.refs != nil {
		n, err := s.refs.CountByPerson(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrInUse
		}
	}

	return s.repo.Delete(ctx, id)
}

// Exists se usa desde favorites para validar la referencia.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func checkLengths(name string, homeworld *string) error {
	if err := validation.MaxLen("name", name, maxTextLen); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if homeworld != nil {
		if err := validation.MaxLen("homeworld", *homeworld, maxTextLen); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
