package planets

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
	ErrNotFound     = errors.New("planet not found")
	ErrConflict     = errors.New("planet exists")

	ErrInUse = fmt.Errorf("%w: referenced by favorites", ErrConflict)
)

// maxTextLen es el largo de las columnas VARCHAR(50) de planets.
const maxTextLen = 50

type Service struct {
	repo Repository
	refs FavoriteRefs
	now  func() time.Time
}

func NewService(repo Repository, refs FavoriteRefs) *Service {
	return &Service{
		repo: repo,
		refs: refs,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name          string
	Climate       *string
	Population    *int64
	Diameter      *int
	OrbitalPeriod *int
}

type UpdateInput struct {
	Name          *string
	Climate       *string
	Population    *int64
	Diameter      *int
	OrbitalPeriod *int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Planet, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Planet{}, fmt.Errorf("%w: missing field: name", ErrInvalidInput)
	}

	climate := trimPtr(in.Climate)
	if err := checkLengths(name, climate); err != nil {
		return Planet{}, err
	}
	if err := s.ensureNameFree(ctx, name, 0); err != nil {
		return Planet{}, err
	}

	now := s.now()
	p := Planet{
		Name:          name,
		Climate:       climate,
		Population:    in.Population,
		Diameter:      in.Diameter,
		OrbitalPeriod: in.OrbitalPeriod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Planet, error) {
	if id <= 0 {
		return Planet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Planet, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Planet, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Planet{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Planet{}, fmt.Errorf("%w: name must not be blank", ErrInvalidInput)
		}
		if err := s.ensureNameFree(ctx, name, p.ID); err != nil {
			return Planet{}, err
		}
		p.Name = name
	}
	if in.Climate != nil {
		p.Climate = trimPtr(in.Climate)
	}
	if in.Population != nil {
		p.Population = in.Population
	}
	if in.Diameter != nil {
		p.Diameter = in.Diameter
	}
	if in.OrbitalPeriod != nil {
		p.OrbitalPeriod = in.OrbitalPeriod
	}
	if err := checkLengths(p.Name, p.Climate); err != nil {
		return Planet{}, err
	}
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Planet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if s.refs != nil {
		n, err := s.refs.CountByPlanet(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrInUse
		}
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// ensureNameFree: selfID > 0 permite que un planeta conserve su propio nombre.
func (s *Service) ensureNameFree(ctx context.Context, name string, selfID int64) error {
	other, err := s.repo.GetByName(ctx, name)
	switch {
	case errors.Is(err, ErrNotFound):
		return nil
	case err != nil:
		return err
	case other.ID == selfID:
		return nil
	default:
		return ErrConflict
	}
}

func checkLengths(name string, climate *string) error {
	if err := validation.MaxLen("name", name, maxTextLen); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if climate != nil {
		if err := validation.MaxLen("climate", *climate, maxTextLen); err != nil {
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
