package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"starwars-blog-api/internal/platform/validation"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
	ErrConflict     = errors.New("user exists")
)

// Largos de las columnas de "user".
const (
	maxNameLen  = 50
	maxEmailLen = 120
)

type Service struct {
	repo Repository
	now  func() time.Time

	hashCost int
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		now:      time.Now,
		hashCost: bcrypt.DefaultCost,
	}
}

type CreateInput struct {
	Name     string
	LastName string
	Email    string
	Password string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	name := strings.TrimSpace(in.Name)
	lastName := strings.TrimSpace(in.LastName)
	email := NormalizeEmail(in.Email)

	switch {
	case name == "":
		return User{}, fmt.Errorf("%w: missing field: name", ErrInvalidInput)
	case lastName == "":
		return User{}, fmt.Errorf("%w: missing field: last_name", ErrInvalidInput)
	case email == "":
		return User{}, fmt.Errorf("%w: missing field: email", ErrInvalidInput)
	case in.Password == "":
		return User{}, fmt.Errorf("%w: missing field: password", ErrInvalidInput)
	}

	for _, f := range []struct {
		field, value string
		max          int
	}{
		{"name", name, maxNameLen},
		{"last_name", lastName, maxNameLen},
		{"email", email, maxEmailLen},
	} {
		if err := validation.MaxLen(f.field, f.value, f.max); err != nil {
			return User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrConflict
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		// bcrypt rechaza passwords de más de 72 bytes
		return User{}, fmt.Errorf("%w: password: %v", ErrInvalidInput, err)
	}

	u := User{
		Name:         name,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	return s.repo.Create(ctx, u)
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	if id <= 0 {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// CheckPassword compara contra el hash guardado.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
