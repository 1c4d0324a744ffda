package postgres

import (
	"context"
	"database/sql"

	"starwars-blog-api/internal/domain/users"
)

var usersErrs = errSet{
	notFound: users.ErrNotFound,
	conflict: users.ErrConflict,
	invalid:  users.ErrInvalidInput,
}

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

// "user" es palabra reservada en Postgres: siempre entre comillas.
const userColumns = `id, name, last_name, email, password, created_at`

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO "user" (name, last_name, email, password, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`,
		u.Name,
		u.LastName,
		u.Email,
		u.PasswordHash,
		u.CreatedAt,
	).Scan(&u.ID)
	if err != nil {
		return users.User{}, mapErr(err, usersErrs)
	}
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM "user" WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM "user" WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM "user" ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanUser(s scanner) (users.User, error) {
	var u users.User
	if err := s.Scan(
		&u.ID,
		&u.Name,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	); err != nil {
		return users.User{}, mapErr(err, usersErrs)
	}
	return u, nil
}
