package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"starwars-blog-api/internal/domain/favorites"

	"github.com/jackc/pgx/v5/pgconn"
)

var favoritesErrs = errSet{
	notFound: favorites.ErrNotFound,
	conflict: favorites.ErrConflict,
	fk:       favorites.ErrNotFound,
	invalid:  favorites.ErrInvalidInput,
}

// linkErrs: en el insert de un link la FK dice cuál fila falta
// (favorites_people_user_id_fkey vs favorites_people_people_id_fkey).
func linkErrs(kind favorites.Kind, constraint string) errSet {
	set := favoritesErrs
	if strings.HasSuffix(constraint, "_user_id_fkey") {
		set.fk = favorites.ErrUserNotFound
	} else {
		set.fk = kind.EntityNotFound()
	}
	return set
}

type FavoritesRepo struct {
	db *sql.DB
}

func NewFavoritesRepo(db *sql.DB) *FavoritesRepo {
	return &FavoritesRepo{db: db}
}

// joinTable devuelve tabla y columna de la entidad para cada Kind.
// Los nombres son constantes; nunca vienen del request.
func joinTable(kind favorites.Kind) (table, column string, err error) {
	switch kind {
	case favorites.KindPeople:
		return "favorites_people", "people_id", nil
	case favorites.KindPlanet:
		return "favorites_planets", "planets_id", nil
	default:
		return "", "", fmt.Errorf("%w: unknown kind %q", favorites.ErrInvalidInput, kind)
	}
}

func (r *FavoritesRepo) Create(ctx context.Context, l favorites.Link) (favorites.Link, error) {
	table, column, err := joinTable(l.Kind)
	if err != nil {
		return favorites.Link{}, err
	}

	// 23505 (par duplicado) => ErrConflict; 23503 (user/entidad borrado
	// entre el chequeo y el insert) => NotFound de la fila que falta.
	err = r.db.QueryRowContext(ctx,
		`INSERT INTO `+table+` (user_id, `+column+`, created_at) VALUES ($1,$2,$3) RETURNING id`,
		l.UserID, l.EntityID, l.CreatedAt,
	).Scan(&l.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return favorites.Link{}, mapErr(err, linkErrs(l.Kind, pgErr.ConstraintName))
		}
		return favorites.Link{}, mapErr(err, favoritesErrs)
	}
	return l, nil
}

func (r *FavoritesRepo) GetByID(ctx context.Context, kind favorites.Kind, id int64) (favorites.Link, error) {
	table, column, err := joinTable(kind)
	if err != nil {
		return favorites.Link{}, err
	}
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, `+column+`, created_at FROM `+table+` WHERE id = $1`, id)
	return scanLink(row, kind)
}

func (r *FavoritesRepo) Find(ctx context.Context, kind favorites.Kind, userID, entityID int64) (favorites.Link, error) {
	table, column, err := joinTable(kind)
	if err != nil {
		return favorites.Link{}, err
	}
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, `+column+`, created_at FROM `+table+` WHERE user_id = $1 AND `+column+` = $2`,
		userID, entityID)
	return scanLink(row, kind)
}

func (r *FavoritesRepo) Delete(ctx context.Context, kind favorites.Kind, id int64) error {
	table, _, err := joinTable(kind)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return rowsAffected(res, favorites.ErrNotFound)
}

// ListByUser: orden de inserción (id asc).
func (r *FavoritesRepo) ListByUser(ctx context.Context, kind favorites.Kind, userID int64) ([]favorites.Link, error) {
	table, column, err := joinTable(kind)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, `+column+`, created_at FROM `+table+` WHERE user_id = $1 ORDER BY id ASC`, userID)
	if err != nil {
		return nil, err
	}
	return collectLinks(rows, kind)
}

func (r *FavoritesRepo) ListAll(ctx context.Context, kind favorites.Kind) ([]favorites.Link, error) {
	table, column, err := joinTable(kind)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, `+column+`, created_at FROM `+table+` ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return collectLinks(rows, kind)
}

func (r *FavoritesRepo) CountByEntity(ctx context.Context, kind favorites.Kind, entityID int64) (int, error) {
	table, column, err := joinTable(kind)
	if err != nil {
		return 0, err
	}
	var n int
	err = r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM `+table+` WHERE `+column+` = $1`, entityID).Scan(&n)
	return n, err
}

func scanLink(s scanner, kind favorites.Kind) (favorites.Link, error) {
	l := favorites.Link{Kind: kind}
	if err := s.Scan(&l.ID, &l.UserID, &l.EntityID, &l.CreatedAt); err != nil {
		return favorites.Link{}, mapErr(err, favoritesErrs)
	}
	return l, nil
}

func collectLinks(rows *sql.Rows, kind favorites.Kind) ([]favorites.Link, error) {
	defer rows.Close()

	out := make([]favorites.Link, 0)
	for rows.Next() {
		l, err := scanLink(rows, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
