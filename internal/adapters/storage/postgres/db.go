package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Códigos SQLSTATE que se traducen a sentinels del dominio.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgStringTooLong       = "22001"
)

// errSet son los sentinels de un dominio para mapErr.
type errSet struct {
	notFound error
	conflict error // 23505
	fk       error // 23503; nil => conflict
	invalid  error // 22001, valor más largo que la columna
}

type PoolOptions struct {
	MaxOpenConns int
	MaxIdleConns int
}

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string, opts PoolOptions) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	if opts.MaxOpenConns <= 0 {
		opts.MaxOpenConns = 10
	}
	if opts.MaxIdleConns <= 0 {
		opts.MaxIdleConns = 5
	}
	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// mapErr traduce errores del driver a los sentinels del dominio.
func mapErr(err error, set errSet) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return set.notFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s", set.conflict, pgErr.ConstraintName)
	case pgForeignKeyViolation:
		if set.fk != nil {
			return fmt.Errorf("%w: %s", set.fk, pgErr.ConstraintName)
		}
		return fmt.Errorf("%w: %s", set.conflict, pgErr.ConstraintName)
	case pgStringTooLong:
		if set.invalid != nil {
			return fmt.Errorf("%w: %s", set.invalid, pgErr.Message)
		}
	}
	return err
}

// rowsAffected: 0 filas => notFound.
func rowsAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
