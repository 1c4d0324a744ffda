package postgres

import (
	"context"
	"database/sql"

	"starwars-blog-api/internal/domain/people"
)

var peopleErrs = errSet{
	notFound: people.ErrNotFound,
	conflict: people.ErrConflict,
	fk:       people.ErrInUse,
	invalid:  people.ErrInvalidInput,
}

type PeopleRepo struct {
	db *sql.DB
}

func NewPeopleRepo(db *sql.DB) *PeopleRepo {
	return &PeopleRepo{db: db}
}

const peopleColumns = `id, name, height, mass, birth_year, homeworld, created_at, updated_at`

func (r *PeopleRepo) Create(ctx context.Context, p people.Person) (people.Person, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO people (name, height, mass, birth_year, homeworld, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		p.Name,
		toNullInt(p.Height),
		toNullInt(p.Mass),
		toNullInt(p.BirthYear),
		toNullString(p.Homeworld),
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return people.Person{}, mapErr(err, peopleErrs)
	}
	return p, nil
}

func (r *PeopleRepo) Update(ctx context.Context, p people.Person) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE people
		SET
			name = $2,
			height = $3,
			mass = $4,
			birth_year = $5,
			homeworld = $6,
			updated_at = $7
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		toNullInt(p.Height),
		toNullInt(p.Mass),
		toNullInt(p.BirthYear),
		toNullString(p.Homeworld),
		p.UpdatedAt,
	)
	if err != nil {
		return mapErr(err, peopleErrs)
	}
	return rowsAffected(res, people.ErrNotFound)
}

func (r *PeopleRepo) GetByID(ctx context.Context, id int64) (people.Person, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+peopleColumns+` FROM people WHERE id = $1`, id)
	return scanPerson(row)
}

func (r *PeopleRepo) GetByName(ctx context.Context, name string) (people.Person, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+peopleColumns+` FROM people WHERE name = $1`, name)
	return scanPerson(row)
}

func (r *PeopleRepo) List(ctx context.Context) ([]people.Person, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+peopleColumns+` FROM people ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]people.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete: la FK ON DELETE RESTRICT de favorites_people devuelve 23503 => ErrConflict.
func (r *PeopleRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM people WHERE id = $1`, id)
	if err != nil {
		return mapErr(err, peopleErrs)
	}
	return rowsAffected(res, people.ErrNotFound)
}

func scanPerson(s scanner) (people.Person, error) {
	var (
		p                       people.Person
		height, mass, birthYear sql.NullInt64
		homeworld               sql.NullString
	)
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&height,
		&mass,
		&birthYear,
		&homeworld,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return people.Person{}, mapErr(err, peopleErrs)
	}

	p.Height = fromNullInt(height)
	p.Mass = fromNullInt(mass)
	p.BirthYear = fromNullInt(birthYear)
	p.Homeworld = fromNullString(homeworld)
	return p, nil
}
