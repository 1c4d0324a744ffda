package postgres

import (
	"context"
	"database/sql"

	"starwars-blog-api/internal/domain/planets"
)

var planetsErrs = errSet{
	notFound: planets.ErrNotFound,
	conflict: planets.ErrConflict,
	fk:       planets.ErrInUse,
	invalid:  planets.ErrInvalidInput,
}

type PlanetsRepo struct {
	db *sql.DB
}

func NewPlanetsRepo(db *sql.DB) *PlanetsRepo {
	return &PlanetsRepo{db: db}
}

const planetColumns = `id, name, climate, population, diameter, orbital_period, created_at, updated_at`

func (r *PlanetsRepo) Create(ctx context.Context, p planets.Planet) (planets.Planet, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO planets (name, climate, population, diameter, orbital_period, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		p.Name,
		toNullString(p.Climate),
		toNullInt64(p.Population),
		toNullInt(p.Diameter),
		toNullInt(p.OrbitalPeriod),
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return planets.Planet{}, mapErr(err, planetsErrs)
	}
	return p, nil
}

func (r *PlanetsRepo) Update(ctx context.Context, p planets.Planet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE planets
		SET
			name = $2,
			climate = $3,
			population = $4,
			diameter = $5,
			orbital_period = $6,
			updated_at = $7
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		toNullString(p.Climate),
		toNullInt64(p.Population),
		toNullInt(p.Diameter),
		toNullInt(p.OrbitalPeriod),
		p.UpdatedAt,
	)
	if err != nil {
		return mapErr(err, planetsErrs)
	}
	return rowsAffected(res, planets.ErrNotFound)
}

func (r *PlanetsRepo) GetByID(ctx context.Context, id int64) (planets.Planet, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+planetColumns+` FROM planets WHERE id = $1`, id)
	return scanPlanet(row)
}

func (r *PlanetsRepo) GetByName(ctx context.Context, name string) (planets.Planet, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+planetColumns+` FROM planets WHERE name = $1`, name)
	return scanPlanet(row)
}

func (r *PlanetsRepo) List(ctx context.Context) ([]planets.Planet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+planetColumns+` FROM planets ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]planets.Planet, 0)
	for rows.Next() {
		p, err := scanPlanet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PlanetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM planets WHERE id = $1`, id)
	if err != nil {
		return mapErr(err, planetsErrs)
	}
	return rowsAffected(res, planets.ErrNotFound)
}

func scanPlanet(s scanner) (planets.Planet, error) {
	var (
		p             planets.Planet
		climate       sql.NullString
		population    sql.NullInt64
		diameter      sql.NullInt64
		orbitalPeriod sql.NullInt64
	)
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&climate,
		&population,
		&diameter,
		&orbitalPeriod,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return planets.Planet{}, mapErr(err, planetsErrs)
	}

	p.Climate = fromNullString(climate)
	p.Population = fromNullInt64(population)
	p.Diameter = fromNullInt(diameter)
	p.OrbitalPeriod = fromNullInt(orbitalPeriod)
	return p, nil
}
