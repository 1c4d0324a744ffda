package planets

import "time"

type Planet struct {
	ID   int64
	Name string // natural key, única

	Climate       *string
	Population    *int64
	Diameter      *int
	OrbitalPeriod *int

	CreatedAt time.Time
	UpdatedAt time.Time
}
