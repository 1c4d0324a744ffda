// Package seed importa personajes y planetas desde una API con el formato
// de SWAPI (https://swapi.dev) a través de los Service de dominio.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"starwars-blog-api/internal/domain/people"
	"starwars-blog-api/internal/domain/planets"
	"starwars-blog-api/internal/platform/logger"
)

// Fetcher lo cumple *httpclient.Client.
type Fetcher interface {
	GetJSON(ctx context.Context, pathOrURL string, out any) error
}

type PeopleCreator interface {
	Create(ctx context.Context, in people.CreateInput) (people.Person, error)
}

type PlanetCreator interface {
	Create(ctx context.Context, in planets.CreateInput) (planets.Planet, error)
}

type Options struct {
	// MaxPages <= 0 => sin límite.
	MaxPages int
	Log      logger.Logger
}

type Importer struct {
	src      Fetcher
	people   PeopleCreator
	planets  PlanetCreator
	maxPages int
	log      logger.Logger
}

// Report cuenta lo creado y lo salteado (nombre ya existente) por tabla.
type Report struct {
	PlanetsCreated int
	PlanetsSkipped int
	PeopleCreated  int
	PeopleSkipped  int
}

func NewImporter(src Fetcher, pc PeopleCreator, plc PlanetCreator, opts Options) *Importer {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Importer{src: src, people: pc, planets: plc, maxPages: opts.MaxPages, log: log}
}

type page[T any] struct {
	Next    *string `json:"next"`
	Results []T     `json:"results"`
}

type swapiPlanet struct {
	URL           string `json:"url"`
	Name          string `json:"name"`
	Climate       string `json:"climate"`
	Population    string `json:"population"`
	Diameter      string `json:"diameter"`
	OrbitalPeriod string `json:"orbital_period"`
}

type swapiPerson struct {
	Name      string `json:"name"`
	Height    string `json:"height"`
	Mass      string `json:"mass"`
	BirthYear string `json:"birth_year"`
	Homeworld string `json:"homeworld"`
}

// Run importa primero planetas (para resolver homeworld por URL) y luego personajes.
func (im *Importer) Run(ctx context.Context) (Report, error) {
	var rep Report
	homeworlds := map[string]string{}

	err := walk(ctx, im, "/planets/", func(p swapiPlanet) error {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil
		}
		if p.URL != "" {
			homeworlds[p.URL] = name
		}

		_, err := im.planets.Create(ctx, planets.CreateInput{
			Name:          name,
			Climate:       text(p.Climate),
			Population:    int64Field(p.Population),
			Diameter:      intField(p.Diameter),
			OrbitalPeriod: intField(p.OrbitalPeriod),
		})
		switch {
		case errors.Is(err, planets.ErrConflict):
			rep.PlanetsSkipped++
			return nil
		case err != nil:
			return fmt.Errorf("planet %q: %w", name, err)
		}
		rep.PlanetsCreated++
		return nil
	})
	if err != nil {
		return rep, err
	}

	err = walk(ctx, im, "/people/", func(p swapiPerson) error {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil
		}

		in := people.CreateInput{
			Name:      name,
			Height:    intField(p.Height),
			Mass:      intField(p.Mass),
			BirthYear: birthYear(p.BirthYear),
		}
		if hw, ok := homeworlds[p.Homeworld]; ok {
			in.Homeworld = &hw
		}

		_, err := im.people.Create(ctx, in)
		switch {
		case errors.Is(err, people.ErrConflict):
			rep.PeopleSkipped++
			return nil
		case err != nil:
			return fmt.Errorf("person %q: %w", name, err)
		}
		rep.PeopleCreated++
		return nil
	})
	if err != nil {
		return rep, err
	}

	im.log.Info("seed finished", map[string]any{
		"planets_created": rep.PlanetsCreated,
		"planets_skipped": rep.PlanetsSkipped,
		"people_created":  rep.PeopleCreated,
		"people_skipped":  rep.PeopleSkipped,
	})
	return rep, nil
}

// walk sigue los links "next" hasta agotar páginas o llegar a maxPages.
func walk[T any](ctx context.Context, im *Importer, start string, fn func(T) error) error {
	next := start
	for n := 0; next != ""; n++ {
		if im.maxPages > 0 && n >= im.maxPages {
			im.log.Warn("seed page limit reached", map[string]any{"path": start, "pages": n})
			return nil
		}

		var pg page[T]
		if err := im.src.GetJSON(ctx, next, &pg); err != nil {
			return err
		}
		im.log.Debug("seed page fetched", map[string]any{"url": next, "items": len(pg.Results)})

		for _, item := range pg.Results {
			if err := fn(item); err != nil {
				return err
			}
		}

		next = ""
		if pg.Next != nil {
			next = *pg.Next
		}
	}
	return nil
}

// -------------------------
// parsing de campos SWAPI ("unknown", "1,358", "19BBY")
// -------------------------

func unknown(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unknown", "n/a", "none":
		return true
	}
	return false
}

func text(s string) *string {
	if unknown(s) {
		return nil
	}
	v := strings.TrimSpace(s)
	return &v
}

func int64Field(s string) *int64 {
	if unknown(s) {
		return nil
	}
	v, err := strconv.ParseInt(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func intField(s string) *int {
	if unknown(s) {
		return nil
	}
	raw := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	v := int(f)
	return &v
}

// birthYear: BBY positivo, ABY negativo; decimales se truncan.
func birthYear(s string) *int {
	if unknown(s) {
		return nil
	}
	raw := strings.ToUpper(strings.TrimSpace(s))
	sign := 1
	switch {
	case strings.HasSuffix(raw, "BBY"):
		raw = strings.TrimSuffix(raw, "BBY")
	case strings.HasSuffix(raw, "ABY"):
		raw = strings.TrimSuffix(raw, "ABY")
		sign = -1
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	v := sign * int(f)
	return &v
}
