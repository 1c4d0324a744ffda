package admin

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"starwars-blog-api/internal/domain/favorites"
	"starwars-blog-api/internal/domain/people"
	"starwars-blog-api/internal/domain/planets"
	"starwars-blog-api/internal/domain/users"
)

var (
	errBadForm          = errors.New("invalid form")
	errDeleteNotAllowed = errors.New("delete not allowed for this view")
)

type field struct {
	Name     string
	Label    string
	Type     string // atributo type del <input>
	Required bool
}

// view describe una tabla del panel. remove == nil => sin borrado.
type view struct {
	Name      string
	Title     string
	Columns   []string
	Fields    []field
	CanDelete bool

	rows   func(ctx context.Context, svc Services) ([]row, error)
	create func(ctx context.Context, svc Services, form url.Values) error
	remove func(ctx context.Context, svc Services, id int64) error
}

func defaultViews() []view {
	views := []view{
		{
			Name:    "user",
			Title:   "Users",
			Columns: []string{"id", "name", "last_name", "email"},
			Fields: []field{
				{Name: "name", Label: "Name", Type: "text", Required: true},
				{Name: "last_name", Label: "Last name", Type: "text", Required: true},
				{Name: "email", Label: "Email", Type: "email", Required: true},
				{Name: "password", Label: "Password", Type: "password", Required: true},
			},
			rows:   userRows,
			create: createUser,
		},
		{
			Name:    "people",
			Title:   "People",
			Columns: []string{"id", "name", "height", "mass", "birth_year", "homeworld"},
			Fields: []field{
				{Name: "name", Label: "Name", Type: "text", Required: true},
				{Name: "height", Label: "Height", Type: "number"},
				{Name: "mass", Label: "Mass", Type: "number"},
				{Name: "birth_year", Label: "Birth year", Type: "number"},
				{Name: "homeworld", Label: "Homeworld", Type: "text"},
			},
			rows:   peopleRows,
			create: createPerson,
			remove: func(ctx context.Context, svc Services, id int64) error { return svc.People.Delete(ctx, id) },
		},
		{
			Name:    "planets",
			Title:   "Planets",
			Columns: []string{"id", "name", "climate", "population", "diameter", "orbital_period"},
			Fields: []field{
				{Name: "name", Label: "Name", Type: "text", Required: true},
				{Name: "climate", Label: "Climate", Type: "text"},
				{Name: "population", Label: "Population", Type: "number"},
				{Name: "diameter", Label: "Diameter", Type: "number"},
				{Name: "orbital_period", Label: "Orbital period", Type: "number"},
			},
			rows:   planetRows,
			create: createPlanet,
			remove: func(ctx context.Context, svc Services, id int64) error { return svc.Planets.Delete(ctx, id) },
		},
		favoritesView(favorites.KindPeople, "favorites_people", "Favorite people", "people_id"),
		favoritesView(favorites.KindPlanet, "favorites_planets", "Favorite planets", "planets_id"),
	}

	for i := range views {
		views[i].CanDelete = views[i].remove != nil
	}
	return views
}

// favoritesView: solo user_id y la columna de la entidad.
func favoritesView(kind favorites.Kind, name, title, entityCol string) view {
	return view{
		Name:    name,
		Title:   title,
		Columns: []string{"user_id", entityCol},
		Fields: []field{
			{Name: "user_id", Label: "User id", Type: "number", Required: true},
			{Name: entityCol, Label: strings.ReplaceAll(entityCol, "_", " "), Type: "number", Required: true},
		},
		rows: func(ctx context.Context, svc Services) ([]row, error) {
			links, err := svc.Favorites.ListLinks(ctx, kind)
			if err != nil {
				return nil, err
			}
			out := make([]row, 0, len(links))
			for _, l := range links {
				out = append(out, row{ID: l.ID, Cells: []string{itoa(l.UserID), itoa(l.EntityID)}})
			}
			return out, nil
		},
		create: func(ctx context.Context, svc Services, form url.Values) error {
			userID, err := requiredID(form, "user_id")
			if err != nil {
				return err
			}
			entityID, err := requiredID(form, entityCol)
			if err != nil {
				return err
			}
			_, err = svc.Favorites.AddFavorite(ctx, userID, kind, entityID)
			return err
		},
		remove: func(ctx context.Context, svc Services, id int64) error {
			return svc.Favorites.RemoveFavorite(ctx, kind, id)
		},
	}
}

// -------------------------
// rows
// -------------------------

func userRows(ctx context.Context, svc Services) ([]row, error) {
	items, err := svc.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]row, 0, len(items))
	for _, u := range items {
		out = append(out, row{ID: u.ID, Cells: []string{itoa(u.ID), u.Name, u.LastName, u.Email}})
	}
	return out, nil
}

func peopleRows(ctx context.Context, svc Services) ([]row, error) {
	items, err := svc.People.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]row, 0, len(items))
	for _, p := range items {
		out = append(out, row{ID: p.ID, Cells: []string{
			itoa(p.ID), p.Name, intCell(p.Height), intCell(p.Mass), intCell(p.BirthYear), strCell(p.Homeworld),
		}})
	}
	return out, nil
}

func planetRows(ctx context.Context, svc Services) ([]row, error) {
	items, err := svc.Planets.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]row, 0, len(items))
	for _, p := range items {
		pop := ""
		if p.Population != nil {
			pop = itoa(*p.Population)
		}
		out = append(out, row{ID: p.ID, Cells: []string{
			itoa(p.ID), p.Name, strCell(p.Climate), pop, intCell(p.Diameter), intCell(p.OrbitalPeriod),
		}})
	}
	return out, nil
}

// -------------------------
// create
// -------------------------

// createUser: todos los campos obligatorios; el Service valida y hashea.
func createUser(ctx context.Context, svc Services, form url.Values) error {
	_, err := svc.Users.Create(ctx, users.CreateInput{
		Name:     form.Get("name"),
		LastName: form.Get("last_name"),
		Email:    form.Get("email"),
		Password: form.Get("password"),
	})
	return err
}

func createPerson(ctx context.Context, svc Services, form url.Values) error {
	height, err := optionalInt(form, "height")
	if err != nil {
		return err
	}
	mass, err := optionalInt(form, "mass")
	if err != nil {
		return err
	}
	birthYear, err := optionalInt(form, "birth_year")
	if err != nil {
		return err
	}

	_, err = svc.People.Create(ctx, people.CreateInput{
		Name:      form.Get("name"),
		Height:    height,
		Mass:      mass,
		BirthYear: birthYear,
		Homeworld: optionalString(form, "homeworld"),
	})
	return err
}

func createPlanet(ctx context.Context, svc Services, form url.Values) error {
	var population *int64
	if raw := strings.TrimSpace(form.Get("population")); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: population must be an integer", errBadForm)
		}
		population = &v
	}
	diameter, err := optionalInt(form, "diameter")
	if err != nil {
		return err
	}
	orbitalPeriod, err := optionalInt(form, "orbital_period")
	if err != nil {
		return err
	}

	_, err = svc.Planets.Create(ctx, planets.CreateInput{
		Name:          form.Get("name"),
		Climate:       optionalString(form, "climate"),
		Population:    population,
		Diameter:      diameter,
		OrbitalPeriod: orbitalPeriod,
	})
	return err
}

// -------------------------
// helpers de form
// -------------------------

func requiredID(form url.Values, name string) (int64, error) {
	raw := strings.TrimSpace(form.Get(name))
	if raw == "" {
		return 0, fmt.Errorf("%w: missing field: %s", errBadForm, name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", errBadForm, name)
	}
	return v, nil
}

func optionalInt(form url.Values, name string) (*int, error) {
	raw := strings.TrimSpace(form.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", errBadForm, name)
	}
	return &v, nil
}

func optionalString(form url.Values, name string) *string {
	raw := strings.TrimSpace(form.Get(name))
	if raw == "" {
		return nil
	}
	return &raw
}

func itoa(v int64) string { return strconv.FormatInt(v, 10) }

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func strCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
