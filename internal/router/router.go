package router

import (
	"database/sql"
	"fmt"
	"net/http"
	"sort"
	"strings"

	_ "starwars-blog-api/docs"
	mem "starwars-blog-api/internal/adapters/storage/memory"
	pg "starwars-blog-api/internal/adapters/storage/postgres"
	"starwars-blog-api/internal/admin"
	"starwars-blog-api/internal/domain/favorites"
	"starwars-blog-api/internal/domain/people"
	"starwars-blog-api/internal/domain/planets"
	"starwars-blog-api/internal/domain/users"
	"starwars-blog-api/internal/middleware"
	"starwars-blog-api/internal/platform/config"
	"starwars-blog-api/internal/platform/httpjson"
	"starwars-blog-api/internal/platform/logger"
	"starwars-blog-api/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Config nil => config.Default().
	Config *config.Config
	Logger logger.Logger

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB
}

func NewRouter(opts Options) (http.Handler, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.AccessLog(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.Origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader, middleware.AdminKeyHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpjson.WriteError(w, http.StatusNotFound, "not found", fmt.Errorf("no route for %s %s", r.Method, r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpjson.WriteError(w, http.StatusMethodNotAllowed, "method not allowed", fmt.Errorf("%s not allowed on %s", r.Method, r.URL.Path))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/", sitemapHandler(r))

	if cfg.Swagger.Enabled {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	var (
		usersRepo   users.Repository
		peopleRepo  people.Repository
		planetsRepo planets.Repository
		favRepo     favorites.Repository
	)

	if opts.DB != nil {
		usersRepo = pg.NewUsersRepo(opts.DB)
		peopleRepo = pg.NewPeopleRepo(opts.DB)
		planetsRepo = pg.NewPlanetsRepo(opts.DB)
		favRepo = pg.NewFavoritesRepo(opts.DB)
	} else {
		st := mem.NewStore()
		usersRepo = st.Users()
		peopleRepo = st.People()
		planetsRepo = st.Planets()
		favRepo = st.Favorites()
	}

	// Services por módulo
	usersSvc := users.NewService(usersRepo)
	peopleSvc := people.NewService(peopleRepo, favorites.PersonRefs(favRepo))
	planetsSvc := planets.NewService(planetsRepo, favorites.PlanetRefs(favRepo))
	favSvc := favorites.NewService(favRepo, usersSvc, peopleSvc, planetsSvc)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	people.RegisterRoutes(r, peopleSvc)
	planets.RegisterRoutes(r, planetsSvc)
	favorites.RegisterRoutes(r, favSvc)

	if cfg.Admin.Enabled {
		adm, err := admin.New(admin.Services{
			Users:     usersSvc,
			People:    peopleSvc,
			Planets:   planetsSvc,
			Favorites: favSvc,
		}, admin.Options{
			Title: cfg.Admin.Title,
			Key:   cfg.Admin.Key,
			Log:   log.With(map[string]any{"component": "admin"}),
		})
		if err != nil {
			return nil, err
		}
		r.Mount("/admin", adm.Routes())
	}

	return r, nil
}

type routeEntry struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// sitemapHandler lista las rutas registradas (GET /).
func sitemapHandler(root chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var out []routeEntry
		err := chi.Walk(root, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			route = strings.ReplaceAll(route, "/*/", "/")
			if len(route) > 1 {
				route = strings.TrimSuffix(route, "/")
			}
			out = append(out, routeEntry{Method: method, Path: route})
			return nil
		})
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "An error occurred", err)
			return
		}

		sort.Slice(out, func(i, j int) bool {
			if out[i].Path != out[j].Path {
				return out[i].Path < out[j].Path
			}
			return out[i].Method < out[j].Method
		})
		httpjson.List(w, out)
	}
}
