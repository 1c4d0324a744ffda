// Package admin es el panel tabular (/admin): una tabla por entidad, un form
// de alta y borrado por fila. Todo pasa por los Service de dominio, así que
// las mismas invariantes de la API aplican acá.
package admin

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"starwars-blog-api/internal/domain/favorites"
	"starwars-blog-api/internal/domain/people"
	"starwars-blog-api/internal/domain/planets"
	"starwars-blog-api/internal/domain/users"
	"starwars-blog-api/internal/middleware"
	"starwars-blog-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templateFS embed.FS

var errUnknownView = errors.New("unknown admin view")

type Services struct {
	Users     *users.Service
	People    *people.Service
	Planets   *planets.Service
	Favorites *favorites.Service
}

type Options struct {
	Title string
	Key   string // vacío => sin chequeo
	Log   logger.Logger
}

type Handler struct {
	svc   Services
	title string
	key   string
	log   logger.Logger
	tmpl  *template.Template
	views []view
}

func New(svc Services, opts Options) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse admin templates: %w", err)
	}

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = "Admin"
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	return &Handler{
		svc:   svc,
		title: title,
		key:   opts.Key,
		log:   log,
		tmpl:  tmpl,
		views: defaultViews(),
	}, nil
}

// Routes se monta en /admin.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.AdminKey(h.key))

	r.Get("/", h.index)
	r.Get("/{view}", h.table)
	r.Post("/{view}", h.create)
	r.Post("/{view}/{id}/delete", h.delete)
	return r
}

type row struct {
	ID    int64
	Cells []string
}

type page struct {
	Title    string
	Views    []view
	View     *view
	Rows     []row
	Error    string
	KeyQuery template.URL
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, page{})
}

func (h *Handler) table(w http.ResponseWriter, r *http.Request) {
	v, ok := h.lookup(chi.URLParam(r, "view"))
	if !ok {
		h.renderError(w, r, nil, errUnknownView)
		return
	}
	h.renderTable(w, r, v, http.StatusOK, "")
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	v, ok := h.lookup(chi.URLParam(r, "view"))
	if !ok {
		h.renderError(w, r, nil, errUnknownView)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, &v, fmt.Errorf("%w: %v", errBadForm, err))
		return
	}

	if err := v.create(r.Context(), h.svc, r.PostForm); err != nil {
		h.renderError(w, r, &v, err)
		return
	}

	h.log.Info("admin create", map[string]any{
		"view":       v.Name,
		"request_id": middleware.GetRequestID(r.Context()),
	})
	http.Redirect(w, r, "/admin/"+v.Name+string(h.keyQuery(r)), http.StatusSeeOther)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	v, ok := h.lookup(chi.URLParam(r, "view"))
	if !ok {
		h.renderError(w, r, nil, errUnknownView)
		return
	}
	if v.remove == nil {
		h.renderError(w, r, &v, errDeleteNotAllowed)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.renderError(w, r, &v, fmt.Errorf("%w: id must be a positive integer", errBadForm))
		return
	}

	if err := v.remove(r.Context(), h.svc, id); err != nil {
		h.renderError(w, r, &v, err)
		return
	}

	h.log.Info("admin delete", map[string]any{
		"view":       v.Name,
		"id":         id,
		"request_id": middleware.GetRequestID(r.Context()),
	})
	http.Redirect(w, r, "/admin/"+v.Name+string(h.keyQuery(r)), http.StatusSeeOther)
}

func (h *Handler) lookup(name string) (view, bool) {
	for _, v := range h.views {
		if v.Name == name {
			return v, true
		}
	}
	return view{}, false
}

func (h *Handler) renderTable(w http.ResponseWriter, r *http.Request, v view, status int, errMsg string) {
	rows, err := v.rows(r.Context(), h.svc)
	if err != nil {
		h.log.Error("admin list failed", map[string]any{"view": v.Name, "error": err})
		status = http.StatusInternalServerError
		errMsg = err.Error()
	}
	h.render(w, r, status, page{View: &v, Rows: rows, Error: errMsg})
}

// renderError vuelve a mostrar la tabla (si hay vista) con el error arriba.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, v *view, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("admin action failed", map[string]any{"error": err, "path": r.URL.Path})
	}
	if v == nil {
		h.render(w, r, status, page{Error: err.Error()})
		return
	}
	h.renderTable(w, r, *v, status, err.Error())
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, p page) {
	p.Title = h.title
	p.Views = h.views
	p.KeyQuery = h.keyQuery(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.ExecuteTemplate(w, "layout", p); err != nil {
		h.log.Error("admin render failed", map[string]any{"error": err})
	}
}

// keyQuery propaga ?key= en links y forms; el header no sobrevive a un form HTML.
func (h *Handler) keyQuery(r *http.Request) template.URL {
	k := r.URL.Query().Get("key")
	if h.key == "" || k == "" {
		return ""
	}
	return template.URL("?" + url.Values{"key": {k}}.Encode())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errUnknownView):
		return http.StatusNotFound
	case errors.Is(err, errBadForm), errors.Is(err, errDeleteNotAllowed),
		errors.Is(err, users.ErrInvalidInput), errors.Is(err, people.ErrInvalidInput),
		errors.Is(err, planets.ErrInvalidInput), errors.Is(err, favorites.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, users.ErrNotFound), errors.Is(err, people.ErrNotFound),
		errors.Is(err, planets.ErrNotFound), errors.Is(err, favorites.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, users.ErrConflict), errors.Is(err, people.ErrConflict),
		errors.Is(err, planets.ErrConflict), errors.Is(err, favorites.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
