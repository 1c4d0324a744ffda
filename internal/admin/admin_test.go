package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	mem "starwars-blog-api/internal/adapters/storage/memory"
	"starwars-blog-api/internal/domain/favorites"
	"starwars-blog-api/internal/domain/people"
	"starwars-blog-api/internal/domain/planets"
	"starwars-blog-api/internal/domain/users"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdmin(t *testing.T, key string) (http.Handler, Services) {
	t.Helper()

	st := mem.NewStore()
	favRepo := st.Favorites()
	usersSvc := users.NewService(st.Users())
	peopleSvc := people.NewService(st.People(), favorites.PersonRefs(favRepo))
	planetsSvc := planets.NewService(st.Planets(), favorites.PlanetRefs(favRepo))
	svc := Services{
		Users:     usersSvc,
		People:    peopleSvc,
		Planets:   planetsSvc,
		Favorites: favorites.NewService(favRepo, usersSvc, peopleSvc, planetsSvc),
	}

	h, err := New(svc, Options{Title: "Star Wars Admin", Key: key})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Mount("/admin", h.Routes())
	return r, svc
}

func postForm(h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestAdmin_IndexListsViews(t *testing.T) {
	h, _ := newTestAdmin(t, "")

	rec := get(h, "/admin/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Star Wars Admin")
	for _, v := range []string{"user", "people", "planets", "favorites_people", "favorites_planets"} {
		assert.Contains(t, body, `/admin/`+v)
	}
}

func TestAdmin_CreateAndDeletePerson(t *testing.T) {
	h, svc := newTestAdmin(t, "")

	rec := postForm(h, "/admin/people", url.Values{"name": {"Luke Skywalker"}, "height": {"172"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/people", rec.Header().Get("Location"))

	rec = get(h, "/admin/people")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Luke Skywalker")
	assert.Contains(t, rec.Body.String(), "172")

	// nombre duplicado => 409, la tabla se vuelve a mostrar con el error
	rec = postForm(h, "/admin/people", url.Values{"name": {"Luke Skywalker"}})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `class="error"`)

	rec = postForm(h, "/admin/people", url.Values{"name": {"Leia"}, "mass": {"heavy"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postForm(h, "/admin/people/1/delete", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	items, err := svc.People.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAdmin_UserFormRequiresAllFields_NoDelete(t *testing.T) {
	h, svc := newTestAdmin(t, "")

	rec := postForm(h, "/admin/user", url.Values{"name": {"Luke"}, "email": {"luke@rebels.org"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing field: last_name")

	rec = postForm(h, "/admin/user", url.Values{
		"name": {"Luke"}, "last_name": {"Skywalker"}, "email": {"luke@rebels.org"}, "password": {"force123"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = get(h, "/admin/user")
	assert.Contains(t, rec.Body.String(), "luke@rebels.org")
	assert.NotContains(t, rec.Body.String(), "force123")
	assert.NotContains(t, rec.Body.String(), ">delete<")

	rec = postForm(h, "/admin/user/1/delete", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	list, _ := svc.Users.List(context.Background())
	assert.Len(t, list, 1)
}

func TestAdmin_FavoritesView_ShowsOnlyIDs_AndRestrictsDelete(t *testing.T) {
	h, svc := newTestAdmin(t, "")
	ctx := context.Background()

	_, err := svc.Users.Create(ctx, users.CreateInput{Name: "Luke", LastName: "Skywalker", Email: "luke@rebels.org", Password: "x"})
	require.NoError(t, err)
	_, err = svc.Planets.Create(ctx, planets.CreateInput{Name: "Tatooine"})
	require.NoError(t, err)

	rec := postForm(h, "/admin/favorites_planets", url.Values{"user_id": {"1"}, "planets_id": {"1"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = get(h, "/admin/favorites_planets")
	body := rec.Body.String()
	assert.Contains(t, body, "<th>user_id</th>")
	assert.Contains(t, body, "<th>planets_id</th>")

	// el planeta está referenciado: no se puede borrar
	rec = postForm(h, "/admin/planets/1/delete", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = postForm(h, "/admin/favorites_planets", url.Values{"user_id": {"9"}, "planets_id": {"1"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdmin_UnknownView_404(t *testing.T) {
	h, _ := newTestAdmin(t, "")
	assert.Equal(t, http.StatusNotFound, get(h, "/admin/starships").Code)
}

func TestAdmin_KeyRequired_AndPropagated(t *testing.T) {
	h, _ := newTestAdmin(t, "s3cret")

	assert.Equal(t, http.StatusUnauthorized, get(h, "/admin/").Code)

	rec := get(h, "/admin/people?key=s3cret")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/admin/people?key=s3cret"`)

	rec = postForm(h, "/admin/people?key=s3cret", url.Values{"name": {"Han Solo"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/people?key=s3cret", rec.Header().Get("Location"))
}
