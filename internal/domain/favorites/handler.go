package favorites

import (
	"errors"
	"net/http"
	"time"

	"starwars-blog-api/internal/domain/people"
	"starwars-blog-api/internal/domain/planets"
	"starwars-blog-api/internal/platform/httpjson"
	"starwars-blog-api/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/user/{id}/favorites", listFavoritesHandler(svc))

	r.Post("/favorite/people/{people_id}", addFavoriteHandler(svc, KindPeople, "people_id"))
	r.Post("/favorite/planet/{planet_id}", addFavoriteHandler(svc, KindPlanet, "planet_id"))

	r.Delete("/favorites/people/{id}", removeFavoriteHandler(svc, KindPeople))
	r.Delete("/favorites/planet/{id}", removeFavoriteHandler(svc, KindPlanet))
}

type addFavoriteRequest struct {
	UserID *int64 `json:"user_id" validate:"required"`
}

type favoritePersonResponse struct {
	FavoriteID int64 `json:"favorite_id"`
	people.Response
}

type favoritePlanetResponse struct {
	FavoriteID int64 `json:"favorite_id"`
	planets.Response
}

type favoritesResponse struct {
	People  []favoritePersonResponse `json:"favorite_people"`
	Planets []favoritePlanetResponse `json:"favorite_planets"`
}

// linkResponse: PeopleID o PlanetsID según la tabla.
type linkResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PeopleID  int64     `json:"people_id,omitempty"`
	PlanetsID int64     `json:"planets_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// listFavoritesHandler godoc
// @Summary Favoritos de un usuario
// @Description Personajes y planetas expandidos, en orden de inserción. Cada uno trae su favorite_id.
// @Tags favorites
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {object} favoritesResponse
// @Failure 404 {object} httpjson.ErrorBody
// @Router /user/{id}/favorites [get]
func listFavoritesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid id", err)
			return
		}

		favs, err := svc.ListFavorites(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := favoritesResponse{
			People:  make([]favoritePersonResponse, 0, len(favs.People)),
			Planets: make([]favoritePlanetResponse, 0, len(favs.Planets)),
		}
		for _, f := range favs.People {
			out.People = append(out.People, favoritePersonResponse{FavoriteID: f.LinkID, Response: people.ToResponse(f.Person)})
		}
		for _, f := range favs.Planets {
			out.Planets = append(out.Planets, favoritePlanetResponse{FavoriteID: f.LinkID, Response: planets.ToResponse(f.Planet)})
		}
		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}

// addFavoriteHandler godoc
// @Summary Agregar favorito
// @Description POST /favorite/people/{people_id} o /favorite/planet/{planet_id}
// @Tags favorites
// @Accept json
// @Produce json
// @Param payload body addFavoriteRequest true "Usuario dueño del favorito"
// @Success 201 {object} httpjson.MsgBody
// @Failure 400 {object} httpjson.ErrorBody
// @Failure 404 {object} httpjson.ErrorBody
// @Failure 409 {object} httpjson.ErrorBody
// @Router /favorite/people/{people_id} [post]
// @Router /favorite/planet/{planet_id} [post]
func addFavoriteHandler(svc *Service, kind Kind, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entityID, err := httpjson.IDParam(r, param)
		if err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid id", err)
			return
		}

		var req addFavoriteRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json", err)
			return
		}
		if err := validation.Struct(req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid input", err)
			return
		}

		l, err := svc.AddFavorite(r.Context(), *req.UserID, kind, entityID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.Created(w, toLinkResponse(l))
	}
}

// removeFavoriteHandler godoc
// @Summary Quitar favorito por id de link
// @Tags favorites
// @Produce json
// @Param id path int true "ID del link (favorite_id)"
// @Success 200 {object} httpjson.MsgBody
// @Failure 404 {object} httpjson.ErrorBody
// @Router /favorites/people/{id} [delete]
// @Router /favorites/planet/{id} [delete]
func removeFavoriteHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		linkID, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid id", err)
			return
		}

		if err := svc.RemoveFavorite(r.Context(), kind, linkID); err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, httpjson.MsgBody{Msg: "Favorite " + string(kind) + " deleted successfully"})
	}
}

func toLinkResponse(l Link) linkResponse {
	out := linkResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		CreatedAt: l.CreatedAt.UTC(),
	}
	if l.Kind == KindPeople {
		out.PeopleID = l.EntityID
	} else {
		out.PlanetsID = l.EntityID
	}
	return out
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.WriteError(w, http.StatusBadRequest, "invalid input", err)
	case errors.Is(err, ErrNotFound):
		httpjson.WriteError(w, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, ErrConflict):
		httpjson.WriteError(w, http.StatusConflict, "favorite exists", err)
	default:
		httpjson.WriteError(w, http.StatusInternalServerError, "An error occurred", err)
	}
}
