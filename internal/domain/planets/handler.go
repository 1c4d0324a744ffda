package planets

import (
	"errors"
	"net/http"

	"starwars-blog-api/internal/platform/httpjson"
	"starwars-blog-api/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/planets", listPlanetsHandler(svc))
	// alias histórico: el listado vive en plural y el resto en singular
	r.Get("/planets/{id}", getPlanetHandler(svc))

	r.Route("/planet", func(pr chi.Router) {
		pr.Post("/", createPlanetHandler(svc))
		pr.Get("/{id}", getPlanetHandler(svc))
		pr.Put("/{id}", updatePlanetHandler(svc))
		pr.Delete("/{id}", deletePlanetHandler(svc))
	})
}

type createPlanetRequest struct {
	Name          *string `json:"name" validate:"required,max=50"`
	Climate       *string `json:"climate" validate:"required,max=50"`
	Population    *int64  `json:"population" validate:"required"`
	Diameter      *int    `json:"diameter" validate:"required"`
	OrbitalPeriod *int    `json:"orbital_period" validate:"required"`
}

type updatePlanetRequest struct {
	Name          *string `json:"name"`
	Climate       *string `json:"climate"`
	Population    *int64  `json:"population"`
	Diameter      *int    `json:"diameter"`
	OrbitalPeriod *int    `json:"orbital_period"`
}

type Response struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Climate       *string `json:"climate"`
	Population    *int64  `json:"population"`
	Diameter      *int    `json:"diameter"`
	OrbitalPeriod *int    `json:"orbital_period"`
}

// listPlanetsHandler godoc
// @Summary Listar planetas
// @Tags planets
// @Produce json
// @Success 200 {object} httpjson.ListBody[Response]
// @Router /planets [get]
func listPlanetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := make([]Response, 0, len(items))
		for _, p := range items {
			out = append(out, ToResponse(p))
		}
		httpjson.List(w, out)
	}
}

// getPlanetHandler godoc
// @Summary Obtener un planeta por id
// @Tags planets
// @Produce json
// @Param id path int true "ID del planeta"
// @Success 200 {object} httpjson.ItemBody[Response]
// @Failure 404 {object} httpjson.ErrorBody
// @Router /planet/{id} [get]
func getPlanetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid id", err)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.Item(w, ToResponse(p))
	}
}

// createPlanetHandler godoc
// @Summary Crear planeta
// @Tags planets
// @Accept json
// @Produce json
// @Param payload body createPlanetRequest true "Datos del planeta"
// @Success 201 {object} httpjson.MsgBody
// @Failure 400 {object} httpjson.ErrorBody
// @Failure 409 {object} httpjson.ErrorBody
// @Router /planet [post]
func createPlanetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPlanetRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json", err)
			return
		}
		if err := validation.Struct(req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid input", err)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:          *req.Name,
			Climate:       req.Climate,
			Population:    req.Population,
			Diameter:      req.Diameter,
			OrbitalPeriod: req.OrbitalPeriod,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.Created(w, ToResponse(p))
	}
}

// updatePlanetHandler godoc
// @Summary Actualizar planeta (parcial)
// @Tags planets
// @Accept json
// @Produce json
// @Param id path int true "ID del planeta"
// @Param payload body updatePlanetRequest true "Campos a modificar"
// @Success 200 {object} httpjson.ItemBody[Response]
// @Failure 400 {object} httpjson.ErrorBody
// @Failure 404 {object} httpjson.ErrorBody
// @Failure 409 {object} httpjson.ErrorBody
// @Router /planet/{id} [put]
func updatePlanetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid id", err)
			return
		}

		var req updatePlanetRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json", err)
			return
		}

		p, err := svc.Update(r.Context(), id, UpdateInput(req))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.Item(w, ToResponse(p))
	}
}

// deletePlanetHandler godoc
// @Summary Borrar planeta
// @Description Rechaza con 409 si algún usuario lo tiene como favorito.
// @Tags planets
// @Produce json
// @Param id path int true "ID del planeta"
// @Success 200 {object} httpjson.MsgBody
// @Failure 404 {object} httpjson.ErrorBody
// @Failure 409 {object} httpjson.ErrorBody
// @Router /planet/{id} [delete]
func deletePlanetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid id", err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, httpjson.MsgBody{Msg: "Planet deleted successfully"})
	}
}

func ToResponse(p Planet) Response {
	return Response{
		ID:            p.ID,
		Name:          p.Name,
		Climate:       p.Climate,
		Population:    p.Population,
		Diameter:      p.Diameter,
		OrbitalPeriod: p.OrbitalPeriod,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.WriteError(w, http.StatusBadRequest, "invalid input", err)
	case errors.Is(err, ErrNotFound):
		httpjson.WriteError(w, http.StatusNotFound, "No planet found", err)
	case errors.Is(err, ErrInUse):
		httpjson.WriteError(w, http.StatusConflict, "planet is a favorite of some user", err)
	case errors.Is(err, ErrConflict):
		httpjson.WriteError(w, http.StatusConflict, "planet exists", err)
	default:
		httpjson.WriteError(w, http.StatusInternalServerError, "An error occurred", err)
	}
}
