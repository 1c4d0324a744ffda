package people

import (
	"errors"
	"net/http"

	"starwars-blog-api/internal/platform/httpjson"
	"starwars-blog-api/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/people", func(pr chi.Router) {
		pr.Get("/", listPeopleHandler(svc))
		pr.Post("/", createPersonHandler(svc))
		pr.Get("/{id}", getPersonHandler(svc))
		pr.Put("/{id}", updatePersonHandler(svc))
		pr.Delete("/{id}", deletePersonHandler(svc))
	})
}

// createPersonRequest: todos los campos son obligatorios al crear.
type createPersonRequest struct {
	Name      *string `json:"name" validate:"required,max=50"`
	Height    *int    `json:"height" validate:"required"`
	Mass      *int    `json:"mass" validate:"required"`
	BirthYear *int    `json:"birth_year" validate:"required"`
	Homeworld *string `json:"homeworld" validate:"required,max=50"`
}

type updatePersonRequest struct {
	Name      *string `json:"name"`
	Height    *int    `json:"height"`
	Mass      *int    `json:"mass"`
	BirthYear *int    `json:"birth_year"`
	Homeworld *string `json:"homeworld"`
}

// Response es la forma serializada de Person; favorites la reutiliza.
type Response struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Height    *int    `json:"height"`
	Mass      *int    `json:"mass"`
	BirthYear *int    `json:"birth_year"`
	Homeworld *string `json:"homeworld"`
}

// listPeopleHandler godoc
// @Summary Listar personajes
// @Tags people
// @Produce json
// @Success 200 {object} httpjson.ListBody[Response]
// @Failure 500 {object} httpjson.ErrorBody
// @Router /people [get]
func listPeopleHandler(svc *Service) http.HandlerFunc {
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

// getPersonHandler godoc
// @Summary Obtener un personaje por id
// @Tags people
// @Produce json
// @Param id path int true "ID del personaje"
// @Success 200 {object} httpjson.ItemBody[Response]
// @Failure 400 {object} httpjson.ErrorBody
// @Failure 404 {object} httpjson.ErrorBody
// @Router /people/{id} [get]
func getPersonHandler(svc *Service) http.HandlerFunc {
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

// createPersonHandler godoc
// @Summary Crear personaje
// @Description Todos los campos son obligatorios. El nombre es único.
// @Tags people
// @Accept json
// @Produce json
// @Param payload body createPersonRequest true "Datos del personaje"
// @Success 201 {object} httpjson.MsgBody
// @Failure 400 {object} httpjson.ErrorBody "json inválido / campo faltante"
// @Failure 409 {object} httpjson.ErrorBody "nombre duplicado"
// @Router /people [post]
func createPersonHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPersonRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json", err)
			return
		}
		if err := validation.Struct(req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid input", err)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:      *req.Name,
			Height:    req.Height,
			Mass:      req.Mass,
			BirthYear: req.BirthYear,
			Homeworld: req.Homeworld,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		httpjson.Created(w, ToResponse(p))
	}
}

// updatePersonHandler godoc
// @Summary Actualizar personaje (parcial)
// @Description Solo se modifican los campos presentes en el body.
// @Tags people
// @Accept json
// @Produce json
// @Param id path int true "ID del personaje"
// @Param payload body updatePersonRequest true "Campos a modificar"
// @Success 200 {object} httpjson.ItemBody[Response]
// @Failure 400 {object} httpjson.ErrorBody
// @Failure 404 {object} httpjson.ErrorBody
// @Failure 409 {object} httpjson.ErrorBody
// @Router /people/{id} [put]
func updatePersonHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.IDParam(r, "id")
		if err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid id", err)
			return
		}

		var req updatePersonRequest
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

// deletePersonHandler godoc
// @Summary Borrar personaje
// @Description Rechaza con 409 si algún usuario lo tiene como favorito.
// @Tags people
// @Produce json
// @Param id path int true "ID del personaje"
// @Success 200 {object} httpjson.MsgBody
// @Failure 404 {object} httpjson.ErrorBody
// @Failure 409 {object} httpjson.ErrorBody
// @Router /people/{id} [delete]
func deletePersonHandler(svc *Service) http.HandlerFunc {
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
		httpjson.WriteJSON(w, http.StatusOK, httpjson.MsgBody{Msg: "Person deleted successfully"})
	}
}

func ToResponse(p Person) Response {
	return Response{
		ID:        p.ID,
		Name:      p.Name,
		Height:    p.Height,
		Mass:      p.Mass,
		BirthYear: p.BirthYear,
		Homeworld: p.Homeworld,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.WriteError(w, http.StatusBadRequest, "invalid input", err)
	case errors.Is(err, ErrNotFound):
		httpjson.WriteError(w, http.StatusNotFound, "No person found", err)
	case errors.Is(err, ErrInUse):
		httpjson.WriteError(w, http.StatusConflict, "person is a favorite of some user", err)
	case errors.Is(err, ErrConflict):
		httpjson.WriteError(w, http.StatusConflict, "person exists", err)
	default:
		httpjson.WriteError(w, http.StatusInternalServerError, "An error occurred", err)
	}
}
