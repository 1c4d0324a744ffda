package users

import (
	"errors"
	"net/http"
	"time"

	"starwars-blog-api/internal/platform/httpjson"
	"starwars-blog-api/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/users", listUsersHandler(svc))
	r.Post("/user", createUserHandler(svc))
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	LastName string `json:"last_name" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,max=120"`
	Password string `json:"password" validate:"required"`
}

type Response struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// listUsersHandler godoc
// @Summary Listar usuarios
// @Tags users
// @Produce json
// @Success 200 {object} httpjson.ListBody[Response]
// @Router /users [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := make([]Response, 0, len(items))
		for _, u := range items {
			out = append(out, ToResponse(u))
		}
		httpjson.List(w, out)
	}
}

// createUserHandler godoc
// @Summary Crear usuario
// @Description El email es único (se compara normalizado). La password se guarda con bcrypt.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body createUserRequest true "Datos del usuario"
// @Success 201 {object} httpjson.MsgBody
// @Failure 400 {object} httpjson.ErrorBody
// @Failure 409 {object} httpjson.ErrorBody
// @Router /user [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json", err)
			return
		}
		if err := validation.Struct(req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid input", err)
			return
		}

		u, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.Created(w, ToResponse(u))
	}
}

func ToResponse(u User) Response {
	return Response{
		ID:        u.ID,
		Name:      u.Name,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.WriteError(w, http.StatusBadRequest, "invalid input", err)
	case errors.Is(err, ErrNotFound):
		httpjson.WriteError(w, http.StatusNotFound, "No user found", err)
	case errors.Is(err, ErrConflict):
		httpjson.WriteError(w, http.StatusConflict, "user exists", err)
	default:
		httpjson.WriteError(w, http.StatusInternalServerError, "An error occurred", err)
	}
}
