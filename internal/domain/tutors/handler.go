package tutors

import (
	"net/http"

	"vet-clinic-records/internal/platform/httpx"
	"vet-clinic-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registra rutas planas (sin r.Route) para que otros módulos
// puedan colgar subrecursos como /tutor/{id}/pacientes.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/tutor", createTutorHandler(svc, log))
	r.Get("/tutor", listTutorsHandler(svc, log))
	r.Get("/tutor/{id}", getTutorHandler(svc, log))
	r.Put("/tutor/{id}", updateTutorHandler(svc, log))
}

// createTutorRequest es el cuerpo para registrar un tutor.
type createTutorRequest struct {
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// updateTutorRequest: campos ausentes no se modifican.
type updateTutorRequest struct {
	Nombre    *string `json:"nombre"`
	Email     *string `json:"email"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

type tutorResponse struct {
	IDTutor   string `json:"idTutor"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// createTutorHandler godoc
// @Summary Crear tutor
// @Description Registra un tutor. nombre, email y telefono son obligatorios.
// @Tags tutor
// @Accept json
// @Produce json
// @Param payload body createTutorRequest true "Datos del tutor"
// @Success 201 {object} httpx.Envelope
// @Failure 400 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /tutor [post]
func createTutorHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTutorRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Error(w, r, log, err)
			return
		}

		t, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Nombre,
			Email:   req.Email,
			Phone:   req.Telefono,
			Address: req.Direccion,
		})
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}

		httpx.OK(w, http.StatusCreated, "Tutor creado exitosamente", toTutorResponse(t))
	}
}

// listTutorsHandler godoc
// @Summary Listar tutores
// @Description Devuelve todos los tutores ordenados por nombre.
// @Tags tutor
// @Produce json
// @Success 200 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /tutor [get]
func listTutorsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}

		out := make([]tutorResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTutorResponse(t))
		}
		httpx.List(w, out)
	}
}

// getTutorHandler godoc
// @Summary Obtener tutor
// @Tags tutor
// @Produce json
// @Param id path string true "ID del tutor"
// @Success 200 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /tutor/{id} [get]
func getTutorHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.OK(w, http.StatusOK, "", toTutorResponse(t))
	}
}

// updateTutorHandler godoc
// @Summary Actualizar tutor
// @Description Sobrescribe los campos enviados; los ausentes se mantienen.
// @Tags tutor
// @Accept json
// @Produce json
// @Param id path string true "ID del tutor"
// @Param payload body updateTutorRequest true "Campos a modificar"
// @Success 200 {object} httpx.Envelope
// @Failure 400 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /tutor/{id} [put]
func updateTutorHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateTutorRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Error(w, r, log, err)
			return
		}

		t, err := svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			Name:    req.Nombre,
			Email:   req.Email,
			Phone:   req.Telefono,
			Address: req.Direccion,
		})
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.OK(w, http.StatusOK, "Tutor actualizado exitosamente", toTutorResponse(t))
	}
}

func toTutorResponse(t Tutor) tutorResponse {
	return tutorResponse{
		IDTutor:   t.ID,
		Nombre:    t.Name,
		Email:     t.Email,
		Telefono:  t.Phone,
		Direccion: t.Address,
	}
}
