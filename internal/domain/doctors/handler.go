package doctors

import (
	"net/http"

	"vet-clinic-records/internal/platform/httpx"
	"vet-clinic-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/medico", createDoctorHandler(svc, log))
	r.Get("/medico", listDoctorsHandler(svc, log))
	r.Get("/medico/{id}", getDoctorHandler(svc, log))
	r.Put("/medico/{id}", updateDoctorHandler(svc, log))
	r.Patch("/medico/{id}/cambiarEstado", toggleStatusHandler(svc, log))
}

type createDoctorRequest struct {
	Nombre       string `json:"nombre"`
	Especialidad string `json:"especialidad"`
	Estado       string `json:"estado"`
}

type updateDoctorRequest struct {
	Nombre       *string `json:"nombre"`
	Especialidad *string `json:"especialidad"`
	Estado       *string `json:"estado"`
}

type doctorResponse struct {
	IDMedico     string `json:"idMedico"`
	Nombre       string `json:"nombre"`
	Especialidad string `json:"especialidad"`
	Estado       string `json:"estado"`
}

// createDoctorHandler godoc
// @Summary Crear médico
// @Description Registra un médico. estado es opcional (ACTIVO por defecto).
// @Tags medico
// @Accept json
// @Produce json
// @Param payload body createDoctorRequest true "Datos del médico"
// @Success 201 {object} httpx.Envelope
// @Failure 400 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /medico [post]
func createDoctorHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDoctorRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Error(w, r, log, err)
			return
		}

		d, err := svc.Create(r.Context(), CreateInput{
			Name:      req.Nombre,
			Specialty: req.Especialidad,
			Status:    req.Estado,
		})
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.OK(w, http.StatusCreated, "Médico creado exitosamente", toDoctorResponse(d))
	}
}

// listDoctorsHandler godoc
// @Summary Listar médicos
// @Tags medico
// @Produce json
// @Success 200 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /medico [get]
func listDoctorsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		out := make([]doctorResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDoctorResponse(d))
		}
		httpx.List(w, out)
	}
}

// getDoctorHandler godoc
// @Summary Obtener médico
// @Tags medico
// @Produce json
// @Param id path string true "ID del médico"
// @Success 200 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /medico/{id} [get]
func getDoctorHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.OK(w, http.StatusOK, "", toDoctorResponse(d))
	}
}

// updateDoctorHandler godoc
// @Summary Actualizar médico
// @Tags medico
// @Accept json
// @Produce json
// @Param id path string true "ID del médico"
// @Param payload body updateDoctorRequest true "Campos a modificar"
// @Success 200 {object} httpx.Envelope
// @Failure 400 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /medico/{id} [put]
func updateDoctorHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateDoctorRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Error(w, r, log, err)
			return
		}

		d, err := svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			Name:      req.Nombre,
			Specialty: req.Especialidad,
			Status:    req.Estado,
		})
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.OK(w, http.StatusOK, "Médico actualizado exitosamente", toDoctorResponse(d))
	}
}

// toggleStatusHandler godoc
// @Summary Cambiar estado del médico
// @Description Alterna ACTIVO/INACTIVO.
// @Tags medico
// @Produce json
// @Param id path string true "ID del médico"
// @Success 200 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /medico/{id}/cambiarEstado [patch]
func toggleStatusHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.ToggleStatus(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.OK(w, http.StatusOK, "Estado actualizado a "+string(d.Status), toDoctorResponse(d))
	}
}

func toDoctorResponse(d Doctor) doctorResponse {
	return doctorResponse{
		IDMedico:     d.ID,
		Nombre:       d.Name,
		Especialidad: d.Specialty,
		Estado:       string(d.Status),
	}
}
