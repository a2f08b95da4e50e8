package patients

import (
	"net/http"

	"vet-clinic-records/internal/platform/httpx"
	"vet-clinic-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/paciente", createPatientHandler(svc, log))
	r.Get("/paciente", listPatientsHandler(svc, log))
	r.Get("/paciente/{id}", getPatientHandler(svc, log))
	r.Put("/paciente/{id}", updatePatientHandler(svc, log))

	// Vive acá y no en tutores: tutores no conoce a pacientes.
	r.Get("/tutor/{id}/pacientes", listByTutorHandler(svc, log))
}

type createPatientRequest struct {
	IDTutor string `json:"idTutor"`
	Nombre  string `json:"nombre"`
	Especie string `json:"especie"`
	Raza    string `json:"raza"`
	Sexo    string `json:"sexo"`
}

type updatePatientRequest struct {
	IDTutor *string `json:"idTutor"`
	Nombre  *string `json:"nombre"`
	Especie *string `json:"especie"`
	Raza    *string `json:"raza"`
	Sexo    *string `json:"sexo"`
}

type patientResponse struct {
	IDPaciente string `json:"idPaciente"`
	IDTutor    string `json:"idTutor"`
	Nombre     string `json:"nombre"`
	Especie    string `json:"especie"`
	Raza       string `json:"raza"`
	Sexo       string `json:"sexo"`
}

// tutorPatientResponse es la proyección reducida de /tutor/{id}/pacientes.
type tutorPatientResponse struct {
	IDPaciente string `json:"idPaciente"`
	Nombre     string `json:"nombre"`
	Sexo       string `json:"sexo"`
	Raza       string `json:"raza"`
}

// createPatientHandler godoc
// @Summary Crear paciente
// @Description Registra un paciente. El tutor debe existir.
// @Tags paciente
// @Accept json
// @Produce json
// @Param payload body createPatientRequest true "Datos del paciente"
// @Success 201 {object} httpx.Envelope
// @Failure 400 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /paciente [post]
func createPatientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPatientRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Error(w, r, log, err)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			TutorID: req.IDTutor,
			Name:    req.Nombre,
			Species: req.Especie,
			Breed:   req.Raza,
			Sex:     req.Sexo,
		})
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.OK(w, http.StatusCreated, "Paciente creado exitosamente", toPatientResponse(p))
	}
}

// listPatientsHandler godoc
// @Summary Listar pacientes
// @Tags paciente
// @Produce json
// @Success 200 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /paciente [get]
func listPatientsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		out := make([]patientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPatientResponse(p))
		}
		httpx.List(w, out)
	}
}

// getPatientHandler godoc
// @Summary Obtener paciente
// @Tags paciente
// @Produce json
// @Param id path string true "ID del paciente"
// @Success 200 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /paciente/{id} [get]
func getPatientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.OK(w, http.StatusOK, "", toPatientResponse(p))
	}
}

// updatePatientHandler godoc
// @Summary Actualizar paciente
// @Description Sobrescribe los campos enviados. Si cambia idTutor, el nuevo tutor debe existir.
// @Tags paciente
// @Accept json
// @Produce json
// @Param id path string true "ID del paciente"
// @Param payload body updatePatientRequest true "Campos a modificar"
// @Success 200 {object} httpx.Envelope
// @Failure 400 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /paciente/{id} [put]
func updatePatientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePatientRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Error(w, r, log, err)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			TutorID: req.IDTutor,
			Name:    req.Nombre,
			Species: req.Especie,
			Breed:   req.Raza,
			Sex:     req.Sexo,
		})
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.OK(w, http.StatusOK, "Paciente actualizado exitosamente", toPatientResponse(p))
	}
}

// listByTutorHandler godoc
// @Summary Pacientes de un tutor
// @Description Devuelve idPaciente, nombre, sexo y raza de cada paciente del tutor.
// @Tags tutor
// @Produce json
// @Param id path string true "ID del tutor"
// @Success 200 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /tutor/{id}/pacientes [get]
func listByTutorHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByTutor(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		out := make([]tutorPatientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, tutorPatientResponse{
				IDPaciente: p.ID,
				Nombre:     p.Name,
				Sexo:       p.Sex,
				Raza:       p.Breed,
			})
		}
		httpx.List(w, out)
	}
}

func toPatientResponse(p Patient) patientResponse {
	return patientResponse{
		IDPaciente: p.ID,
		IDTutor:    p.TutorID,
		Nombre:     p.Name,
		Especie:    p.Species,
		Raza:       p.Breed,
		Sexo:       p.Sex,
	}
}
