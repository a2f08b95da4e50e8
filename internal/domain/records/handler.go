package records

import (
	"net/http"
	"time"

	"vet-clinic-records/internal/platform/httpx"
	"vet-clinic-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/paciente/{id}/historial", historyHandler(svc, log))
	r.Get("/paciente/{id}/fichaClinica", sheetHandler(svc, log))
	r.Post("/paciente/{id}/fichaClinica", createRecordHandler(svc, log))
	r.Get("/paciente/{id}/vacunas", vaccinesHandler(svc, log))
	r.Get("/procedimientos/ranking", rankingHandler(svc, log))
}

type assignedDoctorDTO struct {
	IDMedico     string `json:"idMedico"`
	Nombre       string `json:"nombre,omitempty"`
	Especialidad string `json:"especialidad,omitempty"`
}

type procedureRequest struct {
	Procedimiento    string              `json:"procedimiento"`
	Costo            float64             `json:"costo"`
	Medicamentos     []string            `json:"medicamentos"`
	MedicosAsignados []assignedDoctorDTO `json:"medicosAsignados"`
}

type createRecordRequest struct {
	FechaHora      *time.Time         `json:"fechaHora"`
	CostoConsulta  float64            `json:"costoConsulta"`
	PesoKg         float64            `json:"pesoKg"`
	TempC          float64            `json:"tempC"`
	Presion        string             `json:"presion"`
	Vacunas        []string           `json:"vacunas"`
	Procedimientos []procedureRequest `json:"procedimientos"`
}

type procedureResponse struct {
	Procedimiento    string              `json:"procedimiento"`
	Costo            float64             `json:"costo"`
	Medicamentos     []string            `json:"medicamentos"`
	MedicosAsignados []assignedDoctorDTO `json:"medicosAsignados"`
}

type recordResponse struct {
	IDFicha        string              `json:"idFicha"`
	IDPaciente     string              `json:"idPaciente"`
	IDTutor        string              `json:"idTutor"`
	FechaHora      time.Time           `json:"fechaHora"`
	CostoConsulta  float64             `json:"costoConsulta"`
	PesoKg         float64             `json:"pesoKg"`
	TempC          float64             `json:"tempC"`
	Presion        string              `json:"presion"`
	Vacunas        []string            `json:"vacunas"`
	Procedimientos []procedureResponse `json:"procedimientos"`
}

// historyHandler godoc
// @Summary Historial del paciente
// @Description Consultas y procedimientos, más reciente primero. Sin fichas devuelve listas vacías y tutor null.
// @Tags busquedas
// @Produce json
// @Param id path string true "ID del paciente"
// @Success 200 {object} records.History
// @Failure 500 {object} httpx.Envelope
// @Router /paciente/{id}/historial [get]
func historyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := svc.History(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, h)
	}
}

// sheetHandler godoc
// @Summary Ficha clínica del paciente
// @Description Revisiones con signos vitales y procedimientos, más vacunas aplicadas.
// @Tags busquedas
// @Produce json
// @Param id path string true "ID del paciente"
// @Success 200 {object} records.Sheet
// @Failure 500 {object} httpx.Envelope
// @Router /paciente/{id}/fichaClinica [get]
func sheetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := svc.ClinicalSheet(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, s)
	}
}

// vaccinesHandler godoc
// @Summary Vacunas del paciente
// @Description Nombres de vacunas aplicadas, sin repetir.
// @Tags busquedas
// @Produce json
// @Param id path string true "ID del paciente"
// @Success 200 {array} string
// @Failure 500 {object} httpx.Envelope
// @Router /paciente/{id}/vacunas [get]
func vaccinesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Vaccines(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, v)
	}
}

// rankingHandler godoc
// @Summary Ranking de procedimientos
// @Description Procedimientos más realizados con su gasto acumulado.
// @Tags busquedas
// @Produce json
// @Param top query int false "Cantidad (default 5)"
// @Success 200 {array} records.RankingEntry
// @Failure 500 {object} httpx.Envelope
// @Router /procedimientos/ranking [get]
func rankingHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		top := httpx.PositiveInt(r, "top", DefaultRankingLimit)
		out, err := svc.ProcedureRanking(r.Context(), top)
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createRecordHandler godoc
// @Summary Registrar ficha clínica
// @Description Crea una atención para el paciente. Los médicos asignados deben existir.
// @Tags busquedas
// @Accept json
// @Produce json
// @Param id path string true "ID del paciente"
// @Param payload body createRecordRequest true "Datos de la atención"
// @Success 201 {object} httpx.Envelope
// @Failure 400 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /paciente/{id}/fichaClinica [post]
func createRecordHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRecordRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Error(w, r, log, err)
			return
		}

		in := CreateInput{
			Time:             req.FechaHora,
			ConsultationCost: req.CostoConsulta,
			WeightKg:         req.PesoKg,
			TempC:            req.TempC,
			BloodPressure:    req.Presion,
			Vaccines:         req.Vacunas,
			Procedures:       make([]ProcedureInput, 0, len(req.Procedimientos)),
		}
		for _, p := range req.Procedimientos {
			ids := make([]string, 0, len(p.MedicosAsignados))
			for _, m := range p.MedicosAsignados {
				ids = append(ids, m.IDMedico)
			}
			in.Procedures = append(in.Procedures, ProcedureInput{
				Name:        p.Procedimiento,
				Cost:        p.Costo,
				Medications: p.Medicamentos,
				DoctorIDs:   ids,
			})
		}

		rec, err := svc.Create(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.OK(w, http.StatusCreated, "Ficha clínica creada exitosamente", toRecordResponse(rec))
	}
}

func toRecordResponse(rec ClinicalRecord) recordResponse {
	out := recordResponse{
		IDFicha:        rec.ID,
		IDPaciente:     rec.PatientID,
		IDTutor:        rec.TutorID,
		FechaHora:      rec.Time,
		CostoConsulta:  rec.ConsultationCost,
		PesoKg:         rec.WeightKg,
		TempC:          rec.TempC,
		Presion:        rec.BloodPressure,
		Vacunas:        nonNil(rec.Vaccines),
		Procedimientos: make([]procedureResponse, 0, len(rec.Procedures)),
	}
	for _, p := range rec.Procedures {
		docs := make([]assignedDoctorDTO, 0, len(p.Doctors))
		for _, d := range p.Doctors {
			docs = append(docs, assignedDoctorDTO{IDMedico: d.ID, Nombre: d.Name, Especialidad: d.Specialty})
		}
		out.Procedimientos = append(out.Procedimientos, procedureResponse{
			Procedimiento:    p.Name,
			Costo:            p.Cost,
			Medicamentos:     nonNil(p.Medications),
			MedicosAsignados: docs,
		})
	}
	return out
}
