package reports

import (
	"net/http"

	"vet-clinic-records/internal/platform/httpx"
	"vet-clinic-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/volumenGastoMensual", monthlyVolumeHandler(svc, log))
		r.Get("/distribucionEspecialidades", specialtyHandler(svc, log))
		r.Get("/topMedicamentos", topMedicationsHandler(svc, log))
		r.Get("/evolucionIngresoVsCostes", revenueHandler(svc, log))
		r.Get("/demandaVacunasMensual", vaccineDemandHandler(svc, log))
	})
}

// respond escribe el arreglo pelado o el error genérico.
func respond[T any](w http.ResponseWriter, r *http.Request, log logger.Logger, out []T, err error) {
	if err != nil {
		httpx.Error(w, r, log, err)
		return
	}
	if out == nil {
		out = []T{}
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// monthlyVolumeHandler godoc
// @Summary Volumen de atenciones y gasto promedio por mes
// @Tags dashboard
// @Produce json
// @Success 200 {array} reports.MonthlyVolume
// @Failure 500 {object} httpx.Envelope
// @Router /dashboard/volumenGastoMensual [get]
func monthlyVolumeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.MonthlyVolume(r.Context())
		respond(w, r, log, out, err)
	}
}

// specialtyHandler godoc
// @Summary Distribución de procedimientos por especialidad
// @Tags dashboard
// @Produce json
// @Success 200 {array} reports.SpecialtyCount
// @Failure 500 {object} httpx.Envelope
// @Router /dashboard/distribucionEspecialidades [get]
func specialtyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.SpecialtyDistribution(r.Context())
		respond(w, r, log, out, err)
	}
}

// topMedicationsHandler godoc
// @Summary Medicamentos más usados
// @Tags dashboard
// @Produce json
// @Param limit query int false "Cantidad (default 10)"
// @Success 200 {array} reports.MedicationCount
// @Failure 500 {object} httpx.Envelope
// @Router /dashboard/topMedicamentos [get]
func topMedicationsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := httpx.PositiveInt(r, "limit", DefaultTopMedications)
		out, err := svc.TopMedications(r.Context(), limit)
		respond(w, r, log, out, err)
	}
}

// revenueHandler godoc
// @Summary Evolución de ingresos vs costo de medicamentos
// @Tags dashboard
// @Produce json
// @Success 200 {array} reports.MonthlyBalance
// @Failure 500 {object} httpx.Envelope
// @Router /dashboard/evolucionIngresoVsCostes [get]
func revenueHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.RevenueVsCost(r.Context())
		respond(w, r, log, out, err)
	}
}

// vaccineDemandHandler godoc
// @Summary Demanda de vacunas por mes
// @Tags dashboard
// @Produce json
// @Success 200 {array} reports.VaccineDemand
// @Failure 500 {object} httpx.Envelope
// @Router /dashboard/demandaVacunasMensual [get]
func vaccineDemandHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.VaccineDemand(r.Context())
		respond(w, r, log, out, err)
	}
}
