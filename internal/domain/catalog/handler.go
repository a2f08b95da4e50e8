package catalog

import (
	"net/http"

	"vet-clinic-records/internal/platform/httpx"
	"vet-clinic-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/medicamentos", listMedicationsHandler(svc, log))
}

type medicationResponse struct {
	IDMedicamento string  `json:"idMedicamento"`
	Nombre        string  `json:"nombre"`
	Costo         float64 `json:"costo"`
}

// listMedicationsHandler godoc
// @Summary Catálogo de medicamentos
// @Description Lista los medicamentos con su costo unitario, ordenados por nombre.
// @Tags medicamentos
// @Produce json
// @Success 200 {object} httpx.Envelope
// @Failure 500 {object} httpx.Envelope
// @Router /medicamentos [get]
func listMedicationsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			out = append(out, medicationResponse{IDMedicamento: m.ID, Nombre: m.Name, Costo: m.Cost})
		}
		httpx.List(w, out)
	}
}
