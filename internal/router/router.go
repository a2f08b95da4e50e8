package router

import (
	"net/http"

	_ "vet-clinic-records/docs"
	"vet-clinic-records/internal/adapters/storage"
	"vet-clinic-records/internal/domain/catalog"
	"vet-clinic-records/internal/domain/doctors"
	"vet-clinic-records/internal/domain/patients"
	"vet-clinic-records/internal/domain/records"
	"vet-clinic-records/internal/domain/reports"
	"vet-clinic-records/internal/domain/tutors"
	"vet-clinic-records/internal/middleware"
	"vet-clinic-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene nil se usa el store en memoria.
	Repos *storage.Repos

	Logger logger.Logger

	// Tamaño de página de los scans completos (ranking y dashboard).
	// <= 0 usa el default de records.ScanAll.
	ScanPageSize int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	repos := opts.Repos
	if repos == nil {
		repos = storage.NewMemory()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Services por módulo
	tutorsSvc := tutors.NewService(repos.Tutors)
	patientsSvc := patients.NewService(repos.Patients, tutorsSvc)
	doctorsSvc := doctors.NewService(repos.Doctors)
	catalogSvc := catalog.NewService(repos.Catalog)
	recordsSvc := records.NewService(repos.Records, records.Deps{
		Patients: patientsSvc,
		Tutors:   tutorsSvc,
		Doctors:  doctorsSvc,
		PageSize: opts.ScanPageSize,
	})
	reportsSvc := reports.NewService(repos.Records, records.NewDoctorResolver(doctorsSvc), catalogSvc, opts.ScanPageSize)

	// Rutas por módulo
	tutors.RegisterRoutes(r, tutorsSvc, log)
	patients.RegisterRoutes(r, patientsSvc, log)
	doctors.RegisterRoutes(r, doctorsSvc, log)
	catalog.RegisterRoutes(r, catalogSvc, log)
	records.RegisterRoutes(r, recordsSvc, log)
	reports.RegisterRoutes(r, reportsSvc, log)

	return r
}
