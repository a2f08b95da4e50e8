package records

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"vet-clinic-records/internal/platform/apperr"

	"github.com/google/uuid"
)

const DefaultRankingLimit = 5

var (
	ErrMissingProcedureName = apperr.Validation("Falta nombre del procedimiento")
	ErrInvalidCost          = apperr.Validation("Costo inválido")
	ErrMissingDoctor        = apperr.Validation("Falta idMedico en medicosAsignados")
)

type Service struct {
	repo     Repository
	patients PatientLookup
	tutors   TutorLookup
	doctors  DoctorLookup
	resolver *DoctorResolver

	pageSize int
	now      func() time.Time
	newID    func() string
}

type Deps struct {
	Patients PatientLookup
	Tutors   TutorLookup
	Doctors  DoctorLookup
	// PageSize del scan completo (ranking). <= 0 usa el default de ScanAll.
	PageSize int
}

func NewService(repo Repository, deps Deps) *Service {
	return &Service{
		repo:     repo,
		patients: deps.Patients,
		tutors:   deps.Tutors,
		doctors:  deps.Doctors,
		resolver: NewDoctorResolver(deps.Doctors),
		pageSize: deps.PageSize,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// History arma el historial del paciente. Sin fichas devuelve la cáscara
// vacía; no se valida que el paciente exista.
func (s *Service) History(ctx context.Context, patientID string) (History, error) {
	patientID = strings.TrimSpace(patientID)
	recs, err := s.patientRecords(ctx, patientID)
	if err != nil {
		return History{}, err
	}

	h := BuildHistory(patientID, recs)
	if h.TutorID != nil {
		if h.TutorName, err = s.tutorName(ctx, *h.TutorID); err != nil {
			return History{}, err
		}
	}
	return h, nil
}

func (s *Service) ClinicalSheet(ctx context.Context, patientID string) (Sheet, error) {
	patientID = strings.TrimSpace(patientID)
	recs, err := s.patientRecords(ctx, patientID)
	if err != nil {
		return Sheet{}, err
	}

	sheet := BuildSheet(patientID, recs)
	if sheet.TutorID != nil {
		if sheet.TutorName, err = s.tutorName(ctx, *sheet.TutorID); err != nil {
			return Sheet{}, err
		}
	}
	return sheet, nil
}

func (s *Service) Vaccines(ctx context.Context, patientID string) ([]string, error) {
	recs, err := s.repo.ListByPatient(ctx, strings.TrimSpace(patientID))
	if err != nil {
		return nil, err
	}
	return DistinctVaccines(recs), nil
}

// ProcedureRanking recorre todas las fichas. limit < 1 => DefaultRankingLimit.
func (s *Service) ProcedureRanking(ctx context.Context, limit int) ([]RankingEntry, error) {
	if limit < 1 {
		limit = DefaultRankingLimit
	}
	recs, err := ScanAll(ctx, s.repo, s.pageSize)
	if err != nil {
		return nil, err
	}
	return RankProcedures(recs, limit), nil
}

type ProcedureInput struct {
	Name        string
	Cost        float64
	Medications []string
	DoctorIDs   []string
}

type CreateInput struct {
	// Time nil => ahora (UTC).
	Time             *time.Time
	ConsultationCost float64
	WeightKg         float64
	TempC            float64
	BloodPressure    string
	Vaccines         []string
	Procedures       []ProcedureInput
}

// Create registra una ficha para un paciente existente. El tutor se toma del
// paciente y cada médico asignado se guarda con nombre y especialidad.
func (s *Service) Create(ctx context.Context, patientID string, in CreateInput) (ClinicalRecord, error) {
	if !validCost(in.ConsultationCost) {
		return ClinicalRecord{}, ErrInvalidCost
	}
	procs := make([]Procedure, 0, len(in.Procedures))
	for _, p := range in.Procedures {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return ClinicalRecord{}, ErrMissingProcedureName
		}
		if !validCost(p.Cost) {
			return ClinicalRecord{}, ErrInvalidCost
		}
		docs := make([]AssignedDoctor, 0, len(p.DoctorIDs))
		for _, id := range p.DoctorIDs {
			id = strings.TrimSpace(id)
			if id == "" {
				return ClinicalRecord{}, ErrMissingDoctor
			}
			docs = append(docs, AssignedDoctor{ID: id})
		}
		procs = append(procs, Procedure{
			Name:        name,
			Cost:        p.Cost,
			Medications: cleanList(p.Medications),
			Doctors:     docs,
		})
	}

	patient, err := s.patients.GetByID(ctx, strings.TrimSpace(patientID))
	if err != nil {
		return ClinicalRecord{}, err
	}

	snap := map[string]AssignedDoctor{}
	for i := range procs {
		for j, d := range procs[i].Doctors {
			full, ok := snap[d.ID]
			if !ok {
				doc, err := s.doctors.GetByID(ctx, d.ID)
				if err != nil {
					return ClinicalRecord{}, err
				}
				full = AssignedDoctor{ID: doc.ID, Name: doc.Name, Specialty: doc.Specialty}
				snap[d.ID] = full
			}
			procs[i].Doctors[j] = full
		}
	}

	rec := ClinicalRecord{
		ID:               s.newID(),
		PatientID:        patient.ID,
		TutorID:          patient.TutorID,
		Time:             s.now(),
		ConsultationCost: in.ConsultationCost,
		WeightKg:         in.WeightKg,
		TempC:            in.TempC,
		BloodPressure:    strings.TrimSpace(in.BloodPressure),
		Vaccines:         cleanList(in.Vaccines),
		Procedures:       procs,
	}
	if in.Time != nil && !in.Time.IsZero() {
		rec.Time = in.Time.UTC()
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return ClinicalRecord{}, err
	}
	return rec, nil
}

func (s *Service) patientRecords(ctx context.Context, patientID string) ([]ClinicalRecord, error) {
	recs, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.Resolve(ctx, recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// tutorName: tutor inexistente => nil, sin error.
func (s *Service) tutorName(ctx context.Context, tutorID string) (*string, error) {
	if tutorID == "" {
		return nil, nil
	}
	t, err := s.tutors.GetByID(ctx, tutorID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("tutor %s: %w", tutorID, err)
	}
	if t.Name == "" {
		return nil, nil
	}
	name := t.Name
	return &name, nil
}

func validCost(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
