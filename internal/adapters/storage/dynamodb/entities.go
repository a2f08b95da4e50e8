package dynamodb

import (
	"context"

	"vet-clinic-records/internal/adapters/storage/document"
	"vet-clinic-records/internal/domain/catalog"
	"vet-clinic-records/internal/domain/doctors"
	"vet-clinic-records/internal/domain/patients"
	"vet-clinic-records/internal/domain/tutors"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
)

// Tablas con clave de partición = id de la entidad (idTutor, idPaciente,
// idMedico, idMedicamento). Los listados son scans completos.

type tutorRepo struct{ t table }

var _ tutors.Repository = (*tutorRepo)(nil)

func NewTutorRepo(api API, tableName string) tutors.Repository {
	return &tutorRepo{t: table{api: api, name: tableName, pk: "idTutor"}}
}

func (r *tutorRepo) Create(ctx context.Context, t tutors.Tutor) error {
	return r.t.create(ctx, document.FromTutor(t))
}

func (r *tutorRepo) GetByID(ctx context.Context, id string) (tutors.Tutor, error) {
	var doc document.Tutor
	ok, err := r.t.get(ctx, id, &doc)
	if err != nil {
		return tutors.Tutor{}, err
	}
	if !ok {
		return tutors.Tutor{}, tutors.ErrNotFound
	}
	return doc.Domain(), nil
}

func (r *tutorRepo) List(ctx context.Context) ([]tutors.Tutor, error) {
	docs, err := scanAll[document.Tutor](ctx, r.t.api, r.t.name, nil)
	if err != nil {
		return nil, err
	}
	out := make([]tutors.Tutor, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Domain())
	}
	return out, nil
}

func (r *tutorRepo) Update(ctx context.Context, t tutors.Tutor) error {
	return r.t.replace(ctx, document.FromTutor(t), tutors.ErrNotFound)
}

type patientRepo struct{ t table }

var _ patients.Repository = (*patientRepo)(nil)

func NewPatientRepo(api API, tableName string) patients.Repository {
	return &patientRepo{t: table{api: api, name: tableName, pk: "idPaciente"}}
}

func (r *patientRepo) Create(ctx context.Context, p patients.Patient) error {
	return r.t.create(ctx, document.FromPatient(p))
}

func (r *patientRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	var doc document.Patient
	ok, err := r.t.get(ctx, id, &doc)
	if err != nil {
		return patients.Patient{}, err
	}
	if !ok {
		return patients.Patient{}, patients.ErrNotFound
	}
	return doc.Domain(), nil
}

func (r *patientRepo) List(ctx context.Context) ([]patients.Patient, error) {
	return r.scan(ctx, nil)
}

func (r *patientRepo) ListByTutor(ctx context.Context, tutorID string) ([]patients.Patient, error) {
	filter := expression.Name("idTutor").Equal(expression.Value(tutorID))
	return r.scan(ctx, &filter)
}

func (r *patientRepo) Update(ctx context.Context, p patients.Patient) error {
	return r.t.replace(ctx, document.FromPatient(p), patients.ErrNotFound)
}

func (r *patientRepo) scan(ctx context.Context, filter *expression.ConditionBuilder) ([]patients.Patient, error) {
	docs, err := scanAll[document.Patient](ctx, r.t.api, r.t.name, filter)
	if err != nil {
		return nil, err
	}
	out := make([]patients.Patient, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Domain())
	}
	return out, nil
}

type doctorRepo struct{ t table }

var _ doctors.Repository = (*doctorRepo)(nil)

func NewDoctorRepo(api API, tableName string) doctors.Repository {
	return &doctorRepo{t: table{api: api, name: tableName, pk: "idMedico"}}
}

func (r *doctorRepo) Create(ctx context.Context, d doctors.Doctor) error {
	return r.t.create(ctx, document.FromDoctor(d))
}

func (r *doctorRepo) GetByID(ctx context.Context, id string) (doctors.Doctor, error) {
	var doc document.Doctor
	ok, err := r.t.get(ctx, id, &doc)
	if err != nil {
		return doctors.Doctor{}, err
	}
	if !ok {
		return doctors.Doctor{}, doctors.ErrNotFound
	}
	return doc.Domain(), nil
}

func (r *doctorRepo) List(ctx context.Context) ([]doctors.Doctor, error) {
	docs, err := scanAll[document.Doctor](ctx, r.t.api, r.t.name, nil)
	if err != nil {
		return nil, err
	}
	out := make([]doctors.Doctor, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Domain())
	}
	return out, nil
}

func (r *doctorRepo) Update(ctx context.Context, d doctors.Doctor) error {
	return r.t.replace(ctx, document.FromDoctor(d), doctors.ErrNotFound)
}

type catalogRepo struct {
	api  API
	name string
}

var _ catalog.Repository = (*catalogRepo)(nil)

func NewCatalogRepo(api API, tableName string) catalog.Repository {
	return &catalogRepo{api: api, name: tableName}
}

func (r *catalogRepo) List(ctx context.Context) ([]catalog.Medication, error) {
	docs, err := scanAll[document.Medication](ctx, r.api, r.name, nil)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.Medication, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Domain())
	}
	return out, nil
}
