package mongodb

import (
	"context"
	"errors"

	"vet-clinic-records/internal/adapters/storage/document"
	"vet-clinic-records/internal/domain/catalog"
	"vet-clinic-records/internal/domain/doctors"
	"vet-clinic-records/internal/domain/patients"
	"vet-clinic-records/internal/domain/tutors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Tutores, pacientes, médicos y catálogo comparten la misma forma: un
// documento por entidad buscado por su campo id.

type tutorRepo struct {
	coll *mongo.Collection
}

var _ tutors.Repository = (*tutorRepo)(nil)

func NewTutorRepo(db *mongo.Database, collection string) tutors.Repository {
	return &tutorRepo{coll: db.Collection(collection)}
}

func (r *tutorRepo) Create(ctx context.Context, t tutors.Tutor) error {
	_, err := r.coll.InsertOne(ctx, document.FromTutor(t))
	return err
}

func (r *tutorRepo) GetByID(ctx context.Context, id string) (tutors.Tutor, error) {
	var doc document.Tutor
	if err := findOne(ctx, r.coll, bson.D{{Key: "idTutor", Value: id}}, &doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return tutors.Tutor{}, tutors.ErrNotFound
		}
		return tutors.Tutor{}, err
	}
	return doc.Domain(), nil
}

func (r *tutorRepo) List(ctx context.Context) ([]tutors.Tutor, error) {
	docs, err := findAll[document.Tutor](ctx, r.coll, bson.D{})
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
	return replace(ctx, r.coll, bson.D{{Key: "idTutor", Value: t.ID}}, document.FromTutor(t), tutors.ErrNotFound)
}

type patientRepo struct {
	coll *mongo.Collection
}

var _ patients.Repository = (*patientRepo)(nil)

func NewPatientRepo(db *mongo.Database, collection string) patients.Repository {
	return &patientRepo{coll: db.Collection(collection)}
}

func (r *patientRepo) Create(ctx context.Context, p patients.Patient) error {
	_, err := r.coll.InsertOne(ctx, document.FromPatient(p))
	return err
}

func (r *patientRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	var doc document.Patient
	if err := findOne(ctx, r.coll, bson.D{{Key: "idPaciente", Value: id}}, &doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return patients.Patient{}, patients.ErrNotFound
		}
		return patients.Patient{}, err
	}
	return doc.Domain(), nil
}

func (r *patientRepo) List(ctx context.Context) ([]patients.Patient, error) {
	return r.list(ctx, bson.D{})
}

func (r *patientRepo) ListByTutor(ctx context.Context, tutorID string) ([]patients.Patient, error) {
	return r.list(ctx, bson.D{{Key: "idTutor", Value: tutorID}})
}

func (r *patientRepo) Update(ctx context.Context, p patients.Patient) error {
	return replace(ctx, r.coll, bson.D{{Key: "idPaciente", Value: p.ID}}, document.FromPatient(p), patients.ErrNotFound)
}

func (r *patientRepo) list(ctx context.Context, filter bson.D) ([]patients.Patient, error) {
	docs, err := findAll[document.Patient](ctx, r.coll, filter)
	if err != nil {
		return nil, err
	}
	out := make([]patients.Patient, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Domain())
	}
	return out, nil
}

type doctorRepo struct {
	coll *mongo.Collection
}

var _ doctors.Repository = (*doctorRepo)(nil)

func NewDoctorRepo(db *mongo.Database, collection string) doctors.Repository {
	return &doctorRepo{coll: db.Collection(collection)}
}

func (r *doctorRepo) Create(ctx context.Context, d doctors.Doctor) error {
	_, err := r.coll.InsertOne(ctx, document.FromDoctor(d))
	return err
}

func (r *doctorRepo) GetByID(ctx context.Context, id string) (doctors.Doctor, error) {
	var doc document.Doctor
	if err := findOne(ctx, r.coll, bson.D{{Key: "idMedico", Value: id}}, &doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return doctors.Doctor{}, doctors.ErrNotFound
		}
		return doctors.Doctor{}, err
	}
	return doc.Domain(), nil
}

func (r *doctorRepo) List(ctx context.Context) ([]doctors.Doctor, error) {
	docs, err := findAll[document.Doctor](ctx, r.coll, bson.D{})
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
	return replace(ctx, r.coll, bson.D{{Key: "idMedico", Value: d.ID}}, document.FromDoctor(d), doctors.ErrNotFound)
}

type catalogRepo struct {
	coll *mongo.Collection
}

var _ catalog.Repository = (*catalogRepo)(nil)

func NewCatalogRepo(db *mongo.Database, collection string) catalog.Repository {
	return &catalogRepo{coll: db.Collection(collection)}
}

func (r *catalogRepo) List(ctx context.Context) ([]catalog.Medication, error) {
	docs, err := findAll[document.Medication](ctx, r.coll, bson.D{})
	if err != nil {
		return nil, err
	}
	out := make([]catalog.Medication, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Domain())
	}
	return out, nil
}

func findOne(ctx context.Context, coll *mongo.Collection, filter bson.D, v any) error {
	return coll.FindOne(ctx, filter).Decode(v)
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.D) ([]T, error) {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// replace sobrescribe el documento; sin match devuelve notFound.
func replace(ctx context.Context, coll *mongo.Collection, filter bson.D, doc any, notFound error) error {
	res, err := coll.ReplaceOne(ctx, filter, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return notFound
	}
	return nil
}
