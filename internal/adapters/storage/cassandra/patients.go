package cassandra

import (
	"context"
	"errors"

	"vet-clinic-records/internal/domain/patients"

	"github.com/gocql/gocql"
)

// Tabla: id_paciente text PRIMARY KEY, id_tutor, nombre, especie, raza, sexo.
// La búsqueda por tutor usa ALLOW FILTERING (o un índice secundario sobre id_tutor).
type patientRepo struct {
	session *gocql.Session
	table   string
}

var _ patients.Repository = (*patientRepo)(nil)

func NewPatientRepo(session *gocql.Session, table string) patients.Repository {
	return &patientRepo{session: session, table: quote(table)}
}

const patientColumns = `id_paciente, id_tutor, nombre, especie, raza, sexo`

func (r *patientRepo) Create(ctx context.Context, p patients.Patient) error {
	q := `INSERT INTO ` + r.table + ` (` + patientColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	return r.session.Query(q, p.ID, p.TutorID, p.Name, p.Species, p.Breed, p.Sex).WithContext(ctx).Exec()
}

func (r *patientRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	q := `SELECT ` + patientColumns + ` FROM ` + r.table + ` WHERE id_paciente = ?`

	var p patients.Patient
	err := r.session.Query(q, id).WithContext(ctx).Scan(&p.ID, &p.TutorID, &p.Name, &p.Species, &p.Breed, &p.Sex)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return patients.Patient{}, patients.ErrNotFound
		}
		return patients.Patient{}, err
	}
	return p, nil
}

func (r *patientRepo) List(ctx context.Context) ([]patients.Patient, error) {
	return r.list(r.session.Query(`SELECT ` + patientColumns + ` FROM ` + r.table).WithContext(ctx))
}

func (r *patientRepo) ListByTutor(ctx context.Context, tutorID string) ([]patients.Patient, error) {
	q := `SELECT ` + patientColumns + ` FROM ` + r.table + ` WHERE id_tutor = ? ALLOW FILTERING`
	return r.list(r.session.Query(q, tutorID).WithContext(ctx))
}

func (r *patientRepo) Update(ctx context.Context, p patients.Patient) error {
	q := `UPDATE ` + r.table + ` SET id_tutor = ?, nombre = ?, especie = ?, raza = ?, sexo = ? WHERE id_paciente = ? IF EXISTS`

	applied, err := r.session.Query(q, p.TutorID, p.Name, p.Species, p.Breed, p.Sex, p.ID).WithContext(ctx).ScanCAS()
	if err != nil {
		return err
	}
	if !applied {
		return patients.ErrNotFound
	}
	return nil
}

func (r *patientRepo) list(q *gocql.Query) ([]patients.Patient, error) {
	scanner := q.Iter().Scanner()

	out := make([]patients.Patient, 0)
	for scanner.Next() {
		var p patients.Patient
		if err := scanner.Scan(&p.ID, &p.TutorID, &p.Name, &p.Species, &p.Breed, &p.Sex); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
