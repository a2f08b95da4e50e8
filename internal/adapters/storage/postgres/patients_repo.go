package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vet-clinic-records/internal/domain/patients"
)

// Tabla: id_paciente text pk, id_tutor (indexado), nombre, especie, raza, sexo.
type PatientsRepo struct {
	db    *sql.DB
	table string
}

var _ patients.Repository = (*PatientsRepo)(nil)

func NewPatientsRepo(db *sql.DB, table string) *PatientsRepo {
	return &PatientsRepo{db: db, table: ident(table)}
}

const patientColumns = `id_paciente, id_tutor, nombre, especie, raza, sexo`

func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO `+r.table+` (`+patientColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, p.ID, p.TutorID, p.Name, p.Species, p.Breed, p.Sex)
	return err
}

func (r *PatientsRepo) Update(ctx context.Context, p patients.Patient) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE `+r.table+`
		SET id_tutor = $2, nombre = $3, especie = $4, raza = $5, sexo = $6
		WHERE id_paciente = $1
	`, p.ID, p.TutorID, p.Name, p.Species, p.Breed, p.Sex)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return patients.ErrNotFound
	}
	return nil
}

func (r *PatientsRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+patientColumns+` FROM `+r.table+` WHERE id_paciente = $1
	`, id)

	p, err := scanPatient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return patients.Patient{}, patients.ErrNotFound
		}
		return patients.Patient{}, err
	}
	return p, nil
}

func (r *PatientsRepo) List(ctx context.Context) ([]patients.Patient, error) {
	return r.query(ctx, `SELECT `+patientColumns+` FROM `+r.table+` ORDER BY nombre ASC`)
}

func (r *PatientsRepo) ListByTutor(ctx context.Context, tutorID string) ([]patients.Patient, error) {
	return r.query(ctx, `
		SELECT `+patientColumns+` FROM `+r.table+`
		WHERE id_tutor = $1
		ORDER BY nombre ASC
	`, tutorID)
}

func (r *PatientsRepo) query(ctx context.Context, q string, args ...any) ([]patients.Patient, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatient(s rowScanner) (patients.Patient, error) {
	var p patients.Patient
	err := s.Scan(&p.ID, &p.TutorID, &p.Name, &p.Species, &p.Breed, &p.Sex)
	return p, err
}
