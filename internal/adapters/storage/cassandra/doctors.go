package cassandra

import (
	"context"
	"errors"

	"vet-clinic-records/internal/domain/doctors"

	"github.com/gocql/gocql"
)

// Tabla: id_medico text PRIMARY KEY, nombre, especialidad, estado.
type doctorRepo struct {
	session *gocql.Session
	table   string
}

var _ doctors.Repository = (*doctorRepo)(nil)

func NewDoctorRepo(session *gocql.Session, table string) doctors.Repository {
	return &doctorRepo{session: session, table: quote(table)}
}

func (r *doctorRepo) Create(ctx context.Context, d doctors.Doctor) error {
	q := `INSERT INTO ` + r.table + ` (id_medico, nombre, especialidad, estado) VALUES (?, ?, ?, ?)`
	return r.session.Query(q, d.ID, d.Name, d.Specialty, string(d.Status)).WithContext(ctx).Exec()
}

func (r *doctorRepo) GetByID(ctx context.Context, id string) (doctors.Doctor, error) {
	q := `SELECT id_medico, nombre, especialidad, estado FROM ` + r.table + ` WHERE id_medico = ?`

	var (
		d      doctors.Doctor
		status string
	)
	if err := r.session.Query(q, id).WithContext(ctx).Scan(&d.ID, &d.Name, &d.Specialty, &status); err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return doctors.Doctor{}, doctors.ErrNotFound
		}
		return doctors.Doctor{}, err
	}
	d.Status = doctors.Status(status)
	return d, nil
}

func (r *doctorRepo) List(ctx context.Context) ([]doctors.Doctor, error) {
	q := `SELECT id_medico, nombre, especialidad, estado FROM ` + r.table
	scanner := r.session.Query(q).WithContext(ctx).Iter().Scanner()

	out := make([]doctors.Doctor, 0)
	for scanner.Next() {
		var (
			d      doctors.Doctor
			status string
		)
		if err := scanner.Scan(&d.ID, &d.Name, &d.Specialty, &status); err != nil {
			return nil, err
		}
		d.Status = doctors.Status(status)
		out = append(out, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *doctorRepo) Update(ctx context.Context, d doctors.Doctor) error {
	q := `UPDATE ` + r.table + ` SET nombre = ?, especialidad = ?, estado = ? WHERE id_medico = ? IF EXISTS`

	applied, err := r.session.Query(q, d.Name, d.Specialty, string(d.Status), d.ID).WithContext(ctx).ScanCAS()
	if err != nil {
		return err
	}
	if !applied {
		return doctors.ErrNotFound
	}
	return nil
}
