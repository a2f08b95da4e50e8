package cassandra

import (
	"context"
	"errors"

	"vet-clinic-records/internal/domain/tutors"

	"github.com/gocql/gocql"
)

// Tabla: id_tutor text PRIMARY KEY, nombre, email, telefono, direccion.
type tutorRepo struct {
	session *gocql.Session
	table   string
}

var _ tutors.Repository = (*tutorRepo)(nil)

func NewTutorRepo(session *gocql.Session, table string) tutors.Repository {
	return &tutorRepo{session: session, table: quote(table)}
}

func (r *tutorRepo) Create(ctx context.Context, t tutors.Tutor) error {
	q := `INSERT INTO ` + r.table + ` (id_tutor, nombre, email, telefono, direccion) VALUES (?, ?, ?, ?, ?)`
	return r.session.Query(q, t.ID, t.Name, t.Email, t.Phone, t.Address).WithContext(ctx).Exec()
}

func (r *tutorRepo) GetByID(ctx context.Context, id string) (tutors.Tutor, error) {
	q := `SELECT id_tutor, nombre, email, telefono, direccion FROM ` + r.table + ` WHERE id_tutor = ?`

	var t tutors.Tutor
	err := r.session.Query(q, id).WithContext(ctx).Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.Address)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return tutors.Tutor{}, tutors.ErrNotFound
		}
		return tutors.Tutor{}, err
	}
	return t, nil
}

func (r *tutorRepo) List(ctx context.Context) ([]tutors.Tutor, error) {
	q := `SELECT id_tutor, nombre, email, telefono, direccion FROM ` + r.table

	iter := r.session.Query(q).WithContext(ctx).Iter()
	scanner := iter.Scanner()

	out := make([]tutors.Tutor, 0)
	for scanner.Next() {
		var t tutors.Tutor
		if err := scanner.Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.Address); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update usa IF EXISTS para no crear filas nuevas (en Cassandra UPDATE es upsert).
func (r *tutorRepo) Update(ctx context.Context, t tutors.Tutor) error {
	q := `UPDATE ` + r.table + ` SET nombre = ?, email = ?, telefono = ?, direccion = ? WHERE id_tutor = ? IF EXISTS`

	applied, err := r.session.Query(q, t.Name, t.Email, t.Phone, t.Address, t.ID).WithContext(ctx).ScanCAS()
	if err != nil {
		return err
	}
	if !applied {
		return tutors.ErrNotFound
	}
	return nil
}
