package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vet-clinic-records/internal/domain/doctors"
)

// Tabla: id_medico text pk, nombre, especialidad, estado.
type DoctorsRepo struct {
	db    *sql.DB
	table string
}

var _ doctors.Repository = (*DoctorsRepo)(nil)

func NewDoctorsRepo(db *sql.DB, table string) *DoctorsRepo {
	return &DoctorsRepo{db: db, table: ident(table)}
}

func (r *DoctorsRepo) Create(ctx context.Context, d doctors.Doctor) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO `+r.table+` (id_medico, nombre, especialidad, estado)
		VALUES ($1,$2,$3,$4)
	`, d.ID, d.Name, d.Specialty, string(d.Status))
	return err
}

func (r *DoctorsRepo) Update(ctx context.Context, d doctors.Doctor) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE `+r.table+`
		SET nombre = $2, especialidad = $3, estado = $4
		WHERE id_medico = $1
	`, d.ID, d.Name, d.Specialty, string(d.Status))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return doctors.ErrNotFound
	}
	return nil
}

func (r *DoctorsRepo) GetByID(ctx context.Context, id string) (doctors.Doctor, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id_medico, nombre, especialidad, estado FROM `+r.table+` WHERE id_medico = $1
	`, id)

	var (
		d      doctors.Doctor
		status string
	)
	if err := row.Scan(&d.ID, &d.Name, &d.Specialty, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return doctors.Doctor{}, doctors.ErrNotFound
		}
		return doctors.Doctor{}, err
	}
	d.Status = doctors.Status(status)
	return d, nil
}

func (r *DoctorsRepo) List(ctx context.Context) ([]doctors.Doctor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id_medico, nombre, especialidad, estado FROM `+r.table+` ORDER BY nombre ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]doctors.Doctor, 0)
	for rows.Next() {
		var (
			d      doctors.Doctor
			status string
		)
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty, &status); err != nil {
			return nil, err
		}
		d.Status = doctors.Status(status)
		out = append(out, d)
	}
	return out, rows.Err()
}
