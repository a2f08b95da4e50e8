package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vet-clinic-records/internal/domain/tutors"
)

// Tabla: id_tutor text pk, nombre, email, telefono, direccion.
type TutorsRepo struct {
	db    *sql.DB
	table string
}

var _ tutors.Repository = (*TutorsRepo)(nil)

func NewTutorsRepo(db *sql.DB, table string) *TutorsRepo {
	return &TutorsRepo{db: db, table: ident(table)}
}

func (r *TutorsRepo) Create(ctx context.Context, t tutors.Tutor) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO `+r.table+` (id_tutor, nombre, email, telefono, direccion)
		VALUES ($1,$2,$3,$4,$5)
	`, t.ID, t.Name, t.Email, t.Phone, t.Address)
	return err
}

func (r *TutorsRepo) Update(ctx context.Context, t tutors.Tutor) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE `+r.table+`
		SET nombre = $2, email = $3, telefono = $4, direccion = $5
		WHERE id_tutor = $1
	`, t.ID, t.Name, t.Email, t.Phone, t.Address)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return tutors.ErrNotFound
	}
	return nil
}

func (r *TutorsRepo) GetByID(ctx context.Context, id string) (tutors.Tutor, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id_tutor, nombre, email, telefono, direccion
		FROM `+r.table+`
		WHERE id_tutor = $1
	`, id)

	var t tutors.Tutor
	if err := row.Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.Address); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return tutors.Tutor{}, tutors.ErrNotFound
		}
		return tutors.Tutor{}, err
	}
	return t, nil
}

func (r *TutorsRepo) List(ctx context.Context) ([]tutors.Tutor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id_tutor, nombre, email, telefono, direccion
		FROM `+r.table+`
		ORDER BY nombre ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tutors.Tutor, 0)
	for rows.Next() {
		var t tutors.Tutor
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.Address); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
