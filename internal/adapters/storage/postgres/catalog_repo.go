package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-records/internal/domain/catalog"
)

// Tabla: id_medicamento text pk, nombre, costo numeric.
type CatalogRepo struct {
	db    *sql.DB
	table string
}

var _ catalog.Repository = (*CatalogRepo)(nil)

func NewCatalogRepo(db *sql.DB, table string) *CatalogRepo {
	return &CatalogRepo{db: db, table: ident(table)}
}

func (r *CatalogRepo) List(ctx context.Context) ([]catalog.Medication, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id_medicamento, nombre, costo FROM `+r.table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Medication, 0)
	for rows.Next() {
		var m catalog.Medication
		if err := rows.Scan(&m.ID, &m.Name, &m.Cost); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
