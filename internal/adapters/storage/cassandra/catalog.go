package cassandra

import (
	"context"

	"vet-clinic-records/internal/domain/catalog"

	"github.com/gocql/gocql"
)

// Tabla: id_medicamento text PRIMARY KEY, nombre, costo double.
type catalogRepo struct {
	session *gocql.Session
	table   string
}

var _ catalog.Repository = (*catalogRepo)(nil)

func NewCatalogRepo(session *gocql.Session, table string) catalog.Repository {
	return &catalogRepo{session: session, table: quote(table)}
}

func (r *catalogRepo) List(ctx context.Context) ([]catalog.Medication, error) {
	q := `SELECT id_medicamento, nombre, costo FROM ` + r.table
	scanner := r.session.Query(q).WithContext(ctx).Iter().Scanner()

	out := make([]catalog.Medication, 0)
	for scanner.Next() {
		var m catalog.Medication
		if err := scanner.Scan(&m.ID, &m.Name, &m.Cost); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
