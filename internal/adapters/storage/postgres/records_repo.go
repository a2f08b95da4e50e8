package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"vet-clinic-records/internal/adapters/storage/document"
	"vet-clinic-records/internal/domain/records"
)

// Tabla: id_ficha text pk, id_paciente (indexado con fecha_hora desc),
// id_tutor, fecha_hora timestamptz, costo_consulta, peso_kg, temp_c, presion,
// vacunas jsonb, procedimientos jsonb.
type RecordsRepo struct {
	db    *sql.DB
	table string
}

var _ records.Repository = (*RecordsRepo)(nil)

func NewRecordsRepo(db *sql.DB, table string) *RecordsRepo {
	return &RecordsRepo{db: db, table: ident(table)}
}

const recordColumns = `id_ficha, id_paciente, id_tutor, fecha_hora, costo_consulta,
	peso_kg, temp_c, presion, vacunas, procedimientos`

func (r *RecordsRepo) Create(ctx context.Context, rec records.ClinicalRecord) error {
	doc := document.FromRecord(rec)
	vac, err := json.Marshal(doc.Vaccines)
	if err != nil {
		return fmt.Errorf("postgres: encode vacunas: %w", err)
	}
	procs, err := json.Marshal(doc.Procedures)
	if err != nil {
		return fmt.Errorf("postgres: encode procedimientos: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO `+r.table+` (`+recordColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		doc.ID,
		doc.PatientID,
		doc.TutorID,
		doc.Time,
		doc.ConsultationCost,
		doc.WeightKg,
		doc.TempC,
		doc.BloodPressure,
		vac,
		procs,
	)
	return err
}

func (r *RecordsRepo) ListByPatient(ctx context.Context, patientID string) ([]records.ClinicalRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+recordColumns+`
		FROM `+r.table+`
		WHERE id_paciente = $1
		ORDER BY fecha_hora DESC
	`, patientID)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

// ScanPage pagina por keyset sobre id_ficha; el cursor es el último id leído.
func (r *RecordsRepo) ScanPage(ctx context.Context, cursor string, limit int) ([]records.ClinicalRecord, string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+recordColumns+`
		FROM `+r.table+`
		WHERE id_ficha > $1
		ORDER BY id_ficha ASC
		LIMIT $2
	`, cursor, limit)
	if err != nil {
		return nil, "", err
	}
	out, err := scanRecords(rows)
	if err != nil {
		return nil, "", err
	}

	next := ""
	if len(out) == limit {
		next = out[len(out)-1].ID
	}
	return out, next, nil
}

func scanRecords(rows *sql.Rows) ([]records.ClinicalRecord, error) {
	defer rows.Close()

	out := make([]records.ClinicalRecord, 0)
	for rows.Next() {
		var (
			doc       document.Record
			vac, proc []byte
		)
		if err := rows.Scan(
			&doc.ID,
			&doc.PatientID,
			&doc.TutorID,
			&doc.Time,
			&doc.ConsultationCost,
			&doc.WeightKg,
			&doc.TempC,
			&doc.BloodPressure,
			&vac,
			&proc,
		); err != nil {
			return nil, err
		}
		if err := decodeJSONB(vac, &doc.Vaccines); err != nil {
			return nil, fmt.Errorf("postgres: decode vacunas of %s: %w", doc.ID, err)
		}
		if err := decodeJSONB(proc, &doc.Procedures); err != nil {
			return nil, fmt.Errorf("postgres: decode procedimientos of %s: %w", doc.ID, err)
		}
		out = append(out, doc.Domain())
	}
	return out, rows.Err()
}

// decodeJSONB acepta NULL como vacío.
func decodeJSONB(raw []byte, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}
