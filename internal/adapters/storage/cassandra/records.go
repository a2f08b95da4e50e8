package cassandra

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"vet-clinic-records/internal/domain/records"

	"github.com/gocql/gocql"
)

// Tabla de fichas:
//
//	CREATE TYPE procedimiento (procedimiento text, costo double, medicamentos list<text>, medicos list<text>);
//	CREATE TABLE "FichaClinica" (
//	  id_paciente text, fecha_hora timestamp, id_ficha text,
//	  id_tutor text, costo_consulta double, peso_kg double, temp_c double, presion text,
//	  vacunas list<text>, procedimientos list<frozen<procedimiento>>,
//	  PRIMARY KEY ((id_paciente), fecha_hora, id_ficha)
//	) WITH CLUSTERING ORDER BY (fecha_hora DESC, id_ficha ASC);
//
// Los médicos se guardan sólo por id; nombre y especialidad los completa
// records.DoctorResolver al leer.
type recordRepo struct {
	session *gocql.Session
	table   string
}

var _ records.Repository = (*recordRepo)(nil)

func NewRecordRepo(session *gocql.Session, table string) records.Repository {
	return &recordRepo{session: session, table: quote(table)}
}

type procedureUDT struct {
	Name        string   `cql:"procedimiento"`
	Cost        float64  `cql:"costo"`
	Medications []string `cql:"medicamentos"`
	DoctorIDs   []string `cql:"medicos"`
}

const recordColumns = `id_paciente, fecha_hora, id_ficha, id_tutor, costo_consulta,
	peso_kg, temp_c, presion, vacunas, procedimientos`

func (r *recordRepo) Create(ctx context.Context, rec records.ClinicalRecord) error {
	q := `INSERT INTO ` + r.table + ` (` + recordColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	return r.session.Query(q,
		rec.PatientID,
		rec.Time.UTC(),
		rec.ID,
		rec.TutorID,
		rec.ConsultationCost,
		rec.WeightKg,
		rec.TempC,
		rec.BloodPressure,
		rec.Vaccines,
		toUDTs(rec.Procedures),
	).WithContext(ctx).Exec()
}

// ListByPatient lee la partición del paciente; el clustering ya viene desc.
func (r *recordRepo) ListByPatient(ctx context.Context, patientID string) ([]records.ClinicalRecord, error) {
	q := `SELECT ` + recordColumns + ` FROM ` + r.table + ` WHERE id_paciente = ?`
	iter := r.session.Query(q, patientID).WithContext(ctx).Iter()

	out, err := scanRecords(iter.Scanner())
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ScanPage usa el paging state de Cassandra como cursor (base64).
func (r *recordRepo) ScanPage(ctx context.Context, cursor string, limit int) ([]records.ClinicalRecord, string, error) {
	state, err := decodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	q := `SELECT ` + recordColumns + ` FROM ` + r.table
	iter := r.session.Query(q).WithContext(ctx).PageSize(limit).PageState(state).Iter()
	next := iter.PageState()

	out, err := scanRecords(iter.Scanner())
	if err != nil {
		return nil, "", err
	}
	return out, encodeCursor(next), nil
}

func scanRecords(scanner gocql.Scanner) ([]records.ClinicalRecord, error) {
	out := make([]records.ClinicalRecord, 0)
	for scanner.Next() {
		var (
			rec   records.ClinicalRecord
			ts    time.Time
			procs []procedureUDT
		)
		if err := scanner.Scan(
			&rec.PatientID,
			&ts,
			&rec.ID,
			&rec.TutorID,
			&rec.ConsultationCost,
			&rec.WeightKg,
			&rec.TempC,
			&rec.BloodPressure,
			&rec.Vaccines,
			&procs,
		); err != nil {
			return nil, err
		}
		rec.Time = ts.UTC()
		rec.Procedures = fromUDTs(procs)
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func toUDTs(in []records.Procedure) []procedureUDT {
	out := make([]procedureUDT, 0, len(in))
	for _, p := range in {
		ids := make([]string, 0, len(p.Doctors))
		for _, d := range p.Doctors {
			ids = append(ids, d.ID)
		}
		out = append(out, procedureUDT{Name: p.Name, Cost: p.Cost, Medications: p.Medications, DoctorIDs: ids})
	}
	return out
}

func fromUDTs(in []procedureUDT) []records.Procedure {
	out := make([]records.Procedure, 0, len(in))
	for _, u := range in {
		docs := make([]records.AssignedDoctor, 0, len(u.DoctorIDs))
		for _, id := range u.DoctorIDs {
			docs = append(docs, records.AssignedDoctor{ID: id})
		}
		out = append(out, records.Procedure{Name: u.Name, Cost: u.Cost, Medications: u.Medications, Doctors: docs})
	}
	return out
}

func encodeCursor(state []byte) string {
	if len(state) == 0 {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(state)
}

func decodeCursor(cursor string) ([]byte, error) {
	if cursor == "" {
		return nil, nil
	}
	state, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("cassandra: invalid cursor: %w", err)
	}
	return state, nil
}
