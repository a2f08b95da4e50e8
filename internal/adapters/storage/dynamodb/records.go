package dynamodb

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vet-clinic-records/internal/adapters/storage/document"
	"vet-clinic-records/internal/domain/records"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// timeLayout tiene ancho fijo para que el orden lexicográfico de la sort key
// coincida con el cronológico.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// maxScanLimit acota el Limit de cada Scan. DynamoDB corta la página en 1 MB
// antes de llegar a valores mayores.
const maxScanLimit = 1000

// recordItem es la ficha en DynamoDB: partición idPaciente, orden fechaHora.
// Los médicos van embebidos.
type recordItem struct {
	PatientID        string               `dynamodbav:"idPaciente"`
	Time             string               `dynamodbav:"fechaHora"`
	ID               string               `dynamodbav:"idFicha"`
	TutorID          string               `dynamodbav:"idTutor"`
	ConsultationCost float64              `dynamodbav:"costoConsulta"`
	WeightKg         float64              `dynamodbav:"pesoKg"`
	TempC            float64              `dynamodbav:"tempC"`
	BloodPressure    string               `dynamodbav:"presion"`
	Vaccines         []string             `dynamodbav:"vacunas"`
	Procedures       []document.Procedure `dynamodbav:"procedimientos"`
}

func toItem(rec records.ClinicalRecord) recordItem {
	doc := document.FromRecord(rec)
	return recordItem{
		PatientID:        doc.PatientID,
		Time:             doc.Time.Format(timeLayout),
		ID:               doc.ID,
		TutorID:          doc.TutorID,
		ConsultationCost: doc.ConsultationCost,
		WeightKg:         doc.WeightKg,
		TempC:            doc.TempC,
		BloodPressure:    doc.BloodPressure,
		Vaccines:         doc.Vaccines,
		Procedures:       doc.Procedures,
	}
}

func (it recordItem) domain() (records.ClinicalRecord, error) {
	ts, err := time.Parse(time.RFC3339Nano, it.Time)
	if err != nil {
		return records.ClinicalRecord{}, fmt.Errorf("dynamodb: fechaHora of %s: %w", it.ID, err)
	}
	return document.Record{
		ID:               it.ID,
		PatientID:        it.PatientID,
		TutorID:          it.TutorID,
		Time:             ts,
		ConsultationCost: it.ConsultationCost,
		WeightKg:         it.WeightKg,
		TempC:            it.TempC,
		BloodPressure:    it.BloodPressure,
		Vaccines:         it.Vaccines,
		Procedures:       it.Procedures,
	}.Domain(), nil
}

type recordRepo struct {
	api  API
	name string
}

var _ records.Repository = (*recordRepo)(nil)

func NewRecordRepo(api API, tableName string) records.Repository {
	return &recordRepo{api: api, name: tableName}
}

func (r *recordRepo) Create(ctx context.Context, rec records.ClinicalRecord) error {
	t := table{api: r.api, name: r.name, pk: "idPaciente"}
	return t.create(ctx, toItem(rec))
}

// ListByPatient consulta la partición del paciente en orden descendente.
func (r *recordRepo) ListByPatient(ctx context.Context, patientID string) ([]records.ClinicalRecord, error) {
	keyCond := expression.Key("idPaciente").Equal(expression.Value(patientID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, err
	}

	p := dynamodb.NewQueryPaginator(r.api, &dynamodb.QueryInput{
		TableName:                 aws.String(r.name),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(false),
	})

	out := make([]records.ClinicalRecord, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		recs, err := decodeItems(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	return out, nil
}

// ScanPage hace un Scan acotado; el cursor es LastEvaluatedKey en JSON+base64.
func (r *recordRepo) ScanPage(ctx context.Context, cursor string, limit int) ([]records.ClinicalRecord, string, error) {
	start, err := decodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	out, err := r.api.Scan(ctx, &dynamodb.ScanInput{
		TableName:         aws.String(r.name),
		Limit:             aws.Int32(scanLimit(limit)),
		ExclusiveStartKey: start,
	})
	if err != nil {
		return nil, "", err
	}

	recs, err := decodeItems(out.Items)
	if err != nil {
		return nil, "", err
	}
	next, err := encodeCursor(out.LastEvaluatedKey)
	if err != nil {
		return nil, "", err
	}
	return recs, next, nil
}

// scanLimit: <= 0 o fuera de rango => maxScanLimit.
func scanLimit(limit int) int32 {
	if limit <= 0 || limit > maxScanLimit {
		return maxScanLimit
	}
	return int32(limit)
}

func decodeItems(items []map[string]types.AttributeValue) ([]records.ClinicalRecord, error) {
	var raw []recordItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, err
	}
	out := make([]records.ClinicalRecord, 0, len(raw))
	for _, it := range raw {
		rec, err := it.domain()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

var errInvalidCursor = errors.New("dynamodb: invalid cursor")

// Las claves de la tabla de fichas son strings, así que el cursor es un
// map[string]string serializado.
func encodeCursor(key map[string]types.AttributeValue) (string, error) {
	if len(key) == 0 {
		return "", nil
	}
	var m map[string]string
	if err := attributevalue.UnmarshalMap(key, &m); err != nil {
		return "", err
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeCursor(cursor string) (map[string]types.AttributeValue, error) {
	if cursor == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidCursor, err)
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidCursor, err)
	}
	return attributevalue.MarshalMap(m)
}
