package mongodb

import (
	"context"

	"vet-clinic-records/internal/adapters/storage/document"
	"vet-clinic-records/internal/domain/records"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// recordRepo guarda la ficha completa con los médicos embebidos
// (idMedico, nombre, especialidad).
type recordRepo struct {
	coll *mongo.Collection
}

var _ records.Repository = (*recordRepo)(nil)

func NewRecordRepo(db *mongo.Database, collection string) records.Repository {
	return &recordRepo{coll: db.Collection(collection)}
}

func (r *recordRepo) Create(ctx context.Context, rec records.ClinicalRecord) error {
	_, err := r.coll.InsertOne(ctx, document.FromRecord(rec))
	return err
}

func (r *recordRepo) ListByPatient(ctx context.Context, patientID string) ([]records.ClinicalRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "fechaHora", Value: -1}})

	cur, err := r.coll.Find(ctx, bson.D{{Key: "idPaciente", Value: patientID}}, findOptions)
	if err != nil {
		return nil, err
	}
	return decodeRecords(ctx, cur)
}

// ScanPage pagina por keyset sobre idFicha; el cursor es el último idFicha.
func (r *recordRepo) ScanPage(ctx context.Context, cursor string, limit int) ([]records.ClinicalRecord, string, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "idFicha", Value: 1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, scanFilter(cursor), findOptions)
	if err != nil {
		return nil, "", err
	}
	out, err := decodeRecords(ctx, cur)
	if err != nil {
		return nil, "", err
	}

	next := ""
	if len(out) == limit {
		next = out[len(out)-1].ID
	}
	return out, next, nil
}

func scanFilter(cursor string) bson.D {
	if cursor == "" {
		return bson.D{}
	}
	return bson.D{{Key: "idFicha", Value: bson.D{{Key: "$gt", Value: cursor}}}}
}

func decodeRecords(ctx context.Context, cur *mongo.Cursor) ([]records.ClinicalRecord, error) {
	defer cur.Close(ctx)

	out := make([]records.ClinicalRecord, 0)
	for cur.Next(ctx) {
		var doc document.Record
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.Domain())
	}
	return out, cur.Err()
}
