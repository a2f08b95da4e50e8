package mongodb

import (
	"testing"
	"time"

	"vet-clinic-records/internal/adapters/storage/document"
	"vet-clinic-records/internal/domain/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestScanFilter(t *testing.T) {
	assert.Equal(t, bson.D{}, scanFilter(""))
	assert.Equal(t, bson.D{{Key: "idFicha", Value: bson.D{{Key: "$gt", Value: "abc"}}}}, scanFilter("abc"))
}

func TestRecordDocument_BSONRoundTrip(t *testing.T) {
	rec := records.ClinicalRecord{
		ID: "f1", PatientID: "p1", TutorID: "t1",
		Time:             time.Date(2024, 7, 1, 8, 30, 0, 0, time.UTC),
		ConsultationCost: 30000,
		Vaccines:         []string{"Rabia"},
		Procedures: []records.Procedure{{
			Name: "Sutura", Cost: 12000, Medications: []string{"Cefalexina 500 mg"},
			Doctors: []records.AssignedDoctor{{ID: "m1", Name: "Dra. Soto", Specialty: "Cirugía"}},
		}},
	}

	raw, err := bson.Marshal(document.FromRecord(rec))
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	assert.Equal(t, "p1", m["idPaciente"])

	var doc document.Record
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, rec, doc.Domain())
}

func TestConfig_URI(t *testing.T) {
	assert.Equal(t, "mongodb://db:27017", Config{Host: "db", Port: "27017"}.uri())
	assert.Equal(t, "mongodb+srv://x", Config{URI: "mongodb+srv://x"}.uri())
}
