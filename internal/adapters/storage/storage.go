// Package storage arma el set de repositorios según el STORE configurado.
package storage

import (
	"context"
	"fmt"

	"vet-clinic-records/internal/adapters/storage/cassandra"
	"vet-clinic-records/internal/adapters/storage/dynamodb"
	"vet-clinic-records/internal/adapters/storage/memory"
	"vet-clinic-records/internal/adapters/storage/mongodb"
	"vet-clinic-records/internal/adapters/storage/postgres"
	"vet-clinic-records/internal/config"
	"vet-clinic-records/internal/domain/catalog"
	"vet-clinic-records/internal/domain/doctors"
	"vet-clinic-records/internal/domain/patients"
	"vet-clinic-records/internal/domain/records"
	"vet-clinic-records/internal/domain/tutors"
	"vet-clinic-records/internal/platform/logger"
)

// Prefijos de entorno para la conexión de cada store.
const (
	PostgresEnvPrefix  = "PG_"
	CassandraEnvPrefix = "CASSANDRA_"
	MongoEnvPrefix     = "MONGO_"
	DynamoEnvPrefix    = "DYNAMO_"
)

// Repos es el handle del store: se crea una vez al arrancar y se cierra al
// apagar el proceso.
type Repos struct {
	Store string

	Tutors   tutors.Repository
	Patients patients.Repository
	Doctors  doctors.Repository
	Records  records.Repository
	Catalog  catalog.Repository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping verifica conectividad con el store.
func (r *Repos) Ping(ctx context.Context) error {
	if r.ping == nil {
		return nil
	}
	return r.ping(ctx)
}

// Close libera la conexión. Es seguro llamarlo más de una vez.
func (r *Repos) Close(ctx context.Context) error {
	if r.close == nil {
		return nil
	}
	c := r.close
	r.close = nil
	return c(ctx)
}

// NewMemory devuelve repos en memoria (dev y tests).
func NewMemory() *Repos {
	return &Repos{
		Store:    config.StoreMemory,
		Tutors:   memory.NewTutorRepo(),
		Patients: memory.NewPatientRepo(),
		Doctors:  memory.NewDoctorRepo(),
		Records:  memory.NewRecordRepo(),
		Catalog:  memory.NewCatalogRepo(),
	}
}

// Open conecta con el store de cfg.Store.
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (*Repos, error) {
	if log == nil {
		log = logger.Nop()
	}
	tables := cfg.Tables

	var (
		repos *Repos
		err   error
	)
	switch cfg.Store {
	case config.StoreMemory:
		repos = NewMemory()
	case config.StorePostgres:
		repos, err = openPostgres(tables)
	case config.StoreCassandra:
		repos, err = openCassandra(tables)
	case config.StoreMongoDB:
		repos, err = openMongo(ctx, tables)
	case config.StoreDynamoDB:
		repos, err = openDynamo(ctx, tables)
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
	if err != nil {
		return nil, err
	}

	log.Info("store opened", map[string]any{"store": repos.Store})
	return repos, nil
}

func openPostgres(t config.Tables) (*Repos, error) {
	db, err := postgres.Setup(PostgresEnvPrefix)
	if err != nil {
		return nil, err
	}
	return &Repos{
		Store:    config.StorePostgres,
		Tutors:   postgres.NewTutorsRepo(db, t.Tutors),
		Patients: postgres.NewPatientsRepo(db, t.Patients),
		Doctors:  postgres.NewDoctorsRepo(db, t.Doctors),
		Records:  postgres.NewRecordsRepo(db, t.Records),
		Catalog:  postgres.NewCatalogRepo(db, t.Medications),
		ping:     db.PingContext,
		close:    func(context.Context) error { return db.Close() },
	}, nil
}

func openCassandra(t config.Tables) (*Repos, error) {
	session, err := cassandra.Setup(CassandraEnvPrefix)
	if err != nil {
		return nil, err
	}
	return &Repos{
		Store:    config.StoreCassandra,
		Tutors:   cassandra.NewTutorRepo(session, t.Tutors),
		Patients: cassandra.NewPatientRepo(session, t.Patients),
		Doctors:  cassandra.NewDoctorRepo(session, t.Doctors),
		Records:  cassandra.NewRecordRepo(session, t.Records),
		Catalog:  cassandra.NewCatalogRepo(session, t.Medications),
		ping: func(ctx context.Context) error {
			return session.Query(`SELECT release_version FROM system.local`).WithContext(ctx).Exec()
		},
		close: func(context.Context) error {
			session.Close()
			return nil
		},
	}, nil
}

func openMongo(ctx context.Context, t config.Tables) (*Repos, error) {
	db, err := mongodb.Setup(ctx, MongoEnvPrefix)
	if err != nil {
		return nil, err
	}
	return &Repos{
		Store:    config.StoreMongoDB,
		Tutors:   mongodb.NewTutorRepo(db, t.Tutors),
		Patients: mongodb.NewPatientRepo(db, t.Patients),
		Doctors:  mongodb.NewDoctorRepo(db, t.Doctors),
		Records:  mongodb.NewRecordRepo(db, t.Records),
		Catalog:  mongodb.NewCatalogRepo(db, t.Medications),
		ping: func(ctx context.Context) error {
			return db.Client().Ping(ctx, nil)
		},
		close: func(ctx context.Context) error {
			return db.Client().Disconnect(ctx)
		},
	}, nil
}

func openDynamo(ctx context.Context, t config.Tables) (*Repos, error) {
	client, err := dynamodb.Setup(ctx, DynamoEnvPrefix)
	if err != nil {
		return nil, err
	}
	return &Repos{
		Store:    config.StoreDynamoDB,
		Tutors:   dynamodb.NewTutorRepo(client, t.Tutors),
		Patients: dynamodb.NewPatientRepo(client, t.Patients),
		Doctors:  dynamodb.NewDoctorRepo(client, t.Doctors),
		Records:  dynamodb.NewRecordRepo(client, t.Records),
		Catalog:  dynamodb.NewCatalogRepo(client, t.Medications),
		ping: func(ctx context.Context) error {
			return dynamodb.Ping(ctx, client, t.Records)
		},
	}, nil
}
