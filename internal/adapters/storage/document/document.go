// Package document define la forma persistida de las entidades en los stores
// de documentos (MongoDB, DynamoDB) y del JSONB de procedimientos en Postgres.
// Los nombres de campo son los mismos en los tres.
package document

import (
	"time"

	"vet-clinic-records/internal/domain/catalog"
	"vet-clinic-records/internal/domain/doctors"
	"vet-clinic-records/internal/domain/patients"
	"vet-clinic-records/internal/domain/records"
	"vet-clinic-records/internal/domain/tutors"
)

type Tutor struct {
	ID      string `json:"idTutor" bson:"idTutor" dynamodbav:"idTutor"`
	Name    string `json:"nombre" bson:"nombre" dynamodbav:"nombre"`
	Email   string `json:"email" bson:"email" dynamodbav:"email"`
	Phone   string `json:"telefono" bson:"telefono" dynamodbav:"telefono"`
	Address string `json:"direccion,omitempty" bson:"direccion,omitempty" dynamodbav:"direccion,omitempty"`
}

func FromTutor(t tutors.Tutor) Tutor {
	return Tutor{ID: t.ID, Name: t.Name, Email: t.Email, Phone: t.Phone, Address: t.Address}
}

func (d Tutor) Domain() tutors.Tutor {
	return tutors.Tutor{ID: d.ID, Name: d.Name, Email: d.Email, Phone: d.Phone, Address: d.Address}
}

type Patient struct {
	ID      string `json:"idPaciente" bson:"idPaciente" dynamodbav:"idPaciente"`
	TutorID string `json:"idTutor" bson:"idTutor" dynamodbav:"idTutor"`
	Name    string `json:"nombre" bson:"nombre" dynamodbav:"nombre"`
	Species string `json:"especie" bson:"especie" dynamodbav:"especie"`
	Breed   string `json:"raza" bson:"raza" dynamodbav:"raza"`
	Sex     string `json:"sexo" bson:"sexo" dynamodbav:"sexo"`
}

func FromPatient(p patients.Patient) Patient {
	return Patient{ID: p.ID, TutorID: p.TutorID, Name: p.Name, Species: p.Species, Breed: p.Breed, Sex: p.Sex}
}

func (d Patient) Domain() patients.Patient {
	return patients.Patient{ID: d.ID, TutorID: d.TutorID, Name: d.Name, Species: d.Species, Breed: d.Breed, Sex: d.Sex}
}

type Doctor struct {
	ID        string `json:"idMedico" bson:"idMedico" dynamodbav:"idMedico"`
	Name      string `json:"nombre" bson:"nombre" dynamodbav:"nombre"`
	Specialty string `json:"especialidad" bson:"especialidad" dynamodbav:"especialidad"`
	Status    string `json:"estado" bson:"estado" dynamodbav:"estado"`
}

func FromDoctor(d doctors.Doctor) Doctor {
	return Doctor{ID: d.ID, Name: d.Name, Specialty: d.Specialty, Status: string(d.Status)}
}

func (d Doctor) Domain() doctors.Doctor {
	return doctors.Doctor{ID: d.ID, Name: d.Name, Specialty: d.Specialty, Status: doctors.Status(d.Status)}
}

type Medication struct {
	ID   string  `json:"idMedicamento" bson:"idMedicamento" dynamodbav:"idMedicamento"`
	Name string  `json:"nombre" bson:"nombre" dynamodbav:"nombre"`
	Cost float64 `json:"costo" bson:"costo" dynamodbav:"costo"`
}

func (d Medication) Domain() catalog.Medication {
	return catalog.Medication{ID: d.ID, Name: d.Name, Cost: d.Cost}
}

type AssignedDoctor struct {
	ID        string `json:"idMedico" bson:"idMedico" dynamodbav:"idMedico"`
	Name      string `json:"nombre,omitempty" bson:"nombre,omitempty" dynamodbav:"nombre,omitempty"`
	Specialty string `json:"especialidad,omitempty" bson:"especialidad,omitempty" dynamodbav:"especialidad,omitempty"`
}

type Procedure struct {
	Name        string           `json:"procedimiento" bson:"procedimiento" dynamodbav:"procedimiento"`
	Cost        float64          `json:"costo" bson:"costo" dynamodbav:"costo"`
	Medications []string         `json:"medicamentos" bson:"medicamentos" dynamodbav:"medicamentos"`
	Doctors     []AssignedDoctor `json:"medicosAsignados" bson:"medicosAsignados" dynamodbav:"medicosAsignados"`
}

// Record es la ficha completa. En DynamoDB fechaHora se guarda como string
// (ver el adapter), por eso no lleva tag dynamodbav.
type Record struct {
	ID               string      `json:"idFicha" bson:"idFicha"`
	PatientID        string      `json:"idPaciente" bson:"idPaciente"`
	TutorID          string      `json:"idTutor" bson:"idTutor"`
	Time             time.Time   `json:"fechaHora" bson:"fechaHora"`
	ConsultationCost float64     `json:"costoConsulta" bson:"costoConsulta"`
	WeightKg         float64     `json:"pesoKg" bson:"pesoKg"`
	TempC            float64     `json:"tempC" bson:"tempC"`
	BloodPressure    string      `json:"presion" bson:"presion"`
	Vaccines         []string    `json:"vacunas" bson:"vacunas"`
	Procedures       []Procedure `json:"procedimientos" bson:"procedimientos"`
}

func FromProcedures(in []records.Procedure) []Procedure {
	out := make([]Procedure, 0, len(in))
	for _, p := range in {
		docs := make([]AssignedDoctor, 0, len(p.Doctors))
		for _, d := range p.Doctors {
			docs = append(docs, AssignedDoctor{ID: d.ID, Name: d.Name, Specialty: d.Specialty})
		}
		meds := p.Medications
		if meds == nil {
			meds = []string{}
		}
		out = append(out, Procedure{Name: p.Name, Cost: p.Cost, Medications: meds, Doctors: docs})
	}
	return out
}

func ToProcedures(in []Procedure) []records.Procedure {
	out := make([]records.Procedure, 0, len(in))
	for _, p := range in {
		docs := make([]records.AssignedDoctor, 0, len(p.Doctors))
		for _, d := range p.Doctors {
			docs = append(docs, records.AssignedDoctor{ID: d.ID, Name: d.Name, Specialty: d.Specialty})
		}
		out = append(out, records.Procedure{Name: p.Name, Cost: p.Cost, Medications: p.Medications, Doctors: docs})
	}
	return out
}

func FromRecord(r records.ClinicalRecord) Record {
	vac := r.Vaccines
	if vac == nil {
		vac = []string{}
	}
	return Record{
		ID:               r.ID,
		PatientID:        r.PatientID,
		TutorID:          r.TutorID,
		Time:             r.Time.UTC(),
		ConsultationCost: r.ConsultationCost,
		WeightKg:         r.WeightKg,
		TempC:            r.TempC,
		BloodPressure:    r.BloodPressure,
		Vaccines:         vac,
		Procedures:       FromProcedures(r.Procedures),
	}
}

func (d Record) Domain() records.ClinicalRecord {
	return records.ClinicalRecord{
		ID:               d.ID,
		PatientID:        d.PatientID,
		TutorID:          d.TutorID,
		Time:             d.Time.UTC(),
		ConsultationCost: d.ConsultationCost,
		WeightKg:         d.WeightKg,
		TempC:            d.TempC,
		BloodPressure:    d.BloodPressure,
		Vaccines:         d.Vaccines,
		Procedures:       ToProcedures(d.Procedures),
	}
}
