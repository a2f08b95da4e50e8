package records

import "time"

const (
	EntryConsultation = "Consulta"
	EntryProcedure    = "Procedimiento"

	consultationDescription = "Costo base de consulta médica"
	noDoctorAvailable       = "Médico no disponible"
	noSpecialty             = "Sin especialidad"
)

// History es la respuesta de /paciente/{id}/historial.
type History struct {
	PatientID  string         `json:"idPaciente"`
	TutorID    *string        `json:"idTutor"`
	TutorName  *string        `json:"nombreTutor"`
	Procedures []string       `json:"procedimientosRealizados"`
	Entries    []HistoryEntry `json:"consultas"`
}

type HistoryEntry struct {
	Time        time.Time `json:"fechaHora"`
	Kind        string    `json:"tipo"`
	Description string    `json:"descripcion"`
	Cost        float64   `json:"costo"`
	Medications []string  `json:"medicamentos,omitempty"`
	Doctors     string    `json:"medicos,omitempty"`
}

// Sheet es la respuesta de /paciente/{id}/fichaClinica.
type Sheet struct {
	PatientID string   `json:"idPaciente"`
	TutorID   *string  `json:"idTutor"`
	TutorName *string  `json:"nombreTutor"`
	Vaccines  []string `json:"vacunasAplicadas"`
	Visits    []Visit  `json:"revisiones"`
}

type Visit struct {
	Time             time.Time        `json:"fechaHora"`
	Vitals           Vitals           `json:"datosPaciente"`
	ConsultationCost float64          `json:"costoConsulta"`
	Procedures       []SheetProcedure `json:"procedimientos"`
}

type Vitals struct {
	WeightKg      float64 `json:"pesoKg"`
	BloodPressure string  `json:"presion"`
	TempC         float64 `json:"tempC"`
}

type SheetProcedure struct {
	Name        string   `json:"procedimiento"`
	Cost        float64  `json:"costo"`
	Medications []string `json:"medicamentos"`
}

type RankingEntry struct {
	Procedure string  `json:"procedimiento"`
	Total     int     `json:"total"`
	Spend     float64 `json:"gasto"`
}
