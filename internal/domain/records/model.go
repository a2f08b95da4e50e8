package records

import "time"

// AssignedDoctor es la foto del médico al momento de la ficha. Los stores
// que sólo guardan el id devuelven Name/Specialty vacíos y DoctorResolver
// los completa al leer.
type AssignedDoctor struct {
	ID        string
	Name      string
	Specialty string
}

type Procedure struct {
	Name        string
	Cost        float64
	Medications []string
	Doctors     []AssignedDoctor
}

// ClinicalRecord es una atención (ficha clínica).
type ClinicalRecord struct {
	ID        string
	PatientID string
	TutorID   string
	Time      time.Time

	ConsultationCost float64
	WeightKg         float64
	TempC            float64
	BloodPressure    string

	Vaccines   []string
	Procedures []Procedure
}

// TotalCost = consulta + costo de cada procedimiento.
func (r ClinicalRecord) TotalCost() float64 {
	total := r.ConsultationCost
	for _, p := range r.Procedures {
		total += p.Cost
	}
	return total
}

// MonthKey devuelve "YYYY-MM" según el calendario UTC. Se usa tanto para
// agrupar como para ordenar (lexicográficamente).
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
