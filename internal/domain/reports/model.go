package reports

// Filas de cada dashboard. Los montos van redondeados a 2 decimales.

type MonthlyVolume struct {
	Month    string  `json:"mes"`
	Visits   int     `json:"totalAtenciones"`
	AvgSpend float64 `json:"gastoPromedio"`
}

type SpecialtyCount struct {
	Specialty string `json:"especialidad"`
	Total     int    `json:"total"`
}

type MedicationCount struct {
	Medication string `json:"medicamento"`
	Count      int    `json:"count"`
}

type MonthlyBalance struct {
	Month   string  `json:"mes"`
	Revenue float64 `json:"ingresos"`
	MedCost float64 `json:"costeMeds"`
	Profit  float64 `json:"ganancia"`
}

type VaccineDemand struct {
	Month        string `json:"mes"`
	Vaccine      string `json:"vacuna"`
	Applications int    `json:"aplicaciones"`
}
