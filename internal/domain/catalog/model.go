package catalog

// Medication es una entrada del catálogo de medicamentos. Name es la etiqueta
// completa tal como aparece en las fichas (ej. "Amoxicilina 250 mg").
type Medication struct {
	ID   string
	Name string
	Cost float64
}
