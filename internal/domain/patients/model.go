package patients

// Patient es la mascota atendida. Pertenece a exactamente un tutor.
type Patient struct {
	ID      string
	TutorID string

	Name    string
	Species string
	Breed   string
	Sex     string
}
