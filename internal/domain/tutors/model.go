package tutors

// Tutor es el dueño/responsable de uno o más pacientes.
type Tutor struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Address string // opcional
}
