package doctors

type Status string

const (
	StatusActive   Status = "ACTIVO"
	StatusInactive Status = "INACTIVO"
)

// Toggled alterna ACTIVO <-> INACTIVO. Cualquier otro valor vuelve a ACTIVO.
func (s Status) Toggled() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

type Doctor struct {
	ID        string
	Name      string
	Specialty string
	Status    Status
}
