package tutors

import "context"

// Repository lo implementa cada store. GetByID y Update devuelven ErrNotFound
// cuando el tutor no existe.
type Repository interface {
	Create(ctx context.Context, t Tutor) error
	GetByID(ctx context.Context, id string) (Tutor, error)
	List(ctx context.Context) ([]Tutor, error)
	Update(ctx context.Context, t Tutor) error
}
