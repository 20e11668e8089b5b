package domain

// BarberService is an entry of the service catalog (haircut, beard trim, ...)
type BarberService struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
	IsActive        bool
}
