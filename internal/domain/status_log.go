package domain

// StatusLog is an append-only audit row recording one rental status
// transition. Exactly one row is written per successful transition; rows
// are never updated or deleted. ActorID is nil for system-initiated
// transitions such as the overdue sweep.
type StatusLog struct {
	ID         int32        `json:"id"`
	RentalID   int32        `json:"rental_id"`
	FromStatus RentalStatus `json:"from_status"`
	ToStatus   RentalStatus `json:"to_status"`
	ActorID    *int32       `json:"actor_id,omitempty"`
	Notes      string       `json:"notes"`
	CreatedOn  string       `json:"created_on"`
}
