package domain

// rentalTransitions is the single authoritative transition table for the
// rental state machine. Every status change in the system must pass
// through CanTransition; no other code decides transition legality.
var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalStatusPending:               {RentalStatusQuotation, RentalStatusCancelled},
	RentalStatusQuotation:             {RentalStatusQuotationApproved, RentalStatusCancelled},
	RentalStatusQuotationApproved:     {RentalStatusMobilization, RentalStatusActive, RentalStatusCancelled},
	RentalStatusMobilization:          {RentalStatusMobilizationCompleted, RentalStatusCancelled},
	RentalStatusMobilizationCompleted: {RentalStatusActive, RentalStatusCancelled},
	RentalStatusActive:                {RentalStatusExtensionRequested, RentalStatusOverdue, RentalStatusCompleted, RentalStatusCancelled},
	RentalStatusExtensionRequested:    {RentalStatusActive, RentalStatusOverdue, RentalStatusCompleted},
	RentalStatusOverdue:               {RentalStatusExtensionRequested, RentalStatusCompleted},
	RentalStatusCompleted:             {},
	RentalStatusCancelled:             {},
}

// CanTransition reports whether moving a rental from one status to
// another is legal.
func CanTransition(from, to RentalStatus) bool {
	for _, next := range rentalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status has no outgoing transitions.
func (s RentalStatus) IsTerminal() bool {
	return len(rentalTransitions[s]) == 0
}

// IsValid reports whether the status is one the state machine knows.
func (s RentalStatus) IsValid() bool {
	_, ok := rentalTransitions[s]
	return ok
}

func (s RentalStatus) String() string {
	return string(s)
}
