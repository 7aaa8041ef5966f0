package domain

type ExtensionStatus string

const (
	ExtensionStatusPending  ExtensionStatus = "PENDING"
	ExtensionStatusApproved ExtensionStatus = "APPROVED"
	ExtensionStatusRejected ExtensionStatus = "REJECTED"
)

// ExtensionRequest asks to push a rental's expected end date forward.
type ExtensionRequest struct {
	ID               int32           `json:"id"`
	RentalID         int32           `json:"rental_id"`
	RequestedBy      int32           `json:"requested_by"`
	CurrentEndDate   string          `json:"current_end_date"`
	RequestedEndDate string          `json:"requested_end_date"`
	Reason           string          `json:"reason"`
	Status           ExtensionStatus `json:"status"`
	DecidedBy        *int32          `json:"decided_by,omitempty"`
	DecidedOn        *string         `json:"decided_on,omitempty"`
	CreatedOn        string          `json:"created_on"`
}
