package domain

type TimesheetStatus string

const (
	TimesheetStatusOpen      TimesheetStatus = "OPEN"
	TimesheetStatusSubmitted TimesheetStatus = "SUBMITTED"
	TimesheetStatusApproved  TimesheetStatus = "APPROVED"
)

// Timesheet tracks operator hours for one rental item over the rental
// period. Rows are generated when a rental with has_timesheet starts.
type Timesheet struct {
	ID           int32           `json:"id"`
	RentalID     int32           `json:"rental_id"`
	RentalItemID int32           `json:"rental_item_id"`
	OperatorID   *int32          `json:"operator_id,omitempty"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	Status       TimesheetStatus `json:"status"`
	CreatedOn    string          `json:"created_on"`
	UpdatedOn    string          `json:"updated_on"`
}
