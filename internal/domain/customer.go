package domain

type Customer struct {
	ID    int32  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	// ERPNextID is the remote document name assigned by the ERP after a
	// successful sync; nil until the first sync lands.
	ERPNextID *string `json:"erpnext_id,omitempty"`
	CreatedOn string  `json:"created_on"`
	UpdatedOn string  `json:"updated_on"`
}
