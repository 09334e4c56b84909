package models

// CreateTransaction is the POST payload. Every field is optional; the
// service fills in defaults for anything missing.
type CreateTransaction struct {
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
	Date        *string  `json:"date"`
}

// UpdateTransaction is the PUT payload. Pointer fields distinguish
// "absent, leave unchanged" from an explicit zero value.
type UpdateTransaction struct {
	ID          string   `json:"id"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
	Date        *string  `json:"date"`
}

// DeleteTransaction is the DELETE payload.
type DeleteTransaction struct {
	ID string `json:"id"`
}
