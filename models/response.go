package models

// TransactionsPage is the paginated GET response.
type TransactionsPage struct {
	Data  []Transaction `json:"data"`
	Total int           `json:"total" example:"42"`
	Page  int           `json:"page" example:"1"`
	Limit int           `json:"limit" example:"10"`
}

// DeleteResponse acknowledges a successful DELETE.
type DeleteResponse struct {
	Success bool `json:"success" example:"true"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"Transaction not found"`
}
