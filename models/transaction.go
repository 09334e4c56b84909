package models

// Transaction is a single income or expense record. The sign of Amount
// encodes the direction: positive is income, negative is expense.
type Transaction struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"` // ISO YYYY-MM-DD, compared lexically
}

// Summary holds the aggregate totals stored alongside the transactions.
// The service carries it through saves untouched; consumers recompute
// totals from the transaction list.
type Summary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Balance       float64 `json:"balance"`
}

// Document is the unit of persistence: the whole transaction collection
// serialized as one JSON document on every mutation.
type Document struct {
	Transactions []Transaction `json:"transactions"`
	Summary      Summary       `json:"summary"`
}
