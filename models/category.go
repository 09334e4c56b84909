package models

// Recommended categories. The service does not reject other values; the
// set exists for form layers and documentation.
const (
	CategoryFood          = "Food"
	CategorySalary        = "Salary"
	CategoryRent          = "Rent"
	CategoryEntertainment = "Entertainment"
	CategoryUtilities     = "Utilities"
	CategoryOther         = "Other"
)

var Categories = []string{
	CategoryFood,
	CategorySalary,
	CategoryRent,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryOther,
}
