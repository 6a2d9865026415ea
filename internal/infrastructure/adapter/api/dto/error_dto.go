package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Category is the database failure category, set only for database failures
	Category string `json:"category,omitempty"`
	// Constraint, Table and Columns are set when the failure was attributed to a named constraint
	Constraint string   `json:"constraint,omitempty"`
	Table      string   `json:"table,omitempty"`
	Columns    []string `json:"columns,omitempty"`
}
