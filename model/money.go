package model

// MonetaryValue is a normalized money amount with an optional currency
// symbol. Absence is represented by nil fields, never by an error.
type MonetaryValue struct {
	Amount   *float64 `json:"amount"`
	Currency *string  `json:"currency"`
}
