package domain

import "time"

// Customer is a customer master record.
type Customer struct {
	ID           string
	CustomerName string
	Address      string
	Phone        string
	Email        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
