package domain

import "time"

// Machine is a production machine record.
type Machine struct {
	ID          string
	MachineName string
	CreatedAt   time.Time
}

// Operator is a production operator record.
type Operator struct {
	ID           string
	OperatorName string
	CreatedAt    time.Time
}

// PartDetails pairs the part name and process resolved from a part assy.
type PartDetails struct {
	PartName string
	Process  string
}
