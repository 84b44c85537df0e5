package domain

import "time"

// ProductionRecord is a single production log entry. Field names follow the
// shop floor's own terms: Tanggal is the production date ("YYYY-MM-DD"),
// Mesin the machine, OK/NG the good and reject counts.
type ProductionRecord struct {
	ID           string
	Tanggal      string
	NamaOperator string
	Shift        string
	JenisProses  string
	PartAssy     string
	PartName     string
	Process      string
	Mesin        string
	StartTime    string // "HH:MM"
	FinishTime   string // "HH:MM"
	BreakMenit   int
	Duration     int // minutes, net of break
	OK           int
	NG           int
	QCLine       string
	Note         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductionFilter narrows production listings. Zero values mean
// "don't filter".
type ProductionFilter struct {
	DateFrom    string // inclusive
	DateTo      string // inclusive
	ProcessType string // exact match on JenisProses
	Shift       string // exact match
}
