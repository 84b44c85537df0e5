package domain

import "time"

// Item is a part master record. PartAssyName is the assembly-level name the
// sales side works with; PartName and Process describe the manufactured part.
type Item struct {
	ID           string
	PartAssyName string
	PartName     string
	Process      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
