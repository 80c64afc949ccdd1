package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio entry shown on the public site.
type Project struct {
	ID           uuid.UUID
	Title        string
	Link         string
	Repo         string
	Description  string
	Technologies []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SameContent reports whether p and other carry identical editable fields.
// Identity and timestamps are ignored.
func (p Project) SameContent(other Project) bool {
	return p.Title == other.Title &&
		p.Link == other.Link &&
		p.Repo == other.Repo &&
		p.Description == other.Description &&
		slices.Equal(p.Technologies, other.Technologies)
}
