package visit_ledger

import (
	"time"

	"github.com/KirkDiggler/tipsytrek/internal/models"
)

// AddVisitInput contains parameters for adding a visit record
type AddVisitInput struct {
	Visit *models.BarVisit
}

// CreateVisitInput contains parameters for creating a visit record
type CreateVisitInput struct {
	UserID    string
	BarName   string
	Timestamp time.Time
}

// CreateVisitOutput contains the created visit record
type CreateVisitOutput struct {
	Visit *models.BarVisit
}

// GetVisitsForUserInput contains parameters for retrieving a user's visits
type GetVisitsForUserInput struct {
	UserID string

	// Limit keeps only the most recent visits; zero means all of them
	Limit int
}

// GetVisitsForUserOutput contains the result of retrieving a user's visits
type GetVisitsForUserOutput struct {
	Visits []*models.BarVisit
}

// DeleteVisitsForUserInput contains parameters for deleting a user's visits
type DeleteVisitsForUserInput struct {
	UserID string
}
