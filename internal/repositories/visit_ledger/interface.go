package visit_ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tipsytrek/internal/repositories/visit_ledger Repository

import (
	"context"
)

// Repository defines the interface for bar visit history
type Repository interface {
	// AddVisit adds a visit record to the ledger
	AddVisit(ctx context.Context, input *AddVisitInput) error

	// CreateVisit creates a new visit record with a generated ID
	CreateVisit(ctx context.Context, input *CreateVisitInput) (*CreateVisitOutput, error)

	// GetVisitsForUser retrieves a user's visits, oldest first
	GetVisitsForUser(ctx context.Context, input *GetVisitsForUserInput) (*GetVisitsForUserOutput, error)

	// DeleteVisitsForUser removes a user's whole visit history
	DeleteVisitsForUser(ctx context.Context, input *DeleteVisitsForUserInput) error
}
