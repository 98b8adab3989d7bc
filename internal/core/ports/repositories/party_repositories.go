package repositories

import (
	"context"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
)

// PartyRepository defines read operations for parties.
type PartyRepository interface {
	// FindPartyByID returns apperrors.ErrNotFound when the party does not exist.
	FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error)

	// FindPartiesByIDs returns the parties that exist among partyIDs, keyed by id.
	FindPartiesByIDs(ctx context.Context, partyIDs []int64) (map[int64]domain.Party, error)
}
