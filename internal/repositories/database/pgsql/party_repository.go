package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/plot_receivables/internal/apperrors"
	"github.com/SscSPs/plot_receivables/internal/core/domain"
	portsrepo "github.com/SscSPs/plot_receivables/internal/core/ports/repositories"
	"github.com/SscSPs/plot_receivables/internal/models"
	"github.com/SscSPs/plot_receivables/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const partySelect = `SELECT party_id, name, party_type, address, phone, email, created_at, updated_at FROM parties`

// PgxPartyRepository implements the PartyRepository port using pgx.
type PgxPartyRepository struct {
	BaseRepository
}

func newPgxPartyRepository(pool *pgxpool.Pool) *PgxPartyRepository {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartyRepository = (*PgxPartyRepository)(nil)

// FindPartyByID retrieves a party by its id.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error) {
	row := r.Pool.QueryRow(ctx, partySelect+` WHERE party_id = $1`, partyID)

	m, err := scanParty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewAppError(apperrors.CodeNotFound, fmt.Sprintf("party %d not found", partyID), err)
		}
		return nil, fmt.Errorf("failed to find party by ID %d: %w", partyID, err)
	}
	party := mapping.ToDomainParty(m)
	return &party, nil
}

// FindPartiesByIDs retrieves the existing parties among partyIDs.
func (r *PgxPartyRepository) FindPartiesByIDs(ctx context.Context, partyIDs []int64) (map[int64]domain.Party, error) {
	result := make(map[int64]domain.Party, len(partyIDs))
	if len(partyIDs) == 0 {
		return result, nil
	}

	rows, err := r.Pool.Query(ctx, partySelect+` WHERE party_id = ANY($1)`, partyIDs)
	if err != nil {
		return nil, fmt.Errorf("error querying parties: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning party row: %w", err)
		}
		result[m.PartyID] = mapping.ToDomainParty(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating party rows: %w", err)
	}
	return result, nil
}

func scanParty(row pgx.Row) (models.Party, error) {
	var m models.Party
	err := row.Scan(&m.PartyID, &m.Name, &m.PartyType, &m.Address, &m.Phone, &m.Email, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}
