package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/plot_receivables/internal/apperrors"
	"github.com/SscSPs/plot_receivables/internal/core/domain"
	portsrepo "github.com/SscSPs/plot_receivables/internal/core/ports/repositories"
	"github.com/SscSPs/plot_receivables/internal/models"
	"github.com/SscSPs/plot_receivables/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository implements the transaction repository ports using pgx.
type PgxTransactionRepository struct {
	BaseRepository
	link PartyLink
}

// newPgxTransactionRepository creates a new repository reading party links the given way.
func newPgxTransactionRepository(pool *pgxpool.Pool, link PartyLink) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		link:           link,
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// ListTransactionsByParty retrieves a party's transactions ordered by date and id.
func (r *PgxTransactionRepository) ListTransactionsByParty(ctx context.Context, partyID int64, filter domain.TransactionFilter) ([]domain.TransactionRecord, error) {
	query, args := r.link.listByPartyQuery(partyID, filter)
	txns, err := r.queryTransactions(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for party %d: %w", partyID, err)
	}
	return txns, nil
}

// ListTransactionsAsOf retrieves all transactions dated on or before asOf, ordered by party, date and id.
func (r *PgxTransactionRepository) ListTransactionsAsOf(ctx context.Context, asOf time.Time, partyID *int64) ([]domain.TransactionRecord, error) {
	query, args := r.link.listAsOfQuery(asOf, partyID)
	txns, err := r.queryTransactions(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions as of %s: %w", asOf.Format(time.DateOnly), err)
	}
	return txns, nil
}

// GetTransactionSetVersion returns the row count and highest id of the matching transactions.
func (r *PgxTransactionRepository) GetTransactionSetVersion(ctx context.Context, partyID *int64) (domain.TransactionSetVersion, error) {
	query, args := r.link.versionQuery(partyID)
	var v domain.TransactionSetVersion
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&v.Count, &v.MaxTransactionID); err != nil {
		return domain.TransactionSetVersion{}, fmt.Errorf("failed to read transaction set version: %w", err)
	}
	return v, nil
}

// AppendTransaction inserts a transaction and returns its id.
// On legacy databases the party is implied by the sale, so a sale id is required.
func (r *PgxTransactionRepository) AppendTransaction(ctx context.Context, rec domain.TransactionRecord) (int64, error) {
	m := mapping.ToModelTransaction(rec)
	now := time.Now().UTC()

	args := []any{m.Date, m.Amount, m.Type, m.SaleID, m.InstallmentID, m.Description, now}
	if r.link == PartyLinkSales {
		if m.SaleID == nil {
			return 0, apperrors.NewAppError(apperrors.CodeValidation, "sale id is required to link a transaction to its party on this database", nil)
		}
	} else {
		args = append(args, m.PartyID)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var id int64
	if err := tx.QueryRow(ctx, r.link.insertQuery(), args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.TransactionRecord, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying transactions: %w", err)
	}
	defer rows.Close()

	result, err := scanTransactions(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactions(result), nil
}

func scanTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	result := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.PartyID,
			&m.Date,
			&m.Type,
			&m.Amount,
			&m.Description,
			&m.SaleID,
			&m.InstallmentID,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning transaction row: %w", err)
		}
		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return result, nil
}
