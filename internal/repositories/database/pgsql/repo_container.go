package pgsql

import (
	portsrepo "github.com/SscSPs/plot_receivables/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx repositories. link comes from DetectPartyLink, or is
// PartyLinkDirect when probing is disabled.
func NewRepositoryProvider(dbPool *pgxpool.Pool, link PartyLink) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool, link),
		PartyRepo:       newPgxPartyRepository(dbPool),
	}
}
