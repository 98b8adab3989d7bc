package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PartyLink says how a transaction row is tied to its party.
type PartyLink int

const (
	// PartyLinkDirect reads transactions.party_id.
	PartyLinkDirect PartyLink = iota
	// PartyLinkSales resolves the party through the sale's buyer or seller.
	// A transaction on a sale with both a buyer and a seller belongs to both.
	PartyLinkSales
)

func (l PartyLink) String() string {
	if l == PartyLinkSales {
		return "sales"
	}
	return "direct"
}

// DetectPartyLink checks whether transactions.party_id exists.
func DetectPartyLink(ctx context.Context, pool *pgxpool.Pool) (PartyLink, error) {
	query := `
		SELECT COUNT(*)
		FROM information_schema.columns
		WHERE table_schema = current_schema()
			AND table_name = 'transactions'
			AND column_name = 'party_id'
	`
	var n int
	if err := pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return PartyLinkDirect, fmt.Errorf("failed to probe transactions schema: %w", err)
	}
	if n == 0 {
		return PartyLinkSales, nil
	}
	return PartyLinkDirect, nil
}

const transactionColumns = `t.transaction_id, %s, t.date, t.type, t.amount, t.description, t.sale_id, t.installment_id, t.created_at, t.updated_at`

// partyColumn is the expression yielding a row's party id.
func (l PartyLink) partyColumn() string {
	if l == PartyLinkSales {
		return "p.party_id"
	}
	return "t.party_id"
}

func (l PartyLink) from() string {
	if l == PartyLinkSales {
		return `FROM transactions t
		JOIN sales s ON t.sale_id = s.sale_id
		JOIN parties p ON (s.buyer_id = p.party_id OR s.seller_id = p.party_id)`
	}
	return "FROM transactions t"
}

// txnQuery accumulates WHERE conditions with positional arguments.
type txnQuery struct {
	conds []string
	args  []any
}

func (q *txnQuery) where(cond string, arg any) {
	q.args = append(q.args, arg)
	q.conds = append(q.conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(q.args))))
}

func (q *txnQuery) whereClause() string {
	if len(q.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(q.conds, " AND ")
}

func (l PartyLink) selectTransactions(q *txnQuery, orderBy string) string {
	return fmt.Sprintf("SELECT %s\n\t\t%s\n\t\t%s\n\t\tORDER BY %s",
		fmt.Sprintf(transactionColumns, l.partyColumn()), l.from(), q.whereClause(), orderBy)
}

// listByPartyQuery selects one party's transactions within the optional bounds.
func (l PartyLink) listByPartyQuery(partyID int64, filter domain.TransactionFilter) (string, []any) {
	q := &txnQuery{}
	q.where(l.partyColumn()+" = ?", partyID)
	if filter.From != nil {
		q.where("t.date >= ?", domain.DateOnly(*filter.From))
	}
	if filter.To != nil {
		q.where("t.date <= ?", domain.DateOnly(*filter.To))
	}
	return l.selectTransactions(q, "t.date ASC, t.transaction_id ASC"), q.args
}

// listAsOfQuery selects the portfolio as of a date, grouped by party.
func (l PartyLink) listAsOfQuery(asOf time.Time, partyID *int64) (string, []any) {
	q := &txnQuery{}
	q.where("t.date <= ?", domain.DateOnly(asOf))
	if partyID != nil {
		q.where(l.partyColumn()+" = ?", *partyID)
	} else if l == PartyLinkDirect {
		q.conds = append(q.conds, "t.party_id IS NOT NULL")
	}
	return l.selectTransactions(q, l.partyColumn()+" ASC, t.date ASC, t.transaction_id ASC"), q.args
}

// versionQuery counts rows and reads the highest id, optionally for one party.
func (l PartyLink) versionQuery(partyID *int64) (string, []any) {
	q := &txnQuery{}
	if partyID != nil {
		q.where(l.partyColumn()+" = ?", *partyID)
	}
	return fmt.Sprintf("SELECT COUNT(*), COALESCE(MAX(t.transaction_id), 0)\n\t\t%s\n\t\t%s", l.from(), q.whereClause()), q.args
}

// insertQuery returns the INSERT for a new transaction. Legacy tables have no party_id column.
func (l PartyLink) insertQuery() string {
	if l == PartyLinkSales {
		return `
		INSERT INTO transactions (date, amount, type, sale_id, installment_id, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING transaction_id
	`
	}
	return `
		INSERT INTO transactions (date, amount, type, sale_id, installment_id, description, created_at, updated_at, party_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7, $8)
		RETURNING transaction_id
	`
}
