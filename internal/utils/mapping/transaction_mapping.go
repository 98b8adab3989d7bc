package mapping

import (
	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/SscSPs/plot_receivables/internal/models"
)

// ToModelTransaction converts a domain TransactionRecord to a model Transaction.
// An empty description is stored as NULL.
func ToModelTransaction(d domain.TransactionRecord) models.Transaction {
	m := models.Transaction{
		TransactionID: d.TransactionID,
		Date:          domain.DateOnly(d.Date),
		Type:          string(d.Type),
		Amount:        d.Amount,
		SaleID:        d.SaleID,
		InstallmentID: d.InstallmentID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.PartyID != 0 {
		partyID := d.PartyID
		m.PartyID = &partyID
	}
	if d.Description != "" {
		desc := d.Description
		m.Description = &desc
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain TransactionRecord
func ToDomainTransaction(m models.Transaction) domain.TransactionRecord {
	d := domain.TransactionRecord{
		TransactionID: m.TransactionID,
		Date:          domain.DateOnly(m.Date),
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		SaleID:        m.SaleID,
		InstallmentID: m.InstallmentID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.PartyID != nil {
		d.PartyID = *m.PartyID
	}
	if m.Description != nil {
		d.Description = *m.Description
	}
	return d
}

// ToDomainTransactions converts a slice of model Transactions, never returning nil
func ToDomainTransactions(ms []models.Transaction) []domain.TransactionRecord {
	ds := make([]domain.TransactionRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
