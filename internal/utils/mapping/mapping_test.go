package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/SscSPs/plot_receivables/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainTransaction_NullableColumns(t *testing.T) {
	m := models.Transaction{
		TransactionID: 9,
		Date:          time.Date(2024, 5, 6, 18, 30, 0, 0, time.UTC),
		Type:          "credit",
		Amount:        decimal.RequireFromString("125.50"),
	}

	d := ToDomainTransaction(m)

	assert.Equal(t, int64(9), d.TransactionID)
	assert.Equal(t, int64(0), d.PartyID)
	assert.Equal(t, "", d.Description)
	assert.Nil(t, d.SaleID)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), d.Date)
	assert.True(t, d.Type.IsCredit())
}

func TestToModelTransaction(t *testing.T) {
	sale := int64(3)
	d := domain.TransactionRecord{
		PartyID:     12,
		Date:        time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		Type:        domain.Debit,
		Amount:      decimal.NewFromInt(5000),
		Description: "Ref: S-3 - Booking amount",
		SaleID:      &sale,
	}

	m := ToModelTransaction(d)

	if assert.NotNil(t, m.PartyID) {
		assert.Equal(t, int64(12), *m.PartyID)
	}
	if assert.NotNil(t, m.Description) {
		assert.Equal(t, "Ref: S-3 - Booking amount", *m.Description)
	}
	assert.Equal(t, &sale, m.SaleID)
	assert.Nil(t, m.InstallmentID)
	assert.Equal(t, "Debit", m.Type)
}

func TestToModelTransaction_EmptyOptionalFields(t *testing.T) {
	m := ToModelTransaction(domain.TransactionRecord{Type: domain.Credit})
	assert.Nil(t, m.PartyID)
	assert.Nil(t, m.Description)
}

func TestToDomainTransactions_NeverNil(t *testing.T) {
	assert.NotNil(t, ToDomainTransactions(nil))
}

func TestToDomainParty(t *testing.T) {
	phone := "+91 98450 00000"
	p := ToDomainParty(models.Party{PartyID: 4, Name: "Lakshmi Estates", PartyType: "Seller", Phone: &phone})

	assert.Equal(t, domain.Party{PartyID: 4, Name: "Lakshmi Estates", Type: domain.PartySeller, Phone: phone}, p)
}
