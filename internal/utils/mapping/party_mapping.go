package mapping

import (
	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/SscSPs/plot_receivables/internal/models"
)

// ToDomainParty converts a model Party to a domain Party
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID: m.PartyID,
		Name:    m.Name,
		Type:    domain.PartyType(m.PartyType),
		Address: deref(m.Address),
		Phone:   deref(m.Phone),
		Email:   deref(m.Email),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
