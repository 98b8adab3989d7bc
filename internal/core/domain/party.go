package domain

// PartyType classifies a party participating in sales.
type PartyType string

const (
	PartyBuyer  PartyType = "Buyer"
	PartySeller PartyType = "Seller"
	PartyAgent  PartyType = "Agent"
)

// Party is a buyer, seller or agent.
type Party struct {
	PartyID int64     `json:"partyID"`
	Name    string    `json:"name"`
	Type    PartyType `json:"type"`
	Address string    `json:"address"`
	Phone   string    `json:"phone"`
	Email   string    `json:"email"`
}
