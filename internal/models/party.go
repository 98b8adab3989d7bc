package models

// Party mirrors a row of the parties table.
type Party struct {
	PartyID   int64   `db:"party_id"`
	Name      string  `db:"name"`
	PartyType string  `db:"party_type"`
	Address   *string `db:"address"`
	Phone     *string `db:"phone"`
	Email     *string `db:"email"`
	AuditFields
}
