package domain

import "time"

// Claim records that a session asserted the right to operate on a card
// it owns. Claims are scoped to the claiming session: a second session
// for the same user does not inherit them.
type Claim struct {
	Token      string    `json:"token"`
	CardNumber string    `json:"card_number"`
	ClaimedAt  time.Time `json:"claimed_at"`
}
