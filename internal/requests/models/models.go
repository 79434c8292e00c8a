package models

import "time"

// Request is a help or donation request submitted by a visitor. Requester is
// free text, not a users reference: requests come in before the person has an
// account.
type Request struct {
	ID                  int64     `json:"id"`
	Requester           string    `json:"requester"`
	Type                string    `json:"type"`
	DonationName        string    `json:"donation_name,omitempty"`
	DonationDescription string    `json:"donation_description,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}
