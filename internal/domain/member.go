package domain

import "time"

// MembershipStatus is the outcome of a membership lookup.
type MembershipStatus string

const (
	// MembershipValid means an active membership record exists.
	MembershipValid MembershipStatus = "VALID"
	// MembershipNoRecord means no membership row exists for the identity.
	// The caller should be told to register; checkout treats it as a hard
	// failure all the same.
	MembershipNoRecord MembershipStatus = "NO_RECORD"
	// MembershipInvalid means a record exists but the membership has lapsed.
	MembershipInvalid MembershipStatus = "INVALID"
)

type Member struct {
	ID       int32     `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Valid    bool      `json:"valid"`
	Admin    bool      `json:"admin"`
	JoinedOn time.Time `json:"joined_on"`
}
