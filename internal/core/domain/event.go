package domain

import (
	"encoding/json"
	"time"
)

// Action is the kind of interaction recorded for an employee within a
// campaign.
type Action string

const (
	ActionSent      Action = "sent"
	ActionClicked   Action = "clicked"
	ActionSubmitted Action = "submitted"
)

// Valid reports whether a is one of the canonical actions. "opened" is not.
func (a Action) Valid() bool {
	switch a {
	case ActionSent, ActionClicked, ActionSubmitted:
		return true
	}
	return false
}

// Failure reports whether the action means the employee fell for the lure.
func (a Action) Failure() bool {
	return a == ActionClicked || a == ActionSubmitted
}

// Platform is the impersonated brand behind a fake login page.
type Platform string

const (
	PlatformGoogle    Platform = "google"
	PlatformMicrosoft Platform = "microsoft"
	PlatformPayPal    Platform = "paypal"
	PlatformHSBC      Platform = "hsbc"
	PlatformCitibank  Platform = "citibank"
)

// Platforms lists every supported brand.
var Platforms = []Platform{PlatformGoogle, PlatformMicrosoft, PlatformPayPal, PlatformHSBC, PlatformCitibank}

// Valid reports whether p is a supported brand.
func (p Platform) Valid() bool {
	for _, v := range Platforms {
		if p == v {
			return true
		}
	}
	return false
}

// Event is one observed interaction. Events are immutable once stored.
// Timestamp is the zero time when the store holds no usable value.
// EmployeeDepartment is a denormalized department tag, empty when unknown.
type Event struct {
	ID                 int64           `json:"id"`
	CampaignID         string          `json:"campaignId"`
	EmployeeID         string          `json:"employeeId"`
	Platform           Platform        `json:"platform"`
	Action             Action          `json:"action"`
	Timestamp          time.Time       `json:"timestamp"`
	Data               json.RawMessage `json:"data,omitempty"`
	EmployeeDepartment string          `json:"employeeDepartment,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}
