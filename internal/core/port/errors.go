package port

import "errors"

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidRange     = errors.New("invalid time range")
	ErrInvalidEvent     = errors.New("invalid event")
	ErrInvalidCampaign  = errors.New("invalid campaign")
	ErrNoRecipients     = errors.New("no recipients")
	ErrRateLimited      = errors.New("rate limited")
)
