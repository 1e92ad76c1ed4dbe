package domain

import "time"

// Campaign is one batch send of a templated phishing email.
type Campaign struct {
	ID          string    `json:"id"`
	AdminID     string    `json:"adminId"`
	Name        string    `json:"name"`
	Platform    Platform  `json:"platform"`
	Subject     string    `json:"subject"`
	SenderEmail string    `json:"senderEmail"`
	CreatedAt   time.Time `json:"createdAt"`
}
