package port

import (
	"context"

	"phish-analytics/internal/core/domain"
)

// CampaignRepository stores campaign definitions.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns nil when no campaign has the id.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, adminID string) ([]domain.Campaign, error)
}
