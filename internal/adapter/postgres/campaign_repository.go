package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"phish-analytics/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id::text, admin_id, name, platform, subject, sender_email, created_at`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.AdminID, &c.Name, &c.Platform, &c.Subject, &c.SenderEmail, &c.CreatedAt)
	return c, err
}

// CreateCampaign inserts c and fills CreatedAt. Inserting an existing id is
// a no-op that loads the stored creation time.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO campaigns (id, admin_id, name, platform, subject, sender_email) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (id) DO NOTHING`,
		c.ID, c.AdminID, c.Name, c.Platform, c.Subject, c.SenderEmail,
	)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, `SELECT created_at FROM campaigns WHERE id = $1`, c.ID).Scan(&c.CreatedAt)
}

// GetCampaign returns a campaign by id or nil.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id::text = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns the campaigns of adminID, newest first. An empty
// adminID lists every campaign.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, adminID string) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	var args []any
	if adminID != "" {
		query += ` WHERE admin_id = $1`
		args = append(args, adminID)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}
