package db

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"phish-analytics/internal/core/domain"
	"phish-analytics/internal/core/port"
)

// seedNamespace derives stable ids for fixture rows so that seeding the same
// file twice hits the same primary keys.
var seedNamespace = uuid.MustParse("0b5c7a52-4f0e-4c59-9d0a-5c2e1f7a9b31")

// Fixture is a demo dataset: a roster and the campaigns sent to it.
type Fixture struct {
	AdminID   string            `yaml:"admin_id"`
	Employees []FixtureEmployee `yaml:"employees"`
	Campaigns []FixtureCampaign `yaml:"campaigns"`
}

type FixtureEmployee struct {
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
	Email      string `yaml:"email"`
	Department string `yaml:"department"`
}

// FixtureCampaign is sent at SentAt to Recipients (emails), or to the whole
// roster when Recipients is empty.
type FixtureCampaign struct {
	Name         string               `yaml:"name"`
	Platform     string               `yaml:"platform"`
	Subject      string               `yaml:"subject"`
	SenderEmail  string               `yaml:"sender_email"`
	SentAt       time.Time            `yaml:"sent_at"`
	Recipients   []string             `yaml:"recipients"`
	Interactions []FixtureInteraction `yaml:"interactions"`
}

type FixtureInteraction struct {
	Email  string    `yaml:"email"`
	Action string    `yaml:"action"`
	At     time.Time `yaml:"at"`
}

// LoadFixture reads and validates a YAML fixture file.
func LoadFixture(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseFixture(f)
}

// ParseFixture decodes and validates a YAML fixture.
func ParseFixture(r io.Reader) (*Fixture, error) {
	var fx Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if err := fx.validate(); err != nil {
		return nil, err
	}
	return &fx, nil
}

func (fx *Fixture) validate() error {
	emails := make(map[string]struct{}, len(fx.Employees))
	for i, e := range fx.Employees {
		email := normalizeEmail(e.Email)
		if email == "" {
			return fmt.Errorf("employee %d: email is required", i)
		}
		emails[email] = struct{}{}
	}
	for _, c := range fx.Campaigns {
		if c.Name == "" {
			return errors.New("campaign without name")
		}
		if !domain.Platform(c.Platform).Valid() {
			return fmt.Errorf("campaign %q: unknown platform %q", c.Name, c.Platform)
		}
		for _, r := range c.Recipients {
			if _, ok := emails[normalizeEmail(r)]; !ok {
				return fmt.Errorf("campaign %q: unknown recipient %q", c.Name, r)
			}
		}
		for _, in := range c.Interactions {
			if !domain.Action(in.Action).Failure() {
				return fmt.Errorf("campaign %q: interaction action must be clicked or submitted, got %q", c.Name, in.Action)
			}
			if _, ok := emails[normalizeEmail(in.Email)]; !ok {
				return fmt.Errorf("campaign %q: unknown employee %q", c.Name, in.Email)
			}
		}
	}
	return nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Seeder writes a fixture through the repositories. Employees and campaigns
// are idempotent thanks to derived ids; events for a campaign are only
// written while that campaign has none.
type Seeder struct {
	Employees port.EmployeeRepository
	Campaigns port.CampaignRepository
	Events    port.EventRepository
}

// Seed inserts demo data described by fx.
func (s Seeder) Seed(ctx context.Context, fx *Fixture) error {
	ids := make(map[string]string, len(fx.Employees))
	roster := make([]domain.Employee, 0, len(fx.Employees))
	for _, e := range fx.Employees {
		email := normalizeEmail(e.Email)
		id := uuid.NewSHA1(seedNamespace, []byte("employee:"+fx.AdminID+":"+email)).String()
		ids[email] = id
		roster = append(roster, domain.Employee{
			ID:         id,
			AdminID:    fx.AdminID,
			FirstName:  e.FirstName,
			LastName:   e.LastName,
			Email:      email,
			Department: strings.TrimSpace(e.Department),
		})
	}
	if len(roster) > 0 {
		if _, err := s.Employees.ImportEmployees(ctx, roster); err != nil {
			return fmt.Errorf("seed employees: %w", err)
		}
	}

	for _, fc := range fx.Campaigns {
		camp := domain.Campaign{
			ID:          uuid.NewSHA1(seedNamespace, []byte("campaign:"+fx.AdminID+":"+fc.Name)).String(),
			AdminID:     fx.AdminID,
			Name:        fc.Name,
			Platform:    domain.Platform(fc.Platform),
			Subject:     fc.Subject,
			SenderEmail: fc.SenderEmail,
		}
		if err := s.Campaigns.CreateCampaign(ctx, &camp); err != nil {
			return fmt.Errorf("seed campaign %q: %w", fc.Name, err)
		}

		existing, err := s.Events.ListEvents(ctx, port.EventFilter{CampaignID: camp.ID, Limit: 1})
		if err != nil {
			return fmt.Errorf("seed campaign %q: %w", fc.Name, err)
		}
		if len(existing) > 0 {
			continue
		}

		events := campaignEvents(camp, fc, ids)
		if len(events) == 0 {
			continue
		}
		if _, err = s.Events.AppendEvents(ctx, events); err != nil {
			return fmt.Errorf("seed events for %q: %w", fc.Name, err)
		}
	}
	return nil
}

func campaignEvents(camp domain.Campaign, fc FixtureCampaign, ids map[string]string) []domain.Event {
	recipients := fc.Recipients
	if len(recipients) == 0 {
		recipients = slices.Sorted(maps.Keys(ids))
	}
	events := make([]domain.Event, 0, len(recipients)+len(fc.Interactions))
	for _, r := range recipients {
		events = append(events, domain.Event{
			CampaignID: camp.ID,
			EmployeeID: ids[normalizeEmail(r)],
			Platform:   camp.Platform,
			Action:     domain.ActionSent,
			Timestamp:  fc.SentAt,
		})
	}
	for _, in := range fc.Interactions {
		events = append(events, domain.Event{
			CampaignID: camp.ID,
			EmployeeID: ids[normalizeEmail(in.Email)],
			Platform:   camp.Platform,
			Action:     domain.Action(in.Action),
			Timestamp:  in.At,
		})
	}
	return events
}
