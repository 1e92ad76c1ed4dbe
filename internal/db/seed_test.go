package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"phish-analytics/internal/core/domain"
	"phish-analytics/internal/core/port"
	"phish-analytics/internal/core/port/mocks"
)

const fixtureYAML = `
admin_id: admin-1
employees:
  - {first_name: Ada, email: " Ada@Example.com ", department: IT}
  - {first_name: Bob, email: bob@example.com}
campaigns:
  - name: Drive share
    platform: google
    sent_at: 2025-01-06T09:00:00Z
    interactions:
      - {email: ada@example.com, action: clicked, at: 2025-01-06T09:12:00Z}
`

func TestLoadFixture_Demo(t *testing.T) {
	fx, err := LoadFixture("../../fixtures/demo.yaml")
	require.NoError(t, err)
	assert.Equal(t, "demo-admin", fx.AdminID)
	assert.Len(t, fx.Employees, 4)
	assert.Len(t, fx.Campaigns, 3)
}

func TestParseFixture_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown platform": `
employees: [{email: a@example.com}]
campaigns: [{name: x, platform: yahoo}]`,
		"missing email": `
employees: [{first_name: A}]`,
		"non failure interaction": `
employees: [{email: a@example.com}]
campaigns: [{name: x, platform: google, interactions: [{email: a@example.com, action: sent}]}]`,
		"unknown recipient": `
employees: [{email: a@example.com}]
campaigns: [{name: x, platform: hsbc, recipients: [b@example.com]}]`,
		"unknown field": `
employes: []`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseFixture(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestSeeder_Seed(t *testing.T) {
	fx, err := ParseFixture(strings.NewReader(fixtureYAML))
	require.NoError(t, err)

	employees := mocks.NewMockEmployeeRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	events := mocks.NewMockEventRepository(t)

	var roster []domain.Employee
	employees.EXPECT().
		ImportEmployees(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e []domain.Employee) { roster = e }).
		Return(2, nil)

	var campaignID string
	campaigns.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(_ context.Context, c *domain.Campaign) { campaignID = c.ID }).
		Return(nil)

	events.EXPECT().
		ListEvents(mock.Anything, mock.MatchedBy(func(f port.EventFilter) bool { return f.Limit == 1 })).
		Return(nil, nil)

	var written []domain.Event
	events.EXPECT().
		AppendEvents(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e []domain.Event) { written = e }).
		Return(3, nil)

	require.NoError(t, Seeder{Employees: employees, Campaigns: campaigns, Events: events}.Seed(context.Background(), fx))

	require.Len(t, roster, 2)
	assert.Equal(t, "ada@example.com", roster[0].Email)
	assert.Equal(t, "admin-1", roster[0].AdminID)

	require.Len(t, written, 3)
	var sent, clicked int
	for _, e := range written {
		assert.Equal(t, campaignID, e.CampaignID)
		assert.Equal(t, domain.PlatformGoogle, e.Platform)
		switch e.Action {
		case domain.ActionSent:
			sent++
		case domain.ActionClicked:
			clicked++
			assert.Equal(t, roster[0].ID, e.EmployeeID)
		}
	}
	assert.Equal(t, 2, sent)
	assert.Equal(t, 1, clicked)
}

func TestSeeder_SkipsCampaignsWithEvents(t *testing.T) {
	fx, err := ParseFixture(strings.NewReader(fixtureYAML))
	require.NoError(t, err)

	employees := mocks.NewMockEmployeeRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	events := mocks.NewMockEventRepository(t)

	employees.EXPECT().ImportEmployees(mock.Anything, mock.Anything).Return(0, nil)
	campaigns.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return(nil)
	events.EXPECT().ListEvents(mock.Anything, mock.Anything).Return([]domain.Event{{ID: 1}}, nil)

	require.NoError(t, Seeder{Employees: employees, Campaigns: campaigns, Events: events}.Seed(context.Background(), fx))
}

func TestSeeder_PropagatesErrors(t *testing.T) {
	fx, err := ParseFixture(strings.NewReader(fixtureYAML))
	require.NoError(t, err)

	employees := mocks.NewMockEmployeeRepository(t)
	employees.EXPECT().ImportEmployees(mock.Anything, mock.Anything).Return(0, errors.New("boom"))

	err = Seeder{Employees: employees}.Seed(context.Background(), fx)
	assert.ErrorContains(t, err, "seed employees")
}

func TestSeeder_IDsAreStable(t *testing.T) {
	fx, err := ParseFixture(strings.NewReader(fixtureYAML))
	require.NoError(t, err)

	collect := func() []string {
		employees := mocks.NewMockEmployeeRepository(t)
		campaigns := mocks.NewMockCampaignRepository(t)
		events := mocks.NewMockEventRepository(t)
		var ids []string
		employees.EXPECT().ImportEmployees(mock.Anything, mock.Anything).
			Run(func(_ context.Context, e []domain.Employee) {
				for _, x := range e {
					ids = append(ids, x.ID)
				}
			}).Return(0, nil)
		campaigns.EXPECT().CreateCampaign(mock.Anything, mock.Anything).
			Run(func(_ context.Context, c *domain.Campaign) { ids = append(ids, c.ID) }).Return(nil)
		events.EXPECT().ListEvents(mock.Anything, mock.Anything).Return([]domain.Event{{ID: 1}}, nil)
		require.NoError(t, Seeder{Employees: employees, Campaigns: campaigns, Events: events}.Seed(context.Background(), fx))
		return ids
	}

	assert.Equal(t, collect(), collect())
}
