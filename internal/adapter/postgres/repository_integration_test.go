//go:build integration

package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"phish-analytics/internal/core/domain"
	"phish-analytics/internal/core/port"
	"phish-analytics/internal/db"
)

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	if _, err := testcontainers.NewDockerClientWithOpts(ctx); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	ctr, err := tcpostgres.Run(ctx, "postgres:17",
		tcpostgres.WithDatabase("phish"),
		tcpostgres.WithUsername("phish"),
		tcpostgres.WithPassword("phish"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(context.Background()) })

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestRepositories(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()

	employees := NewEmployeeRepository(pool)
	campaigns := NewCampaignRepository(pool)
	events := NewEventRepository(pool)

	ada := domain.Employee{ID: uuid.NewString(), AdminID: "a1", FirstName: "Ada", Email: "ada@example.com", Department: "IT"}
	bob := domain.Employee{ID: uuid.NewString(), AdminID: "a1", FirstName: "Bob", Email: "bob@example.com"}

	t.Run("import skips duplicates", func(t *testing.T) {
		n, err := employees.ImportEmployees(ctx, []domain.Employee{ada, bob})
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)

		dup := ada
		dup.ID = uuid.NewString()
		n, err = employees.ImportEmployees(ctx, []domain.Employee{dup})
		require.NoError(t, err)
		assert.EqualValues(t, 0, n)

		list, err := employees.ListEmployees(ctx, "a1")
		require.NoError(t, err)
		assert.Len(t, list, 2)

		got, err := employees.GetEmployee(ctx, bob.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got.Department)

		missing, err := employees.GetEmployee(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	camp := domain.Campaign{ID: uuid.NewString(), AdminID: "a1", Name: "Drive", Platform: domain.PlatformGoogle}

	t.Run("campaigns", func(t *testing.T) {
		require.NoError(t, campaigns.CreateCampaign(ctx, &camp))
		assert.False(t, camp.CreatedAt.IsZero())
		require.NoError(t, campaigns.CreateCampaign(ctx, &camp))

		list, err := campaigns.ListCampaigns(ctx, "a1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, domain.PlatformGoogle, list[0].Platform)

		got, err := campaigns.GetCampaign(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("events", func(t *testing.T) {
		sentAt := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
		n, err := events.AppendEvents(ctx, []domain.Event{
			{CampaignID: camp.ID, EmployeeID: ada.ID, Platform: domain.PlatformGoogle, Action: domain.ActionSent, Timestamp: sentAt},
			{CampaignID: camp.ID, EmployeeID: bob.ID, Platform: domain.PlatformGoogle, Action: domain.ActionSent, Timestamp: sentAt},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)

		click := domain.Event{
			CampaignID: camp.ID,
			EmployeeID: ada.ID,
			Platform:   domain.PlatformGoogle,
			Action:     domain.ActionClicked,
			Timestamp:  sentAt.Add(time.Minute),
			Data:       json.RawMessage(`{"ua":"x"}`),
		}
		require.NoError(t, events.AppendEvent(ctx, &click))
		assert.NotZero(t, click.ID)

		untimed := domain.Event{CampaignID: camp.ID, EmployeeID: "ghost", Platform: domain.PlatformGoogle, Action: domain.ActionClicked}
		require.NoError(t, events.AppendEvent(ctx, &untimed))

		all, err := events.ListEvents(ctx, port.EventFilter{})
		require.NoError(t, err)
		require.Len(t, all, 4)
		assert.Equal(t, "IT", all[0].EmployeeDepartment)
		assert.Empty(t, all[1].EmployeeDepartment)
		assert.JSONEq(t, `{"ua":"x"}`, string(all[2].Data))
		assert.True(t, all[3].Timestamp.IsZero())

		from := sentAt.Add(30 * time.Second)
		ranged, err := events.ListEvents(ctx, port.EventFilter{From: &from})
		require.NoError(t, err)
		require.Len(t, ranged, 1)
		assert.Equal(t, domain.ActionClicked, ranged[0].Action)

		byAdmin, err := events.ListEvents(ctx, port.EventFilter{AdminID: "a1", EmployeeID: ada.ID})
		require.NoError(t, err)
		assert.Len(t, byAdmin, 2)

		latest, err := events.ListEvents(ctx, port.EventFilter{Limit: 1})
		require.NoError(t, err)
		require.Len(t, latest, 1)
		assert.Equal(t, "ghost", latest[0].EmployeeID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, employees.DeleteEmployee(ctx, bob.ID))
		assert.ErrorIs(t, employees.DeleteEmployee(ctx, bob.ID), port.ErrEmployeeNotFound)
	})
}
