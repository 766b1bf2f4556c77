package settings

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsuite/portal-go/internal/api"
	"github.com/hrsuite/portal-go/internal/config"
	"github.com/hrsuite/portal-go/internal/domain/settings"
	"github.com/hrsuite/portal-go/internal/portaltest"
)

const testCSRF = "test-csrf-token"

func newTestService(t *testing.T, server *portaltest.Server) *Service {
	t.Helper()

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	client, err := api.NewClient(
		config.PortalConfig{BaseURL: ts.URL, Timeout: 5 * time.Second},
		config.AuthConfig{CSRFToken: testCSRF},
	)
	require.NoError(t, err)

	return NewService(client)
}

func TestCRUDRoundTrip(t *testing.T) {
	server := portaltest.NewServer()
	server.CSRFToken = testCSRF
	svc := newTestService(t, server)
	ctx := context.Background()

	created, err := svc.Create(ctx, settings.Departments, settings.SaveRequest{
		Name:        "Production",
		Description: "Manufacturing floor",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, "Production", created.Name)

	items, err := svc.List(ctx, settings.Departments)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)

	updated, err := svc.Update(ctx, settings.Departments, created.ID, settings.SaveRequest{
		Name: "Production Line A",
	})
	require.NoError(t, err)
	assert.Equal(t, "Production Line A", updated.Name)

	require.NoError(t, svc.Delete(ctx, settings.Departments, created.ID))

	items, err = svc.List(ctx, settings.Departments)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreate_SundayExceptionRequiresDate(t *testing.T) {
	server := portaltest.NewServer()
	server.CSRFToken = testCSRF
	svc := newTestService(t, server)
	ctx := context.Background()

	_, err := svc.Create(ctx, settings.SundayExceptions, settings.SaveRequest{Name: "no date"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date")

	created, err := svc.Create(ctx, settings.SundayExceptions, settings.SaveRequest{Date: "2024-12-22"})
	require.NoError(t, err)
	assert.Equal(t, "2024-12-22", created.Date)
}

func TestCreate_OJTRateCarriesDecimal(t *testing.T) {
	server := portaltest.NewServer()
	server.CSRFToken = testCSRF
	svc := newTestService(t, server)
	ctx := context.Background()

	_, err := svc.Create(ctx, settings.OJTRates, settings.SaveRequest{Name: "no rate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate")

	created, err := svc.Create(ctx, settings.OJTRates, settings.SaveRequest{
		Name: "Daily OJT",
		Rate: "456.75",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Rate)
	assert.True(t, created.Rate.Equal(decimal.RequireFromString("456.75")))
}

func TestUpdate_NotFound(t *testing.T) {
	server := portaltest.NewServer()
	server.CSRFToken = testCSRF
	svc := newTestService(t, server)

	_, err := svc.Update(context.Background(), settings.Positions, 9999, settings.SaveRequest{Name: "Welder"})
	assert.ErrorIs(t, err, settings.ErrItemNotFound)

	err = svc.Delete(context.Background(), settings.Positions, 9999)
	assert.ErrorIs(t, err, settings.ErrItemNotFound)
}

func TestUnknownResource(t *testing.T) {
	server := portaltest.NewServer()
	server.CSRFToken = testCSRF
	svc := newTestService(t, server)

	_, err := svc.List(context.Background(), settings.Resource("bonustypes"))
	assert.ErrorIs(t, err, settings.ErrUnknownResource)
}

func TestSeededItemsVisibleAcrossResources(t *testing.T) {
	server := portaltest.NewServer()
	server.CSRFToken = testCSRF
	server.SeedSettings(settings.LeaveTypes, settings.Item{Name: "Vacation Leave"})
	server.SeedSettings(settings.LeaveTypes, settings.Item{Name: "Sick Leave"})
	server.SeedSettings(settings.Lines, settings.Item{Name: "Line 1"})

	svc := newTestService(t, server)
	ctx := context.Background()

	leaveTypes, err := svc.List(ctx, settings.LeaveTypes)
	require.NoError(t, err)
	assert.Len(t, leaveTypes, 2)

	lines, err := svc.List(ctx, settings.Lines)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Line 1", lines[0].Name)
}
