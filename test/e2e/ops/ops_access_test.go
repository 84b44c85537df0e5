package ops_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
	"github.com/stretchr/testify/require"
)

func TestRoleGates(t *testing.T) {
	ts := startServer(t)
	seedStaff(t, ts, direkturEmail, "Pak Direktur", domain.RoleDirektur, direkturPassword)
	seedStaff(t, ts, marketingEmail, "Budi Marketing", domain.RoleMarketing, marketingPass)
	seedStaff(t, ts, salesEmail, "Andi Sales", domain.RoleSales, salesPassword)
	seedStaff(t, ts, produksiEmail, "Joko Produksi", domain.RoleProduksi, produksiPassword)

	ctx := context.Background()

	t.Run("produksi cannot open sales pages", func(t *testing.T) {
		produksi := login(t, ts, produksiEmail, produksiPassword, false)

		_, err := produksi.ListCustomers(ctx)
		requireAPIStatus(t, err, http.StatusForbidden)

		_, err = produksi.ListPurchaseOrders(ctx, opsdk.PurchaseOrderFilter{})
		requireAPIStatus(t, err, http.StatusForbidden)

		_, err = produksi.ListProduction(ctx, opsdk.ProductionFilter{})
		require.NoError(t, err)
	})

	t.Run("marketing cannot open production pages", func(t *testing.T) {
		marketing := login(t, ts, marketingEmail, marketingPass, false)

		_, err := marketing.ListProduction(ctx, opsdk.ProductionFilter{})
		requireAPIStatus(t, err, http.StatusForbidden)

		_, err = marketing.ListCustomers(ctx)
		require.NoError(t, err)
	})

	t.Run("sales passes through the marketing grant", func(t *testing.T) {
		sales := login(t, ts, salesEmail, salesPassword, false)

		_, err := sales.ListCustomers(ctx)
		require.NoError(t, err)

		_, err = sales.ListStaff(ctx)
		requireAPIStatus(t, err, http.StatusForbidden)
	})

	t.Run("notifications are director-only", func(t *testing.T) {
		marketing := login(t, ts, marketingEmail, marketingPass, false)

		_, err := marketing.GetUnreadCount(ctx)
		requireAPIStatus(t, err, http.StatusForbidden)
	})

	t.Run("direktur bypasses every gate", func(t *testing.T) {
		direktur := login(t, ts, direkturEmail, direkturPassword, false)

		_, err := direktur.ListCustomers(ctx)
		require.NoError(t, err)
		_, err = direktur.ListProduction(ctx, opsdk.ProductionFilter{})
		require.NoError(t, err)
		_, err = direktur.ListStaff(ctx)
		require.NoError(t, err)
		_, err = direktur.GetUnreadCount(ctx)
		require.NoError(t, err)
	})
}

func TestMenuFollowsRole(t *testing.T) {
	ts := startServer(t)
	seedStaff(t, ts, direkturEmail, "Pak Direktur", domain.RoleDirektur, direkturPassword)
	seedStaff(t, ts, produksiEmail, "Joko Produksi", domain.RoleProduksi, produksiPassword)

	ctx := context.Background()

	produksiMenu, err := login(t, ts, produksiEmail, produksiPassword, false).GetMenu(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.RoleProduksi, produksiMenu.Role)

	produksiIDs := make([]string, 0, len(produksiMenu.Items))
	for _, item := range produksiMenu.Items {
		produksiIDs = append(produksiIDs, item.ID)
	}
	require.Equal(t, []string{"dashboard", "production"}, produksiIDs)

	direkturMenu, err := login(t, ts, direkturEmail, direkturPassword, false).GetMenu(ctx)
	require.NoError(t, err)
	require.Greater(t, len(direkturMenu.Items), len(produksiMenu.Items))
}

func TestDeletedStaffTokenRejected(t *testing.T) {
	ts := startServer(t)
	seedStaff(t, ts, adminEmail, "Siti Admin", domain.RoleAdmin, adminPassword)

	ctx := context.Background()
	admin := login(t, ts, adminEmail, adminPassword, false)

	created, err := admin.CreateStaff(ctx, opsdk.CreateStaffRequest{
		Email:       "sementara@example.com",
		DisplayName: "Staff Sementara",
		Role:        domain.RoleSales,
		Password:    "Sementara123!",
	})
	require.NoError(t, err)

	victim := login(t, ts, "sementara@example.com", "Sementara123!", false)
	_, err = victim.GetUserInfo(ctx)
	require.NoError(t, err)

	require.NoError(t, admin.DeleteStaff(ctx, created.Profile.ID))

	// The unexpired token dies with the profile.
	_, err = victim.GetUserInfo(ctx)
	requireAPIStatus(t, err, http.StatusUnauthorized)

	_, err = victim.ListCustomers(ctx)
	requireAPIStatus(t, err, http.StatusUnauthorized)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	ts := startServer(t)
	seedStaff(t, ts, direkturEmail, "Pak Direktur", domain.RoleDirektur, direkturPassword)

	ctx := context.Background()

	// A session forged from garbage tokens never reaches a handler.
	forged := ts.Client.NewSessionFromTokens("not-a-real-token", "", 3600)
	_, err := forged.GetUserInfo(ctx)
	requireAPIStatus(t, err, http.StatusUnauthorized)

	_, err = forged.ListCustomers(ctx)
	requireAPIStatus(t, err, http.StatusUnauthorized)
}

func TestHealthAndJWKS(t *testing.T) {
	ts := startServer(t)

	ctx := context.Background()

	live, err := ts.Client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := ts.Client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Signer)

	resp, err := http.Get(ts.URL + "/.well-known/jwks.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
