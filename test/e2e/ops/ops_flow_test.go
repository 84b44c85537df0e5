package ops_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
	"github.com/stretchr/testify/require"
)

func TestLoginAndUserInfo(t *testing.T) {
	ts := startServer(t)
	seedStaff(t, ts, direkturEmail, "Pak Direktur", domain.RoleDirektur, direkturPassword)

	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		sess := login(t, ts, direkturEmail, direkturPassword, false)

		info, err := sess.GetUserInfo(ctx)
		require.NoError(t, err)
		require.Equal(t, direkturEmail, info.Email)
		require.Equal(t, "Pak Direktur", info.DisplayName)
		require.Equal(t, domain.RoleDirektur, info.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := ts.Client.Login(ctx, direkturEmail, "wrong-password", false)
		requireAPIStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := ts.Client.Login(ctx, "nobody@example.com", direkturPassword, false)
		requireAPIStatus(t, err, http.StatusUnauthorized)
	})
}

func TestSalesDeskFlowNotifiesDirectors(t *testing.T) {
	ts := startServer(t)
	seedStaff(t, ts, direkturEmail, "Pak Direktur", domain.RoleDirektur, direkturPassword)
	seedStaff(t, ts, marketingEmail, "Budi Marketing", domain.RoleMarketing, marketingPass)
	seedStaff(t, ts, salesEmail, "Andi Sales", domain.RoleSales, salesPassword)

	ctx := context.Background()
	marketing := login(t, ts, marketingEmail, marketingPass, false)
	direktur := login(t, ts, direkturEmail, direkturPassword, false)

	// Marketing builds up the sales desk data.
	customer, err := marketing.CreateCustomer(ctx, opsdk.CustomerRequest{
		CustomerName: "PT Maju Jaya",
		Address:      "Jl. Industri No. 5, Bekasi",
		Phone:        "021-555-0101",
	})
	require.NoError(t, err)
	require.NotEmpty(t, customer.ID)

	item, err := marketing.CreateItem(ctx, opsdk.ItemRequest{
		PartAssyName: "BRACKET-ASSY-01",
		PartName:     "Bracket Mount",
		Process:      "Stamping",
	})
	require.NoError(t, err)

	salesOptions, err := marketing.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, salesOptions, 1)
	require.Equal(t, "Andi Sales", salesOptions[0].DisplayName)

	po, err := marketing.CreatePurchaseOrder(ctx, opsdk.PurchaseOrderRequest{
		NoPO:         "PO-2026-001",
		PODate:       "2026-08-01",
		CustomerName: customer.CustomerName,
		PartAssyName: item.PartAssyName,
		Quantity:     500,
		SalesName:    salesOptions[0].DisplayName,
	})
	require.NoError(t, err)
	require.Equal(t, "Budi Marketing", po.CreatedByUserDisplayName)

	// Every mutation fanned out to the director.
	count, err := direktur.GetUnreadCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	notifications, err := direktur.ListNotifications(ctx, 0)
	require.NoError(t, err)
	require.Len(t, notifications, 3)

	// Newest first: the PO landed last.
	require.Equal(t, "PO Baru Dibuat", notifications[0].Title)
	require.Contains(t, notifications[0].Message, "PO-2026-001")
	require.Contains(t, notifications[0].Message, "Budi Marketing")
	require.Equal(t, "Budi Marketing", notifications[0].CreatedByName)

	t.Run("mark one read", func(t *testing.T) {
		require.NoError(t, direktur.MarkNotificationRead(ctx, notifications[0].ID))

		count, err := direktur.GetUnreadCount(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, count)
	})

	t.Run("mark all read", func(t *testing.T) {
		require.NoError(t, direktur.MarkAllNotificationsRead(ctx))

		count, err := direktur.GetUnreadCount(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, count)
	})

	t.Run("clear all", func(t *testing.T) {
		require.NoError(t, direktur.ClearAllNotifications(ctx))

		notifications, err := direktur.ListNotifications(ctx, 0)
		require.NoError(t, err)
		require.Empty(t, notifications)
	})
}

func TestPurchaseOrderFilters(t *testing.T) {
	ts := startServer(t)
	seedStaff(t, ts, direkturEmail, "Pak Direktur", domain.RoleDirektur, direkturPassword)
	seedStaff(t, ts, marketingEmail, "Budi Marketing", domain.RoleMarketing, marketingPass)

	ctx := context.Background()
	marketing := login(t, ts, marketingEmail, marketingPass, false)

	for _, po := range []opsdk.PurchaseOrderRequest{
		{NoPO: "PO-100", PODate: "2026-07-01", CustomerName: "PT Alpha", Quantity: 10, SalesName: "Andi"},
		{NoPO: "PO-101", PODate: "2026-07-15", CustomerName: "PT Beta", Quantity: 20, SalesName: "Citra"},
		{NoPO: "PO-102", PODate: "2026-08-02", CustomerName: "PT Gamma", Quantity: 30, SalesName: "Andi"},
	} {
		_, err := marketing.CreatePurchaseOrder(ctx, po)
		require.NoError(t, err)
	}

	t.Run("date range", func(t *testing.T) {
		orders, err := marketing.ListPurchaseOrders(ctx, opsdk.PurchaseOrderFilter{
			StartDate: "2026-07-01",
			EndDate:   "2026-07-31",
		})
		require.NoError(t, err)
		require.Len(t, orders, 2)
		require.Equal(t, "PO-101", orders[0].NoPO)
		require.Equal(t, "PO-100", orders[1].NoPO)
	})

	t.Run("sales name substring", func(t *testing.T) {
		orders, err := marketing.ListPurchaseOrders(ctx, opsdk.PurchaseOrderFilter{SalesName: "andi"})
		require.NoError(t, err)
		require.Len(t, orders, 2)
	})

	t.Run("no filter returns all newest first", func(t *testing.T) {
		orders, err := marketing.ListPurchaseOrders(ctx, opsdk.PurchaseOrderFilter{})
		require.NoError(t, err)
		require.Len(t, orders, 3)
		require.Equal(t, "PO-102", orders[0].NoPO)
	})
}

func TestProductionAndReferenceData(t *testing.T) {
	ts := startServer(t)
	seedStaff(t, ts, produksiEmail, "Joko Produksi", domain.RoleProduksi, produksiPassword)

	ctx := context.Background()
	produksi := login(t, ts, produksiEmail, produksiPassword, false)

	rec, err := produksi.CreateProduction(ctx, opsdk.ProductionRequest{
		Tanggal:      "2026-08-20",
		NamaOperator: "Slamet",
		Shift:        "1",
		JenisProses:  "Stamping",
		PartAssy:     "BRACKET-ASSY-01",
		PartName:     "Bracket Mount",
		Process:      "Stamping",
		Mesin:        "PRESS-80T",
		OK:           480,
		NG:           3,
		QCLine:       "QC-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)

	t.Run("list with filters", func(t *testing.T) {
		records, err := produksi.ListProduction(ctx, opsdk.ProductionFilter{
			DateFrom:    "2026-08-01",
			DateTo:      "2026-08-31",
			ProcessType: "Stamping",
			Shift:       "1",
		})
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, 480, records[0].OK)
	})

	t.Run("distinct values feed dropdowns", func(t *testing.T) {
		partAssys, err := produksi.GetDistinctPartAssy(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"BRACKET-ASSY-01"}, partAssys)

		operators, err := produksi.GetDistinctOperators(ctx)
		require.NoError(t, err)
		require.Empty(t, operators) // the operators master table is empty
	})

	t.Run("part details resolve from production history", func(t *testing.T) {
		details, err := produksi.GetPartDetailsByPartAssy(ctx, "BRACKET-ASSY-01")
		require.NoError(t, err)
		require.Equal(t, "Bracket Mount", details.PartName)
		require.Equal(t, "Stamping", details.Process)
	})

	t.Run("update and delete", func(t *testing.T) {
		updated, err := produksi.UpdateProduction(ctx, rec.ID, opsdk.ProductionRequest{
			Tanggal:  rec.Tanggal,
			PartAssy: rec.PartAssy,
			OK:       500,
		})
		require.NoError(t, err)
		require.Equal(t, 500, updated.OK)

		require.NoError(t, produksi.DeleteProduction(ctx, rec.ID))

		records, err := produksi.ListProduction(ctx, opsdk.ProductionFilter{})
		require.NoError(t, err)
		require.Empty(t, records)
	})
}

func TestRememberTokenRotation(t *testing.T) {
	ts := startServer(t)
	seedStaff(t, ts, direkturEmail, "Pak Direktur", domain.RoleDirektur, direkturPassword)

	ctx := context.Background()
	sess := login(t, ts, direkturEmail, direkturPassword, true)

	first := sess.RememberToken()
	require.NotEmpty(t, first)

	// Redeeming rotates the token.
	renewed, err := ts.Client.AuthenticateWithRememberToken(ctx, first)
	require.NoError(t, err)
	require.NotEmpty(t, renewed.RememberToken())
	require.NotEqual(t, first, renewed.RememberToken())

	_, err = renewed.GetUserInfo(ctx)
	require.NoError(t, err)

	// The consumed token is dead.
	_, err = ts.Client.AuthenticateWithRememberToken(ctx, first)
	requireAPIStatus(t, err, http.StatusUnauthorized)
}

func TestLogoutRevokesRememberToken(t *testing.T) {
	ts := startServer(t)
	seedStaff(t, ts, direkturEmail, "Pak Direktur", domain.RoleDirektur, direkturPassword)

	ctx := context.Background()
	sess := login(t, ts, direkturEmail, direkturPassword, true)
	remember := sess.RememberToken()

	require.NoError(t, sess.Logout(ctx))

	_, err := ts.Client.AuthenticateWithRememberToken(ctx, remember)
	requireAPIStatus(t, err, http.StatusUnauthorized)
}

func TestStaffManagement(t *testing.T) {
	ts := startServer(t)
	seedStaff(t, ts, adminEmail, "Siti Admin", domain.RoleAdmin, adminPassword)

	ctx := context.Background()
	admin := login(t, ts, adminEmail, adminPassword, false)

	created, err := admin.CreateStaff(ctx, opsdk.CreateStaffRequest{
		Email:       "baru@example.com",
		DisplayName: "Staff Baru",
		Role:        domain.RoleSales,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.InitialPassword, "server generates a password when none is given")

	// The generated password works.
	fresh := login(t, ts, "baru@example.com", created.InitialPassword, false)
	info, err := fresh.GetUserInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.RoleSales, info.Role)

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := admin.CreateStaff(ctx, opsdk.CreateStaffRequest{
			Email:       "baru@example.com",
			DisplayName: "Duplikat",
			Role:        domain.RoleSales,
		})
		requireAPIStatus(t, err, http.StatusConflict)
	})

	t.Run("role change", func(t *testing.T) {
		updated, err := admin.UpdateStaff(ctx, created.Profile.ID, opsdk.UpdateStaffRequest{
			Role: domain.RoleMarketing,
		})
		require.NoError(t, err)
		require.Equal(t, domain.RoleMarketing, updated.Role)
		require.Equal(t, "Staff Baru", updated.DisplayName, "empty fields keep their value")
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := admin.UpdateStaff(ctx, created.Profile.ID, opsdk.UpdateStaffRequest{Role: "Supervisor"})
		requireAPIStatus(t, err, http.StatusBadRequest)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, admin.DeleteStaff(ctx, created.Profile.ID))

		staff, err := admin.ListStaff(ctx)
		require.NoError(t, err)
		require.Len(t, staff, 1)
	})
}
