package service

import (
	"testing"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/stretchr/testify/require"
)

func TestVisible(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		role    string
		allowed []string
		want    bool
	}{
		{"role in allowed list", domain.RoleAdmin, []string{domain.RoleAdmin, domain.RoleDirektur}, true},
		{"role not in allowed list", domain.RoleProduksi, []string{domain.RoleAdmin}, false},
		{"wildcard admits everyone", domain.RoleProduksi, []string{RoleWildcard}, true},
		{"sales sees marketing surfaces", domain.RoleSales, []string{domain.RoleMarketing}, true},
		{"marketing does not see sales-only surfaces", domain.RoleMarketing, []string{domain.RoleSales}, false},
		{"direktur has no implicit visibility", domain.RoleDirektur, []string{domain.RoleAdmin}, false},
		{"empty allowed list hides from all", domain.RoleDirektur, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Visible(tc.role, tc.allowed))
		})
	}
}

func TestPageAllowed(t *testing.T) {
	t.Parallel()

	t.Run("direktur passes any gate", func(t *testing.T) {
		require.True(t, PageAllowed(domain.RoleDirektur, []string{domain.RoleProduksi}))
		require.True(t, PageAllowed(domain.RoleDirektur, nil))
	})

	t.Run("others follow the visibility rule", func(t *testing.T) {
		require.True(t, PageAllowed(domain.RoleSales, []string{domain.RoleMarketing}))
		require.False(t, PageAllowed(domain.RoleProduksi, []string{domain.RoleMarketing}))
	})
}

func TestMenuFor(t *testing.T) {
	t.Parallel()

	t.Run("produksi sees dashboard and production only", func(t *testing.T) {
		items := MenuFor(domain.RoleProduksi)

		ids := make([]string, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ID)
		}
		require.Equal(t, []string{"dashboard", "production"}, ids)
	})

	t.Run("sales inherits the marketing pages", func(t *testing.T) {
		items := MenuFor(domain.RoleSales)

		ids := make([]string, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ID)
		}
		require.Contains(t, ids, "purchase-orders")
		require.Contains(t, ids, "customers")
		require.Contains(t, ids, "items")
		require.NotContains(t, ids, "staff")
		require.NotContains(t, ids, "notifications")
	})

	t.Run("direktur sees the whole catalogue", func(t *testing.T) {
		require.Len(t, MenuFor(domain.RoleDirektur), len(menuCatalogue))
	})
}
