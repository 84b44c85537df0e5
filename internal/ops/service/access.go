package service

import (
	"slices"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
)

// RoleWildcard marks a menu item or route as visible to every signed-in role.
const RoleWildcard = "all"

// Visible reports whether a role may see an element gated by the allowed
// list. Sales sees everything gated Marketing, since the sales team works
// the marketing pages. This is an explicit rule check, not a hierarchy.
func Visible(role string, allowed []string) bool {
	if slices.Contains(allowed, RoleWildcard) {
		return true
	}
	if slices.Contains(allowed, role) {
		return true
	}
	if role == domain.RoleSales && slices.Contains(allowed, domain.RoleMarketing) {
		return true
	}
	return false
}

// PageAllowed reports whether a role may load a page gated by the allowed
// list. Direktur always passes; everyone else follows the Visible rule.
func PageAllowed(role string, allowed []string) bool {
	if role == domain.RoleDirektur {
		return true
	}
	return Visible(role, allowed)
}

// MenuItem is one entry in the navigation menu.
type MenuItem struct {
	ID    string
	Label string
	Path  string
	Roles []string
}

// menuCatalogue is the full navigation surface. The menu endpoint filters
// it per caller role; route middleware enforces the same lists, so the menu
// stays cosmetic.
var menuCatalogue = []MenuItem{
	{ID: "dashboard", Label: "Dashboard", Path: "/", Roles: []string{RoleWildcard}},
	{ID: "purchase-orders", Label: "Purchase Order", Path: "/po.html", Roles: []string{domain.RoleMarketing, domain.RoleAdmin, domain.RoleDirektur}},
	{ID: "customers", Label: "Data Customer", Path: "/customer.html", Roles: []string{domain.RoleMarketing, domain.RoleAdmin, domain.RoleDirektur}},
	{ID: "items", Label: "Data Barang", Path: "/barang.html", Roles: []string{domain.RoleMarketing, domain.RoleAdmin, domain.RoleDirektur}},
	{ID: "production", Label: "Data Produksi", Path: "/produksi.html", Roles: []string{domain.RoleProduksi, domain.RoleAdmin, domain.RoleDirektur}},
	{ID: "staff", Label: "Input Staff", Path: "/input-staff.html", Roles: []string{domain.RoleAdmin, domain.RoleDirektur}},
	{ID: "notifications", Label: "Notifikasi", Path: "/notifikasi.html", Roles: []string{domain.RoleDirektur}},
}

// MenuFor returns the menu items visible to the given role, in catalogue
// order.
func MenuFor(role string) []MenuItem {
	var out []MenuItem
	for _, item := range menuCatalogue {
		if Visible(role, item.Roles) {
			out = append(out, item)
		}
	}
	return out
}
