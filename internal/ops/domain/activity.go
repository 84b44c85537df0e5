package domain

import "fmt"

// Activity types raised by business record changes. Each maps to a fixed
// title and message template in the catalogue below. The UI language is
// Indonesian, matching the rest of the operation.
const (
	ActivityPOCreated         = "po_created"
	ActivityPOUpdated         = "po_updated"
	ActivityPODeleted         = "po_deleted"
	ActivityItemCreated       = "item_created"
	ActivityItemUpdated       = "item_updated"
	ActivityItemDeleted       = "item_deleted"
	ActivityCustomerCreated   = "customer_created"
	ActivityCustomerUpdated   = "customer_updated"
	ActivityCustomerDeleted   = "customer_deleted"
	ActivityProductionCreated = "production_created"
	ActivityProductionUpdated = "production_updated"
	ActivityProductionDeleted = "production_deleted"
)

// activityTemplate holds the fixed title and the message format for one
// activity type. The format takes the entity name and the acting user.
type activityTemplate struct {
	title  string
	format string
}

var activityCatalogue = map[string]activityTemplate{
	ActivityPOCreated: {
		title:  "PO Baru Dibuat",
		format: `Purchase Order "%s" telah dibuat oleh %s.`,
	},
	ActivityPOUpdated: {
		title:  "PO Diperbarui",
		format: `Purchase Order "%s" telah diperbarui oleh %s.`,
	},
	ActivityPODeleted: {
		title:  "PO Dihapus",
		format: `Purchase Order "%s" telah dihapus oleh %s.`,
	},
	ActivityItemCreated: {
		title:  "Barang Baru Ditambahkan",
		format: `Barang "%s" telah ditambahkan ke sistem oleh %s.`,
	},
	ActivityItemUpdated: {
		title:  "Data Barang Diperbarui",
		format: `Data barang "%s" telah diperbarui oleh %s.`,
	},
	ActivityItemDeleted: {
		title:  "Barang Dihapus",
		format: `Barang "%s" telah dihapus dari sistem oleh %s.`,
	},
	ActivityCustomerCreated: {
		title:  "Customer Baru Ditambahkan",
		format: `Customer "%s" telah ditambahkan ke sistem oleh %s.`,
	},
	ActivityCustomerUpdated: {
		title:  "Data Customer Diperbarui",
		format: `Data customer "%s" telah diperbarui oleh %s.`,
	},
	ActivityCustomerDeleted: {
		title:  "Customer Dihapus",
		format: `Customer "%s" telah dihapus dari sistem oleh %s.`,
	},
	ActivityProductionCreated: {
		title:  "Produksi Baru Dibuat",
		format: `Data produksi "%s" telah dibuat oleh %s.`,
	},
	ActivityProductionUpdated: {
		title:  "Data Produksi Diperbarui",
		format: `Data produksi "%s" telah diperbarui oleh %s.`,
	},
	ActivityProductionDeleted: {
		title:  "Data Produksi Dihapus",
		format: `Data produksi "%s" telah dihapus oleh %s.`,
	},
}

// KnownActivity reports whether activityType is in the catalogue.
func KnownActivity(activityType string) bool {
	_, ok := activityCatalogue[activityType]
	return ok
}

// ActivityContent renders the title and message for an activity. entityName
// identifies the changed record (PO number, customer name, part assy);
// actionBy is the acting user's display name. Returns ok=false when the
// activity type is not in the catalogue.
func ActivityContent(activityType, entityName, actionBy string) (title, message string, ok bool) {
	tmpl, ok := activityCatalogue[activityType]
	if !ok {
		return "", "", false
	}
	return tmpl.title, fmt.Sprintf(tmpl.format, entityName, actionBy), true
}
