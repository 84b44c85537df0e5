package store

import (
	"context"
	"errors"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to actively stop people from accidentally opening
// transactions within transactions.
type Store interface {
	Profiles() Profiles
	RememberTokens() RememberTokens
	Notifications() Notifications
	Customers() Customers
	Items() Items
	PurchaseOrders() PurchaseOrders
	Production() Production
	Machines() Machines
	Operators() Operators

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., remember
	// token rotation). The caller MUST call Commit() or Rollback().
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Profiles interface {
	// GetProfileByID returns a staff profile by id.
	GetProfileByID(ctx context.Context, id string) (domain.Profile, error)

	// GetProfileByEmail is used during password login.
	GetProfileByEmail(ctx context.Context, email string) (domain.Profile, error)

	// ListProfiles returns all staff profiles ordered by display name.
	ListProfiles(ctx context.Context) ([]domain.Profile, error)

	// ListProfilesByRole returns profiles holding the given role, ordered by
	// display name. Used for the sales dropdown and for director fan-out.
	ListProfilesByRole(ctx context.Context, role string) ([]domain.Profile, error)

	// CreateProfile inserts a new profile (id is provided by app via ULID).
	CreateProfile(ctx context.Context, p domain.Profile) error

	// UpdateProfile mutates display_name and role, bumps updated_at.
	UpdateProfile(ctx context.Context, id, displayName, role string) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, id string, newHash string) error

	// DeleteProfile cascades to remember_tokens and notifications (per schema).
	DeleteProfile(ctx context.Context, id string) error

	// IsEmpty returns true if there are no profiles.
	IsEmpty(ctx context.Context) (bool, error)
}

type RememberTokens interface {
	// CreateRememberToken stores a new remember token record.
	CreateRememberToken(ctx context.Context, t domain.RememberToken) error

	// GetRememberTokenByHash returns the token by its fingerprint.
	GetRememberTokenByHash(ctx context.Context, hash string) (domain.RememberToken, error)

	// RevokeRememberToken flips revoked=1, sets updated_at.
	RevokeRememberToken(ctx context.Context, hash string) error

	// RevokeAllUserRememberTokens bulk revocation for a user (e.g., password change).
	RevokeAllUserRememberTokens(ctx context.Context, userID string) error

	// DeleteExpiredRememberTokens is housekeeping.
	DeleteExpiredRememberTokens(ctx context.Context) error
}

type Notifications interface {
	// CreateNotification inserts one notification row for one recipient.
	CreateNotification(ctx context.Context, n domain.Notification) error

	// ListNotifications returns a user's notifications, newest first,
	// capped at limit.
	ListNotifications(ctx context.Context, userID string, limit int) ([]domain.Notification, error)

	// GetNotificationByID fetches a single notification.
	GetNotificationByID(ctx context.Context, id string) (domain.Notification, error)

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID string) (int, error)

	// MarkRead flips is_read=1 for one notification, bumps updated_at.
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead flips is_read=1 for every unread notification of a user.
	MarkAllRead(ctx context.Context, userID string) error

	// DeleteAllForUser removes every notification of a user.
	DeleteAllForUser(ctx context.Context, userID string) error

	// DeleteReadBefore removes read notifications created before the cutoff.
	// Housekeeping only.
	DeleteReadBefore(ctx context.Context, cutoff time.Time) error
}

type Customers interface {
	// ListCustomers returns all customers, newest first.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// GetCustomerByID fetches a single customer.
	GetCustomerByID(ctx context.Context, id string) (domain.Customer, error)

	// FindCustomerByName matches customer_name case-insensitively by
	// substring and returns the single best match.
	FindCustomerByName(ctx context.Context, name string) (domain.Customer, error)

	// CreateCustomer inserts a new customer (id is ULID).
	CreateCustomer(ctx context.Context, c domain.Customer) error

	// UpdateCustomer replaces the mutable fields, bumps updated_at.
	UpdateCustomer(ctx context.Context, c domain.Customer) error

	// DeleteCustomer removes a customer record.
	DeleteCustomer(ctx context.Context, id string) error
}

type Items interface {
	// ListItems returns all items, newest first.
	ListItems(ctx context.Context) ([]domain.Item, error)

	// GetItemByID fetches a single item.
	GetItemByID(ctx context.Context, id string) (domain.Item, error)

	// FindItemByName matches part_assy_name case-insensitively by substring
	// and returns the single best match.
	FindItemByName(ctx context.Context, name string) (domain.Item, error)

	// GetItemByPartAssyName fetches the item with the exact part assy name.
	GetItemByPartAssyName(ctx context.Context, partAssyName string) (domain.Item, error)

	// CreateItem inserts a new item (id is ULID).
	CreateItem(ctx context.Context, i domain.Item) error

	// UpdateItem replaces the mutable fields, bumps updated_at.
	UpdateItem(ctx context.Context, i domain.Item) error

	// DeleteItem removes an item record.
	DeleteItem(ctx context.Context, id string) error
}

type PurchaseOrders interface {
	// ListPurchaseOrders returns purchase orders matching the filter,
	// newest po_date first.
	ListPurchaseOrders(ctx context.Context, f domain.PurchaseOrderFilter) ([]domain.PurchaseOrder, error)

	// GetPurchaseOrderByID fetches a single purchase order.
	GetPurchaseOrderByID(ctx context.Context, id string) (domain.PurchaseOrder, error)

	// CreatePurchaseOrder inserts a new purchase order (id is ULID).
	CreatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error

	// UpdatePurchaseOrder replaces the mutable fields, keeping the original
	// creator attribution, and bumps updated_at.
	UpdatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error

	// DeletePurchaseOrder removes a purchase order record.
	DeletePurchaseOrder(ctx context.Context, id string) error
}

type Production interface {
	// ListProduction returns production records matching the filter,
	// newest tanggal first.
	ListProduction(ctx context.Context, f domain.ProductionFilter) ([]domain.ProductionRecord, error)

	// GetProductionByID fetches a single production record.
	GetProductionByID(ctx context.Context, id string) (domain.ProductionRecord, error)

	// CreateProduction inserts a new production record (id is ULID).
	CreateProduction(ctx context.Context, r domain.ProductionRecord) error

	// UpdateProduction replaces the mutable fields, bumps updated_at.
	UpdateProduction(ctx context.Context, r domain.ProductionRecord) error

	// DeleteProduction removes a production record.
	DeleteProduction(ctx context.Context, id string) error

	// DistinctQCLines returns the unique non-empty qc_line values.
	DistinctQCLines(ctx context.Context) ([]string, error)

	// DistinctPartAssy returns the unique non-empty part_assy values.
	DistinctPartAssy(ctx context.Context) ([]string, error)

	// DistinctPartNames returns the unique non-empty part_name values.
	DistinctPartNames(ctx context.Context) ([]string, error)

	// DistinctProcesses returns the unique non-empty process values.
	DistinctProcesses(ctx context.Context) ([]string, error)

	// GetPartDetailsByPartAssy resolves part_name and process from the first
	// production record carrying the given part_assy.
	GetPartDetailsByPartAssy(ctx context.Context, partAssy string) (domain.PartDetails, error)
}

type Machines interface {
	// ListMachines returns all machines, newest first.
	ListMachines(ctx context.Context) ([]domain.Machine, error)

	// DistinctMachineNames returns the unique non-empty machine names.
	DistinctMachineNames(ctx context.Context) ([]string, error)

	// CreateMachine inserts a new machine (id is ULID).
	CreateMachine(ctx context.Context, m domain.Machine) error
}

type Operators interface {
	// ListOperators returns all operators, newest first.
	ListOperators(ctx context.Context) ([]domain.Operator, error)

	// DistinctOperatorNames returns the unique non-empty operator names.
	DistinctOperatorNames(ctx context.Context) ([]string, error)

	// CreateOperator inserts a new operator (id is ULID).
	CreateOperator(ctx context.Context, o domain.Operator) error
}
