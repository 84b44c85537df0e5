package opsdk

import "time"

// ============================================================================
// Authentication
// ============================================================================

// LoginRequest is the payload for the password login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// Remember requests a long-lived remember token alongside the
	// access token so the operator stays signed in across restarts.
	Remember bool `json:"remember,omitempty"`
}

// LoginResponse is returned by both the login and refresh endpoints.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`

	// RememberToken is only present when the login requested one. The
	// refresh endpoint rotates it, so callers must store the new value.
	RememberToken string `json:"remember_token,omitempty"`

	User UserInfoResponse `json:"user"`
}

// RefreshRequest exchanges a remember token for a fresh access token.
type RefreshRequest struct {
	RememberToken string `json:"remember_token"`
}

// LogoutRequest optionally carries the remember token to revoke.
type LogoutRequest struct {
	RememberToken string `json:"remember_token,omitempty"`
}

// UserInfoResponse describes the authenticated staff member.
type UserInfoResponse struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// ErrorResponse is the standard error payload for all endpoints.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Staff profiles
// ============================================================================

// Profile is a staff account record.
type Profile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateStaffRequest creates a new staff account. When Password is empty
// the server generates an initial password and returns it once in the
// response.
type CreateStaffRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	Password    string `json:"password,omitempty"`
}

// CreateStaffResponse returns the created profile. InitialPassword is only
// set when the server generated one; it is never retrievable again.
type CreateStaffResponse struct {
	Profile         Profile `json:"profile"`
	InitialPassword string  `json:"initial_password,omitempty"`
}

// UpdateStaffRequest updates a staff account. Empty fields are left as-is.
type UpdateStaffRequest struct {
	DisplayName string `json:"display_name,omitempty"`
	Role        string `json:"role,omitempty"`
	Password    string `json:"password,omitempty"`
}

// ListStaffResponse wraps the staff listing.
type ListStaffResponse struct {
	Staff []Profile `json:"staff"`
}

// SalesOption is a profile reference used to populate the sales dropdown
// on the purchase order form.
type SalesOption struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// ListSalesResponse wraps the sales profile listing.
type ListSalesResponse struct {
	Sales []SalesOption `json:"sales"`
}

// ============================================================================
// Customers
// ============================================================================

// Customer is a customer master record.
type Customer struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CustomerRequest creates or updates a customer record.
type CustomerRequest struct {
	CustomerName string `json:"customer_name"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
}

// ListCustomersResponse wraps the customer listing, newest first.
type ListCustomersResponse struct {
	Customers []Customer `json:"customers"`
}

// ============================================================================
// Items
// ============================================================================

// Item is a part master record.
type Item struct {
	ID           string    `json:"id"`
	PartAssyName string    `json:"part_assy_name"`
	PartName     string    `json:"part_name"`
	Process      string    `json:"process"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ItemRequest creates or updates an item record.
type ItemRequest struct {
	PartAssyName string `json:"part_assy_name"`
	PartName     string `json:"part_name"`
	Process      string `json:"process"`
}

// ListItemsResponse wraps the item listing, newest first.
type ListItemsResponse struct {
	Items []Item `json:"items"`
}

// ============================================================================
// Machines and operators
// ============================================================================

// Machine is a production machine record.
type Machine struct {
	ID          string    `json:"id"`
	MachineName string    `json:"machine_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListMachinesResponse wraps the machine listing.
type ListMachinesResponse struct {
	Machines []Machine `json:"machines"`
}

// Operator is a production operator record.
type Operator struct {
	ID           string    `json:"id"`
	OperatorName string    `json:"operator_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListOperatorsResponse wraps the operator listing.
type ListOperatorsResponse struct {
	Operators []Operator `json:"operators"`
}

// DistinctValuesResponse is a deduplicated list of values for dropdowns
// (operator names, machine names, QC lines, part assys, and so on).
type DistinctValuesResponse struct {
	Values []string `json:"values"`
}

// PartDetailsResponse carries the part name and process resolved from a
// part assy, used to autofill the production entry form.
type PartDetailsResponse struct {
	PartName string `json:"part_name"`
	Process  string `json:"process"`
}

// ============================================================================
// Purchase orders
// ============================================================================

// PurchaseOrder is a purchase order record. Dates are "YYYY-MM-DD".
type PurchaseOrder struct {
	ID           string `json:"id"`
	NoPO         string `json:"no_po"`
	PODate       string `json:"po_date"`
	CustomerName string `json:"customer_name"`
	PartAssyName string `json:"part_assy_name"`
	Quantity     int    `json:"quantity"`
	SalesName    string `json:"sales_name"`

	// Attribution stamped by the server at creation, never updated.
	CreatedByUserID          string `json:"created_by_user_id"`
	CreatedByUserDisplayName string `json:"created_by_user_display_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PurchaseOrderRequest creates or updates a purchase order. The creator
// attribution fields are server-side only and cannot be set here.
type PurchaseOrderRequest struct {
	NoPO         string `json:"no_po"`
	PODate       string `json:"po_date"`
	CustomerName string `json:"customer_name"`
	PartAssyName string `json:"part_assy_name"`
	Quantity     int    `json:"quantity"`
	SalesName    string `json:"sales_name"`
}

// PurchaseOrderFilter narrows the purchase order listing. Zero values
// mean "don't filter".
type PurchaseOrderFilter struct {
	StartDate       string // inclusive, "YYYY-MM-DD"
	EndDate         string // inclusive, "YYYY-MM-DD"
	CreatedByUserID string
	SalesName       string // substring match, case-insensitive
}

// ListPurchaseOrdersResponse wraps the purchase order listing, newest
// po_date first.
type ListPurchaseOrdersResponse struct {
	PurchaseOrders []PurchaseOrder `json:"purchase_orders"`
}

// ============================================================================
// Production data
// ============================================================================

// ProductionRecord is a single production log entry. Tanggal is the
// production date as "YYYY-MM-DD"; times are "HH:MM".
type ProductionRecord struct {
	ID           string `json:"id"`
	Tanggal      string `json:"tanggal"`
	NamaOperator string `json:"nama_operator"`
	Shift        string `json:"shift"`
	JenisProses  string `json:"jenis_proses"`
	PartAssy     string `json:"part_assy"`
	PartName     string `json:"part_name"`
	Process      string `json:"process"`
	Mesin        string `json:"mesin"`
	StartTime    string `json:"start_time"`
	FinishTime   string `json:"finish_time"`
	BreakMenit   int    `json:"break_menit"`
	Duration     int    `json:"duration"`
	OK           int    `json:"ok"`
	NG           int    `json:"ng"`
	QCLine       string `json:"qc_line"`
	Note         string `json:"note,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductionRequest creates or updates a production log entry.
type ProductionRequest struct {
	Tanggal      string `json:"tanggal"`
	NamaOperator string `json:"nama_operator"`
	Shift        string `json:"shift"`
	JenisProses  string `json:"jenis_proses"`
	PartAssy     string `json:"part_assy"`
	PartName     string `json:"part_name"`
	Process      string `json:"process"`
	Mesin        string `json:"mesin"`
	StartTime    string `json:"start_time"`
	FinishTime   string `json:"finish_time"`
	BreakMenit   int    `json:"break_menit"`
	Duration     int    `json:"duration"`
	OK           int    `json:"ok"`
	NG           int    `json:"ng"`
	QCLine       string `json:"qc_line"`
	Note         string `json:"note,omitempty"`
}

// ProductionFilter narrows the production listing. Zero values mean
// "don't filter".
type ProductionFilter struct {
	DateFrom    string // inclusive, "YYYY-MM-DD"
	DateTo      string // inclusive, "YYYY-MM-DD"
	ProcessType string // exact match on jenis_proses
	Shift       string // exact match
}

// ListProductionResponse wraps the production listing, newest tanggal first.
type ListProductionResponse struct {
	Records []ProductionRecord `json:"records"`
}

// ============================================================================
// Notifications
// ============================================================================

// Notification is an activity notification delivered to a staff member.
type Notification struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ActivityType  string    `json:"activity_type"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	IsRead        bool      `json:"is_read"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedByName string    `json:"created_by_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListNotificationsResponse wraps the notification listing, newest first.
type ListNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}

// UnreadCountResponse carries the badge count for the notification bell.
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// ============================================================================
// Menu
// ============================================================================

// MenuItem is a dashboard page the current role may open.
type MenuItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// MenuResponse lists the pages visible to the authenticated role. This is
// cosmetic; the server enforces the same rules on every route regardless.
type MenuResponse struct {
	Role  string     `json:"role"`
	Items []MenuItem `json:"items"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks itemises the readiness of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
