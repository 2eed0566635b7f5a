package models

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusApplied OrderStatus = "applied"
)

// Order is a backend-owned purchase record. The client lists orders and
// toggles pending -> applied; everything else stays upstream.
type Order struct {
	OrderID  int64       `json:"order_id"`
	UserID   int64       `json:"user_id"`
	UserName string      `json:"user_name"`
	JobID    int64       `json:"job_id"`
	JobTitle string      `json:"job_title"`
	Status   OrderStatus `json:"status"`
}

// Payment is one row of the admin dashboard's recent-payments table.
type Payment struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// DashboardStats is the aggregate block of GET /admin/dashboard.
type DashboardStats struct {
	TotalJobs     int    `json:"totalJobs"`
	PendingCount  int    `json:"pendingCount"`
	AppliedCount  int    `json:"appliedCount"`
	TotalSpending string `json:"totalSpending"`
}
