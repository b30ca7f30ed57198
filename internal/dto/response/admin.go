package response

// StatsResponse is the admin dashboard summary. All numbers are folded in
// application code from three independent list reads, so the snapshot is
// not transactionally consistent.
type StatsResponse struct {
	TotalUsers        int   `json:"total_users"` // excludes admin accounts
	TotalTours        int   `json:"total_tours"`
	TotalBookings     int   `json:"total_bookings"`
	Revenue           int64 `json:"revenue"` // sum of confirmed booking totals
	PendingBookings   int   `json:"pending_bookings"`
	ConfirmedBookings int   `json:"confirmed_bookings"`
}
