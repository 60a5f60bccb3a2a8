package models

// EventReportRow is one row of the admin dashboard: an event joined
// with its owning account. Timestamp is pre-formatted by the query
// as YYYY-MM-DD HH:MM:SS so cached and fresh rows render identically.
type EventReportRow struct {
	EventID   int64  `json:"id" db:"id"`
	UserName  string `json:"user_name" db:"user_name"`
	VehicleNo string `json:"vehicle_no" db:"vehicle_no"`
	EventType string `json:"event_type" db:"event_type"`
	Timestamp string `json:"timestamp" db:"timestamp"`
	ImagePath string `json:"image_path" db:"image_path"`
}
