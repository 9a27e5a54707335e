package scheduling

import "time"

const StatusScheduled = "Scheduled"

// Appointment is a clinical activity together with its appointment
// extension row. Both share CAID.
type Appointment struct {
	CAID    int64     `json:"caid"`
	IID     int64     `json:"iid"`
	StaffID int64     `json:"staff_id"`
	DepID   int64     `json:"dep_id"`
	Date    time.Time `json:"date"`
	// Time is the wall clock time as HH:MM or HH:MM:SS.
	Time   string `json:"time"`
	Reason string `json:"reason"`
	Status string `json:"status"`
}
