package staff

// Share is one staff member's share of a hospital's appointments. A staff
// member working for several hospitals has one Share per hospital.
type Share struct {
	StaffID           int64   `json:"STAFF_ID"`
	FullName          string  `json:"FullName"`
	HID               int64   `json:"HID"`
	HospitalName      string  `json:"HospitalName"`
	TotalAppointments int     `json:"TotalAppointments"`
	PctOfHospital     float64 `json:"PctOfHospital"`
}

// DepartmentCount is the number of staff in one department.
type DepartmentCount struct {
	DepID      int64  `json:"dep_id"`
	Department string `json:"department"`
	Count      int    `json:"count"`
}
