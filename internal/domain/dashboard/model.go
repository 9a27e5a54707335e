package dashboard

// Stats holds the four dashboard counters.
type Stats struct {
	TotalPatients     int `json:"total_patients"`
	TotalStaff        int `json:"total_staff"`
	TotalAppointments int `json:"total_appointments"`
	LowStockCount     int `json:"low_stock_count"`
}

// Upcoming is an appointment joined to its activity, patient and staff names.
type Upcoming struct {
	CAID        int64  `json:"CAID"`
	PatientName string `json:"PatientName"`
	StaffName   string `json:"StaffName"`
	Date        string `json:"Date"`
	Time        string `json:"Time"`
	Reason      string `json:"Reason"`
	Status      string `json:"Status"`
}

type GenderCount struct {
	Sex   string `json:"sex"`
	Count int    `json:"count"`
}

// MonthCount is the number of appointments in one calendar month (YYYY-MM).
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}
