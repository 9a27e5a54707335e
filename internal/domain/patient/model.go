package patient

import "time"

// Patient is a full patient row.
type Patient struct {
	IID        int64     `json:"IID"`
	CIN        string    `json:"CIN"`
	FullName   string    `json:"FullName"`
	Birth      time.Time `json:"Birth"`
	Sex        string    `json:"Sex"`
	BloodGroup *string   `json:"BloodGroup,omitempty"`
	Phone      string    `json:"Phone"`
}

// Summary is the listing projection of a patient.
type Summary struct {
	IID      int64  `json:"IID"`
	FullName string `json:"FullName"`
	Sex      string `json:"Sex"`
	Phone    string `json:"Phone"`
}
