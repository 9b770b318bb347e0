package attendance

import "time"

// ============= Filters =============

// ListFilter narrows attendance queries. Role scoping happens in the
// service: employees are pinned to their own UserID before it reaches here.
type ListFilter struct {
	UserID   *string
	DateFrom *string // YYYY-MM-DD
	DateTo   *string // YYYY-MM-DD
}

// ============= Response DTOs =============

type CheckInResponse struct {
	Message     string    `json:"message"`
	CheckInTime time.Time `json:"checkInTime"`
}

type CheckOutResponse struct {
	Message      string    `json:"message"`
	CheckOutTime time.Time `json:"checkOutTime"`
}

// AttendanceResponse is a ledger row enriched with derived hours and the
// joined user display fields.
type AttendanceResponse struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	WorkHours  string    `json:"workHours"`
	ExtraHours string    `json:"extraHours"`
	Status     Status    `json:"status"`
	Notes      *string   `json:"notes,omitempty"`
	User       *UserInfo `json:"user,omitempty"`
}

// ToResponse converts an Attendance entity, deriving work and extra hours.
func (a *Attendance) ToResponse() AttendanceResponse {
	work, extra := WorkHours(a.CheckIn, a.CheckOut)

	resp := AttendanceResponse{
		ID:         a.ID,
		Date:       a.Date.Format("2006-01-02"),
		WorkHours:  work,
		ExtraHours: extra,
		Status:     a.Status,
		Notes:      a.Notes,
		User:       a.User,
	}
	if a.CheckIn != nil {
		resp.CheckIn = a.CheckIn.UTC().Format(time.RFC3339)
	}
	if a.CheckOut != nil {
		resp.CheckOut = a.CheckOut.UTC().Format(time.RFC3339)
	}
	return resp
}
