package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half_day"
	StatusLeave   Status = "leave"
)

// Attendance is one row per (user, calendar date). The pair is unique;
// writes go through an upsert on that key. A check-out earlier than the
// check-in is not rejected anywhere, matching the stored data's contract.
type Attendance struct {
	ID        string
	UserID    string
	Date      time.Time // calendar date, time component zero
	CheckIn   *time.Time
	CheckOut  *time.Time
	Status    Status
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined user display fields
	User *UserInfo
}

// UserInfo carries the joined user columns on list queries.
type UserInfo struct {
	ID         string  `json:"id"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Email      *string `json:"email"`
	EmployeeID *string `json:"employeeId"`
}
