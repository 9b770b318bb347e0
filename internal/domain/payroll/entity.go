package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRecord is append-only: created by hr/admin, never updated or deleted.
type PayrollRecord struct {
	ID              string
	UserID          string
	PayPeriodStart  time.Time
	PayPeriodEnd    time.Time
	GrossSalary     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	PayableDays     int
	PayslipURL      *string
	GeneratedBy     string
	CreatedAt       time.Time

	// Joined user display fields
	User *UserInfo
}

// UserInfo carries the joined user columns on list queries.
type UserInfo struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Email      *string `json:"email"`
	EmployeeID *string `json:"employeeId"`
}
