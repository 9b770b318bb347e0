package payroll

import (
	"time"

	"github.com/gcet-hr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ============= Request DTOs =============

type CreatePayrollRequest struct {
	UserID          string           `json:"userId"`
	PayPeriodStart  string           `json:"payPeriodStart"` // YYYY-MM-DD
	PayPeriodEnd    string           `json:"payPeriodEnd"`   // YYYY-MM-DD
	GrossSalary     *decimal.Decimal `json:"grossSalary"`
	TotalDeductions *decimal.Decimal `json:"totalDeductions"`
	NetSalary       *decimal.Decimal `json:"netSalary"`
	PayableDays     *int             `json:"payableDays"`
}

// Validate checks that every required field is present and parsable.
func (r *CreatePayrollRequest) Validate() (start, end time.Time, err error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "userId", Message: "target user is required"})
	}
	start, ok := validator.IsValidDate(r.PayPeriodStart)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "payPeriodStart", Message: "pay period start is required in YYYY-MM-DD format"})
	}
	end, ok = validator.IsValidDate(r.PayPeriodEnd)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "payPeriodEnd", Message: "pay period end is required in YYYY-MM-DD format"})
	}
	if r.GrossSalary == nil {
		errs = append(errs, validator.ValidationError{Field: "grossSalary", Message: "gross salary is required"})
	}
	if r.TotalDeductions == nil {
		errs = append(errs, validator.ValidationError{Field: "totalDeductions", Message: "total deductions is required"})
	}
	if r.NetSalary == nil {
		errs = append(errs, validator.ValidationError{Field: "netSalary", Message: "net salary is required"})
	}
	if r.PayableDays == nil {
		errs = append(errs, validator.ValidationError{Field: "payableDays", Message: "payable days is required"})
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	return start, end, nil
}

// ============= Response DTOs =============

type PayrollResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	PayPeriodStart  string          `json:"payPeriodStart"`
	PayPeriodEnd    string          `json:"payPeriodEnd"`
	GrossSalary     decimal.Decimal `json:"grossSalary"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetSalary       decimal.Decimal `json:"netSalary"`
	PayableDays     int             `json:"payableDays"`
	PayslipURL      *string         `json:"payslipUrl,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	User            *UserInfo       `json:"user,omitempty"`
}

// ToastPayload mirrors the emitted notification for immediate UI display.
type ToastPayload struct {
	UserID  string `json:"userId"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type CreatePayrollResponse struct {
	Payroll PayrollResponse `json:"payroll"`
	Toast   ToastPayload    `json:"toast"`
}

// ToResponse converts a PayrollRecord entity to its API representation.
func (p *PayrollRecord) ToResponse() PayrollResponse {
	return PayrollResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		PayPeriodStart:  p.PayPeriodStart.Format("2006-01-02"),
		PayPeriodEnd:    p.PayPeriodEnd.Format("2006-01-02"),
		GrossSalary:     p.GrossSalary,
		TotalDeductions: p.TotalDeductions,
		NetSalary:       p.NetSalary,
		PayableDays:     p.PayableDays,
		PayslipURL:      p.PayslipURL,
		CreatedAt:       p.CreatedAt,
		User:            p.User,
	}
}
