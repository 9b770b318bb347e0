package payroll

import "context"

type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	// ListAll returns records joined with user display fields, ordered by
	// pay_period_start descending.
	ListAll(ctx context.Context) ([]PayrollRecord, error)
}
