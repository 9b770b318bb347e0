package payroll

import "context"

type PayrollService interface {
	// List requires payroll.view.
	List(ctx context.Context) ([]PayrollResponse, error)
	// Create requires payroll.create; persists the record and notifies the
	// target user in the same transaction.
	Create(ctx context.Context, req CreatePayrollRequest) (CreatePayrollResponse, error)
}
