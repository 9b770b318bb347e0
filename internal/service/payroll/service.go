package payroll

import (
	"context"
	"fmt"

	"github.com/gcet-hr/hr-backend-go/internal/domain/auth"
	"github.com/gcet-hr/hr-backend-go/internal/domain/notification"
	"github.com/gcet-hr/hr-backend-go/internal/domain/payroll"
	"github.com/gcet-hr/hr-backend-go/internal/domain/user"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/database"
	"github.com/gcet-hr/hr-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db               *database.DB
	payrollRepo      payroll.PayrollRepository
	notificationRepo notification.Repository
	userRepo         user.UserRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	notificationRepo notification.Repository,
	userRepo user.UserRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:               db,
		payrollRepo:      payrollRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context) ([]payroll.PayrollResponse, error) {
	records, err := s.payrollRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for i := range records {
		responses = append(responses, records[i].ToResponse())
	}

	return responses, nil
}

// Create implements payroll.PayrollService.
// Record insert and the target user's notification share one transaction.
func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.CreatePayrollResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return payroll.CreatePayrollResponse{}, err
	}

	start, end, err := req.Validate()
	if err != nil {
		return payroll.CreatePayrollResponse{}, err
	}

	exists, err := s.userRepo.Exists(ctx, req.UserID)
	if err != nil {
		return payroll.CreatePayrollResponse{}, err
	}
	if !exists {
		return payroll.CreatePayrollResponse{}, payroll.ErrTargetUserNotFound
	}

	periodStr := fmt.Sprintf("%s to %s", req.PayPeriodStart, req.PayPeriodEnd)
	link := "/payroll"

	var created payroll.PayrollRecord
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.payrollRepo.Create(txCtx, payroll.PayrollRecord{
			UserID:          req.UserID,
			PayPeriodStart:  start,
			PayPeriodEnd:    end,
			GrossSalary:     *req.GrossSalary,
			TotalDeductions: *req.TotalDeductions,
			NetSalary:       *req.NetSalary,
			PayableDays:     *req.PayableDays,
			GeneratedBy:     principal.UserID,
		})
		if err != nil {
			return err
		}

		n := &notification.Notification{
			UserID:  req.UserID,
			Title:   "Payslip Generated",
			Message: fmt.Sprintf("Your payslip for %s is ready.", periodStr),
			Type:    notification.TypePayrollGenerated,
			Link:    &link,
			Payload: map[string]interface{}{
				"payrollId": created.ID,
			},
		}
		return s.notificationRepo.Create(txCtx, n)
	})
	if err != nil {
		return payroll.CreatePayrollResponse{}, err
	}

	return payroll.CreatePayrollResponse{
		Payroll: created.ToResponse(),
		Toast: payroll.ToastPayload{
			UserID:  req.UserID,
			Title:   "Payslip Generated",
			Message: fmt.Sprintf("Your payslip for %s is ready.", periodStr),
			Type:    "success",
		},
	}, nil
}
