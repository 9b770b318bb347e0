package postgresql

import (
	"context"
	"fmt"

	"github.com/gcet-hr/hr-backend-go/internal/domain/payroll"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payrolls (
			id, user_id, pay_period_start, pay_period_end,
			gross_salary, total_deductions, net_salary, payable_days,
			payslip_url, generated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.UserID,
		record.PayPeriodStart,
		record.PayPeriodEnd,
		record.GrossSalary,
		record.TotalDeductions,
		record.NetSalary,
		record.PayableDays,
		record.PayslipURL,
		record.GeneratedBy,
	).Scan(&record.CreatedAt)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

// ListAll implements payroll.PayrollRepository.
func (r *payrollRepository) ListAll(ctx context.Context) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			p.id, p.user_id, p.pay_period_start, p.pay_period_end,
			p.gross_salary, p.total_deductions, p.net_salary, p.payable_days,
			p.payslip_url, p.generated_by, p.created_at,
			u.first_name, u.last_name, u.email, u.employee_id
		FROM payrolls p
		LEFT JOIN users u ON u.id = p.user_id
		ORDER BY p.pay_period_start DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		var info payroll.UserInfo
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.PayPeriodStart, &rec.PayPeriodEnd,
			&rec.GrossSalary, &rec.TotalDeductions, &rec.NetSalary, &rec.PayableDays,
			&rec.PayslipURL, &rec.GeneratedBy, &rec.CreatedAt,
			&info.FirstName, &info.LastName, &info.Email, &info.EmployeeID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		rec.User = &info
		records = append(records, rec)
	}

	return records, rows.Err()
}
