package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/gcet-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gcet-hr/hr-backend-go/internal/domain/leave"
	"github.com/xuri/excelize/v2"
)

// Format selects the export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat defaults to CSV for anything unrecognised.
func ParseFormat(s string) Format {
	if s == string(FormatXLSX) {
		return FormatXLSX
	}
	return FormatCSV
}

// Export is a generated file ready to stream to the client.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReportService renders attendance and leave listings as downloadable files.
// Generation is synchronous; HR data volumes do not need chunking.
type ReportService interface {
	ExportAttendance(ctx context.Context, filter attendance.ListFilter, format Format) (Export, error)
	ExportLeaves(ctx context.Context, format Format) (Export, error)
}

type reportService struct {
	attendanceService attendance.AttendanceService
	leaveService      leave.LeaveService
}

func NewReportService(attendanceService attendance.AttendanceService, leaveService leave.LeaveService) ReportService {
	return &reportService{
		attendanceService: attendanceService,
		leaveService:      leaveService,
	}
}

var attendanceHeader = []string{"Date", "Employee ID", "Name", "Email", "Check In", "Check Out", "Work Hours", "Extra Hours", "Status", "Notes"}

// ExportAttendance implements ReportService.
func (s *reportService) ExportAttendance(ctx context.Context, filter attendance.ListFilter, format Format) (Export, error) {
	records, err := s.attendanceService.List(ctx, filter)
	if err != nil {
		return Export{}, err
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		var employeeID, name, email string
		if rec.User != nil {
			employeeID = deref(rec.User.EmployeeID)
			name = deref(rec.User.FirstName) + " " + deref(rec.User.LastName)
			email = deref(rec.User.Email)
		}
		rows = append(rows, []string{
			rec.Date,
			employeeID,
			name,
			email,
			rec.CheckIn,
			rec.CheckOut,
			rec.WorkHours,
			rec.ExtraHours,
			string(rec.Status),
			deref(rec.Notes),
		})
	}

	return render("attendance", attendanceHeader, rows, format)
}

var leaveHeader = []string{"Name", "Leave Type", "Start Date", "End Date", "Days", "Status", "Reason", "Approver Comments"}

// ExportLeaves implements ReportService.
func (s *reportService) ExportLeaves(ctx context.Context, format Format) (Export, error) {
	leaves, err := s.leaveService.List(ctx)
	if err != nil {
		return Export{}, err
	}

	rows := make([][]string, 0, len(leaves))
	for _, l := range leaves {
		rows = append(rows, []string{
			l.Name,
			l.LeaveType,
			l.StartDate,
			l.EndDate,
			strconv.Itoa(l.DaysCount),
			string(l.Status),
			deref(l.Reason),
			deref(l.ApproverComments),
		})
	}

	return render("leaves", leaveHeader, rows, format)
}

func render(name string, header []string, rows [][]string, format Format) (Export, error) {
	if format == FormatXLSX {
		return renderXLSX(name, header, rows)
	}
	return renderCSV(name, header, rows)
}

func renderCSV(name string, header []string, rows [][]string) (Export, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return Export{}, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return Export{}, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return Export{}, fmt.Errorf("failed to flush csv: %w", err)
	}

	return Export{
		Filename:    name + ".csv",
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

func renderXLSX(name string, header []string, rows [][]string) (Export, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return Export{}, fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return Export{}, fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return Export{}, fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return Export{}, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return Export{}, fmt.Errorf("failed to render workbook: %w", err)
	}

	return Export{
		Filename:    name + ".xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
