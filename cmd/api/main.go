package main

import (
	"fmt"
	"net/http"

	"github.com/gcet-hr/hr-backend-go/internal/config"
	appHTTP "github.com/gcet-hr/hr-backend-go/internal/handler/http"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/database"
	"github.com/gcet-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/gcet-hr/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/gcet-hr/hr-backend-go/internal/service/attendance"
	authService "github.com/gcet-hr/hr-backend-go/internal/service/auth"
	leaveService "github.com/gcet-hr/hr-backend-go/internal/service/leave"
	notificationService "github.com/gcet-hr/hr-backend-go/internal/service/notification"
	payrollService "github.com/gcet-hr/hr-backend-go/internal/service/payroll"
	reportService "github.com/gcet-hr/hr-backend-go/internal/service/report"
	userService "github.com/gcet-hr/hr-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.CookieName)

	authSvc := authService.NewAuthService(db, userRepo, jwtService)
	userSvc := userService.NewUserService(db, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, attendanceRepo, notificationRepo, userRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, notificationRepo, userRepo)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	reportSvc := reportService.NewReportService(attendanceSvc, leaveSvc)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(jwtService, authSvc),
		User:         appHTTP.NewUserHandler(userSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
