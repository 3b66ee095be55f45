package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/worklens-app/attendance-backend-go/internal/config"
	appHTTP "github.com/worklens-app/attendance-backend-go/internal/handler/http"
	"github.com/worklens-app/attendance-backend-go/internal/pkg/database"
	"github.com/worklens-app/attendance-backend-go/internal/pkg/jwt"
	"github.com/worklens-app/attendance-backend-go/internal/pkg/oauth"
	"github.com/worklens-app/attendance-backend-go/internal/pkg/storage"
	"github.com/worklens-app/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/worklens-app/attendance-backend-go/internal/service/attendance"
	authService "github.com/worklens-app/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/worklens-app/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/worklens-app/attendance-backend-go/internal/service/employee"
	leaveService "github.com/worklens-app/attendance-backend-go/internal/service/leave"
	reportService "github.com/worklens-app/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	authSvc := authService.NewAuthService(employeeRepo, jwtSvc, googleSvc, cfg.Admin)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileStorage)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, leaveRequestRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, leaveRequestRepo)

	// The first boot seeds the admin account; later boots are no-ops.
	bootstrapCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authSvc.EnsureAdmin(bootstrapCtx); err != nil {
		cancel()
		log.Fatal("Failed to ensure bootstrap admin: ", err)
	}
	cancel()

	router := appHTTP.NewRouter(cfg, jwtSvc, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtSvc, authSvc, cfg.App.FrontendURL),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
