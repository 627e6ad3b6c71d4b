package main

import (
	"fmt"
	"net/http"

	"github.com/transkotakita/payroll-backend-go/internal/config"
	appHTTP "github.com/transkotakita/payroll-backend-go/internal/handler/http"
	"github.com/transkotakita/payroll-backend-go/internal/pkg/database"
	"github.com/transkotakita/payroll-backend-go/internal/pkg/discord"
	"github.com/transkotakita/payroll-backend-go/internal/pkg/jwt"
	"github.com/transkotakita/payroll-backend-go/internal/repository/postgresql"
	authService "github.com/transkotakita/payroll-backend-go/internal/service/auth"
	employeeService "github.com/transkotakita/payroll-backend-go/internal/service/employee"
	gateService "github.com/transkotakita/payroll-backend-go/internal/service/gate"
	paymentService "github.com/transkotakita/payroll-backend-go/internal/service/payment"
	reportService "github.com/transkotakita/payroll-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	discordClient := discord.NewClient(cfg.Webhook)

	authSvc := authService.NewAuthService(cfg.Access.AdminPasswordHash, JWTService)
	gateSvc := gateService.NewGateService(cfg.Access.EmployeePassphrase, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	paymentSvc := paymentService.NewPaymentService(paymentRepo, employeeRepo, discordClient)
	reportSvc := reportService.NewReportService(employeeRepo, paymentRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	gateHandler := appHTTP.NewGateHandler(gateSvc, JWTService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, paymentSvc)
	paymentHandler := appHTTP.NewPaymentHandler(paymentSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(reportSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		gateSvc,
		authHandler,
		gateHandler,
		employeeHandler,
		paymentHandler,
		dashboardHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
