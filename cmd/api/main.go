package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/palmahr/payroll-engine-go/internal/config"
	appHTTP "github.com/palmahr/payroll-engine-go/internal/handler/http"
	"github.com/palmahr/payroll-engine-go/internal/pkg/cron"
	"github.com/palmahr/payroll-engine-go/internal/pkg/database"
	"github.com/palmahr/payroll-engine-go/internal/repository/postgresql"
	attendanceService "github.com/palmahr/payroll-engine-go/internal/service/attendance"
	notificationService "github.com/palmahr/payroll-engine-go/internal/service/notification"
	payrollService "github.com/palmahr/payroll-engine-go/internal/service/payroll"
	regulationService "github.com/palmahr/payroll-engine-go/internal/service/regulation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	location, err := time.LoadLocation(cfg.Engine.Timezone)
	if err != nil {
		log.Fatal("Invalid ENGINE_TIMEZONE: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	regulationRepo := postgresql.NewRegulationRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	notifier := notificationService.NewEmitter(notificationRepo)
	resolver := regulationService.NewResolver(regulationRepo)
	regulationSvc := regulationService.NewService(regulationRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, resolver)
	payrollSvc := payrollService.NewPayrollService(
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		resolver,
		notifier,
		cfg.Engine.Workers,
	)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	regulationHandler := appHTTP.NewRegulationHandler(regulationSvc)

	tokenAuth := jwtauth.New("HS256", []byte(cfg.JWT.Secret), nil)

	router := appHTTP.NewRouter(
		cfg,
		tokenAuth,
		payrollHandler,
		attendanceHandler,
		regulationHandler,
	)

	scheduler := cron.NewScheduler()
	payrollJobs := cron.NewPayrollJobs(attendanceRepo, employeeRepo, notifier, location)
	payrollJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
