package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rndpresence/presence-backend-go/internal/config"
	appHTTP "github.com/rndpresence/presence-backend-go/internal/handler/http"
	"github.com/rndpresence/presence-backend-go/internal/pkg/cron"
	"github.com/rndpresence/presence-backend-go/internal/pkg/database"
	"github.com/rndpresence/presence-backend-go/internal/pkg/jwt"
	"github.com/rndpresence/presence-backend-go/internal/pkg/ldap"
	"github.com/rndpresence/presence-backend-go/internal/repository/postgresql"
	attendanceService "github.com/rndpresence/presence-backend-go/internal/service/attendance"
	authService "github.com/rndpresence/presence-backend-go/internal/service/auth"
	calendarService "github.com/rndpresence/presence-backend-go/internal/service/calendar"
	directoryService "github.com/rndpresence/presence-backend-go/internal/service/directory"
	reportService "github.com/rndpresence/presence-backend-go/internal/service/report"
	trackingService "github.com/rndpresence/presence-backend-go/internal/service/tracking"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	presenceDB, err := database.NewPostgreSQLDB(cfg.PresenceDB.URL())
	if err != nil {
		fmt.Println("Error connecting to presence database:", err)
		return
	}
	defer presenceDB.Close()

	staffDB, err := database.NewPostgreSQLDB(cfg.StaffDB.URL())
	if err != nil {
		fmt.Println("Error connecting to staff database:", err)
		return
	}
	defer staffDB.Close()

	calendarRepo := postgresql.NewCalendarRepository(presenceDB)
	attendanceRepo := postgresql.NewAttendanceRepository(presenceDB)
	directoryRepo := postgresql.NewDirectoryRepository(staffDB)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	ldapClient := ldap.NewClient(ldap.Config{
		Server: cfg.LDAP.Server,
		Port:   cfg.LDAP.Port,
		Domain: cfg.LDAP.Domain,
	})

	calendarSvc := calendarService.NewCalendarService(calendarRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	directorySvc := directoryService.NewDirectoryService(directoryRepo)
	trackingSvc := trackingService.NewTrackingService(
		trackingService.NewStateTable(),
		directorySvc,
		attendanceSvc,
	)
	reportSvc := reportService.NewReportService(calendarSvc, attendanceSvc, directorySvc, trackingSvc)
	authSvc := authService.NewAuthService(jwtService, ldapClient, directorySvc, cfg.HR)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	hrHandler := appHTTP.NewHRHandler(directorySvc, trackingSvc, reportSvc, calendarSvc)
	piHandler := appHTTP.NewPIHandler(trackingSvc, reportSvc)
	profileHandler := appHTTP.NewProfileHandler(directorySvc)

	router := appHTTP.NewRouter(cfg, jwtService, authHandler, hrHandler, piHandler, profileHandler)

	scheduler := cron.NewScheduler()
	cron.NewCalendarJobs(calendarSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}
	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
			stop <- syscall.SIGTERM
		}
	}()

	<-stop
	_ = server.Close()
}
