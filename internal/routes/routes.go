package routes

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/xchire/acculog/internal/attendance"
	"github.com/xchire/acculog/internal/config"
	"github.com/xchire/acculog/internal/controllers"
	"github.com/xchire/acculog/internal/middleware"
	"github.com/xchire/acculog/internal/ws"
)

func Register(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	accessTTL := minutesOr(cfg.AccessTokenTTLMinutes, 60)
	refreshTTL := daysOr(cfg.RefreshTokenTTLDays, 30)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("invalid TIMEZONE %q, falling back to local: %v", cfg.Timezone, err)
		loc = time.Local
	}

	hub := ws.NewAttendanceHub()
	go hub.Run()

	// Controllers
	authCtrl := &controllers.AuthController{
		DB:            db,
		AccessSecret:  cfg.JWTSecret,
		RefreshSecret: cfg.RefreshJWTSecret,
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
	}
	activityCtrl := &controllers.ActivityController{
		DB:  db,
		Hub: hub,
		Loc: loc,
		Gate: attendance.Gate{
			LoginQuota:     intOr(cfg.LoginQuota, attendance.DefaultLoginQuota),
			SiteVisitQuota: intOr(cfg.SiteVisitQuota, attendance.DefaultSiteVisitQuota),
		},
	}
	timesheetCtrl := &controllers.TimesheetController{DB: db, Loc: loc}
	ticketCtrl := &controllers.TicketController{DB: db, Loc: loc}
	jobCtrl := &controllers.JobPostingController{DB: db}
	adminCtrl := &controllers.AdminController{DB: db}

	// Public
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", authCtrl.Login)
		auth.POST("/refresh", authCtrl.Refresh)
	}

	// Protected
	authMW := middleware.AuthMiddleware(db, middleware.AuthConfig{JWTSecret: cfg.JWTSecret})
	api := r.Group("/api", authMW)
	{
		api.GET("/auth/me", authCtrl.Me)
		api.POST("/auth/logout", authCtrl.Logout)

		// Attendance/activity module; paths preserved from the legacy API.
		activity := api.Group("/ModuleSales/Activity")
		{
			activity.POST("/AddLog", activityCtrl.AddLog)
			activity.GET("/LastStatus", activityCtrl.LastStatus)
			activity.GET("/LoginSummary", activityCtrl.LoginSummary)
			activity.GET("/SiteVisitCountToday", activityCtrl.SiteVisitCountToday)
			activity.PUT("/UpdateLog", activityCtrl.UpdateLog)
			activity.GET("/FetchLog", activityCtrl.FetchLog)
			activity.GET("/Timesheet", timesheetCtrl.Report)
			activity.GET("/TimesheetExport", timesheetCtrl.Export)
		}

		// Ticket requests
		tickets := api.Group("/tickets")
		{
			tickets.GET("", ticketCtrl.ListTickets)
			tickets.POST("", ticketCtrl.CreateTicket)
			tickets.GET("/:id", ticketCtrl.GetTicket)
			tickets.PUT("/:id", middleware.RequireRoles("hr", "admin"), ticketCtrl.UpdateTicket)
			tickets.DELETE("/:id", middleware.RequireRoles("admin"), ticketCtrl.DeleteTicket)
		}

		// Recruitment job postings
		careers := api.Group("/careers")
		{
			careers.GET("", jobCtrl.ListJobPostings)
			careers.GET("/:id", jobCtrl.GetJobPosting)
			careers.POST("", middleware.RequireRoles("hr", "admin"), jobCtrl.CreateJobPosting)
			careers.PUT("/:id", middleware.RequireRoles("hr", "admin"), jobCtrl.UpdateJobPosting)
			careers.DELETE("/:id", middleware.RequireRoles("hr", "admin"), jobCtrl.DeleteJobPosting)
		}

		// Admin-only user management
		admin := api.Group("/admin", middleware.RequireRoles("admin"))
		{
			admin.GET("/users", adminCtrl.ListUsers)
			admin.POST("/users", authCtrl.Register) // admin-only registration
			admin.GET("/users/:reference_id", adminCtrl.GetUser)
			admin.PUT("/users/:reference_id", adminCtrl.UpdateUser)
			admin.DELETE("/users/:reference_id", adminCtrl.DeleteUser)
		}

		// Live attendance feed
		api.GET("/ws/attendance", ws.AttendanceHandler(hub))
	}
}

func minutesOr(s string, fallback int) time.Duration {
	return time.Duration(intOr(s, fallback)) * time.Minute
}

func daysOr(s string, fallback int) time.Duration {
	return time.Duration(intOr(s, fallback)) * 24 * time.Hour
}

func intOr(s string, fallback int) int {
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return fallback
}
