package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/authz"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/services"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/session"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/utils"
)

type HandlerManager struct {
	authHandler         *AuthHandler
	userHandler         *UserHandler
	attendanceHandler   *AttendanceHandler
	assignmentHandler   *AssignmentHandler
	noteHandler         *NoteHandler
	taskHandler         *TaskHandler
	announcementHandler *AnnouncementHandler
	exportHandler       *ExportHandler
	chatHandler         *ChatHandler
	sessions            *session.Manager
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	sessions *session.Manager,
	validator *utils.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		authHandler:         NewAuthHandler(sessions, validator, logger),
		userHandler:         NewUserHandler(serviceManager.Users(), logger),
		attendanceHandler:   NewAttendanceHandler(serviceManager.Attendance(), logger),
		assignmentHandler:   NewAssignmentHandler(serviceManager.Assignments(), logger),
		noteHandler:         NewNoteHandler(serviceManager.Notes(), logger),
		taskHandler:         NewTaskHandler(serviceManager.Tasks(), logger),
		announcementHandler: NewAnnouncementHandler(serviceManager.Announcements(), serviceManager.Notifications(), logger),
		exportHandler:       NewExportHandler(serviceManager.Export(), logger),
		chatHandler:         NewChatHandler(serviceManager.Chat(), logger),
		sessions:            sessions,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Unauthenticated: the landing/login side of the view state machine
		auth := v1.Group("/auth")
		{
			auth.POST("/login", hm.authHandler.Login)
			auth.POST("/logout", hm.authHandler.Logout)
			auth.GET("/session", hm.authHandler.Session)
			auth.GET("/theme", hm.authHandler.GetTheme)
			auth.PUT("/theme", hm.authHandler.SetTheme)
		}

		// Announcement banner is readable without a session, like the landing
		// page banner
		v1.GET("/announcement", hm.announcementHandler.GetAnnouncement)
		v1.GET("/announcement/watch", hm.announcementHandler.WatchAnnouncement)

		// Everything below requires a session
		dash := v1.Group("", RequireSession(hm.sessions))
		{
			users := dash.Group("/users")
			{
				users.GET("", hm.userHandler.ListUsers)
				users.POST("", hm.userHandler.CreateUser)
				users.GET("/:id", hm.userHandler.GetUser)
				users.PUT("/:id", hm.userHandler.UpdateUser)
				users.DELETE("/:id", hm.userHandler.DeleteUser)
				users.POST("/:id/xp", hm.userHandler.GiveXP)
			}

			dash.GET("/leaderboard", RequirePage(authz.PageLeaderboard), hm.userHandler.Leaderboard)

			attendance := dash.Group("/attendance", RequirePage(authz.PageAttendance))
			{
				attendance.GET("", hm.attendanceHandler.ListAttendance)
				attendance.POST("", hm.attendanceHandler.SaveAttendance)
				attendance.POST("/mark-all-present", hm.attendanceHandler.MarkAllPresent)
			}

			assignments := dash.Group("/assignments", RequirePage(authz.PageAssignments))
			{
				assignments.GET("", hm.assignmentHandler.ListAssignments)
				assignments.POST("", hm.assignmentHandler.CreateAssignment)
				assignments.PUT("/:id", hm.assignmentHandler.UpdateAssignment)
				assignments.DELETE("/:id", hm.assignmentHandler.DeleteAssignment)
			}

			notes := dash.Group("/notes", RequirePage(authz.PageNotes))
			{
				notes.GET("", hm.noteHandler.ListNotes)
				notes.POST("", hm.noteHandler.CreateNote)
				notes.DELETE("/:id", hm.noteHandler.DeleteNote)
			}

			tasks := dash.Group("/tasks")
			{
				tasks.GET("", hm.taskHandler.ListTasks)
				tasks.POST("", hm.taskHandler.CreateTask)
				tasks.PUT("/:id", hm.taskHandler.UpdateTask)
				tasks.DELETE("/:id", hm.taskHandler.DeleteTask)
			}

			dash.GET("/notifications", hm.announcementHandler.ListNotifications)
			dash.DELETE("/notifications", hm.announcementHandler.ClearNotifications)

			dash.POST("/announcement", hm.announcementHandler.Broadcast)
			dash.DELETE("/announcement", hm.announcementHandler.ClearAnnouncement)

			dash.GET("/export/:collection", hm.exportHandler.ExportCollection)

			dash.POST("/chat", hm.chatHandler.SendChat)
		}
	}
}

// HealthCheck reports service liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
