package services

import (
	"log/slog"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/broadcast"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/cache"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/config"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/events"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/repositories"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/session"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/utils"
)

// ServiceManager bundles all services for injection into handlers.
type ServiceManager interface {
	Users() UserService
	Attendance() AttendanceService
	Assignments() AssignmentService
	Notes() NoteService
	Tasks() TaskService
	Notifications() NotificationService
	Announcements() AnnouncementService
	Export() ExportService
	Chat() ChatService
}

type serviceManager struct {
	users         UserService
	attendance    AttendanceService
	assignments   AssignmentService
	notes         NoteService
	tasks         TaskService
	notifications NotificationService
	announcements AnnouncementService
	export        ExportService
	chat          ChatService
}

func NewServiceManager(
	cfg *config.Config,
	repo repositories.Repository,
	sessions *session.Manager,
	announcer *broadcast.Announcer,
	cacheSvc cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *utils.Validator,
) ServiceManager {
	return &serviceManager{
		users:         NewUserService(repo, sessions, cacheSvc, publisher, logger, validator),
		attendance:    NewAttendanceService(repo, publisher, logger, validator),
		assignments:   NewAssignmentService(repo, logger, validator),
		notes:         NewNoteService(repo, logger, validator),
		tasks:         NewTaskService(repo, logger, validator),
		notifications: NewNotificationService(repo, logger),
		announcements: NewAnnouncementService(announcer, logger, validator),
		export:        NewExportService(repo, logger),
		chat:          NewChatService(cfg.Assistant, logger, validator),
	}
}

func (m *serviceManager) Users() UserService { return m.users }

func (m *serviceManager) Attendance() AttendanceService { return m.attendance }

func (m *serviceManager) Assignments() AssignmentService { return m.assignments }

func (m *serviceManager) Notes() NoteService { return m.notes }

func (m *serviceManager) Tasks() TaskService { return m.tasks }

func (m *serviceManager) Notifications() NotificationService { return m.notifications }

func (m *serviceManager) Announcements() AnnouncementService { return m.announcements }

func (m *serviceManager) Export() ExportService { return m.export }

func (m *serviceManager) Chat() ChatService { return m.chat }
