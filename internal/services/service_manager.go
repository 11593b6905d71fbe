package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/raja-bazar/makhtab-admin-service/internal/events"
	"github.com/raja-bazar/makhtab-admin-service/internal/repositories"
	"github.com/raja-bazar/makhtab-admin-service/internal/store"
	"github.com/raja-bazar/makhtab-admin-service/internal/validator"
)

// ManagerConfig carries the knobs the service layer needs from the
// process configuration.
type ManagerConfig struct {
	Auth        AuthConfig
	OTPTTL      time.Duration
	SeedOnStart bool
}

type serviceManager struct {
	otp          OTPService
	session      SessionService
	auth         AuthService
	seed         SeedService
	student      StudentService
	teacher      TeacherService
	notice       NoticeService
	payment      PaymentService
	dashboard    DashboardService
	export       ExportService
	notification NotificationEventService

	publisher events.EventPublisher
	logger    *slog.Logger
	config    ManagerConfig
}

// NewServiceManager wires the full service graph on top of the store,
// repositories and event publisher.
func NewServiceManager(
	st store.Store,
	repo repositories.Repository,
	publisher events.EventPublisher,
	v *validator.Validator,
	logger *slog.Logger,
	config ManagerConfig,
) ServiceManager {
	notification := NewNotificationEventService(publisher, logger)
	otp := NewOTPService(repo, logger, config.OTPTTL)
	session := NewSessionService(repo, logger)

	return &serviceManager{
		otp:          otp,
		session:      session,
		auth:         NewAuthService(repo, otp, session, notification, logger, v, config.Auth),
		seed:         NewSeedService(st, repo, logger),
		student:      NewStudentService(repo, logger, v),
		teacher:      NewTeacherService(repo, notification, logger, v),
		notice:       NewNoticeService(repo, notification, logger, v),
		payment:      NewPaymentService(repo, notification, logger, v),
		dashboard:    NewDashboardService(repo, logger),
		export:       NewExportService(repo),
		notification: notification,
		publisher:    publisher,
		logger:       logger,
		config:       config,
	}
}

func (m *serviceManager) OTP() OTPService                        { return m.otp }
func (m *serviceManager) Session() SessionService                { return m.session }
func (m *serviceManager) Auth() AuthService                      { return m.auth }
func (m *serviceManager) Seed() SeedService                      { return m.seed }
func (m *serviceManager) Student() StudentService                { return m.student }
func (m *serviceManager) Teacher() TeacherService                { return m.teacher }
func (m *serviceManager) Notice() NoticeService                  { return m.notice }
func (m *serviceManager) Payment() PaymentService                { return m.payment }
func (m *serviceManager) Dashboard() DashboardService            { return m.dashboard }
func (m *serviceManager) Export() ExportService                  { return m.export }
func (m *serviceManager) Notification() NotificationEventService { return m.notification }

// Initialize seeds empty collections and applies pending migrations.
func (m *serviceManager) Initialize(ctx context.Context) error {
	if !m.config.SeedOnStart {
		m.logger.Info("seed on start disabled, skipping")
		return nil
	}
	if err := m.seed.EnsureSeeded(ctx); err != nil {
		return err
	}
	return m.seed.Migrate(ctx)
}

func (m *serviceManager) Shutdown(ctx context.Context) error {
	m.logger.Info("shutting down services")
	return m.publisher.Close()
}
