package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/audit"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/config"
	domainReminder "github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/reminder"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/handlers"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/infra/ledger"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/infra/notifier"
	infraRepo "github.com/manicurestudiolite-bot/manicurestudiolite/internal/infra/repository"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/logger"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/metrics"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/middleware"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/timezone"
	ucAppointment "github.com/manicurestudiolite-bot/manicurestudiolite/internal/usecase/appointment"
	ucPush "github.com/manicurestudiolite-bot/manicurestudiolite/internal/usecase/push"
	ucReminder "github.com/manicurestudiolite-bot/manicurestudiolite/internal/usecase/reminder"
	ucSettings "github.com/manicurestudiolite-bot/manicurestudiolite/internal/usecase/settings"
)

type Deps struct {
	DB       *gorm.DB
	Redis    *redis.Client // opcional
	Cfg      *config.Config
	Log      zerolog.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
}

// Background guarda o que roda fora do ciclo de request e precisa ser
// encerrado no shutdown. Scheduler é nil quando o push não está configurado.
type Background struct {
	Dispatcher *audit.Dispatcher
	Scheduler  *ucReminder.Scheduler
}

func RegisterRoutes(r *gin.Engine, d Deps) (*Background, error) {
	cfg := d.Cfg
	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger.Component(d.Log, "http"), d.Metrics),
		middleware.Sentry(),
		gin.Recovery(),
		middleware.CORSMiddleware(cfg.WebOrigin),
		middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).RateLimit(),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	reminderRepo := infraRepo.NewReminderGormRepository(d.DB)
	subscriptionRepo := infraRepo.NewSubscriptionGormRepository(d.DB)
	settingsRepo := infraRepo.NewSettingsGormRepository(d.DB)

	auditDispatcher := audit.NewDispatcher(
		audit.New(d.DB),
		logger.Component(d.Log, "audit"),
		d.Metrics,
	)

	var reminderLedger domainReminder.Ledger
	if d.Redis != nil {
		reminderLedger = ledger.NewRedisLedger(d.Redis)
	} else {
		reminderLedger = ledger.NewMemoryLedger(10 * time.Minute)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo)
	setStatusUC := ucAppointment.NewSetAppointmentStatus(appointmentRepo, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	whatsappUC := ucAppointment.NewWhatsAppLink(appointmentRepo, loc)

	subscribeUC := ucPush.NewSubscribe(subscriptionRepo)
	unsubscribeUC := ucPush.NewUnsubscribe(subscriptionRepo)

	getSettingsUC := ucSettings.NewGetSettings(settingsRepo)
	updateSettingsUC := ucSettings.NewUpdateSettings(settingsRepo)

	// ======================================================
	// LEMBRETES
	// ======================================================
	bg := &Background{Dispatcher: auditDispatcher}

	if cfg.PushEnabled() {
		sender := notifier.NewSender(
			cfg.Push,
			subscriptionRepo,
			logger.Component(d.Log, "push"),
			d.Metrics,
		)

		scanner := ucReminder.NewScanner(
			reminderRepo,
			sender,
			reminderLedger,
			auditDispatcher,
			ucReminder.ScannerConfig{
				Tolerance: cfg.Reminder.Tolerance,
				LedgerTTL: cfg.Reminder.LedgerTTL,
				Location:  loc,
			},
			logger.Component(d.Log, "reminder"),
			d.Metrics,
		)

		scheduler, err := ucReminder.NewScheduler(
			scanner,
			cfg.Reminder.Schedule,
			loc,
			cfg.Reminder.TickTimeout,
			logger.Component(d.Log, "scheduler"),
		)
		if err != nil {
			return nil, err
		}
		bg.Scheduler = scheduler
	} else {
		d.Log.Warn().Msg("VAPID keys not configured, push reminders disabled")
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	handlerLog := logger.Component(d.Log, "handlers")

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		setStatusUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		whatsappUC,
		loc,
		handlerLog,
	)
	clientHandler := handlers.NewClientHandler(d.DB, handlerLog)
	serviceHandler := handlers.NewServiceHandler(d.DB, handlerLog)
	pushHandler := handlers.NewPushHandler(subscribeUC, unsubscribeUC, cfg.Push.VAPIDPublicKey, handlerLog)
	settingsHandler := handlers.NewSettingsHandler(getSettingsUC, updateSettingsUC, handlerLog)
	healthHandler := handlers.NewHealthHandler(d.DB)

	// ======================================================
	// MÉTRICAS
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/push/vapid-key", pushHandler.VapidKey)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.GET("/appointments/:id/whatsapp", appointmentHandler.WhatsApp)

			// ------------------------------
			// CLIENTS / SERVICES
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)

			// ------------------------------
			// PUSH / SETTINGS
			// ------------------------------
			secured.POST("/push/subscribe", pushHandler.Subscribe)
			secured.POST("/push/unsubscribe", pushHandler.Unsubscribe)

			secured.GET("/settings/me", settingsHandler.GetMe)
			secured.PUT("/settings/me", settingsHandler.UpdateMe)
		}
	}

	return bg, nil
}
