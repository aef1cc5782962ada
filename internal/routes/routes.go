package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"facility-console/internal/controllers"
	"facility-console/internal/dto"
	"facility-console/internal/entities"
	"facility-console/internal/listeners"
	"facility-console/internal/maintenance"
	"facility-console/internal/repositories"
	"facility-console/internal/services"
	"facility-console/pkg/clock"
	"facility-console/pkg/eventbus"
	"facility-console/pkg/filestorage"
	"facility-console/pkg/metrics"
	"facility-console/pkg/middleware"
	"facility-console/pkg/service"
	"facility-console/pkg/telegram"
	"facility-console/pkg/utils"
)

// Deps are the long-lived components the router wires services from.
type Deps struct {
	Repos       *repositories.Repositories
	Clock       clock.Clock
	Cache       repositories.CacheRepositoryInterface // nil disables the summary cache
	CacheTTL    time.Duration
	FileStorage filestorage.FileStorageInterface
	Bus         *eventbus.Bus
	Metrics     *metrics.Metrics
	JWT         service.JWTService // nil leaves /api open
	Notifier    telegram.ServiceInterface
	NotifyChat  int64
	Logger      *zap.Logger
}

func InitRouter(e *echo.Echo, deps Deps) {
	logger := deps.Logger
	logger.Info("InitRouter: building routes")

	e.Use(middleware.RequestLogger(logger.Named("http")), middleware.Metrics(deps.Metrics))

	e.GET("/healthz", func(c echo.Context) error {
		return utils.SuccessResponse(c, map[string]string{"today": deps.Clock.Today()}, "ok", http.StatusOK)
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{})))

	// --- services ---
	var summaryCache *services.SummaryCache
	if deps.Cache != nil {
		summaryCache = services.NewSummaryCache(deps.Cache, deps.CacheTTL, deps.Metrics, logger.Named("cache"))
	}
	if deps.Bus != nil {
		listeners.NewActivityListener(logger, deps.Metrics).Register(deps.Bus)
		if deps.Notifier != nil {
			listeners.NewStatusNotifier(deps.Notifier, deps.NotifyChat, logger.Named("notify")).Register(deps.Bus)
		}
	}
	resolver := maintenance.NewResolver(deps.Clock)

	workOrderService := services.NewWorkOrderService(deps.Repos, deps.Clock, deps.Bus, summaryCache, deps.FileStorage, logger.Named("work_orders"))
	equipmentService := services.NewEquipmentService(deps.Repos, resolver, summaryCache, logger.Named("equipment"))
	exportService := services.NewExportService(workOrderService, deps.Repos, resolver, logger.Named("export"))
	documentService := services.NewDocumentService(deps.Repos, deps.FileStorage, deps.Clock.Now, logger.Named("documents"))

	// --- controllers ---
	workOrderCtrl := controllers.NewWorkOrderController(workOrderService, exportService, logger)
	scheduleCtrl := controllers.NewScheduleController(workOrderService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	documentCtrl := controllers.NewDocumentController(documentService, logger)

	api := e.Group("/api")
	if deps.JWT != nil {
		api.Use(middleware.NewAuthMiddleware(deps.JWT, logger.Named("auth")).Auth)
	} else {
		logger.Warn("InitRouter: AUTH_JWT_SECRET is empty, /api is not protected")
	}

	runWorkOrderRouter(api, workOrderCtrl)
	runScheduleRouter(api, scheduleCtrl)
	runEquipmentRouter(api, equipmentCtrl)
	runDocumentRouter(api, documentCtrl)

	runRecordRouter(api.Group("/personnel"),
		controllers.NewRecordController[entities.Personnel, dto.PersonnelDTO](services.NewPersonnelService(deps.Repos, logger), "인원", logger))
	runRecordRouter(api.Group("/announcements"),
		controllers.NewRecordController[entities.Announcement, dto.AnnouncementDTO](services.NewAnnouncementService(deps.Repos, deps.Clock, logger), "공지", logger))
	runRecordRouter(api.Group("/attendances"),
		controllers.NewRecordController[entities.Attendance, dto.AttendanceDTO](services.NewAttendanceService(deps.Repos, logger), "근태", logger))
	runRecordRouter(api.Group("/daily-reports"),
		controllers.NewRecordController[entities.DailyReport, dto.DailyReportDTO](services.NewDailyReportService(deps.Repos, logger), "업무일지", logger))

	logger.Info("InitRouter: routes ready")
}
