package provider

import (
	"github.com/telecom-portal/internal/cache"
	"github.com/telecom-portal/internal/config"
	"github.com/telecom-portal/internal/logger"
	"github.com/telecom-portal/internal/models"
	"github.com/telecom-portal/internal/queue"
	"github.com/telecom-portal/internal/repository"
	"github.com/telecom-portal/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo         repository.AdminRepository
	CustomerRepo      repository.CustomerRepository
	CustomerLoginRepo repository.CustomerLoginRepository
	PlanRepo          repository.PlanRepository
	CustomerPlanRepo  repository.CustomerPlanRepository
	BillRepo          repository.BillRepository
	DashboardRepo     repository.DashboardRepository

	// Services
	AuthService         *service.AuthService
	CustomerAuthService *service.CustomerAuthService
	EmailService        *service.EmailService
	CustomerService     *service.CustomerService
	PlanService         *service.PlanService
	BillingService      *service.BillingService
	DashboardService    *service.DashboardService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.CustomerLoginRepo = repository.NewCustomerLoginRepository(db)
	c.PlanRepo = repository.NewPlanRepository(db)
	c.CustomerPlanRepo = repository.NewCustomerPlanRepository(db)
	c.BillRepo = repository.NewBillRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.CustomerAuthService = service.NewCustomerAuthService(c.Config, c.CustomerRepo, c.CustomerLoginRepo, c.EmailService, c.QueueClient)
	c.CustomerService = service.NewCustomerService(c.CustomerRepo, c.CustomerPlanRepo, c.PlanRepo)
	c.PlanService = service.NewPlanService(c.PlanRepo, c.CustomerPlanRepo, c.CustomerRepo)
	c.BillingService = service.NewBillingService(c.BillRepo)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo)
}
