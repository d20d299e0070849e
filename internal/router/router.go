package router

import (
	"fmt"
	"strings"

	"github.com/telecom-portal/internal/cache"
	"github.com/telecom-portal/internal/config"
	adminhandlers "github.com/telecom-portal/internal/http/handlers/admin"
	publichandlers "github.com/telecom-portal/internal/http/handlers/public"
	"github.com/telecom-portal/internal/logger"
	"github.com/telecom-portal/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "tp"
	}
	redisClient := cache.Client()
	customerLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:customer_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Message:       "too many login attempts",
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Message:       "too many login attempts",
	}
	forgotRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:forgot_password", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Message:       "too many reset requests",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	api := r.Group("/api")
	{
		// 认证接口
		api.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIPAndJSONField("username")), publicHandler.AdminLogin)
		api.POST("/customer-login", RateLimitMiddleware(redisClient, customerLoginRule, KeyByIPAndJSONField("username")), publicHandler.CustomerLogin)
		api.POST("/customer-signup", publicHandler.CustomerSignup)
		api.POST("/forgot-password", RateLimitMiddleware(redisClient, forgotRule, KeyByIPAndJSONField("email")), publicHandler.ForgotPassword)
		api.POST("/reset-password", publicHandler.ResetPassword)
		api.POST("/logout", publicHandler.Logout)
		api.GET("/auth/check", publicHandler.AuthCheck)

		// 公开套餐目录
		api.GET("/plans", publicHandler.ListPlans)

		// 客户自助接口（Cookie 中的 ID 必须与路径一致）
		selfService := api.Group("/customers/:id")
		selfService.Use(CustomerSessionMiddleware())
		{
			selfService.GET("", publicHandler.GetCustomerDetail)
			selfService.GET("/bills", publicHandler.ListBills)
			selfService.POST("/bills/:billId/pay", publicHandler.PayBill)
			selfService.POST("/change-plan", publicHandler.ChangePlan)
		}

		// 管理端接口
		adminGroup := api.Group("/admin")
		adminGroup.Use(AdminSessionMiddleware())
		{
			adminGroup.GET("/dashboard", adminHandler.Dashboard)

			adminGroup.GET("/customers", adminHandler.ListCustomers)
			adminGroup.POST("/customers", adminHandler.CreateCustomer)
			adminGroup.GET("/customers/:id", adminHandler.GetCustomer)
			adminGroup.PUT("/customers/:id", adminHandler.UpdateCustomer)

			adminGroup.POST("/plans", adminHandler.CreatePlan)
			adminGroup.PUT("/plans/:id", adminHandler.UpdatePlan)
			adminGroup.DELETE("/plans/:id", adminHandler.DeletePlan)
		}
	}

	return r
}
