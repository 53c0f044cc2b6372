package router

import (
	"launch-go/internal/config"
	"launch-go/internal/handler"
	"launch-go/internal/middleware"
	"launch-go/internal/repository"
	"launch-go/internal/service"
	"launch-go/internal/utils"
	"launch-go/pkg/redis_limiter"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
	generator service.TextGenerator,
	knowledge *service.KnowledgeRecorder,
) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 注册自定义binding验证规则
	utils.RegisterGinValidations()

	r := gin.New()

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "发布管理系统 API",
			"version": "1.0.0",
		})
	})

	// 指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	productRepo := repository.NewProductRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	ruleRepo := repository.NewRuleRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)

	// 每租户生成并发限制
	var limiter *redis_limiter.RedisLimiter
	if redisClient != nil && cfg.LLM.TenantConcurrency > 0 {
		limiter = redis_limiter.NewRedisLimiter(
			redisClient,
			cfg.LLM.TenantConcurrency,
			"launch:generation",
			cfg.LLM.GetTimeoutDuration(),
		)
	}

	// 初始化Service
	authService := service.NewAuthService(userRepo, tenantRepo, jwtManager, cfg)
	workflowService := service.NewWorkflowService(productRepo)
	productService := service.NewProductService(productRepo, workflowService)
	brandService := service.NewBrandService(brandRepo)
	ruleService := service.NewRuleService(ruleRepo)
	assetService := service.NewAssetService(assetRepo)
	revenueService := service.NewRevenueService(revenueRepo, productRepo)
	generationService := service.NewGenerationService(
		productRepo,
		brandRepo,
		ruleRepo,
		assetRepo,
		generator,
		knowledge,
		limiter,
		cfg.LLM.GetTimeoutDuration(),
	)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	brandHandler := handler.NewBrandHandler(brandService)
	ruleHandler := handler.NewRuleHandler(ruleService)
	assetHandler := handler.NewAssetHandler(assetService)
	workflowHandler := handler.NewWorkflowHandler(workflowService)
	revenueHandler := handler.NewRevenueHandler(revenueService)
	generationHandler := handler.NewGenerationHandler(generationService)

	// API路由组
	api := r.Group("/api")
	{
		// 公开路由
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// 认证路由
		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(jwtManager))
		{
			// 用户信息
			authorized.GET("/me", authHandler.GetMe)
			authorized.POST("/logout", authHandler.Logout)

			// 产品管理
			authorized.POST("/products", productHandler.CreateProduct)
			authorized.GET("/products", productHandler.ListProducts)
			authorized.GET("/products/:id", productHandler.GetProduct)
			authorized.PUT("/products/:id", productHandler.UpdateProduct)
			authorized.DELETE("/products/:id", productHandler.DeleteProduct)

			// 资产生成
			authorized.POST("/generate", generationHandler.GenerateAssets)

			// 资产查看与复核
			authorized.GET("/products/:id/assets", assetHandler.ListAssets)
			authorized.GET("/assets/:asset_id", assetHandler.GetAsset)
			authorized.PUT("/assets/:asset_id/review", assetHandler.ReviewAsset)

			// 品牌规范
			authorized.GET("/brand", brandHandler.GetBrand)
			authorized.PUT("/brand", brandHandler.UpdateBrand)

			// 发布流程
			authorized.GET("/workflow/:product_type/stages", workflowHandler.GetStages)
			authorized.GET("/workflow/:product_type/kanban", workflowHandler.Kanban)
			authorized.PUT("/products/:id/stage", workflowHandler.UpdateStage)

			// 营收目标
			authorized.POST("/revenue_goals", revenueHandler.CreateGoal)
			authorized.PUT("/revenue_goals/:id", revenueHandler.UpdateGoal)
			authorized.DELETE("/revenue_goals/:id", revenueHandler.DeleteGoal)
			authorized.GET("/revenue_progress", revenueHandler.GetProgress)

			// 管理员接口
			adminGroup := authorized.Group("/admin")
			adminGroup.Use(middleware.AdminMiddleware())
			{
				adminGroup.GET("/rules", ruleHandler.ListRules)
				adminGroup.POST("/rules", ruleHandler.CreateRule)
				adminGroup.PUT("/rules/:id", ruleHandler.UpdateRule)
				adminGroup.DELETE("/rules/:id", ruleHandler.DeleteRule)
			}
		}
	}

	return r
}
