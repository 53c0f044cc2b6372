package main

import (
	"log"
	"os"

	"launch-go/internal/config"
	"launch-go/internal/models"
	"launch-go/internal/repository"
	"launch-go/internal/router"
	"launch-go/internal/service"
	"launch-go/internal/utils"
	"launch-go/pkg/llm_caller"

	"github.com/go-redis/redis/v8"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

func main() {
	// 加载配置（从项目根目录读取）
	cfg, err := config.LoadConfig("./config/config.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	// 初始化数据库
	if err := models.InitDB(cfg); err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}
	db := models.GetDB()

	// 初始化Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddress(),
		DB:       cfg.Redis.DB,
		Password: cfg.Redis.Password,
	})

	// 初始化NATS，未配置或连不上时知识库事件只落库
	var nc *nats.Conn
	if cfg.NATS.URL != "" {
		nc, err = nats.Connect(cfg.NATS.URL)
		if err != nil {
			logger.Warnf("连接NATS失败，知识库事件将不发布: %v", err)
			nc = nil
		}
	}

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	ruleRepo := repository.NewRuleRepository(db)
	knowledgeRepo := repository.NewKnowledgeRepository(db)

	// 初始化工具
	jwtManager := utils.NewJWTManager(
		cfg.JWT.SecretKey,
		cfg.JWT.Algorithm,
		cfg.JWT.GetExpireDuration(),
	)

	// 初始化管理员账户
	authService := service.NewAuthService(userRepo, tenantRepo, jwtManager, cfg)
	if err := authService.InitAdmin(); err != nil {
		logger.Warnf("初始化管理员失败: %v", err)
	}

	// 空库时写入默认生成规则
	ruleService := service.NewRuleService(ruleRepo)
	if err := ruleService.SeedDefaults(); err != nil {
		logger.Warnf("写入默认规则失败: %v", err)
	}

	// 知识库异步记录器
	knowledge := service.NewKnowledgeRecorder(knowledgeRepo, nc, 0)
	knowledge.Start()
	defer knowledge.Stop()

	// 文本生成客户端
	generator := llm_caller.NewClient(
		cfg.LLM.APIBase,
		cfg.LLM.APIKey,
		cfg.LLM.Model,
		cfg.LLM.Temperature,
		cfg.LLM.MaxTokens,
		cfg.LLM.GetTimeoutDuration(),
	)

	// 设置路由
	r := router.SetupRouter(cfg, jwtManager, logger, db, redisClient, generator, knowledge)

	// 启动服务器
	addr := cfg.Server.GetAddress()
	logger.Infof("服务器启动在 %s", addr)

	if cfg.Server.ProductionMode {
		logger.Info("生产模式: API文档已禁用")
	} else {
		logger.Infof("开发模式: 管理员账号: %s", cfg.Admin.Username)
	}

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务器失败: %v", err)
	}
}
