package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/config"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/api/feed"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/api/user"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/middleware"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/model"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/repository/gormdb"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/service"
	"github.com/sridharvanitha686gov-bot/CodeAlpha-ProjectName-minisocial-media/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// 初始化配置
	config.Init()

	// 初始化日志
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	util.Logger.Info("应用程序启动")

	// 连接数据库
	db, err := openDatabase()
	if err != nil {
		util.Logger.Fatal("连接数据库失败", zap.Error(err))
	}
	util.Logger.Info("数据库连接成功", zap.String("driver", config.AppConfig.DBDriver))

	// 自动迁移
	err = db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Comment{},
		&model.Like{},
		&model.Follow{},
	)
	if err != nil {
		util.Logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	// 注册自定义验证器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("username_format", util.ValidateUsername)
	}

	// 初始化存储库、服务和处理器
	userRepo := gormdb.NewUserRepository(db)
	feedRepo := gormdb.NewFeedRepository(db)
	userService := service.NewUserService(userRepo, feedRepo)
	feedService := service.NewFeedService(feedRepo)
	authHandler := user.NewAuthHandler(userService)
	feedHandler := feed.NewFeedHandler(feedService, userService)

	// 设置 Gin 路由
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())

	// 配置 CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.AppConfig.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 定义 API 路由
	api := r.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/me", middleware.AuthMiddleware(), authHandler.Me)

		api.GET("/posts", middleware.OptionalAuthMiddleware(), feedHandler.ListPosts)
		api.POST("/posts", middleware.AuthMiddleware(), feedHandler.CreatePost)
		api.POST("/posts/:id/comments", middleware.AuthMiddleware(), feedHandler.CreateComment)
		api.POST("/posts/:id/like", middleware.AuthMiddleware(), feedHandler.ToggleLike)

		api.POST("/users/:id/follow", middleware.AuthMiddleware(), feedHandler.ToggleFollow)
		api.GET("/users/:id", feedHandler.GetProfile)
	}

	// 单页客户端：未匹配的路由回退到 index.html
	staticDir := config.AppConfig.StaticDir
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "接口不存在"})
			return
		}
		path := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	})

	// 创建 http.Server 以支持优雅关闭
	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: r,
	}

	// 在一个新的 goroutine 中启动服务器
	go func() {
		util.Logger.Info("服务器正在启动", zap.String("port", config.AppConfig.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			util.Logger.Fatal("启动服务器失败", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	util.Logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		util.Logger.Fatal("服务器强制关闭", zap.Error(err))
	}

	util.Logger.Info("服务器已优雅关闭")
}

// openDatabase 根据配置选择数据库驱动
func openDatabase() (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	switch config.AppConfig.DBDriver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.AppConfig.DBUser,
			config.AppConfig.DBPassword,
			config.AppConfig.DBHost,
			config.AppConfig.DBPort,
			config.AppConfig.DBName)
		return gorm.Open(mysql.Open(dsn), cfg)
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.AppConfig.DBHost,
			config.AppConfig.DBUser,
			config.AppConfig.DBPassword,
			config.AppConfig.DBName,
			config.AppConfig.DBPort)
		return gorm.Open(postgres.Open(dsn), cfg)
	default:
		return gorm.Open(sqlite.Open(config.AppConfig.DBPath), cfg)
	}
}
