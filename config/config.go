package config

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Config 结构体用于存储应用程序的配置信息
type Config struct {
	DBDriver    string // sqlite / mysql / postgres
	DBPath      string // sqlite 数据库文件路径
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	JWTSecret   string
	LogLevel    string
	Port        string
	FrontendURL string
	StaticDir   string // 单页客户端静态文件目录
	FeedLimit   int    // 信息流默认返回的帖子数量
	Debug       bool   // 是否开启调试模式
}

// AppConfig 是全局配置变量
var AppConfig Config

// Init 函数用于初始化配置
func Init() {
	// 加载 .env 文件
	err := godotenv.Load()
	if err != nil {
		log.Printf("警告：无法加载 .env 文件: %v", err)
	}

	// 从环境变量中读取配置
	AppConfig = Config{
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBPath:      getEnv("DB_PATH", "./database.sqlite"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "3306"),
		DBUser:      getEnv("DB_USER", ""),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "minisocial"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Port:        getEnv("PORT", "3000"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		StaticDir:   getEnv("STATIC_DIR", "./public"),
		FeedLimit:   getEnvAsInt("FEED_LIMIT", 50),
		Debug:       getEnvAsBool("DEBUG", true),
	}

	validateConfig()

	if AppConfig.Debug {
		gin.SetMode(gin.DebugMode)
		log.Println("应用程序运行在调试模式")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("应用程序运行在生产模式")
	}

	log.Printf("配置加载完成。数据库驱动：%s", AppConfig.DBDriver)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultVal int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := getEnv(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return defaultVal
}

func validateConfig() {
	if AppConfig.JWTSecret == "" {
		// 开发环境下允许使用默认密钥，但给出明显警告
		AppConfig.JWTSecret = "dev_secret_change_me"
		log.Println("警告：JWT密钥未设置，正在使用开发默认值")
	}
	if AppConfig.DBDriver == "mysql" || AppConfig.DBDriver == "postgres" {
		if AppConfig.DBUser == "" || AppConfig.DBName == "" {
			log.Fatal("错误：数据库配置不完整")
		}
	}
	if AppConfig.FeedLimit <= 0 || AppConfig.FeedLimit > 100 {
		AppConfig.FeedLimit = 50
	}
}
