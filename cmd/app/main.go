package main

import (
	"context"
	"os"

	"github.com/BloggingApp/blog-service/internal/handler"
	"github.com/BloggingApp/blog-service/internal/pagecache"
	"github.com/BloggingApp/blog-service/internal/rabbitmq"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := initEnv(); err != nil {
		logger.Sugar().Warnf("failed to load environment variables: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Fatalf("failed to initialize yaml config: %s", err.Error())
	}

	db, err := pgxpool.New(ctx, os.Getenv("POSTGRES_URL"))
	if err != nil {
		logger.Sugar().Fatalf("failed to connect to postgres: %s", err.Error())
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		logger.Sugar().Fatalf("postgres is not responding: %s", err.Error())
	}

	redisOpts, err := redis.ParseURL(os.Getenv("REDIS_URL"))
	if err != nil {
		logger.Sugar().Fatalf("failed to parse redis url: %s", err.Error())
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	var mq *rabbitmq.MQConn
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		mq, err = rabbitmq.Dial(url)
		if err != nil {
			logger.Sugar().Fatalf("failed to connect to rabbitmq: %s", err.Error())
		}
		defer mq.Close()
	} else {
		logger.Warn("RABBITMQ_URL is not set, notifications will not be published")
	}

	repo := repository.New(db, rdb)
	cache := pagecache.NewRedis(rdb)
	services := service.New(logger, repo, cache, mq)
	handlers := handler.New(services, cache)

	if err := handlers.InitRoutes().Run(viper.GetString("app.addr")); err != nil {
		logger.Sugar().Fatalf("failed to run the server: %s", err.Error())
	}
}

func initEnv() error {
	return godotenv.Load(".env")
}

func initConfig() error {
	viper.AddConfigPath("./")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	viper.SetDefault("app.addr", ":8080")
	viper.SetDefault("posts.per_page", 10)
	viper.SetDefault("cache.index_ttl_seconds", 20)
	viper.SetDefault("uploads.dir", "./uploads")
	return viper.ReadInConfig()
}
