package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	_ "videotube_service/cmd/videotube_service/docs" // 引入生成的 Swagger 文档
	"videotube_service/internal/api/handlers"
	"videotube_service/internal/api/router"
	"videotube_service/internal/app"
	"videotube_service/internal/domain"
	"videotube_service/internal/repository"
	"videotube_service/pkg/config"
	"videotube_service/pkg/database"
	"videotube_service/pkg/logger"
	"videotube_service/pkg/response"
	testtool "videotube_service/pkg/test_tool"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.ServiceName, config.EnvConfig.LogPath)

	cfg := config.LoadConfig[config.VideoTube](config.EnvConfig.ServiceName, config.EnvConfig.YAMLPath)

	// 非 production 環境開啟 pprof
	testtool.StartPprof()

	// 1. 連線 MongoDB
	mongoURI := fmt.Sprintf("mongodb://%s:%s@%s:%d",
		cfg.Mongo.User, cfg.Mongo.Password, cfg.Mongo.Host, cfg.Mongo.Port)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	mongoDB, err := database.NewMongoDB(ctx, database.Connection{
		ConnectStr:    mongoURI,
		RetryCount:    cfg.Mongo.RetryCount,
		RetryInterval: time.Duration(cfg.Mongo.RetryInterval) * time.Second,
	}, cfg.Mongo.Database)
	if err != nil {
		logger.Log.Fatal("Unable to connect to mongodb after retries", zap.Error(err))
	}
	defer mongoDB.Close(context.Background())

	if err := repository.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		logger.Log.Fatal("ensure indexes failed", zap.Error(err))
	}

	memberRepo := repository.NewMongoMemberRepository(mongoDB.Database)
	videoRepo := repository.NewMongoVideoRepository(mongoDB.Database)
	commentRepo := repository.NewMongoCommentRepository(mongoDB.Database)
	likeRepo := repository.NewMongoLikeRepository(mongoDB.Database)
	subscriptionRepo := repository.NewMongoSubscriptionRepository(mongoDB.Database)
	playlistRepo := repository.NewMongoPlaylistRepository(mongoDB.Database)
	tweetRepo := repository.NewMongoTweetRepository(mongoDB.Database)

	// 2. 初始化 MinIO 客戶端
	minioClient, err := database.NewMinIOConnection(database.MinIOConnection{
		Endpoint:      fmt.Sprintf("%s:%d", cfg.MinIO.Host, cfg.MinIO.Port),
		User:          cfg.MinIO.User,
		Password:      cfg.MinIO.Password,
		BucketName:    cfg.MinIO.BucketName,
		UseSSL:        cfg.MinIO.UseSSL,
		RetryCount:    cfg.MinIO.RetryCount,
		RetryInterval: time.Duration(cfg.MinIO.RetryInterval) * time.Second,
	})
	if err != nil {
		logger.Log.Fatal("Unable to connect to minio after retries", zap.Error(err))
	}

	// 3. Redis session store
	redisClient, err := database.NewRedisClient(database.RedisConnection{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.RedisDB,
	})
	if err != nil {
		logger.Log.Fatal("Unable to connect to redis", zap.Error(err))
	}
	sessionRepo := database.NewRedisRepository[domain.MemberSession](redisClient)

	// 4. RabbitMQ 媒體工作佇列
	rabbitURL := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.IP, cfg.RabbitMQ.Port)
	conn, err := database.ConnectRabbitMQWithRetry(database.Connection{
		ConnectStr:    rabbitURL,
		RetryCount:    cfg.RabbitMQ.RetryCount,
		RetryInterval: time.Duration(cfg.RabbitMQ.RetryInterval) * time.Second,
	})
	if err != nil {
		log.Fatalf("RabbitMQ 連線失敗: %v", err)
	}
	defer conn.Close()

	rabbitChannel, err := database.GetRabbitMQChannelWithRetry(conn, cfg.RabbitMQ.RetryCount, time.Duration(cfg.RabbitMQ.RetryInterval)*time.Second)
	if err != nil {
		log.Fatalf("取得 RabbitMQ Channel 失敗: %v", err)
	}
	defer rabbitChannel.Close()

	// 先初始化 queue name = media_jobs
	if _, err := rabbitChannel.QueueDeclare(
		domain.QueueName, // queue name
		true,             // durable
		false,            // autoDelete
		false,            // exclusive
		false,            // noWait
		nil,              // arguments
	); err != nil {
		log.Fatalf("Queue Declare failed: %v", err)
	}
	rabbitRepo := database.NewRabbitRepository(rabbitChannel)

	// 5. Kafka 觀看事件
	kafkaWriter, err := database.NewKafkaWriterWithRetry(database.KafkaConnection{
		Brokers:       cfg.KafKa.Brokers,
		Topic:         cfg.KafKa.Topic,
		RetryCount:    cfg.KafKa.RetryCount,
		RetryInterval: time.Duration(cfg.KafKa.RetryInterval) * time.Second,
	})
	if err != nil {
		log.Fatalf("Kafka Writer 建立失敗: %v", err)
	}
	kafkaRepo := database.NewKafkaRepository(kafkaWriter)
	defer kafkaRepo.Close()

	// 6. usecases
	memberUseCase := app.NewMemberUseCase(memberRepo, cfg.SessionTTL, sessionRepo)
	videoUseCase := app.NewVideoUseCase(minioClient, videoRepo, commentRepo, likeRepo, playlistRepo, rabbitRepo, kafkaRepo, cfg.MaxPageSize)
	commentUseCase := app.NewCommentUseCase(commentRepo, videoRepo, likeRepo, cfg.MaxPageSize)
	likeUseCase := app.NewLikeUseCase(likeRepo, videoRepo, commentRepo, tweetRepo, cfg.MaxPageSize)
	subscriptionUseCase := app.NewSubscriptionUseCase(subscriptionRepo, memberRepo, cfg.MaxPageSize)
	playlistUseCase := app.NewPlaylistUseCase(playlistRepo, videoRepo, cfg.MaxPageSize)
	tweetUseCase := app.NewTweetUseCase(tweetRepo, likeRepo, cfg.MaxPageSize)
	dashboardUseCase := app.NewDashboardUseCase(videoRepo, subscriptionRepo, likeRepo, cfg.MaxPageSize)

	// 7. 建立 Fiber 應用，錯誤統一由 response.ErrorHandler 包成固定格式
	r := fiber.New(fiber.Config{
		ErrorHandler: response.ErrorHandler,
		BodyLimit:    512 * 1024 * 1024,
	})
	r.Use(recover.New())

	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.LogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()
	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	router.RegisterRoutes(r, router.Handlers{
		Member:       handlers.NewMemberHandler(memberUseCase),
		Video:        handlers.NewVideoHandler(videoUseCase),
		Comment:      handlers.NewCommentHandler(commentUseCase),
		Like:         handlers.NewLikeHandler(likeUseCase),
		Subscription: handlers.NewSubscriptionHandler(subscriptionUseCase),
		Playlist:     handlers.NewPlaylistHandler(playlistUseCase),
		Tweet:        handlers.NewTweetHandler(tweetUseCase),
		Dashboard:    handlers.NewDashboardHandler(dashboardUseCase),
		Sessions:     sessionRepo,
	})

	if err := r.Listen(cfg.IP + ":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}
