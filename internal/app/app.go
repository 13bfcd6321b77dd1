package app

import (
	"log"
	"os"

	"go-orgsuite/internal/shared/blob"
	"go-orgsuite/internal/shared/connection"

	"github.com/gin-gonic/gin"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("✅ Database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	log.Println("✅ Redis connection established")

	blobStore, err := blob.NewMinioStore(blob.MinioConfigFromEnv())
	if err != nil {
		return err
	}
	log.Println("✅ Object storage ready")

	// Register Modules & Routes
	return registerModules(router, sqlDB, gormDB, redisClient, blobStore)
}
