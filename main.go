package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/configs"
	database "sekolahku_backend/internals/databases"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/blob"
	middlewares "sekolahku_backend/internals/middlewares"
	routes "sekolahku_backend/internals/route"
	"sekolahku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		// error yang lolos sampai framework tetap keluar sebagai envelope JSON
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromFiberError(c, err)
		},
	})

	// HTTP timeout guard (selaras dengan statement_timeout di DB)
	app.Use(func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if configs.GetEnv("RUN_MIGRATIONS") == "1" {
		database.AutoMigrateAll()
	}
	if configs.GetEnv("RUN_SEEDS") == "1" {
		seeds.RunAllSeeds(database.DB)
	}

	middlewares.SetupMiddlewares(app, database.DB)

	// 🗂 object storage: OSS di produksi, disk lokal untuk dev
	store := newObjectStore()
	blobSvc := blob.NewService(store)

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, blobSvc)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newObjectStore() blob.ObjectStore {
	if configs.StorageDriver == "local" {
		base := configs.GetEnv("STORAGE_BASE_URL", "http://localhost:3000/storage")
		return blob.NewLocalStore(configs.StorageLocalDir, base)
	}

	env := map[string]string{
		"ALI_OSS_ENDPOINT":       configs.GetEnv("ALI_OSS_ENDPOINT"),
		"ALI_OSS_ACCESS_KEY":     configs.GetEnv("ALI_OSS_ACCESS_KEY"),
		"ALI_OSS_SECRET_KEY":     configs.GetEnv("ALI_OSS_SECRET_KEY"),
		"ALI_OSS_SECURITY_TOKEN": configs.GetEnv("ALI_OSS_SECURITY_TOKEN"),
		"ALI_OSS_BUCKET":         configs.GetEnv("ALI_OSS_BUCKET"),
	}
	store, err := blob.NewOSSStoreFromEnv(env, configs.GetEnv("ALI_OSS_PREFIX", "uploads/"))
	if err != nil {
		log.Fatalf("❌ OSS store init gagal: %v", err)
	}
	return store
}
