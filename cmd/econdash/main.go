package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"econdash/config"
	"econdash/dataset"
	"econdash/engine"
	"econdash/messaging"
	"econdash/snapshot"
	"econdash/store"
	"econdash/www"
)

var Version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "econdash.yaml", "path to config file")
	flag.Parse()

	if *showVersion {
		fmt.Println("econdash", Version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Database (load events + audit log)
	db, err := store.Open(&cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	log.Printf("econdash: database open (%s)", cfg.Database.Driver)

	// Redis (summary snapshot cache, optional)
	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("econdash: redis not available (%v), running without snapshot cache", err)
		} else {
			log.Printf("econdash: redis connected (%s)", cfg.Redis.Address)
		}
		cancel()
		defer redisClient.Close()
	}
	snap := snapshot.NewManager(redisClient, cfg.Redis.SnapshotTTL.Std())

	// Dataset load cache
	loader := dataset.NewLoader(dataset.ReadFile, cfg.Dataset.CacheTTL.Std())
	log.Printf("econdash: dataset path %s (cache ttl %s)", cfg.Dataset.Path, cfg.Dataset.CacheTTL.Std())

	// Messaging client (ETL refresh notifications)
	msgClient := messaging.NewClient(&cfg.Messaging)
	if cfg.Messaging.Backend != "" {
		if err := msgClient.Connect(); err != nil {
			log.Printf("econdash: messaging connect failed (%v)", err)
		} else {
			log.Printf("econdash: messaging connected (%s)", cfg.Messaging.Backend)
		}
	}
	defer msgClient.Close()

	// Engine
	eng := engine.New(engine.Config{
		AppConfig:  cfg,
		ConfigPath: *configPath,
		Loader:     loader,
		DB:         db,
		Snapshot:   snap,
		MsgClient:  msgClient,
	})
	eng.Start()
	defer eng.Stop()

	// Refresh consumer (inbound from the ETL pipeline)
	consumer := messaging.NewConsumer(msgClient, cfg.Messaging.RefreshTopic, eng)
	if err := consumer.Start(); err != nil {
		log.Printf("econdash: consumer start failed: %v", err)
	}
	defer consumer.Stop()

	// Web server
	handler, stopWeb := www.NewRouter(eng)

	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		log.Printf("econdash: web server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("web server: %v", err)
		}
	}()

	log.Printf("econdash: ready")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Printf("econdash: shutting down...")
	stopWeb()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	srv.Shutdown(shutdownCtx)

	log.Printf("econdash: stopped")
}
