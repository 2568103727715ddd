package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/config"
	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/handler"
	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/httputil"
	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/logging"
	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/models"
	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/scheduler"
	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/scraper"
	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/services"
	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/storage"
)

var (
	searchOnce = flag.String("search", "", "Run a single search for the given location, print the result JSON and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logFile, err := logging.Setup(cfg.LogPath)
	if err != nil {
		log.Printf("Warning: could not set up file logging: %v", err)
	} else {
		defer logFile.Close()
	}

	log.Println("Starting property recommender...")

	runStore, err := storage.NewRunStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open run store: %v", err)
	}
	defer runStore.Close()
	log.Printf("Run store: %s", cfg.DBPath)

	session := scraper.NewSession(&cfg.Browser)
	defer session.Release()

	client := scraper.NewClient(session, &cfg.Browser, &cfg.Search)
	normalizer := services.NewNormalizer(cfg.Search.Origin)
	ranker := services.NewRanker(cfg.Scoring)
	recommendService := services.NewRecommendService(cfg.Search, client, normalizer, ranker, runStore)

	if *searchOnce != "" {
		runSearchOnce(recommendService, *searchOnce)
		return
	}

	recycler := scheduler.New(session, cfg.Browser.RecycleCron)
	if err := recycler.Start(); err != nil {
		log.Fatalf("Failed to start recycler: %v", err)
	}
	defer recycler.Stop()

	clients := httputil.NewClients(cfg.Browser.ProxyURL)
	recHandler := handler.NewRecommendationHandler(
		recommendService, runStore, clients, cfg.Search.Origin, cfg.Search.UserAgent)

	gin.SetMode(cfg.Server.GinMode)
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", recHandler.Health)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/recommendations", recHandler.Recommend)
		apiV1.GET("/runs", recHandler.Runs)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Listening on %s", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")
}

func runSearchOnce(service *services.RecommendService, location string) {
	env := service.Recommend(context.Background(), models.Preferences{Location: location})

	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal result: %v", err)
	}
	fmt.Println(string(out))

	if !env.Success {
		os.Exit(1)
	}
}
