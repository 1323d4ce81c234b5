package main

import (
	"context"
	"time"

	"almacen-pos/internal/ai"
	"almacen-pos/internal/alerts"
	"almacen-pos/internal/catalog"
	"almacen-pos/internal/config"
	"almacen-pos/internal/handlers"
	"almacen-pos/internal/ledger"
	"almacen-pos/internal/storage"
	logx "almacen-pos/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Not finding a .env file is fine: production supplies real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("invalid configuration")
	}
	logx.Init(cfg.Environment)

	kv, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to open local store")
	}

	cat := catalog.New(kv)
	led := ledger.New(kv, cat)
	cls := alerts.New(cat, cfg.LowMarginThreshold)

	var gateway *ai.Gateway
	if cfg.GeminiAPIKey != "" {
		gateway, err = ai.NewGateway(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logx.Fatal().Err(err).Msg("failed to initialise Gemini client")
		}
		defer gateway.Close()
	} else {
		logx.Warn().Msg("GEMINI_API_KEY not set, AI routes disabled")
	}

	h := handlers.New(cat, led, cls, gateway)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })

	api := r.Group("/api")
	{
		api.GET("/products", h.GetProducts)
		api.POST("/products", h.AddProduct)
		api.PUT("/products/:id", h.UpdateProduct)
		api.POST("/products/:id/restock", h.RestockProduct)

		api.POST("/sales", h.ProcessSale)
		api.GET("/sales", h.GetSales)

		api.GET("/alerts", h.GetAlerts)
		api.GET("/reports/daily", h.GetDailyReport)

		api.POST("/ai/parse-sale", h.ParseSale)
		api.POST("/ai/parse-sale-image", h.ParseSaleImage)
		api.GET("/ai/insights", h.GetInsights)
		api.GET("/ai/strategies", h.GetStrategies)
	}

	logx.Info().Str("addr", cfg.HTTPAddr).Msg("server starting")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logx.Fatal().Err(err).Msg("server failed to start")
	}
}
