package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"kawe_webmanager/config"
	"kawe_webmanager/handler"
	"kawe_webmanager/repository"
	"kawe_webmanager/service"
)

func StartServer() {
	cfg, errRead := config.Read("./cfg.json")
	if errRead != nil {
		log.Fatalf("error reading cfg.json: %v", errRead)
	}

	logFileName := "log_" + time.Now().Format("2006-01-02_15-04-05") + ".log"
	loggerService, err := service.NewLoggerService(logFileName, cfg.Version)
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer loggerService.Shutdown()

	repo, errRepo := repository.New(cfg.Dsn, cfg.TablePrefix)
	if errRepo != nil {
		log.Fatalf("error creating repository: %v", errRepo)
		return
	}

	pluginClient := service.NewPluginClient(cfg.PluginHost, cfg.PluginPort, cfg.PluginAuthToken,
		time.Duration(cfg.PluginTimeoutSecs)*time.Second, loggerService)

	authService := service.NewAuthService(repo)
	factionService := service.NewFactionService(repo, pluginClient)
	questService := service.NewQuestService(repo)
	playerService := service.NewPlayerService(repo)
	shopService := service.NewShopService(repo)
	authMiddleware := service.NewMiddleware(authService, loggerService)

	webHandler := handler.New(authService, factionService, questService, playerService, shopService,
		loggerService, repo, cfg.Version, cfg.CommandsPath)

	fiberConfig := fiber.Config{
		BodyLimit:               4 * 1024 * 10,
		Concurrency:             1024,
		ReadTimeout:             5 * time.Second,
		WriteTimeout:            30 * time.Second,
		ReadBufferSize:          4 * 1024 * 10,
		WriteBufferSize:         4 * 1024 * 10,
		Prefork:                 false,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"127.0.0.1", "::1"},
	}
	app := fiber.New(fiberConfig)
	app.Use(logger.New(), compress.New())

	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, X-Auth-Code",
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        500,
		Expiration: 1 * time.Hour,
		KeyGenerator: func(ctx *fiber.Ctx) string {
			realIP := ctx.Get("X-Real-IP")
			if realIP == "" {
				realIP = ctx.IP()
			}
			return realIP
		},
		LimitReached: func(ctx *fiber.Ctx) error {
			ip := ctx.Get("X-Real-IP")
			if ip == "" {
				ip = ctx.IP()
			}
			loggerService.Info(fmt.Sprintf("Rate limit reached for IP: %s", ip))
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "rate_limited",
			})
		},
	}))

	// Serve the SPA build.
	app.Static("/", cfg.FEPath)

	SetupRoutes(app, authMiddleware, webHandler)

	// SPA fallback: unknown paths get index.html so client-side routing works.
	app.Get("/*", func(c *fiber.Ctx) error {
		if _, err := os.Stat(cfg.FEPath + "/index.html"); err != nil {
			return c.Status(404).SendString("Not Found")
		}
		return c.SendFile(cfg.FEPath + "/index.html")
	})

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	loggerService.Info(fmt.Sprintf("Starting server on %s\n", cfg.Port))
	go func() {
		if err = app.Listen(cfg.Port); err != nil {
			loggerService.Exception(fmt.Sprintf("error starting server: %v", err))
			os.Exit(1)
		}
	}()

	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				retentionPeriod := 7 * 24 * time.Hour
				if err = loggerService.ClearOldLogs(retentionPeriod); err != nil {
					loggerService.Exception(fmt.Sprintf("Error cleaning old logs: %v\n", err))
				}
			case <-done:
				loggerService.Info("Stopping log cleanup ticker.")
				return
			}
		}
	}()

	<-stop

	loggerService.Info("Shutting down server...")
	if err = app.Shutdown(); err != nil {
		loggerService.Exception(fmt.Sprintf("error during shutdown: %v", err))
	}

	close(done)
}

func SetupRoutes(app *fiber.App, authMiddleware *service.Middleware, h *handler.Handler) {
	api := app.Group("api")

	api.Get("/health", h.Health)
	api.Get("/dashboard/stats", h.Dashboard)
	api.Get("/commands", h.Commands)

	api.Post("/auth/login", h.Login)

	api.Get("/factions", h.Factions)
	api.Get("/factions/:id", h.FactionDetail)
	api.Get("/faction-quests/:id", h.FactionQuests)

	api.Get("/quests/next-id", h.NextQuestId)
	api.Get("/quests", h.Quests)
	api.Get("/quests/:id", h.QuestDetail)
	api.Post("/quests", h.SaveQuest)

	api.Get("/players", h.Players)
	api.Get("/players/:steamId", h.PlayerDetail)
	api.Get("/players/:steamId/stats", h.PlayerStats)

	api.Get("/shop/items", h.ShopItems)
	api.Get("/shop/items/:id", h.ShopItem)
	api.Post("/shop/items", h.CreateShopItem)
	api.Put("/shop/items/:id", h.UpdateShopItem)
	api.Delete("/shop/items/:id", h.DeleteShopItem)

	// Self-service routes resolve the caller's auth code to a steam id.
	player := api.Group("player", authMiddleware.RequireAuth)
	player.Get("/quests", h.PlayerQuests)
	player.Post("/quests", h.PlayerQuests)
	player.Get("/available-quests", h.AvailableQuests)
	player.Post("/available-quests", h.AvailableQuests)
	player.Post("/assign-quest", h.AssignQuest)
	player.Post("/turn-in-quest", h.TurnInQuest)

	faction := player.Group("faction")
	faction.Get("/info", h.FactionInfo)
	faction.Post("/info", h.FactionInfo)
	faction.Post("/invite", h.FactionInvite)
	faction.Post("/accept-request", h.FactionAcceptRequest)
	faction.Post("/reject-request", h.FactionRejectRequest)
	faction.Post("/set-alias", h.FactionSetAlias)
	faction.Post("/set-role", h.FactionSetRole)
	faction.Get("/available-quests", h.FactionAvailableQuests)
	faction.Post("/available-quests", h.FactionAvailableQuests)
	faction.Post("/assign-quest", h.FactionAssignQuest)
}
