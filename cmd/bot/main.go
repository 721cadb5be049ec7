// Package main is the entry point for the VortexBot Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VortexStudios/VortexBotGo/internal/commands"
	"github.com/VortexStudios/VortexBotGo/internal/events"
	"github.com/VortexStudios/VortexBotGo/internal/services"
	"github.com/VortexStudios/VortexBotGo/pkg/config"
	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/economy"
	"github.com/VortexStudios/VortexBotGo/pkg/errors"
	"github.com/VortexStudios/VortexBotGo/pkg/giveaway"
	"github.com/VortexStudios/VortexBotGo/pkg/logger"
	"github.com/VortexStudios/VortexBotGo/pkg/mqtt"
	"github.com/VortexStudios/VortexBotGo/pkg/store"
	"github.com/VortexStudios/VortexBotGo/pkg/tickets"
	"github.com/VortexStudios/VortexBotGo/pkg/web"
)

// flushInterval is how often the store writes dirty state to disk.
const flushInterval = 30 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger with the in-memory ring for the web stream
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logBuffer := logger.NewBuffer(200)
	log.SetBuffer(logBuffer)

	logger.System("Iniciando VortexBot Go...", "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			err := discordClient.Stop()
			if err != nil {
				return
			}
		}
	})

	// Open the durable store
	st := store.Open(openBackend(cfg))
	st.StartAutoFlush(flushInterval)
	defer st.Close()

	// Initialize MQTT
	mqttClientID := "vortexbot"
	if !cfg.IsProd() {
		mqttClientID = "vortexbot_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Wire the domain services
	adapter := discord.NewSessionAdapter(discordClient.Session, cfg)
	econ := economy.NewService(st, nil, nil)
	engine := giveaway.NewEngine(giveaway.Options{
		Store:       st,
		Entries:     adapter,
		Announcer:   adapter,
		Publisher:   mqttClient,
		EntrySignal: cfg.EntrySignal(),
	})
	defer engine.Stop()
	bridge := tickets.NewBridge(st, adapter, nil)

	bundle := &services.Bundle{
		Store:   st,
		Engine:  engine,
		Economy: econ,
		Tickets: bridge,
		Adapter: adapter,
		Spam:    economy.NewSpamTracker(),
		Logs:    logBuffer,
	}

	// Initialize web server
	webServer := web.Init(cfg.LogsWebServerHook)
	web.SetupAPIRoutes(webServer, web.Deps{
		Store:   st,
		Engine:  engine,
		Economy: econ,
		Logs:    logBuffer,
	})
	webServer.StartAsync(cfg.Port)

	// Register commands using the commands package
	commands.RegisterAll(discordClient, bundle)

	// Register events using the events package
	events.RegisterAll(discordClient, bundle)

	// Start the bot. The ready event starts the giveaway scheduler and
	// runs startup recovery once the gateway session is live.
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		err := discordClient.Stop()
		if err != nil {

		}
	}(discordClient)

	logger.Success("VortexBot Go iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando VortexBot Go...", "Main")
}

// openBackend picks the store backend from configuration. A mongo
// connection failure falls back to the file backend so the bot still
// boots with local persistence.
func openBackend(cfg *config.Config) store.Backend {
	if cfg.StoreDriver == "mongo" {
		backend, err := store.NewMongoBackend(cfg.MongoDBURL, cfg.DBName)
		if err == nil {
			logger.Success("Conectado a MongoDB", "Main")
			return backend
		}
		logger.Error(fmt.Sprintf("Error connecting to MongoDB: %v", err), "Main")
		logger.Warn("Usando almacenamiento en archivo como respaldo", "Main")
	}
	return store.NewFileBackend(cfg.StorePath)
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
