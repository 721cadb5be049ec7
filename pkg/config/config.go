// Package config provides configuration management for the bot.
// It loads environment variables and makes them available throughout the application.
package config

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the bot
type Config struct {
	// Discord
	BotToken   string
	DevGuildID string
	GuildID    string
	OwnerID    string

	// Durable store
	StoreDriver string // "file" o "mongo"
	StorePath   string
	MongoDBURL  string
	DBName      string

	// MQTT
	MQTTHost     string
	MQTTPort     string
	MQTTUser     string
	MQTTPassword string

	// Web Server
	Port string

	// Environment
	Environment string

	// Webhooks
	ErrorWebhook      string
	LogsWebhook       string
	LogsWebServerHook string

	// Giveaways
	GiveawayEmojiName string
	GiveawayEmojiID   string

	// Tickets
	TicketCategoryID string

	// Panels
	StaffChannelID     string
	ChestShopChannelID string

	// Staff
	AdminRoleID        string
	StaffRoleIDs       []string
	StaffWarnChannelID string
}

var (
	Version   = "Dev-Local"
	BuildTime = "Hoy"
)

// cfg holds the global configuration instance
var (
	cfg     *Config
	cfgOnce sync.Once
)

// resetForTesting resets the configuration for testing purposes.
// This function should only be called from test code.
func resetForTesting() {
	cfg = nil
	cfgOnce = sync.Once{}
}

// loadConfig performs the actual configuration loading
func loadConfig() {
	// Load .env file if it exists (ignoring error if it doesn't)
	_ = godotenv.Load()

	cfg = &Config{
		// Discord
		BotToken:   getEnv("botToken", ""),
		DevGuildID: getEnv("devGuildId", ""),
		GuildID:    getEnv("guildId", ""),
		OwnerID:    getEnv("ownerId", ""),

		// Durable store
		StoreDriver: getEnv("storeDriver", "file"),
		StorePath:   getEnv("storePath", "./database.json"),
		MongoDBURL:  getEnv("mongodbUrl", "mongodb://localhost:27017"),
		DBName:      getEnv("dbName", "VortexBot"),

		// MQTT
		MQTTHost:     getEnv("MQTT_Host", "localhost"),
		MQTTPort:     getEnv("MQTT_Port", "1883"),
		MQTTUser:     getEnv("MQTT_User", ""),
		MQTTPassword: getEnv("MQTT_Password", ""),

		// Web Server
		Port: getEnv("PORT", "3000"),

		// Environment
		Environment: getEnv("enviroment", "dev"),

		// Webhooks
		ErrorWebhook:      getEnv("errorWebhook", ""),
		LogsWebhook:       getEnv("logsWebhook", ""),
		LogsWebServerHook: getEnv("logsWebServerWebhook", ""),

		// Giveaways
		GiveawayEmojiName: getEnv("giveawayEmojiName", "🎉"),
		GiveawayEmojiID:   getEnv("giveawayEmojiId", ""),

		// Tickets
		TicketCategoryID: getEnv("ticketCategoryId", ""),

		// Panels
		StaffChannelID:     getEnv("staffChannelId", ""),
		ChestShopChannelID: getEnv("chestShopChannelId", ""),

		// Staff
		AdminRoleID:        getEnv("adminRoleId", ""),
		StaffRoleIDs:       splitList(getEnv("staffRoleIds", "")),
		StaffWarnChannelID: getEnv("staffWarnChannelId", ""),
	}
}

// Load initializes the configuration from environment variables
func Load() (*Config, error) {
	cfgOnce.Do(loadConfig)
	return cfg, nil
}

// Get returns the current configuration
func Get() *Config {
	// Use sync.Once to ensure thread-safe initialization if Load wasn't called
	cfgOnce.Do(loadConfig)
	return cfg
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList parses a comma-separated env value into a slice
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsProd returns true if the environment is production
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}

// EntrySignal devuelve el identificador del emoji de entrada tal como lo
// espera la API de reacciones ("name:id" para emojis custom).
func (c *Config) EntrySignal() string {
	if c.GiveawayEmojiID != "" {
		return c.GiveawayEmojiName + ":" + c.GiveawayEmojiID
	}
	return c.GiveawayEmojiName
}
