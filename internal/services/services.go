// Package services agrupa los servicios del bot ya cableados para que
// comandos y eventos reciban sus dependencias por inyección en lugar de
// tocar singletons.
package services

import (
	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/economy"
	"github.com/VortexStudios/VortexBotGo/pkg/giveaway"
	"github.com/VortexStudios/VortexBotGo/pkg/logger"
	"github.com/VortexStudios/VortexBotGo/pkg/store"
	"github.com/VortexStudios/VortexBotGo/pkg/tickets"
)

// Bundle holds every wired service. Built once in main and passed to the
// command and event registries.
type Bundle struct {
	Store   *store.Service
	Engine  *giveaway.Engine
	Economy *economy.Service
	Tickets *tickets.Bridge
	Adapter *discord.SessionAdapter
	Spam    *economy.SpamTracker
	Logs    *logger.Buffer
}
