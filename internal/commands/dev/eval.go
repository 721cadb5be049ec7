package dev

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/VortexStudios/VortexBotGo/pkg/config"
	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/errors"
	"github.com/VortexStudios/VortexBotGo/pkg/logger"
)

// CreateEvalCommand crea el comando /dev eval
func CreateEvalCommand() *discord.Command {
	return discord.NewCommand(
		"eval",
		"Evalúa código Go y muestra estructuras internas (Peligroso)",
		"dev",
		evalHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "codigo",
			Description: "Código o expresión Go a evaluar",
			Required:    true,
		},
	)
}

func evalHandler(ctx *discord.CommandContext) error {
	go func() {
		errors.RecoverMiddleware()()
		start := time.Now()
		// 1. Seguridad: solo el owner configurado puede ejecutar código
		if !isDev(ctx.User().ID) {
			ctx.ReplyEphemeral("❌ **Acceso Denegado:** Este comando es solo para el owner del bot.")
			return
		}

		// Deferimos la respuesta porque compilar el script puede tomar unos milisegundos
		ctx.Defer()

		// 2. Limpieza del código de entrada
		code := ctx.GetStringOption("codigo")
		// Eliminar bloques de código de markdown si existen (```go ... ```)
		code = strings.TrimPrefix(code, "```go")
		code = strings.TrimPrefix(code, "```")
		code = strings.TrimSuffix(code, "```")
		code = strings.TrimSpace(code)

		// 3. Inicializar el intérprete Yaegi
		i := interp.New(interp.Options{})

		// Cargar librería estándar de Go (fmt, strings, os, etc.)
		if err := i.Use(stdlib.Symbols); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Error cargando stdlib: %v", err))
			return
		}

		// 4. Inyección de variables del Bot usando Exports
		// Esto hace que puedas usar 'Store', 'Engine', 'Economy' directamente
		botExports := map[string]reflect.Value{
			"Ctx":     reflect.ValueOf(ctx),
			"Bot":     reflect.ValueOf(ctx.Client),
			"Session": reflect.ValueOf(ctx.Session),
			"Store":   reflect.ValueOf(bundle.Store),
			"Engine":  reflect.ValueOf(bundle.Engine),
			"Economy": reflect.ValueOf(bundle.Economy),
			"Tickets": reflect.ValueOf(bundle.Tickets),
			"Config":  reflect.ValueOf(config.Get()),
		}

		// Registrar las variables como símbolos globales
		if err := i.Use(interp.Exports{
			"github.com/VortexStudios/VortexBotGo/internal/commands/dev/dev": botExports,
		}); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Error registrando variables: %v", err))
			return
		}

		// Importar el paquete automáticamente
		_, err := i.Eval(`import . "github.com/VortexStudios/VortexBotGo/internal/commands/dev"`)
		if err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Error importando variables: %v", err))
			return
		}

		// 5. Ejecutar el código del usuario
		res, err := i.Eval(code)

		// 6. Formatear la respuesta
		var output string
		if err != nil {
			output = fmt.Sprintf("❌ **Error de Ejecución:**\n```go\n%v\n```", err)
		} else {
			// Intentamos formatear el resultado de forma bonita
			var resStr string
			if res.IsValid() {
				// Usamos %#v para ver la estructura interna completa (campos, punteros, etc)
				resStr = fmt.Sprintf("%#v", res.Interface())
			} else {
				resStr = "nil"
			}
			if len(resStr) > 1900 {
				resStr = resStr[:1900] + "... (truncado)"
			}

			output = fmt.Sprintf("✅ **Resultado:**\n```go\n%s\n```", resStr)
		}

		elapsed := time.Since(start)
		logger.Debug(fmt.Sprintf("Eval completado en %s. Limpiando contexto Yaegi...", elapsed), "DevEval")

		ctx.EditReply(output)
	}()
	return nil
}

// isDev verifica el ID contra el owner configurado
func isDev(userID string) bool {
	owner := config.Get().OwnerID
	return owner != "" && userID == owner
}
