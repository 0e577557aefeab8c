package internal

import (
	"log"
	"strings"

	"gitfeed/internal/db"
	"gitfeed/internal/env"
	"gitfeed/internal/feed"
	"gitfeed/internal/githubhooks"
	"gitfeed/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func SetupApp(deployment string, envRoot string, appVersion string) *fiber.App {
	app := fiber.New()

	env.Init(envRoot, appVersion)

	deploy := strings.TrimSpace(deployment)

	if err := db.InitDB(deploy); err != nil {
		log.Fatal("Could not connect to MongoDB")
		return nil
	}

	if err := db.InitCache(); err != nil {
		log.Fatal("Could not connect to Redis")
		return nil
	}

	hub := ws.NewHub()

	app.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("PONG")
	})

	app.Get("/version", func(c fiber.Ctx) error {
		return c.SendString("v" + env.VERSION)
	})

	webhook := app.Group("/webhook")

	githubhooks.Routes(webhook, hub)
	feed.Routes(webhook, hub)

	return app
}
