package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/sh5080/inventory-go/pkg/configs"
	"github.com/sh5080/inventory-go/pkg/db"
	middleware "github.com/sh5080/inventory-go/pkg/middlewares"
	route "github.com/sh5080/inventory-go/pkg/routes"
	service "github.com/sh5080/inventory-go/pkg/services"
	"github.com/sh5080/inventory-go/pkg/utils"
)

func main() {
	config := configs.GetConfig()
	utils.InitLogger(config.IsDebug())
	utils.InitMetrics()

	gdb, err := db.Connect(config)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}

	services := service.NewServiceContainer(gdb)

	app := fiber.New(fiber.Config{
		AppName: config.Server.AppName,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.Prometheus(config.Server.AppName))

	route.SetupRoutes(app, services)

	log.Infof("%s listening on :%s", config.Server.AppName, config.Server.Port)
	log.Fatal(app.Listen(":" + config.Server.Port))
}
