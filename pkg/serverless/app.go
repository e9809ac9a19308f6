package serverless

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/sh5080/inventory-go/pkg/configs"
	"github.com/sh5080/inventory-go/pkg/db"
	route "github.com/sh5080/inventory-go/pkg/routes"
	service "github.com/sh5080/inventory-go/pkg/services"
	"github.com/sh5080/inventory-go/pkg/utils"
)

var (
	app     *fiber.App
	appOnce sync.Once
)

// GetApp returns the shared application instance. It is built once and kept
// across invocations to minimize cold starts.
func GetApp() *fiber.App {
	appOnce.Do(func() {
		config := configs.GetConfig()
		utils.InitLogger(config.IsDebug())
		utils.InitMetrics()

		gdb, err := db.Connect(config)
		if err != nil {
			log.Fatalf("database error: %v", err)
		}

		services := service.NewServiceContainer(gdb)

		app = fiber.New(fiber.Config{
			AppName:               config.Server.AppName,
			DisableStartupMessage: true, // no startup banner in serverless logs
		})

		app.Use(recover.New())
		app.Use(logger.New())
		app.Use(cors.New())
		app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

		route.SetupRoutes(app, services)
	})
	return app
}
