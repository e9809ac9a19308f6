package serverless

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// CloudRunMain serves the shared app over HTTP for container runtimes that
// inject PORT (Cloud Run, App Runner).
func CloudRunMain() {
	app := GetApp()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(app.Listen(":" + port))
}
