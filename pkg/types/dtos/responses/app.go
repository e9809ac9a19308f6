package response

import "time"

// RootResponse is the GET / banner.
type RootResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports liveness details for GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Time      time.Time `json:"time"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	GoVersion string    `json:"goVersion"`
}
