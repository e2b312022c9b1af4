package handler

import (
	"net/http"
	"reservas/config"
	"reservas/di"
	"reservas/shared/logger"
	"sync"
)

var (
	server http.Handler
	once   sync.Once
)

// Handler is the serverless entry point. The service graph is built on the first request and
// reused by warm invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
