package handler

import (
	"net/http"
	"salas/config"
	"salas/di"
	"salas/shared/logger"
	"sync"
)

var (
	app     *di.App
	initApp sync.Once
)

// Handler serves the API as a serverless function. The app is assembled on the first
// invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp.Do(func() {
		logger.InitLogger()
		logger.Configure(config.Get())

		app = di.InitializeService()
	})

	r.RequestURI = r.URL.String()
	app.ServeHTTP(w, r)
}
