package api

import (
	"net/http"
	"os"
	"worldcities/config"
	"worldcities/world"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func StartServer() {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	store := world.NewGormStore(config.DB)
	gen := world.NewCodeGenerator(nil)
	alloc := world.NewCodeAllocator(gen, config.MaxCodeAttempts)
	service := world.NewService(store, alloc)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.Recoverer,
		requestLogger,
		corsHeaders,
	)
	SetupRoutes(router, NewHandlers(service))

	log.Infof("HTTP server is running on port %s...", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal("Server could not be started", "error", err)
	}
}
