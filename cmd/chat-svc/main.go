package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"coursehub/internal/common"
	"coursehub/internal/dbmysql"
	"coursehub/internal/di"
)

func main() {
	log.Println("Starting Chat Service...")

	app, err := di.InitializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize chat service: %v", err)
	}

	common.SetJWTSecret(app.Config.JWT.Secret)

	// Migrations belong in main, not in the connection layer
	if err := dbmysql.Migrate(app.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := dbmysql.SeedMessageTypes(app.DB); err != nil {
		log.Fatalf("Failed to seed message types: %v", err)
	}
	log.Println("✅ Database migration completed")

	go app.Hub.Run()

	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.Use(common.AuthMiddleware)
	app.ChatHandler.RegisterRoutes(api)
	app.MediaHandler.RegisterRoutes(api, router)

	wsRouter := router.PathPrefix("/ws").Subrouter()
	wsRouter.Use(common.AuthMiddleware)
	wsRouter.HandleFunc("/courses/{courseId}", app.WSHandler.Subscribe).Methods(http.MethodGet)

	server := &http.Server{
		Addr:         app.Config.Server.Host + ":" + app.Config.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Chat Service running on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down Chat Service...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	app.Dispatcher.Shutdown()
	if err := app.Mongo.Close(ctx); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
	}
	log.Println("Chat Service stopped")
}
