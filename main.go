package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"kivo-assistant/internal/config"
	"kivo-assistant/internal/domain/entities"
	"kivo-assistant/internal/domain/interfaces/repository"
	Iservices "kivo-assistant/internal/domain/interfaces/services"
	"kivo-assistant/internal/infra/handlers"
	"kivo-assistant/internal/infra/logger"
	infrarepo "kivo-assistant/internal/infra/repository"
	"kivo-assistant/internal/infra/routes"
	"kivo-assistant/internal/infra/services"
	"kivo-assistant/internal/middleware"
	client "kivo-assistant/internal/pkg"

	"github.com/gorilla/mux"
)

func main() {
	config.LoadEnv()

	ctx := context.Background()
	log := logger.NewLogger(ctx, true)

	mongoClient := client.MongoClient()
	kivoDB := mongoClient.Database("Kivo")

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log))

	profileRepo := infrarepo.NewMongoRepository[entities.StyleProfile](kivoDB)
	sessionRepo := infrarepo.NewMongoRepository[entities.ChatSession](kivoDB)

	var historyStore repository.HistoryStore
	if config.GetEnvOrDefault("REDIS_ADDR", "") != "" {
		historyStore = infrarepo.NewRedisHistoryStore(client.RedisClient())
	} else {
		log.Warn("REDIS_ADDR not set, emotion history kept in memory only")
		historyStore = infrarepo.NewMemoryHistoryStore()
	}

	var profileSvc Iservices.IProfileService = services.NewProfileService(profileRepo, ctx, log)
	var chatSessionSvc Iservices.IChatSessionService = services.NewChatSessionService(sessionRepo, ctx, log)
	var queryAIService Iservices.IQueryAIService = services.NewQueryAIService(log)
	promptService := services.NewPromptService()

	var chatSvc Iservices.IChatService = services.NewChatService(log, chatSessionSvc, profileSvc, queryAIService, promptService)
	var kivoSvc Iservices.IKivoService = services.NewKivoService(log, profileSvc, historyStore)

	chatHandlers := handlers.NewChatHandlers(log, chatSvc)
	kivoHandlers := handlers.NewKivoHandlers(log, kivoSvc)

	routes := routes.NewRoutes(
		router,
		chatHandlers,
		kivoHandlers,
	)

	routes.Init()

	port := config.GetEnv("PORT")
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	go func() {
		log.Info(fmt.Sprintf("Server is running on port %s", port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(fmt.Sprintf("Error running HTTP server: %s", err))
			os.Exit(1)
		}
	}()

	<-stop
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(fmt.Sprintf("Server forced to shutdown: %v", err))
	} else {
		log.Info("Server stopped gracefully.")
	}
}
