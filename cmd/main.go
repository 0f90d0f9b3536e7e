package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Adosh74/ai-nutrition-app/config"
	"github.com/Adosh74/ai-nutrition-app/controllers"
	"github.com/Adosh74/ai-nutrition-app/routes"
	"github.com/Adosh74/ai-nutrition-app/services"
	"github.com/Adosh74/ai-nutrition-app/utils"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration is invalid")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	db, err := config.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	hasher := utils.NewPasswordHasher(cfg.PasswordPepper)

	ctls := routes.Controllers{
		Users:     controllers.NewUserController(services.NewUserService(db, hasher)),
		MealPlans: controllers.NewMealPlanController(services.NewMealPlanService(db)),
		Meals:     controllers.NewMealController(services.NewMealService(db)),
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: routes.SetupRouter(log, ctls),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := config.CloseDB(db); err != nil {
		log.Error().Err(err).Msg("closing database failed")
	}
	log.Info().Msg("server stopped")
}
