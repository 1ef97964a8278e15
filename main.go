package main

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finwise/backend/internal/category"
	"github.com/finwise/backend/internal/config"
	"github.com/finwise/backend/internal/controllers/healthz"
	v1 "github.com/finwise/backend/internal/controllers/v1"
	"github.com/finwise/backend/internal/models"
	"github.com/finwise/backend/internal/narrator"
	"github.com/finwise/backend/internal/router"
	"github.com/finwise/backend/internal/storage"
	"github.com/finwise/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Create data directory
	err = os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database
	db, err := models.Connect(cfg.DatabasePath())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	kv := storage.NewDatabase(db)

	seed := time.Now().UnixNano()
	if cfg.RandomSeed != nil {
		seed = *cfg.RandomSeed
	}

	categories, rules, err := category.LoadRules(cfg.CategoryRulesFile)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	classifier := category.NewClassifier(rules, category.NewRandomFallback(rand.NewSource(seed), categories))

	transactions := store.NewTransactions(kv, classifier)
	budgets := store.NewBudgets(kv, categories)

	ctx := context.Background()
	if err := transactions.Init(ctx); err != nil {
		log.Fatal().Msg(err.Error())
	}
	if err := budgets.Init(ctx); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The remote narrator is optional, the local templates are always available
	var remote narrator.Narrator
	if cfg.NarratorURL != "" {
		remote = narrator.NewRemote(cfg.NarratorURL, cfg.NarratorTimeout)
	}
	local := narrator.NewLocal(narrator.NewRandom(rand.NewSource(seed)), categories, time.Now)

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(v1.Controller{
		Transactions: transactions,
		Budgets:      budgets,
		Classifier:   classifier,
		Categories:   categories,
		Narrator:     narrator.WithFallback(remote, local),
	}, healthz.Controller{DB: db}, r.Group("/"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()
	log.Info().Str("addr", srv.Addr).Msg("backend startup complete")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdown); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	if err := transactions.Dispose(shutdown); err != nil {
		log.Error().Err(err).Msg("saving transactions")
	}
	if err := budgets.Dispose(shutdown); err != nil {
		log.Error().Err(err).Msg("saving budgets")
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
