package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BloggingApp/blog-client/internal/api"
	"github.com/BloggingApp/blog-client/internal/config"
	"github.com/BloggingApp/blog-client/internal/handler"
	"github.com/BloggingApp/blog-client/internal/server"
	"github.com/BloggingApp/blog-client/internal/session"
	"github.com/BloggingApp/blog-client/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := loadEnv(); err != nil {
		logger.Sugar().Warnf("failed to load environment variables: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}
	cfg := config.Load(viper.GetViper())

	storage, err := session.Open(ctx, cfg.Session)
	if err != nil {
		logger.Sugar().Panicf("failed to open session storage: %s", err.Error())
	}
	defer storage.Close()
	logger.Sugar().Infof("Session storage opened: %s", cfg.Session.Driver)

	client := api.New(logger, cfg.API.BaseURL, cfg.API.Timeout)
	st := store.New(ctx, logger, client, storage)
	if st.Users.IsAuthenticated() {
		logger.Info("Restored stored session")
	}

	signals, unsubscribe := st.Bus.Subscribe(16)
	defer unsubscribe()
	go func() {
		for sig := range signals {
			logger.Sugar().Debugf("signal %s/%s", sig.Slice, sig.Name)
		}
	}()

	handlers := handler.New(logger, st, cfg.ClientOrigin)

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           cfg.Port,
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}
	go func(srv *server.Server, cfg config.ServerConfig) {
		if err := srv.Run(cfg); err != nil {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}(srv, serverConfig)

	logger.Sugar().Infof("Server started on :%s, remote API %s", cfg.Port, cfg.API.BaseURL)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
