package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/satriapw/tolldash/internal/api"
	"github.com/satriapw/tolldash/internal/pkg/constants"
	"github.com/satriapw/tolldash/internal/pkg/logger"
	"github.com/satriapw/tolldash/internal/pkg/store"
	"github.com/satriapw/tolldash/internal/pkg/store/xpgx"
)

func main() {
	ctx := context.Background()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		logger.Warnf(ctx, "no config file found, relying on env: %s", err.Error())
	}

	zl, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger.Init(zl)
	defer zl.Sync()

	pool, err := xpgx.Dial(ctx, viper.GetString(constants.ViperPostgresDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	svc, err := api.NewAPIService(store.NewStore(pool))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperListenAddr))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "shutdown: %s", err.Error())
	}
}
