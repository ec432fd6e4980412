package main

import (
	"io/fs"
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/friendly-eats/restaurant/app"
	"github.com/Astemirdum/friendly-eats/restaurant/config"
)

// @title       Friendly Eats API
// @version     1.0
// @description Restaurant listings, ratings, photos and review summaries.
// @BasePath    /api/v1
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
