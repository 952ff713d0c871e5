package main

import (
	"fmt"

	"filedrop/file-api/app"
	"filedrop/file-api/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	if err := config.Setup(); err != nil {
		panic(fmt.Errorf("failed to load config, %w", err))
	}

	router, err := app.NewRouter()
	if err != nil {
		panic(err)
	}

	zap.L().Info("Server starting", zap.Int("port", viper.GetInt("host.port")))

	if err := router.Run(fmt.Sprintf(":%d", viper.GetInt("host.port"))); err != nil {
		panic(err)
	}
}
