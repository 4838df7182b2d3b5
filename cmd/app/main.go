package main

import (
	"kanpai/config"
	"kanpai/di"
	"kanpai/shared/logger"

	_ "kanpai/docs"
)

// @title Kanpai Admin API
// @version 1.0
// @description REST backend for the hospitality listings admin console.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
