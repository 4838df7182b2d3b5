package handler

import (
	"net/http"

	"kanpai/config"
	"kanpai/di"
	"kanpai/shared/logger"

	_ "kanpai/docs"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
