package main

import (
	"salesdesk/config"
	"salesdesk/di"
	"salesdesk/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
