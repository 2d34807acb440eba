package main

import (
	"github.com/kadynthorpe/starter-restaurant-reservation/config"
	"github.com/kadynthorpe/starter-restaurant-reservation/di"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
