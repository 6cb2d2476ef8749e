package main

import (
	"github.com/frankiejoetabarrino/punisher/config"
	"github.com/frankiejoetabarrino/punisher/logger"
	"github.com/frankiejoetabarrino/punisher/routes"
	"github.com/frankiejoetabarrino/punisher/utils"
)

func main() {
	logger.InitializeLogger()
	defer logger.Close()

	config.InitDB()
	utils.InitS3()

	r := routes.SetupRouter()
	if err := r.Run(":8080"); err != nil {
		logger.Logger.Fatal("server stopped: " + err.Error())
	}
}
