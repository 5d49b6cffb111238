package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-flow-server/api"
	"github.com/carson-networks/finance-flow-server/internal/config"
	"github.com/carson-networks/finance-flow-server/internal/logging"
	"github.com/carson-networks/finance-flow-server/internal/operator"
	"github.com/carson-networks/finance-flow-server/internal/service"
	"github.com/carson-networks/finance-flow-server/internal/storage"
	"github.com/carson-networks/finance-flow-server/internal/token"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-flow-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	svc := service.NewService(dbStorage)
	tokens := token.NewService(envConfig.TokenSecret, envConfig.TokenTTL)

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.HTTPPort,
			Service:  svc,
			Operator: delegator,
			Tokens:   tokens,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
