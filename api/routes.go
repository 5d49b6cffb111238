package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-flow-server/internal/handlers/v1/auth"
	"github.com/carson-networks/finance-flow-server/internal/handlers/v1/status"
	"github.com/carson-networks/finance-flow-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-flow-server/internal/logging"
	"github.com/carson-networks/finance-flow-server/internal/operator"
	"github.com/carson-networks/finance-flow-server/internal/service"
	"github.com/carson-networks/finance-flow-server/internal/token"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
	Tokens   *token.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("FinanceFlow API", "1.0.0"))
	humaAPI.UseMiddleware(logging.NewMiddleware(r.Logger))

	status.NewHandler().Register(humaAPI)

	auth.NewSignupHandler(r.Operator, r.Tokens).Register(humaAPI)
	auth.NewLoginHandler(r.Service.Users, r.Tokens).Register(humaAPI)
	auth.NewGetProfileHandler(r.Service.Users, r.Tokens).Register(humaAPI)
	auth.NewUpdateProfileHandler(r.Operator, r.Tokens).Register(humaAPI)

	transaction.NewListTransactionsHandler(r.Service.Transactions, r.Tokens).Register(humaAPI)
	transaction.NewCreateTransactionHandler(r.Operator, r.Tokens).Register(humaAPI)
	transaction.NewGetTransactionHandler(r.Service.Transactions, r.Tokens).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Operator, r.Tokens).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Operator, r.Tokens).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
