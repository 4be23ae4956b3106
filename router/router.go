package router

import (
	"net/http"
	"oft-transacts/handler"

	_ "oft-transacts/docs"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter builds the route table and wraps it in the shared middleware
// chain. The auth middleware guards every account- or user-scoped route;
// health, logout and the docs UI stay open.
func NewRouter(
	auth func(http.Handler) http.Handler,
	allowedOrigins []string,
	issuer string,
	userHandler *handler.UserHandler,
	accountHandler *handler.AccountHandler,
	transactionHandler *handler.TransactionHandler,
	healthHandler *handler.HealthHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler.HealthCheck))
	mux.Handle("POST /logout", http.HandlerFunc(handler.Logout))
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.Handle("GET /accounts", auth(handler.ErrorHandlingMiddleware(accountHandler.ListAccounts)))
	mux.Handle("GET /users/me", auth(handler.ErrorHandlingMiddleware(userHandler.Me)))
	mux.Handle("GET /accounts/{accountId}/transacts", auth(handler.ErrorHandlingMiddleware(transactionHandler.ListTransacts)))
	mux.Handle("POST /accounts/{accountId}/transacts", auth(handler.ErrorHandlingMiddleware(transactionHandler.CreateTransact)))

	return handler.LoggingMiddleware(
		handler.CORSMiddleware(allowedOrigins)(
			handler.SecurityHeadersMiddleware(issuer)(mux),
		),
	)
}
