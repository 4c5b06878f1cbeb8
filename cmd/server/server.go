package main

import (
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/nebaware/temariware/internal/auth"
	"github.com/nebaware/temariware/internal/config"
	"github.com/nebaware/temariware/internal/ekub"
	"github.com/nebaware/temariware/internal/metrics"
	"github.com/nebaware/temariware/internal/middleware"
	"github.com/nebaware/temariware/internal/service"
	"github.com/nebaware/temariware/internal/storage"
	"github.com/nebaware/temariware/internal/webhook"
	"github.com/nebaware/temariware/pkg/proto/protoconnect"
)

// newHandler mounts the Connect services, the payment callback and the
// metrics endpoint.
func newHandler(cfg *config.Config, store storage.Store, engine *ekub.Engine, m *metrics.Metrics) http.Handler {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store, cfg.Currency)

	interceptors := connect.WithInterceptors(
		m.Interceptor(),
		middleware.RequireAuth(jwtManager,
			protoconnect.AuthServiceRegisterProcedure,
			protoconnect.AuthServiceLoginProcedure,
		),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()

	authPath, authHandler := protoconnect.NewAuthServiceHandler(
		service.NewAuthService(authenticator, jwtManager, store, slog.Default()), interceptors)
	mux.Handle(authPath, authHandler)

	walletPath, walletHandler := protoconnect.NewWalletServiceHandler(
		service.NewWalletService(engine.Ledger()), interceptors)
	mux.Handle(walletPath, walletHandler)

	ekubPath, ekubHandler := protoconnect.NewEkubServiceHandler(
		service.NewEkubService(engine, store), interceptors)
	mux.Handle(ekubPath, ekubHandler)

	if cfg.PaymentWebhookSecret != "" {
		mux.Handle(webhook.PaymentsPath, webhook.NewPaymentsHandler(engine.Ledger(), cfg.PaymentWebhookSecret))
	} else {
		slog.Warn("PAYMENT_WEBHOOK_SECRET not set, payment callbacks disabled")
	}

	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// h2c serves HTTP/2 without TLS for Connect clients.
	return h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{})
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
