package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/nebaware/temariware/internal/config"
	"github.com/nebaware/temariware/internal/ekub"
	"github.com/nebaware/temariware/internal/metrics"
	"github.com/nebaware/temariware/internal/storage/sqlite"
	pb "github.com/nebaware/temariware/pkg/proto"
	"github.com/nebaware/temariware/pkg/proto/protoconnect"
)

func newTestServer(t *testing.T, webhookSecret string) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:            "0123456789abcdef0123456789abcdef",
		TokenTTL:             time.Hour,
		PaymentWebhookSecret: webhookSecret,
		Currency:             "ETB",
	}
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	m := metrics.New()
	server := httptest.NewServer(newHandler(cfg, store, ekub.NewEngine(store, ekub.WithMetrics(m)), m))
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server
}

func TestHandler(t *testing.T) {
	server := newTestServer(t, "gateway-secret")

	client := protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL)
	_, err := client.Register(context.Background(), connect.NewRequest(&pb.RegisterRequest{
		Email:       "abebe@example.com",
		DisplayName: "Abebe",
		Password:    "password123",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	t.Run("metrics", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/metrics")
		if err != nil {
			t.Fatalf("GET /metrics failed: %v", err)
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), `procedure="/ekub.v1.AuthService/Register"`) {
			t.Errorf("RPC duration not recorded:\n%s", body)
		}
	})

	t.Run("cors preflight", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodOptions, server.URL+protoconnect.EkubServiceRotateProcedure, nil)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("OPTIONS failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK || resp.Header.Get("Access-Control-Allow-Origin") != "*" {
			t.Errorf("Unexpected preflight: %d %v", resp.StatusCode, resp.Header)
		}
	})

	t.Run("callback mounted", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/callbacks/payments", "application/json", strings.NewReader(`{}`))
		if err != nil {
			t.Fatalf("POST failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("Expected 401 without secret, got %d", resp.StatusCode)
		}
	})
}

func TestHandler_CallbackDisabled(t *testing.T) {
	server := newTestServer(t, "")
	resp, err := http.Post(server.URL+"/callbacks/payments", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404 when disabled, got %d", resp.StatusCode)
	}
}
