package telemetry

import (
	"context"
	"testing"
)

func TestSetupDisabled(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		enabled  bool
	}{
		{"no endpoint", "", true},
		{"disabled", "http://localhost:4318", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shutdown, err := Setup(context.Background(), "ekub-test", tt.endpoint, tt.enabled)
			if err != nil {
				t.Fatalf("Setup failed: %v", err)
			}
			if err := shutdown(context.Background()); err != nil {
				t.Errorf("shutdown failed: %v", err)
			}
		})
	}
}

func TestSetupEnabled(t *testing.T) {
	// The exporter connects lazily, so no collector is needed.
	shutdown, err := Setup(context.Background(), "ekub-test", "http://127.0.0.1:4318", true)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}
