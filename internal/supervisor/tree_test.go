// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package supervisor

import (
	"context"
	"testing"
	"time"

	"github.com/nivoxai/nivox-intel/internal/logging"
)

// signalService records that it was started, then blocks until cancelled.
type signalService struct {
	started chan struct{}
}

func (s *signalService) Serve(ctx context.Context) error {
	select {
	case <-s.started:
	default:
		close(s.started)
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *signalService) String() string { return "signal-service" }

func TestDefaultTreeConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultTreeConfig()
	if cfg.FailureThreshold != 5.0 {
		t.Errorf("FailureThreshold = %v, want 5.0", cfg.FailureThreshold)
	}
	if cfg.FailureBackoff != 15*time.Second {
		t.Errorf("FailureBackoff = %v, want 15s", cfg.FailureBackoff)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
}

func TestNewTreeAppliesDefaults(t *testing.T) {
	t.Parallel()

	tree := NewTree(logging.NewSlogLogger(), TreeConfig{})
	if tree.config.FailureThreshold != 5.0 {
		t.Errorf("zero FailureThreshold not defaulted: %v", tree.config.FailureThreshold)
	}
	if tree.Root() == nil {
		t.Fatal("expected non-nil root supervisor")
	}
}

func TestTreeRunsAndStopsServices(t *testing.T) {
	t.Parallel()

	tree := NewTree(logging.NewSlogLogger(), DefaultTreeConfig())

	dataSvc := &signalService{started: make(chan struct{})}
	apiSvc := &signalService{started: make(chan struct{})}
	tree.AddDataService(dataSvc)
	tree.AddAPIService(apiSvc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	waitStarted := func(name string, ch chan struct{}) {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("%s service never started", name)
		}
	}
	waitStarted("data", dataSvc.started)
	waitStarted("api", apiSvc.started)

	cancel()

	select {
	case <-errCh:
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor tree did not stop after cancellation")
	}
}
