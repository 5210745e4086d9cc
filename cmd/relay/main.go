package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"realtime-relay/contract"
	"realtime-relay/infrastructure/gateway"
	"realtime-relay/infrastructure/grpc/server"
	"realtime-relay/infrastructure/httpapi"
	"realtime-relay/infrastructure/relay"
	"realtime-relay/internal"
	"realtime-relay/observability"
	"realtime-relay/repositories"
	"realtime-relay/runtime"
	"realtime-relay/runtime/workers"
	"realtime-relay/services"
	"realtime-relay/sink"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and owns the process lifecycle, so deferred cleanups
// run before main exits.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	observability.Register()

	// 2. Session journal storage (BadgerDB)
	options := badger.DefaultOptions(config.BadgerFilepath).
		WithLogger(repositories.NewBadgerLogger(log)).
		WithLoggingLevel(badger.WARNING)
	if config.BadgerFilepath == "" {
		options = options.WithInMemory(true)
	}
	db, err := badger.Open(options)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Connection state and background workers
	monitor, err := observability.NewProcessMonitor()
	if err != nil {
		log.Warn("Process monitor unavailable", "error", err)
	}
	registry := runtime.NewRegistry()
	hub := runtime.NewHub()
	journal := sink.NewJournalSink(log, config.JournalBufferSize)
	sessionRepository := repositories.NewSessionRepository(db, log, config.JournalTTL)
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewJournalWorker(log, sessionRepository, journal.Events()))

	// 4. Services
	var relayClient contract.IRelayClient
	if config.RelayEnabled() {
		relayClient = relay.NewClient(config.RelayURL, config.RelayOrigin, config.RelayTimeout)
	} else {
		log.Warn("RELAY_URL is empty, driver positions are only broadcast")
	}
	router := services.NewRoomRouter(log, registry, hub)
	sessions := services.NewSessionService(log, registry, hub, journal)
	ingress := services.NewEventIngress(log, router)
	locationRelay := services.NewLocationRelay(log, router, relayClient, config.RelayTimeout, config.RelayMaxInFlight)
	stats := services.NewStatsReporter(registry, hub)
	if config.HeartbeatInterval > 0 {
		sup.Add(workers.NewHeartbeatWorker(log, stats, monitor, config.HeartbeatInterval))
	}

	// 5. Transports
	ws := gateway.NewGateway(log, sessions, gateway.NewDispatcher(log, sessions, router, locationRelay), gateway.Config{
		BufferSize:   config.ConnectionBufferSize,
		PingInterval: config.PingInterval,
		PongTimeout:  config.PongTimeout,
	})
	mux := httpapi.NewServeMux(httpapi.NewHandler(log, ingress, stats, sessionRepository, monitor), ws)
	if config.Debug {
		mux.Handle("GET /debug/journal", internal.NewInspector(db, repositories.SessionPrefix))
	}
	httpServer := &http.Server{
		Addr:              config.Address(),
		Handler:           httpapi.WithCORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var (
		health         *server.HealthServer
		healthListener net.Listener
	)
	if config.GRPCHealthPort > 0 {
		healthListener, err = net.Listen("tcp", config.GRPCHealthAddress())
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", config.GRPCHealthAddress(), err)
		}
		health = server.NewHealthServer(log)
	}

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	// The journal outlives the transports so that shutdown disconnects are recorded.
	journalCtx, stopJournal := context.WithCancel(context.Background())
	defer stopJournal()
	g.Go(func() error {
		sup.Run(journalCtx)
		return nil
	})

	g.Go(func() error {
		log.Info("Starting HTTP server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	if health != nil {
		g.Go(func() error { return health.Serve(healthListener) })
		health.SetServing(true)
	}

	// 7. Wait for Stop or Error, then shut down in order
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down gracefully...")
		if health != nil {
			health.SetServing(false)
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("HTTP server shutdown incomplete", "error", err)
		}
		if err := ws.Shutdown(shutdownCtx); err != nil {
			log.Warn("Websocket handlers still running at shutdown", "error", err)
		}
		locationRelay.Close()
		stopJournal()
		if health != nil {
			health.Shutdown()
		}
		return nil
	})

	if err = g.Wait(); err != nil {
		return err
	}
	log.Info("Program stopped cleanly")
	return nil
}
