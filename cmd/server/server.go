package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-content/internal/config"
	"github.com/KirkDiggler/rpg-content/internal/content/race"
	"github.com/KirkDiggler/rpg-content/internal/content/weapon"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/handlers/content/v1alpha1"
	charorchestrator "github.com/KirkDiggler/rpg-content/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-content/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-content/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-content/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-content/internal/repositories/character"
	draftrepo "github.com/KirkDiggler/rpg-content/internal/repositories/character_draft"
	"github.com/KirkDiggler/rpg-content/internal/services/content"
)

var (
	grpcPort  int
	redisAddr string
	envFiles  []string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the content gRPC server.

Configuration is read from CONTENT_* environment variables after loading
any .env files. Flags override the environment.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port (overrides CONTENT_GRPC_PORT)")
	serverCmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address (overrides CONTENT_REDIS_ADDR)")
	serverCmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "Env files to load (default .env)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("redis") {
		cfg.RedisAddr = redisAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	redisClient, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
		UseTLS:   cfg.RedisTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close()
	}()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	handler, eventBus, err := buildHandler(cfg, redisClient)
	if err != nil {
		return err
	}
	subscribeEventLog(eventBus)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterContentServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	if cfg.Reflection {
		reflection.Register(srv)
	}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d...", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildHandler wires registries, storage and services into the gRPC handler
func buildHandler(cfg *config.Config, redisClient redis.Client) (*v1alpha1.Handler, events.EventBus, error) {
	races, err := race.NewDefaultRegistry()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to build race registry")
	}
	weapons, err := weapon.NewDefaultRegistry()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to build weapon registry")
	}

	draftRepo, err := draftrepo.NewRedis(&draftrepo.RedisConfig{
		Client: redisClient,
		TTL:    cfg.DraftTTL,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create draft repository")
	}

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{
		Client: redisClient,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create character repository")
	}

	eventBus := events.NewBus()

	characterService, err := charorchestrator.New(&charorchestrator.Config{
		DraftRepo:     draftRepo,
		CharacterRepo: characterRepo,
		Races:         races,
		Weapons:       weapons,
		IDGenerator:   idgen.NewUUID(""),
		EventBus:      eventBus,
		DiceRoller:    dice.DefaultRoller,
		Clock:         clock.New(),
		DraftTTL:      cfg.DraftTTL,
		DefaultSeed:   cfg.StatSeed,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create character orchestrator")
	}

	contentService, err := content.New(&content.Config{
		Races:   races,
		Weapons: weapons,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create content service")
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ContentService:   contentService,
		CharacterService: characterService,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create content handler")
	}

	return handler, eventBus, nil
}

func subscribeEventLog(bus events.EventBus) {
	bus.SubscribeFunc(charorchestrator.EventRaceToggled, 1000, func(ctx context.Context, e events.Event) error {
		raceID, _ := e.Context().Get(charorchestrator.EventKeyRaceID)
		toggled, _ := e.Context().Get(charorchestrator.EventKeyToggled)
		slog.DebugContext(ctx, "race toggled",
			"draft_id", e.Source().GetID(),
			"race_id", raceID,
			"toggled", toggled)
		return nil
	})
	bus.SubscribeFunc(charorchestrator.EventCharacterFinalized, 1000, func(ctx context.Context, e events.Event) error {
		draftID, _ := e.Context().Get(charorchestrator.EventKeyDraftID)
		slog.InfoContext(ctx, "character finalized",
			"character_id", e.Source().GetID(),
			"draft_id", draftID)
		return nil
	})
}

// logFunc bridges the middleware logger to slog; their level values line up
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
