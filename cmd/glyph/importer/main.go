// Package main runs the glyph import scheduler together with the admin API
// and the metrics endpoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/importer"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/processor"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/radiant"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/repository/clickhouse"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/repository/mongo"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/repository/redis"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/stats"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/transport"
	"github.com/goodnatureofminers/glyphindexer/internal/logging"
	"github.com/goodnatureofminers/glyphindexer/internal/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type config struct {
	Network       model.Network `long:"network" env:"GLYPH_NETWORK" description:"network name (mainnet, testnet, regtest)" default:"mainnet"`
	RPCURL        string        `long:"rpc-url" env:"GLYPH_RPC_URL" description:"Radiant node RPC URL" default:"http://127.0.0.1:7332"`
	RPCUser       string        `long:"rpc-user" env:"GLYPH_RPC_USER" description:"Radiant node RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"GLYPH_RPC_PASSWORD" description:"Radiant node RPC password"`
	RPCTimeout    time.Duration `long:"rpc-timeout" env:"GLYPH_RPC_TIMEOUT" description:"timeout of a single RPC call" default:"30s"`
	MongoURI      string        `long:"mongo-uri" env:"GLYPH_MONGO_URI" description:"MongoDB connection URI" default:"mongodb://localhost:27017"`
	MongoDatabase string        `long:"mongo-db" env:"GLYPH_MONGO_DB" description:"MongoDB database name" default:"glyphs"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"GLYPH_CLICKHOUSE_DSN" description:"ClickHouse DSN for durable import logs, empty disables them"`
	RedisAddrs    []string      `long:"redis-addr" env:"GLYPH_REDIS_ADDRS" env-delim:"," description:"Redis address for the stats cache, repeat for cluster mode"`
	RedisPassword string        `long:"redis-password" env:"GLYPH_REDIS_PASSWORD" description:"Redis password"`
	RedisDB       int           `long:"redis-db" env:"GLYPH_REDIS_DB" description:"Redis database"`
	StatsTTL      time.Duration `long:"stats-ttl" env:"GLYPH_STATS_TTL" description:"stats cache TTL" default:"30s"`
	AdminAddr     string        `long:"admin-addr" env:"GLYPH_ADMIN_ADDR" description:"admin API listen address, empty disables it" default:":8080"`
	AdminAPIKey   string        `long:"admin-api-key" env:"GLYPH_ADMIN_API_KEY" description:"shared secret expected in x-api-key"`
	AdminOrigins  []string      `long:"admin-origin" env:"GLYPH_ADMIN_ORIGINS" env-delim:"," description:"allowed CORS origin for the admin API"`
	MetricsAddr   string        `long:"metrics-addr" env:"GLYPH_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	LogJSON       bool          `long:"log-json" env:"GLYPH_LOG_JSON" description:"emit production JSON logs"`
	LogLevel      string        `long:"log-level" env:"GLYPH_LOG_LEVEL" description:"minimum console log level" default:"info"`
	BatchSize     int           `long:"batch-size" env:"GLYPH_BATCH_SIZE" description:"blocks per scheduled import batch" default:"50"`
	IndexRXD      bool          `long:"index-rxd" env:"GLYPH_INDEX_RXD" description:"persist plain P2PKH outputs"`
	ZMQAddr       string        `long:"zmq-addr" env:"GLYPH_ZMQ_ADDR" description:"node ZMQ hashblock endpoint (requires the zmq build tag)"`
}

func main() {
	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := logging.New(logging.Config{JSON: cfg.LogJSON, Level: cfg.LogLevel})
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("glyph importer failed", zap.Error(err))
	}
	logger.Info("glyph importer stopped")
}

func run(ctx context.Context, cfg config, base *zap.Logger) error {
	if err := cfg.Network.Validate(); err != nil {
		return err
	}
	params, err := radiant.Params(cfg.Network)
	if err != nil {
		return err
	}

	logger := base
	var logStore transport.LogStore
	if cfg.ClickhouseDSN != "" {
		chRepo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init clickhouse repository: %w", err)
		}
		defer func() {
			if err := chRepo.Close(); err != nil {
				base.Warn("close clickhouse repository", zap.Error(err))
			}
		}()

		sink := logging.NewSink(chRepo, base)
		sink.Start(ctx)
		defer func() {
			sink.Stop()
			if dropped := sink.Dropped(); dropped > 0 {
				base.Warn("import log rows dropped", zap.Int64("dropped", dropped))
			}
		}()
		logger = logging.Tee(base, sink.Core(zapcore.InfoLevel))
		logStore = chRepo
	}
	logger = logger.With(zap.String("network", string(cfg.Network)))

	mongoClient, err := mongo.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			base.Warn("disconnect mongodb", zap.Error(err))
		}
	}()
	repo, err := mongo.NewRepository(mongoClient, cfg.MongoDatabase, metrics.NewMongoRepository())
	if err != nil {
		return fmt.Errorf("init mongo repository: %w", err)
	}
	if err := repo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	var cache stats.Cache
	if len(cfg.RedisAddrs) > 0 {
		redisClient, err := redis.NewClient(ctx, redis.Options{Addrs: cfg.RedisAddrs, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			return err
		}
		defer func() {
			_ = redisClient.Close()
		}()
		statsCache, err := redis.NewStatsCache(redisClient, redis.DefaultStatsKey, cfg.StatsTTL, metrics.NewRedisCache())
		if err != nil {
			return err
		}
		cache = statsCache
	}
	statsSvc, err := stats.New(repo, cache, logger)
	if err != nil {
		return err
	}

	rpc, err := radiant.NewHTTPCaller(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword, nil)
	if err != nil {
		return fmt.Errorf("init radiant rpc client: %w", err)
	}
	chain := radiant.NewClient(rpc, metrics.NewRPCClient(cfg.Network), cfg.RPCTimeout)

	proc, err := processor.New(chain, repo, statsSvc, metrics.NewProcessor(), processor.Config{Params: params, IndexRXD: cfg.IndexRXD}, logger)
	if err != nil {
		return err
	}
	imp, err := importer.New(chain, proc, repo, metrics.NewImporter(cfg.Network), importer.Config{Network: cfg.Network, BatchSize: cfg.BatchSize}, logger)
	if err != nil {
		return err
	}

	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		return err
	}
	scheduler, err := importer.NewScheduler(imp, statsSvc, logger, blockSignal)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return scheduler.Run(ctx)
	})
	g.Go(func() error {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		return serve(ctx, newServer(cfg.MetricsAddr, mux), logger.Named("metrics_server"))
	})
	if cfg.AdminAddr != "" {
		controller := importer.NewController(imp.WithBatchSize(importer.AdminBatchSize), logger)
		admin, err := transport.NewAdminHandler(
			transport.AdminConfig{APIKey: cfg.AdminAPIKey, AllowedOrigins: cfg.AdminOrigins},
			controller,
			logStore,
			statsSvc,
			logger,
		)
		if err != nil {
			return err
		}
		g.Go(func() error {
			defer controller.Stop()
			return serve(ctx, newServer(cfg.AdminAddr, admin.Handler()), logger.Named("admin_server"))
		})
	}
	return g.Wait()
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
}

func serve(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", srv.Addr, err)
	}
	return nil
}
