// Package main imports a single batch of blocks, optionally after an
// operator reset, and exits.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/glyphindexer/internal/glyph/importer"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/model"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/processor"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/radiant"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/repository/mongo"
	"github.com/goodnatureofminers/glyphindexer/internal/glyph/stats"
	"github.com/goodnatureofminers/glyphindexer/internal/logging"
	"github.com/goodnatureofminers/glyphindexer/internal/metrics"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Network       model.Network `long:"network" env:"GLYPH_NETWORK" description:"network name (mainnet, testnet, regtest)" default:"mainnet"`
	RPCURL        string        `long:"rpc-url" env:"GLYPH_RPC_URL" description:"Radiant node RPC URL" default:"http://127.0.0.1:7332"`
	RPCUser       string        `long:"rpc-user" env:"GLYPH_RPC_USER" description:"Radiant node RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"GLYPH_RPC_PASSWORD" description:"Radiant node RPC password"`
	RPCTimeout    time.Duration `long:"rpc-timeout" env:"GLYPH_RPC_TIMEOUT" description:"timeout of a single RPC call" default:"30s"`
	MongoURI      string        `long:"mongo-uri" env:"GLYPH_MONGO_URI" description:"MongoDB connection URI" default:"mongodb://localhost:27017"`
	MongoDatabase string        `long:"mongo-db" env:"GLYPH_MONGO_DB" description:"MongoDB database name" default:"glyphs"`
	LogJSON       bool          `long:"log-json" env:"GLYPH_LOG_JSON" description:"emit production JSON logs"`
	LogLevel      string        `long:"log-level" env:"GLYPH_LOG_LEVEL" description:"minimum log level" default:"info"`
	BatchSize     int           `long:"batch-size" description:"blocks to import" default:"10"`
	IndexRXD      bool          `long:"index-rxd" env:"GLYPH_INDEX_RXD" description:"persist plain P2PKH outputs"`
	ResetTo       *int64        `long:"reset-to" description:"rewind progress to this height before importing"`
	ResetHash     string        `long:"reset-hash" description:"block hash stored with --reset-to"`
	ClearFlag     bool          `long:"clear-flag" description:"release a stuck import lease and exit"`
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.ResetTo != nil && *cfg.ResetTo < 0 {
		return fmt.Errorf("--reset-to must not be negative, got %d", *cfg.ResetTo)
	}
	params, err := radiant.Params(cfg.Network)
	if err != nil {
		return err
	}
	logger = logger.With(zap.String("network", string(cfg.Network)))

	mongoClient, err := mongo.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	repo, err := mongo.NewRepository(mongoClient, cfg.MongoDatabase, metrics.NewMongoRepository())
	if err != nil {
		return err
	}
	if err := repo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	statsSvc, err := stats.New(repo, nil, logger)
	if err != nil {
		return err
	}

	rpc, err := radiant.NewHTTPCaller(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword, nil)
	if err != nil {
		return fmt.Errorf("init radiant rpc client: %w", err)
	}
	chain := radiant.NewClient(rpc, metrics.NewRPCClient(cfg.Network), cfg.RPCTimeout)

	proc, err := processor.New(chain, repo, nil, metrics.NewProcessor(), processor.Config{Params: params, IndexRXD: cfg.IndexRXD}, logger)
	if err != nil {
		return err
	}
	imp, err := importer.New(chain, proc, repo, metrics.NewImporter(cfg.Network), importer.Config{Network: cfg.Network, BatchSize: cfg.BatchSize}, logger)
	if err != nil {
		return err
	}

	if cfg.ClearFlag || cfg.ResetTo != nil {
		state, err := imp.Reset(ctx, importer.ResetOptions{Height: cfg.ResetTo, Hash: cfg.ResetHash, ClearFlag: cfg.ClearFlag})
		if err != nil {
			return fmt.Errorf("reset import state: %w", err)
		}
		logger.Info("import state reset",
			zap.Int64("lastBlockHeight", state.LastBlockHeight),
			zap.String("lastBlockHash", state.LastBlockHash),
			zap.Bool("isImporting", state.IsImporting),
		)
		if cfg.ClearFlag {
			return nil
		}
	}

	res, err := imp.ImportBatch(ctx)
	if err != nil {
		return err
	}
	logger.Info("import batch finished",
		zap.Bool("noNewBlocks", res.NoNewBlocks),
		zap.Int("processed", res.Processed),
		zap.Int64("lastHeight", res.LastHeight),
		zap.Int64("chainHeight", res.ChainHeight),
		zap.Bool("reorg", res.Reorg),
	)

	if _, err := statsSvc.Refresh(ctx); err != nil {
		logger.Warn("stats refresh failed", zap.Error(err))
	}
	return nil
}
