// genescan recomputes class, stats and purity for every stored axie.
//
// Gene decoding is pure and stateless, so rows are fanned out across a
// worker pool; the database pages are the only ordering constraint.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/axiego/internal/config"
	"github.com/udisondev/axiego/internal/db"
	"github.com/udisondev/axiego/internal/gene"
	"github.com/udisondev/axiego/internal/traits"
)

const ConfigPath = "config/genescan.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Configure slog
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	slog.Info("axiego gene scanner starting")

	// Load config
	cfgPath := ConfigPath
	if p := os.Getenv("AXIEGO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadGeneScan(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.Info("config loaded", "batch_size", cfg.BatchSize, "workers", cfg.Workers)

	// Connect to database
	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	// Run migrations
	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	repo := db.NewAxieRepository(database.Pool())

	total, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting axies: %w", err)
	}
	slog.Info("recompute starting", "axies", total)

	var done, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	rowCh := make(chan db.GeneRow, cfg.BatchSize)

	// Producer: page through gene rows in id order.
	g.Go(func() error {
		defer close(rowCh)
		afterID := int64(0)
		for {
			page, err := repo.ListGenes(gctx, afterID, cfg.BatchSize)
			if err != nil {
				return fmt.Errorf("listing genes after %d: %w", afterID, err)
			}
			if len(page) == 0 {
				return nil
			}
			for _, row := range page {
				select {
				case rowCh <- row:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			afterID = page[len(page)-1].ID
		}
	})

	// Workers: decode, compute, write back.
	for i := 0; i < cfg.Workers; i++ {
		g.Go(func() error {
			for row := range rowCh {
				decoded, err := gene.Decode(row.GeneHex)
				if err != nil {
					// Malformed genes stay in the table for inspection;
					// they just never get stats.
					slog.Warn("skipping malformed gene", "axie", row.ID, "err", err)
					failed.Add(1)
					continue
				}
				stats := traits.CalculateStats(decoded)
				purity := traits.CalculatePurity(decoded)
				if err := repo.UpdateStats(gctx, row.ID, decoded.Class, stats, purity); err != nil {
					return err
				}
				done.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("recompute finished", "updated", done.Load(), "malformed", failed.Load())
	return nil
}
