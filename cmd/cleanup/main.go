// Command cleanup deletes meal plans older than the cache TTL. Reads
// already hide expired plans, so this only reclaims space; run it from
// cron when the server's own pruner is disabled.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/pebbl-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pebbl-backend/internal/adapter/postgres/mealplan"
	"github.com/heartmarshall/pebbl-backend/internal/app"
	"github.com/heartmarshall/pebbl-backend/internal/config"
)

func main() {
	ttl := flag.Duration("ttl", 0, "override MEAL_PLAN_TTL")
	timeout := flag.Duration("timeout", 5*time.Minute, "abort after this long")
	flag.Parse()

	if err := run(*ttl, *timeout); err != nil {
		fmt.Fprintln(os.Stderr, "cleanup:", err)
		os.Exit(1)
	}
}

func run(ttl, timeout time.Duration) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if ttl <= 0 {
		ttl = cfg.MealPlan.TTL
	}
	logger := app.NewLogger(cfg.Log).With(slog.String("cmd", "cleanup"))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	_, err = app.PruneMealPlans(ctx, mealplan.New(pool), ttl, time.Now(), nil, logger)
	return err
}
