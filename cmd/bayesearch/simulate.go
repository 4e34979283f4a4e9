package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/poiesic/bayesearch/simulate"
	"github.com/poiesic/bayesearch/storage/badger"
	"github.com/urfave/cli/v2"
)

func simulateCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	policy, err := simulate.ParsePolicy(c.String("policy"))
	if err != nil {
		return err
	}

	repo, err := badger.NewMemoryRepository()
	if err != nil {
		return err
	}
	defer repo.Close()

	opts := []simulate.Option{simulate.WithLogger(slog.Default())}
	if c.IsSet("pool-size") {
		opts = append(opts, simulate.WithPoolSize(c.Int("pool-size")))
	}
	if interval := c.Int("report-interval"); interval > 0 {
		opts = append(opts, simulate.WithProgress(c.App.ErrWriter, interval))
	}

	runner, err := simulate.NewRunner(repo, opts...)
	if err != nil {
		return err
	}
	defer runner.Release()

	summary, err := runner.Run(ctx, cfg, policy, c.Int("trials"), c.Int("max-rounds"))
	if err != nil {
		return err
	}

	_, err = summary.WriteTo(c.App.Writer)
	return err
}
