package main

import (
	"context"
	"fmt"

	"lexjobs/internal/db"
	"lexjobs/internal/seed"
	"lexjobs/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with sample postings",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		postingRepo := store.NewPostingRepository(pool)

		logrus.Info("Seeding postings...")
		if err := seed.SeedPostings(ctx, postingRepo); err != nil {
			return fmt.Errorf("failed to seed postings: %w", err)
		}

		logrus.Info("Postings seeded successfully")

		return nil
	},
}
