package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/siraphop/portfolio-api/internal/config"
	"github.com/siraphop/portfolio-api/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all collections with sample data",
	Long:  `Destructively replace the content, projects, skills, and experiences collections with the built-in sample dataset.`,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(ctx) }()

	counts, err := db.Seed(ctx, store)
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d content rows, %d projects, %d skills, %d experiences\n",
		counts.Content, counts.Projects, counts.Skills, counts.Experiences)
	return nil
}
