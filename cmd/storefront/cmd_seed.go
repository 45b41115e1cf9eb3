package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/priyankmodi/storefront/config"
	"github.com/priyankmodi/storefront/database/seeders"
	"github.com/priyankmodi/storefront/pkg/database"
)

// storefront seed — populate the admin account and sample catalogue.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all registered database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, disconnect, err := database.Connect(ctx)
		if err != nil {
			return err
		}
		defer disconnect(context.Background()) //nolint:errcheck

		fmt.Println("Seeding", config.MongoDatabase())
		return seeders.RunAll(ctx, db)
	},
}
