package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Astemirdum/friendly-eats/restaurant/app"
	"github.com/Astemirdum/friendly-eats/restaurant/config"
)

var rootCmd = &cobra.Command{
	Use:           "eatsctl",
	Short:         "Friendly Eats admin tool",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(err, "load .env")
		}
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Migrate(cmd.Context(), config.NewConfig()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}

var seedCount int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Add random restaurants with reviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := app.Seed(cmd.Context(), config.NewConfig(), seedCount)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %d restaurants\n", n)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVarP(&seedCount, "count", "n", 20, "number of restaurants to add")
	rootCmd.AddCommand(migrateCmd, seedCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "eatsctl:", err)
		os.Exit(1)
	}
}
