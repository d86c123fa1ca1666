package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/jprint-vendor-api/internal/application/auth"
	"github.com/jhoicas/jprint-vendor-api/internal/application/seed"
	"github.com/jhoicas/jprint-vendor-api/internal/infrastructure/postgres"
)

var (
	seedVendorsFile string
	seedCharset     string
	seedNoOrders    bool
)

func init() {
	seedCmd.Flags().StringVar(&seedVendorsFile, "vendors", "", "CSV de vendedores (name,email,password,sector); vacío usa los de demostración")
	seedCmd.Flags().StringVar(&seedCharset, "charset", "", "codificación del CSV: UTF-8, ISO-8859-1 o WINDOWS-1252")
	seedCmd.Flags().BoolVar(&seedNoOrders, "no-orders", false, "crear solo vendedores, sin pedidos de ejemplo")

	rootCmd.AddCommand(migrateCmd, seedCmd, hashPasswordCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones SQL pendientes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, err := boot(ctx)
		if err != nil {
			return err
		}
		defer c.Close()
		if c.pool == nil {
			return errors.New("migrate requiere DB_DRIVER=postgres")
		}
		_, err = postgres.Migrate(ctx, c.pool, c.log.Component("migrate"))
		return err
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga vendedores y pedidos de demostración",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, err := boot(ctx)
		if err != nil {
			return err
		}
		defer c.Close()

		vendors := seed.DefaultVendors()
		if seedVendorsFile != "" {
			f, err := os.Open(seedVendorsFile)
			if err != nil {
				return fmt.Errorf("abrir %s: %w", seedVendorsFile, err)
			}
			defer f.Close()
			if vendors, err = seed.LoadVendorsCSV(f, seedCharset); err != nil {
				return err
			}
		}

		if c.pool == nil {
			c.log.Warn().Msg("seed con DB_DRIVER=memory no persiste nada")
		}
		res, err := c.seeder().Run(ctx, vendors, !seedNoOrders)
		if err != nil {
			return err
		}
		c.log.Info().
			Int("vendors_created", res.VendorsCreated).
			Int("vendors_skipped", res.VendorsSkipped).
			Int("orders_created", res.OrdersCreated).
			Msg("seed completado")
		return nil
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Imprime el hash bcrypt de una contraseña",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}
