package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shrawan-shakya/shakya-gallery-sub000/config"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/services"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the invoicing tables and the invoice number sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if _, err := utils.InitLogger(cfg.AppEnv); err != nil {
				return err
			}
			if err := config.InitDB(cfg); err != nil {
				return err
			}
			defer config.CloseDB()

			if err := config.Gorm.AutoMigrate(&models.Invoice{}, &models.ActivityLog{}); err != nil {
				return fmt.Errorf("auto-migrate: %w", err)
			}

			ctx, cancel := config.WithTimeout()
			defer cancel()
			if _, err := config.DB.Exec(ctx, "CREATE SEQUENCE IF NOT EXISTS "+services.InvoiceNumberSequence); err != nil {
				return fmt.Errorf("create sequence: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✓ invoices, activity_logs and "+services.InvoiceNumberSequence+" are up to date")
			return nil
		},
	}
}
