package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"leasedesk/internal/billing"
	"leasedesk/internal/config"
	"leasedesk/internal/console"
	"leasedesk/internal/leasing"
	"leasedesk/internal/models"
	"leasedesk/internal/registry"
	"leasedesk/internal/render"
	"leasedesk/internal/seed"
	"leasedesk/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}
	cfg := config.Load()
	logrus.SetLevel(cfg.LogrusLevel())

	rootCmd := &cobra.Command{
		Use:   "leasedesk",
		Short: "Property leasing & rent collection console",
	}
	rootCmd.AddCommand(consoleCmd(cfg))
	rootCmd.AddCommand(demoCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func consoleCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Run the interactive operator console",
		RunE: func(cmd *cobra.Command, args []string) error {
			withSeed, _ := cmd.Flags().GetBool("seed")

			db, err := store.Open()
			if err != nil {
				return err
			}
			if withSeed || cfg.SeedDemo {
				if err := seed.Demo(db); err != nil {
					return err
				}
			}
			return console.New(db, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	}
	cmd.Flags().Bool("seed", false, "Pre-load the demo dataset")
	return cmd
}

// demoCmd runs a scripted walkthrough of the lease, invoice and
// payment lifecycle without operator input.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted walkthrough of the leasing lifecycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			db, err := store.Open()
			if err != nil {
				return err
			}
			reg := registry.NewService(db)
			leases := leasing.NewService(db)
			bills := billing.NewService(db)

			property, err := reg.AddProperty("Maple Court", "12 Maple Street")
			if err != nil {
				return err
			}
			unit, err := reg.AddUnit(property.ID, "101", 10000)
			if err != nil {
				return err
			}
			tenant, err := reg.AddTenant("Alice Johnson", "alice.johnson@example.com", "555-0101")
			if err != nil {
				return err
			}

			start := time.Now().AddDate(0, -1, 0)
			lease, err := leases.CreateLease(unit.ID, tenant.ID, start, start.AddDate(1, 0, 0), 30)
			if err != nil {
				return err
			}
			lease, err = leases.Activate(lease.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, render.LeaseLine(lease))

			// A second lease on the occupied unit must be refused.
			rival, err := leases.CreateLease(unit.ID, tenant.ID, start, start.AddDate(1, 0, 0), 30)
			if err != nil {
				return err
			}
			if _, err := leases.Activate(rival.ID); err != nil {
				fmt.Fprintf(out, "Second lease refused: %v\n", err)
			}

			invoice, err := bills.GenerateInvoice(lease.ID, time.Now().AddDate(0, 0, -10))
			if err != nil {
				return err
			}
			invoice, err = bills.ApplyLateFee(invoice.ID, 10)
			if err != nil {
				return err
			}

			payment, err := models.NewCardPayment(time.Now(), invoice.TotalAmount(), "4242")
			if err != nil {
				return err
			}
			invoice, err = bills.RecordPayment(invoice.ID, payment)
			if err != nil {
				return err
			}
			fmt.Fprint(out, render.InvoiceDetail(invoice))

			return nil
		},
	}
}
