package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/domain/dashboard"
	"github.com/hms/hms/internal/domain/inventory"
	"github.com/hms/hms/internal/domain/staff"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print hospital reports from the database",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "low-stock",
		Short: "List medication stock below its reorder level",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, svc *services) error {
				items, err := svc.inventory.LowStock(ctx)
				if err != nil {
					return err
				}
				return printLowStock(cmd.OutOrStdout(), items)
			})
		},
	})

	var shareLimit int
	shareCmd := &cobra.Command{
		Use:   "staff-share",
		Short: "List each staff member's share of their hospital's appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, svc *services) error {
				shares, err := svc.staff.Share(ctx, shareLimit)
				if err != nil {
					return err
				}
				return printStaffShare(cmd.OutOrStdout(), shares)
			})
		},
	}
	shareCmd.Flags().IntVar(&shareLimit, "limit", 0, "maximum rows (0 for all)")
	cmd.AddCommand(shareCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, svc *services) error {
				st, err := svc.dashboard.Stats(ctx)
				if err != nil {
					return err
				}
				return printStats(cmd.OutOrStdout(), st)
			})
		},
	})

	return cmd
}

// withServices opens a pool for the duration of one report. SQL tracing is
// left to LOG_LEVEL=debug.
func withServices(ctx context.Context, fn func(context.Context, *services) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg.Env, cfg.LogLevel).Output(os.Stderr)

	pool, err := openPool(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(ctx, newServices(pool))
}

func printLowStock(w io.Writer, items []inventory.StockItem) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HOSPITAL\tMEDICATION\tQTY\tREORDER")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", it.HospitalName, it.MedicationName, it.Quantity, it.ReorderLevel)
	}
	return tw.Flush()
}

func printStaffShare(w io.Writer, shares []staff.Share) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STAFF\tHOSPITAL\tAPPOINTMENTS\tSHARE")
	for _, s := range shares {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f%%\n", s.FullName, s.HospitalName, s.TotalAppointments, s.PctOfHospital)
	}
	return tw.Flush()
}

func printStats(w io.Writer, st *dashboard.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "patients\t%d\n", st.TotalPatients)
	fmt.Fprintf(tw, "staff\t%d\n", st.TotalStaff)
	fmt.Fprintf(tw, "appointments\t%d\n", st.TotalAppointments)
	fmt.Fprintf(tw, "low stock\t%d\n", st.LowStockCount)
	return tw.Flush()
}
