// Package cmd provides CLI commands for ledgerctl.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/internal/rpc/ledgerv1/ledgerv1connect"
	"github.com/mmynk/splitledger/pkg/logging"
)

const defaultServer = "http://localhost:8080"

// cli holds the state shared by all subcommands of one invocation.
type cli struct {
	server  string
	asJSON  bool
	debug   bool
	timeout time.Duration
	client  ledgerv1connect.ExpenseServiceClient
}

// Execute runs the root command with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Manage a shared expense ledger",
		Long: `ledgerctl talks to a splitledger server over Connect.

It can record, edit and delete expenses, and show each person's
balance and the transfers that settle all debts.

Example:
  ledgerctl add --amount 42.50 --description "Groceries" --paid-by Alice
  ledgerctl balances
  ledgerctl settle`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if c.debug {
				level = slog.LevelDebug
			}
			logging.SetupWithLevel(level)

			c.client = ledgerv1connect.NewExpenseServiceClient(
				&http.Client{Timeout: c.timeout},
				c.server,
			)
		},
	}

	server := os.Getenv("LEDGER_SERVER")
	if server == "" {
		server = defaultServer
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&c.server, "server", server, "ledger server URL (env LEDGER_SERVER)")
	rootCmd.PersistentFlags().BoolVar(&c.asJSON, "json", false, "print JSON instead of tables")
	rootCmd.PersistentFlags().BoolVar(&c.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 10*time.Second, "request timeout")

	// Add subcommands
	rootCmd.AddCommand(
		newListCmd(c),
		newAddCmd(c),
		newUpdateCmd(c),
		newDeleteCmd(c),
		newPeopleCmd(c),
		newBalancesCmd(c),
		newSettleCmd(c),
		newCategoriesCmd(c),
		newAnalyticsCmd(c),
	)
	return rootCmd
}

// render prints v as indented JSON when --json is set, otherwise calls table
// with a tabwriter.
func (c *cli) render(out io.Writer, v any, table func(w io.Writer)) error {
	if c.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
