package cmd

import (
	"fmt"
	"io"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"
)

func newPeopleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "people",
		Short: "List everyone who has paid for something",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.ListPeople(cmd.Context(), connect.NewRequest(&emptypb.Empty{}))
			if err != nil {
				return fmt.Errorf("failed to list people: %w", err)
			}
			return c.render(cmd.OutOrStdout(), resp.Msg.People, func(w io.Writer) {
				for _, p := range resp.Msg.People {
					fmt.Fprintln(w, p)
				}
			})
		},
	}
}

func newBalancesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show each person's net balance",
		Long: `Show what each person paid, their equal share, and the difference.
A positive balance means the person is owed money.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.GetBalances(cmd.Context(), connect.NewRequest(&emptypb.Empty{}))
			if err != nil {
				return fmt.Errorf("failed to get balances: %w", err)
			}
			return c.render(cmd.OutOrStdout(), resp.Msg.Balances, func(w io.Writer) {
				fmt.Fprintln(w, "PERSON\tPAID\tSHARE\tBALANCE")
				for _, b := range resp.Msg.Balances {
					fmt.Fprintf(w, "%s\t%s\t%s\t%+.2f\n", b.Person, money(b.Owed), money(b.Owes), b.Balance)
				}
			})
		},
	}
}

func newSettleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "settle",
		Short: "Show the transfers that settle all debts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.GetSettlements(cmd.Context(), connect.NewRequest(&emptypb.Empty{}))
			if err != nil {
				return fmt.Errorf("failed to get settlements: %w", err)
			}
			return c.render(cmd.OutOrStdout(), resp.Msg.Settlements, func(w io.Writer) {
				if len(resp.Msg.Settlements) == 0 {
					fmt.Fprintln(w, "All settled up.")
					return
				}
				for _, s := range resp.Msg.Settlements {
					fmt.Fprintf(w, "%s\tpays\t%s\t%s\n", s.From, s.To, money(s.Amount))
				}
			})
		},
	}
}

func newCategoriesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the expense categories offered by the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.ListCategories(cmd.Context(), connect.NewRequest(&emptypb.Empty{}))
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}
			return c.render(cmd.OutOrStdout(), resp.Msg.Categories, func(w io.Writer) {
				for _, name := range resp.Msg.Categories {
					fmt.Fprintln(w, name)
				}
			})
		},
	}
}

func newAnalyticsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Spending summaries",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "categories",
		Short: "Spending per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.GetCategoryBreakdown(cmd.Context(), connect.NewRequest(&emptypb.Empty{}))
			if err != nil {
				return fmt.Errorf("failed to get category breakdown: %w", err)
			}
			return c.render(cmd.OutOrStdout(), resp.Msg.Categories, func(w io.Writer) {
				fmt.Fprintln(w, "CATEGORY\tTOTAL\tCOUNT\tSHARE")
				for _, t := range resp.Msg.Categories {
					fmt.Fprintf(w, "%s\t%s\t%d\t%.2f%%\n", t.Category, money(t.Total), t.Count, t.Percentage)
				}
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "monthly",
		Short: "Spending per calendar month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.GetMonthlySpending(cmd.Context(), connect.NewRequest(&emptypb.Empty{}))
			if err != nil {
				return fmt.Errorf("failed to get monthly spending: %w", err)
			}
			return c.render(cmd.OutOrStdout(), resp.Msg.Months, func(w io.Writer) {
				fmt.Fprintln(w, "MONTH\tTOTAL\tCOUNT")
				for _, m := range resp.Msg.Months {
					fmt.Fprintf(w, "%s\t%s\t%d\n", m.Month, money(m.Total), m.Count)
				}
			})
		},
	})
	return cmd
}
