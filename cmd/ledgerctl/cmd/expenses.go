package cmd

import (
	"errors"
	"fmt"
	"io"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/splitledger/internal/rpc/ledgerv1"
)

func newListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expenses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.ListExpenses(cmd.Context(), connect.NewRequest(&emptypb.Empty{}))
			if err != nil {
				return fmt.Errorf("failed to list expenses: %w", err)
			}
			return c.render(cmd.OutOrStdout(), resp.Msg.Expenses, func(w io.Writer) {
				fmt.Fprintln(w, "ID\tDATE\tPAID BY\tAMOUNT\tCATEGORY\tDESCRIPTION")
				for _, e := range resp.Msg.Expenses {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", e.Id, e.CreatedAt, e.PaidBy, money(e.Amount), e.Category, e.Description)
				}
			})
		},
	}
}

func newAddCmd(c *cli) *cobra.Command {
	var req ledgerv1.AddExpenseRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		Long: `Record an expense paid by one person and shared equally by everyone.

Example:
  ledgerctl add --amount 90 --description "Hotel" --paid-by Alice --category Travel`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client.AddExpense(cmd.Context(), connect.NewRequest(&req))
			if err != nil {
				return fmt.Errorf("failed to add expense: %w", err)
			}
			return c.printExpense(cmd.OutOrStdout(), "Added", resp.Msg.Expense)
		},
	}

	cmd.Flags().Float64Var(&req.Amount, "amount", 0, "amount paid (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "what the money was spent on (required)")
	cmd.Flags().StringVar(&req.PaidBy, "paid-by", "", "who paid (required)")
	cmd.Flags().StringVar(&req.Category, "category", "", "category (default Other)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("paid-by")
	return cmd
}

func newUpdateCmd(c *cli) *cobra.Command {
	var (
		amount      float64
		description string
		paidBy      string
		category    string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an expense",
		Long: `Change the given fields of an expense. Fields without a flag keep their value.

Example:
  ledgerctl update 3f2a... --amount 95.20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &ledgerv1.UpdateExpenseRequest{Id: args[0]}
			flags := cmd.Flags()
			if flags.Changed("amount") {
				req.Amount = &amount
			}
			if flags.Changed("description") {
				req.Description = &description
			}
			if flags.Changed("paid-by") {
				req.PaidBy = &paidBy
			}
			if flags.Changed("category") {
				req.Category = &category
			}
			if req.Amount == nil && req.Description == nil && req.PaidBy == nil && req.Category == nil {
				return errors.New("nothing to update: pass at least one of --amount, --description, --paid-by, --category")
			}

			resp, err := c.client.UpdateExpense(cmd.Context(), connect.NewRequest(req))
			if err != nil {
				return fmt.Errorf("failed to update expense: %w", err)
			}
			return c.printExpense(cmd.OutOrStdout(), "Updated", resp.Msg.Expense)
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "new amount")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&paidBy, "paid-by", "", "new payer")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	return cmd
}

func newDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.client.DeleteExpense(cmd.Context(), connect.NewRequest(&ledgerv1.DeleteExpenseRequest{Id: args[0]}))
			if err != nil {
				return fmt.Errorf("failed to delete expense: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func (c *cli) printExpense(out io.Writer, verb string, e *ledgerv1.Expense) error {
	return c.render(out, e, func(w io.Writer) {
		fmt.Fprintf(w, "%s expense %s\n", verb, e.Id)
		fmt.Fprintf(w, "  %s paid %s for %q (%s)\n", e.PaidBy, money(e.Amount), e.Description, e.Category)
	})
}
