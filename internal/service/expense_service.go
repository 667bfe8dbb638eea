package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/rpc/ledgerv1"
	"github.com/mmynk/splitledger/internal/rpc/ledgerv1/ledgerv1connect"
	"github.com/mmynk/splitledger/internal/storage"
)

// ExpenseService implements the Connect ExpenseService on top of the ledger.
type ExpenseService struct {
	ledgerv1connect.UnimplementedExpenseServiceHandler
	ledger *ledger.Service
}

// NewExpenseService creates a new ExpenseService backed by the given ledger.
func NewExpenseService(l *ledger.Service) *ExpenseService {
	return &ExpenseService{ledger: l}
}

// toConnectError maps ledger and storage errors onto Connect codes.
func toConnectError(op string, err error) error {
	var vErr *ledger.ValidationError
	switch {
	case errors.As(err, &vErr):
		return connect.NewError(connect.CodeInvalidArgument, errors.New(vErr.Message))
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, errors.New("expense not found"))
	default:
		slog.Error(op+" failed", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}

// ListExpenses returns every expense, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.ListExpensesResponse], error) {
	expenses, err := s.ledger.ListExpenses(ctx)
	if err != nil {
		return nil, toConnectError("ListExpenses", err)
	}

	out := make([]*ledgerv1.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = expenseToProto(e)
	}
	return connect.NewResponse(&ledgerv1.ListExpensesResponse{Expenses: out}), nil
}

// AddExpense records a new expense.
func (s *ExpenseService) AddExpense(ctx context.Context, req *connect.Request[ledgerv1.AddExpenseRequest]) (*connect.Response[ledgerv1.AddExpenseResponse], error) {
	expense, err := s.ledger.AddExpense(ctx, models.NewExpense{
		Amount:      req.Msg.Amount,
		Description: req.Msg.Description,
		PaidBy:      req.Msg.PaidBy,
		Category:    req.Msg.Category,
	})
	if err != nil {
		return nil, toConnectError("AddExpense", err)
	}
	return connect.NewResponse(&ledgerv1.AddExpenseResponse{Expense: expenseToProto(expense)}), nil
}

// UpdateExpense applies a partial update to an existing expense.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[ledgerv1.UpdateExpenseRequest]) (*connect.Response[ledgerv1.UpdateExpenseResponse], error) {
	if req.Msg.Id == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("id is required"))
	}

	expense, err := s.ledger.UpdateExpense(ctx, req.Msg.Id, models.ExpenseUpdate{
		Amount:      req.Msg.Amount,
		Description: req.Msg.Description,
		PaidBy:      req.Msg.PaidBy,
		Category:    req.Msg.Category,
	})
	if err != nil {
		return nil, toConnectError("UpdateExpense", err)
	}
	return connect.NewResponse(&ledgerv1.UpdateExpenseResponse{Expense: expenseToProto(expense)}), nil
}

// DeleteExpense removes an expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[ledgerv1.DeleteExpenseRequest]) (*connect.Response[emptypb.Empty], error) {
	if req.Msg.Id == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("id is required"))
	}
	if err := s.ledger.DeleteExpense(ctx, req.Msg.Id); err != nil {
		return nil, toConnectError("DeleteExpense", err)
	}
	return connect.NewResponse(&emptypb.Empty{}), nil
}

func (s *ExpenseService) ListPeople(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.ListPeopleResponse], error) {
	people, err := s.ledger.ListPeople(ctx)
	if err != nil {
		return nil, toConnectError("ListPeople", err)
	}
	return connect.NewResponse(&ledgerv1.ListPeopleResponse{People: people}), nil
}

// GetBalances returns each participant's net balance, largest creditor first.
func (s *ExpenseService) GetBalances(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetBalancesResponse], error) {
	balances, err := s.ledger.Balances(ctx)
	if err != nil {
		return nil, toConnectError("GetBalances", err)
	}

	out := make([]*ledgerv1.Balance, len(balances))
	for i, b := range balances {
		out[i] = &ledgerv1.Balance{
			Person:  b.Person,
			Balance: b.Balance,
			Owes:    b.Owes,
			Owed:    b.Owed,
		}
	}
	return connect.NewResponse(&ledgerv1.GetBalancesResponse{Balances: out}), nil
}

// GetSettlements returns the transfers that settle all debts.
func (s *ExpenseService) GetSettlements(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetSettlementsResponse], error) {
	settlements, err := s.ledger.Settlements(ctx)
	if err != nil {
		return nil, toConnectError("GetSettlements", err)
	}

	out := make([]*ledgerv1.Settlement, len(settlements))
	for i, st := range settlements {
		out[i] = &ledgerv1.Settlement{From: st.From, To: st.To, Amount: st.Amount}
	}
	return connect.NewResponse(&ledgerv1.GetSettlementsResponse{Settlements: out}), nil
}

func (s *ExpenseService) GetCategoryBreakdown(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetCategoryBreakdownResponse], error) {
	totals, err := s.ledger.CategoryBreakdown(ctx)
	if err != nil {
		return nil, toConnectError("GetCategoryBreakdown", err)
	}

	out := make([]*ledgerv1.CategoryTotal, len(totals))
	for i, t := range totals {
		out[i] = &ledgerv1.CategoryTotal{
			Category:   t.Category,
			Total:      t.Total,
			Count:      int32(t.Count),
			Percentage: t.Percentage,
		}
	}
	return connect.NewResponse(&ledgerv1.GetCategoryBreakdownResponse{Categories: out}), nil
}

func (s *ExpenseService) GetMonthlySpending(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetMonthlySpendingResponse], error) {
	totals, err := s.ledger.MonthlySpending(ctx)
	if err != nil {
		return nil, toConnectError("GetMonthlySpending", err)
	}

	out := make([]*ledgerv1.MonthlyTotal, len(totals))
	for i, t := range totals {
		out[i] = &ledgerv1.MonthlyTotal{Month: t.Month, Total: t.Total, Count: int32(t.Count)}
	}
	return connect.NewResponse(&ledgerv1.GetMonthlySpendingResponse{Months: out}), nil
}

func (s *ExpenseService) ListCategories(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.ListCategoriesResponse], error) {
	return connect.NewResponse(&ledgerv1.ListCategoriesResponse{Categories: s.ledger.Categories()}), nil
}

// expenseToProto converts a stored expense to its wire form.
func expenseToProto(e *models.Expense) *ledgerv1.Expense {
	return &ledgerv1.Expense{
		Id:          e.ID,
		Amount:      e.Amount,
		Description: e.Description,
		PaidBy:      e.PaidBy,
		Category:    e.Category,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
