// Package ledgerv1connect binds the ledger.v1.ExpenseService to Connect.
package ledgerv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/splitledger/internal/rpc/ledgerv1"
)

// ExpenseServiceName is the fully-qualified name of the ExpenseService service.
const ExpenseServiceName = "ledger.v1.ExpenseService"

// Fully-qualified procedure names, used as HTTP routes.
const (
	ExpenseServiceListExpensesProcedure         = "/ledger.v1.ExpenseService/ListExpenses"
	ExpenseServiceAddExpenseProcedure           = "/ledger.v1.ExpenseService/AddExpense"
	ExpenseServiceUpdateExpenseProcedure        = "/ledger.v1.ExpenseService/UpdateExpense"
	ExpenseServiceDeleteExpenseProcedure        = "/ledger.v1.ExpenseService/DeleteExpense"
	ExpenseServiceListPeopleProcedure           = "/ledger.v1.ExpenseService/ListPeople"
	ExpenseServiceGetBalancesProcedure          = "/ledger.v1.ExpenseService/GetBalances"
	ExpenseServiceGetSettlementsProcedure       = "/ledger.v1.ExpenseService/GetSettlements"
	ExpenseServiceGetCategoryBreakdownProcedure = "/ledger.v1.ExpenseService/GetCategoryBreakdown"
	ExpenseServiceGetMonthlySpendingProcedure   = "/ledger.v1.ExpenseService/GetMonthlySpending"
	ExpenseServiceListCategoriesProcedure       = "/ledger.v1.ExpenseService/ListCategories"
)

// ExpenseServiceClient is a client for the ledger.v1.ExpenseService service.
type ExpenseServiceClient interface {
	ListExpenses(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.ListExpensesResponse], error)
	AddExpense(context.Context, *connect.Request[ledgerv1.AddExpenseRequest]) (*connect.Response[ledgerv1.AddExpenseResponse], error)
	UpdateExpense(context.Context, *connect.Request[ledgerv1.UpdateExpenseRequest]) (*connect.Response[ledgerv1.UpdateExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[ledgerv1.DeleteExpenseRequest]) (*connect.Response[emptypb.Empty], error)
	ListPeople(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.ListPeopleResponse], error)
	GetBalances(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetBalancesResponse], error)
	GetSettlements(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetSettlementsResponse], error)
	GetCategoryBreakdown(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetCategoryBreakdownResponse], error)
	GetMonthlySpending(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetMonthlySpendingResponse], error)
	ListCategories(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.ListCategoriesResponse], error)
}

// NewExpenseServiceClient constructs a client for the ledger.v1.ExpenseService
// service. The client always speaks the Connect protocol with the JSON Codec.
func NewExpenseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ExpenseServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &expenseServiceClient{
		listExpenses:         connect.NewClient[emptypb.Empty, ledgerv1.ListExpensesResponse](httpClient, baseURL+ExpenseServiceListExpensesProcedure, opts...),
		addExpense:           connect.NewClient[ledgerv1.AddExpenseRequest, ledgerv1.AddExpenseResponse](httpClient, baseURL+ExpenseServiceAddExpenseProcedure, opts...),
		updateExpense:        connect.NewClient[ledgerv1.UpdateExpenseRequest, ledgerv1.UpdateExpenseResponse](httpClient, baseURL+ExpenseServiceUpdateExpenseProcedure, opts...),
		deleteExpense:        connect.NewClient[ledgerv1.DeleteExpenseRequest, emptypb.Empty](httpClient, baseURL+ExpenseServiceDeleteExpenseProcedure, opts...),
		listPeople:           connect.NewClient[emptypb.Empty, ledgerv1.ListPeopleResponse](httpClient, baseURL+ExpenseServiceListPeopleProcedure, opts...),
		getBalances:          connect.NewClient[emptypb.Empty, ledgerv1.GetBalancesResponse](httpClient, baseURL+ExpenseServiceGetBalancesProcedure, opts...),
		getSettlements:       connect.NewClient[emptypb.Empty, ledgerv1.GetSettlementsResponse](httpClient, baseURL+ExpenseServiceGetSettlementsProcedure, opts...),
		getCategoryBreakdown: connect.NewClient[emptypb.Empty, ledgerv1.GetCategoryBreakdownResponse](httpClient, baseURL+ExpenseServiceGetCategoryBreakdownProcedure, opts...),
		getMonthlySpending:   connect.NewClient[emptypb.Empty, ledgerv1.GetMonthlySpendingResponse](httpClient, baseURL+ExpenseServiceGetMonthlySpendingProcedure, opts...),
		listCategories:       connect.NewClient[emptypb.Empty, ledgerv1.ListCategoriesResponse](httpClient, baseURL+ExpenseServiceListCategoriesProcedure, opts...),
	}
}

type expenseServiceClient struct {
	listExpenses         *connect.Client[emptypb.Empty, ledgerv1.ListExpensesResponse]
	addExpense           *connect.Client[ledgerv1.AddExpenseRequest, ledgerv1.AddExpenseResponse]
	updateExpense        *connect.Client[ledgerv1.UpdateExpenseRequest, ledgerv1.UpdateExpenseResponse]
	deleteExpense        *connect.Client[ledgerv1.DeleteExpenseRequest, emptypb.Empty]
	listPeople           *connect.Client[emptypb.Empty, ledgerv1.ListPeopleResponse]
	getBalances          *connect.Client[emptypb.Empty, ledgerv1.GetBalancesResponse]
	getSettlements       *connect.Client[emptypb.Empty, ledgerv1.GetSettlementsResponse]
	getCategoryBreakdown *connect.Client[emptypb.Empty, ledgerv1.GetCategoryBreakdownResponse]
	getMonthlySpending   *connect.Client[emptypb.Empty, ledgerv1.GetMonthlySpendingResponse]
	listCategories       *connect.Client[emptypb.Empty, ledgerv1.ListCategoriesResponse]
}

func (c *expenseServiceClient) ListExpenses(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *expenseServiceClient) AddExpense(ctx context.Context, req *connect.Request[ledgerv1.AddExpenseRequest]) (*connect.Response[ledgerv1.AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) UpdateExpense(ctx context.Context, req *connect.Request[ledgerv1.UpdateExpenseRequest]) (*connect.Response[ledgerv1.UpdateExpenseResponse], error) {
	return c.updateExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[ledgerv1.DeleteExpenseRequest]) (*connect.Response[emptypb.Empty], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) ListPeople(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.ListPeopleResponse], error) {
	return c.listPeople.CallUnary(ctx, req)
}

func (c *expenseServiceClient) GetBalances(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

func (c *expenseServiceClient) GetSettlements(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetSettlementsResponse], error) {
	return c.getSettlements.CallUnary(ctx, req)
}

func (c *expenseServiceClient) GetCategoryBreakdown(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetCategoryBreakdownResponse], error) {
	return c.getCategoryBreakdown.CallUnary(ctx, req)
}

func (c *expenseServiceClient) GetMonthlySpending(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetMonthlySpendingResponse], error) {
	return c.getMonthlySpending.CallUnary(ctx, req)
}

func (c *expenseServiceClient) ListCategories(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.ListCategoriesResponse], error) {
	return c.listCategories.CallUnary(ctx, req)
}

// ExpenseServiceHandler is an implementation of the ledger.v1.ExpenseService service.
type ExpenseServiceHandler interface {
	ListExpenses(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.ListExpensesResponse], error)
	AddExpense(context.Context, *connect.Request[ledgerv1.AddExpenseRequest]) (*connect.Response[ledgerv1.AddExpenseResponse], error)
	UpdateExpense(context.Context, *connect.Request[ledgerv1.UpdateExpenseRequest]) (*connect.Response[ledgerv1.UpdateExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[ledgerv1.DeleteExpenseRequest]) (*connect.Response[emptypb.Empty], error)
	ListPeople(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.ListPeopleResponse], error)
	GetBalances(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetBalancesResponse], error)
	GetSettlements(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetSettlementsResponse], error)
	GetCategoryBreakdown(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetCategoryBreakdownResponse], error)
	GetMonthlySpending(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetMonthlySpendingResponse], error)
	ListCategories(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.ListCategoriesResponse], error)
}

// NewExpenseServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	readOnly := append([]connect.HandlerOption{connect.WithIdempotency(connect.IdempotencyNoSideEffects)}, opts...)

	listExpensesHandler := connect.NewUnaryHandler(ExpenseServiceListExpensesProcedure, svc.ListExpenses, readOnly...)
	addExpenseHandler := connect.NewUnaryHandler(ExpenseServiceAddExpenseProcedure, svc.AddExpense, opts...)
	updateExpenseHandler := connect.NewUnaryHandler(ExpenseServiceUpdateExpenseProcedure, svc.UpdateExpense, opts...)
	deleteExpenseHandler := connect.NewUnaryHandler(ExpenseServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...)
	listPeopleHandler := connect.NewUnaryHandler(ExpenseServiceListPeopleProcedure, svc.ListPeople, readOnly...)
	getBalancesHandler := connect.NewUnaryHandler(ExpenseServiceGetBalancesProcedure, svc.GetBalances, readOnly...)
	getSettlementsHandler := connect.NewUnaryHandler(ExpenseServiceGetSettlementsProcedure, svc.GetSettlements, readOnly...)
	getCategoryBreakdownHandler := connect.NewUnaryHandler(ExpenseServiceGetCategoryBreakdownProcedure, svc.GetCategoryBreakdown, readOnly...)
	getMonthlySpendingHandler := connect.NewUnaryHandler(ExpenseServiceGetMonthlySpendingProcedure, svc.GetMonthlySpending, readOnly...)
	listCategoriesHandler := connect.NewUnaryHandler(ExpenseServiceListCategoriesProcedure, svc.ListCategories, readOnly...)

	return "/ledger.v1.ExpenseService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ExpenseServiceListExpensesProcedure:
			listExpensesHandler.ServeHTTP(w, r)
		case ExpenseServiceAddExpenseProcedure:
			addExpenseHandler.ServeHTTP(w, r)
		case ExpenseServiceUpdateExpenseProcedure:
			updateExpenseHandler.ServeHTTP(w, r)
		case ExpenseServiceDeleteExpenseProcedure:
			deleteExpenseHandler.ServeHTTP(w, r)
		case ExpenseServiceListPeopleProcedure:
			listPeopleHandler.ServeHTTP(w, r)
		case ExpenseServiceGetBalancesProcedure:
			getBalancesHandler.ServeHTTP(w, r)
		case ExpenseServiceGetSettlementsProcedure:
			getSettlementsHandler.ServeHTTP(w, r)
		case ExpenseServiceGetCategoryBreakdownProcedure:
			getCategoryBreakdownHandler.ServeHTTP(w, r)
		case ExpenseServiceGetMonthlySpendingProcedure:
			getMonthlySpendingHandler.ServeHTTP(w, r)
		case ExpenseServiceListCategoriesProcedure:
			listCategoriesHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedExpenseServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedExpenseServiceHandler struct{}

func (UnimplementedExpenseServiceHandler) ListExpenses(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.ListExpensesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ledger.v1.ExpenseService.ListExpenses is not implemented"))
}

func (UnimplementedExpenseServiceHandler) AddExpense(context.Context, *connect.Request[ledgerv1.AddExpenseRequest]) (*connect.Response[ledgerv1.AddExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ledger.v1.ExpenseService.AddExpense is not implemented"))
}

func (UnimplementedExpenseServiceHandler) UpdateExpense(context.Context, *connect.Request[ledgerv1.UpdateExpenseRequest]) (*connect.Response[ledgerv1.UpdateExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ledger.v1.ExpenseService.UpdateExpense is not implemented"))
}

func (UnimplementedExpenseServiceHandler) DeleteExpense(context.Context, *connect.Request[ledgerv1.DeleteExpenseRequest]) (*connect.Response[emptypb.Empty], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ledger.v1.ExpenseService.DeleteExpense is not implemented"))
}

func (UnimplementedExpenseServiceHandler) ListPeople(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.ListPeopleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ledger.v1.ExpenseService.ListPeople is not implemented"))
}

func (UnimplementedExpenseServiceHandler) GetBalances(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetBalancesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ledger.v1.ExpenseService.GetBalances is not implemented"))
}

func (UnimplementedExpenseServiceHandler) GetSettlements(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetSettlementsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ledger.v1.ExpenseService.GetSettlements is not implemented"))
}

func (UnimplementedExpenseServiceHandler) GetCategoryBreakdown(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetCategoryBreakdownResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ledger.v1.ExpenseService.GetCategoryBreakdown is not implemented"))
}

func (UnimplementedExpenseServiceHandler) GetMonthlySpending(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.GetMonthlySpendingResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ledger.v1.ExpenseService.GetMonthlySpending is not implemented"))
}

func (UnimplementedExpenseServiceHandler) ListCategories(context.Context, *connect.Request[emptypb.Empty]) (*connect.Response[ledgerv1.ListCategoriesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ledger.v1.ExpenseService.ListCategories is not implemented"))
}
