// Package api serves the JSON REST surface under /api. Every response uses
// the {success, data, message} envelope.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Handler handles the expense REST endpoints.
type Handler struct {
	ledger  *ledger.Service
	metrics middleware.HTTPObserver
}

// Option configures a Handler.
type Option func(*Handler)

// WithMetrics reports every request to obs.
func WithMetrics(obs middleware.HTTPObserver) Option {
	return func(h *Handler) {
		h.metrics = obs
	}
}

// NewHandler creates a new Handler.
func NewHandler(l *ledger.Service, opts ...Option) *Handler {
	h := &Handler{ledger: l}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns a router serving /api/*. Request IDs are assigned by
// middleware.HTTPLogging at the server edge.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	if h.metrics != nil {
		r.Use(middleware.HTTPMetrics(h.metrics))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", h.ListExpenses)
			r.Post("/", h.CreateExpense)
			r.Put("/{id}", h.UpdateExpense)
			r.Delete("/{id}", h.DeleteExpense)
		})
		r.Get("/people", h.ListPeople)
		r.Get("/balances", h.Balances)
		r.Get("/settlements", h.Settlements)
		r.Get("/categories", h.Categories)
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/categories", h.CategoryAnalytics)
			r.Get("/monthly", h.MonthlyAnalytics)
		})
	})
	return r
}

// expenseRequest is the body of POST /api/expenses and PUT /api/expenses/{id}.
type expenseRequest struct {
	Amount      *Amount `json:"amount"`
	Description *string `json:"description"`
	PaidBy      *string `json:"paid_by"`
	Category    *string `json:"category"`
}

func (req expenseRequest) toNew() models.NewExpense {
	in := models.NewExpense{}
	if req.Amount != nil {
		in.Amount = float64(*req.Amount)
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.PaidBy != nil {
		in.PaidBy = *req.PaidBy
	}
	if req.Category != nil {
		in.Category = *req.Category
	}
	return in
}

func (req expenseRequest) toUpdate() models.ExpenseUpdate {
	update := models.ExpenseUpdate{
		Description: req.Description,
		PaidBy:      req.PaidBy,
		Category:    req.Category,
	}
	if req.Amount != nil {
		amount := float64(*req.Amount)
		update.Amount = &amount
	}
	return update
}

func decodeExpense(w http.ResponseWriter, r *http.Request) (expenseRequest, bool) {
	var req expenseRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	return req, true
}

// ListExpenses handles GET /api/expenses.
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.ledger.ListExpenses(r.Context())
	if err != nil {
		slog.Error("GET /api/expenses failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}
	writeData(w, http.StatusOK, expenses, "Expenses retrieved successfully")
}

// CreateExpense handles POST /api/expenses.
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeExpense(w, r)
	if !ok {
		return
	}

	expense, err := h.ledger.AddExpense(r.Context(), req.toNew())
	if err != nil {
		var vErr *ledger.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Message)
			return
		}
		slog.Error("POST /api/expenses failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to add expense")
		return
	}
	writeData(w, http.StatusCreated, expense, "Expense added successfully")
}

// UpdateExpense handles PUT /api/expenses/{id}. Omitted fields keep their value.
func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	req, ok := decodeExpense(w, r)
	if !ok {
		return
	}

	expense, err := h.ledger.UpdateExpense(r.Context(), id, req.toUpdate())
	if err != nil {
		var vErr *ledger.ValidationError
		switch {
		case errors.As(err, &vErr):
			writeError(w, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, storage.ErrNotFound):
			writeError(w, http.StatusNotFound, "Expense not found")
		default:
			slog.Error("PUT /api/expenses/{id} failed", "expense_id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to update expense")
		}
		return
	}
	writeData(w, http.StatusOK, expense, "Expense updated successfully")
}

// DeleteExpense handles DELETE /api/expenses/{id}.
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.ledger.DeleteExpense(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Expense not found")
			return
		}
		slog.Error("DELETE /api/expenses/{id} failed", "expense_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete expense")
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Message: "Expense deleted successfully"})
}

// ListPeople handles GET /api/people.
func (h *Handler) ListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.ledger.ListPeople(r.Context())
	if err != nil {
		slog.Error("GET /api/people failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve people")
		return
	}
	writeData(w, http.StatusOK, people, "People retrieved successfully")
}

// Balances handles GET /api/balances.
func (h *Handler) Balances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.ledger.Balances(r.Context())
	if err != nil {
		slog.Error("GET /api/balances failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to calculate balances")
		return
	}
	writeData(w, http.StatusOK, balances, "Balances calculated successfully")
}

// Settlements handles GET /api/settlements.
func (h *Handler) Settlements(w http.ResponseWriter, r *http.Request) {
	settlements, err := h.ledger.Settlements(r.Context())
	if err != nil {
		slog.Error("GET /api/settlements failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to calculate settlements")
		return
	}
	writeData(w, http.StatusOK, settlements, "Settlements calculated successfully")
}

// Categories handles GET /api/categories.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.ledger.Categories(), "Categories retrieved successfully")
}

// CategoryAnalytics handles GET /api/analytics/categories.
func (h *Handler) CategoryAnalytics(w http.ResponseWriter, r *http.Request) {
	totals, err := h.ledger.CategoryBreakdown(r.Context())
	if err != nil {
		slog.Error("GET /api/analytics/categories failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve category analytics")
		return
	}
	writeData(w, http.StatusOK, totals, "Category analytics retrieved successfully")
}

// MonthlyAnalytics handles GET /api/analytics/monthly.
func (h *Handler) MonthlyAnalytics(w http.ResponseWriter, r *http.Request) {
	totals, err := h.ledger.MonthlySpending(r.Context())
	if err != nil {
		slog.Error("GET /api/analytics/monthly failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve monthly analytics")
		return
	}
	writeData(w, http.StatusOK, totals, "Monthly analytics retrieved successfully")
}
