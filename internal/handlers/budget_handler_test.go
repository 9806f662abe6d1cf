package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/services"
)

// --- mock budget service ---

type mockBudgetService struct {
	generateBudgetFn func(profileID, templateID uint, monthIndex, year int) ([]models.Expense, error)
}

func (m *mockBudgetService) GenerateBudget(profileID, templateID uint, monthIndex, year int) ([]models.Expense, error) {
	if m.generateBudgetFn != nil {
		return m.generateBudgetFn(profileID, templateID, monthIndex, year)
	}
	return []models.Expense{}, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectProfileID(1))
	auth.POST("/budgets/generate", handler.GenerateBudget)
	return r
}

func TestBudgetHandler_GenerateBudget(t *testing.T) {
	t.Run("returns 200 with expense drafts", func(t *testing.T) {
		var gotTemplateID uint
		var gotMonth, gotYear int
		svc := &mockBudgetService{
			generateBudgetFn: func(_, templateID uint, monthIndex, year int) ([]models.Expense, error) {
				gotTemplateID, gotMonth, gotYear = templateID, monthIndex, year
				return []models.Expense{
					{
						ExpenseName: "Rent",
						Amount:      1200,
						DateDue:     time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
						Status:      models.ExpenseStatusPending,
					},
				}, nil
			},
		}
		handler := NewBudgetHandler(svc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "POST", "/budgets/generate", `{"budget_template_id":3,"month":8,"year":2025}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotTemplateID != 3 || gotMonth != 8 || gotYear != 2025 {
			t.Errorf("expected (3, 8, 2025), got (%d, %d, %d)", gotTemplateID, gotMonth, gotYear)
		}
		result := parseJSON(t, rec)
		expenses := result["expenses"].([]interface{})
		if len(expenses) != 1 {
			t.Fatalf("expected 1 draft, got %d", len(expenses))
		}
		draft := expenses[0].(map[string]interface{})
		if draft["status"] != "pending" {
			t.Errorf("expected pending status, got %v", draft["status"])
		}
	})

	t.Run("returns 409 when a budget already exists", func(t *testing.T) {
		svc := &mockBudgetService{
			generateBudgetFn: func(_, _ uint, _, _ int) ([]models.Expense, error) {
				return nil, apperrors.ErrDuplicateBudget
			},
		}
		handler := NewBudgetHandler(svc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "POST", "/budgets/generate", `{"budget_template_id":3,"month":8,"year":2025}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_BUDGET")
	})

	t.Run("returns 404 when template not found", func(t *testing.T) {
		svc := &mockBudgetService{
			generateBudgetFn: func(_, _ uint, _, _ int) ([]models.Expense, error) {
				return nil, apperrors.ErrTemplateNotFound
			},
		}
		handler := NewBudgetHandler(svc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "POST", "/budgets/generate", `{"budget_template_id":999,"month":8,"year":2025}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing template id", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "POST", "/budgets/generate", `{"month":8,"year":2025}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on negative month", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "POST", "/budgets/generate", `{"budget_template_id":3,"month":-1,"year":2025}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
