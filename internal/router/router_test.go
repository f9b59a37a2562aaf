package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"sambapos/internal/auth"
	"sambapos/internal/catalog"
	"sambapos/internal/receipt"
	"sambapos/internal/reports"
	"sambapos/internal/stock"
	"sambapos/internal/suggest"
	"sambapos/internal/tables"
	"sambapos/internal/ticket"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "router-test-secret")

	userRepo := auth.NewInMemoryUserRepository()
	authService := auth.NewService(userRepo)
	if err := auth.SeedUsers(userRepo); err != nil {
		t.Fatalf("seed users: %v", err)
	}

	cat := catalog.NewInMemoryRepository(catalog.SeedItems())
	ledger := stock.NewLedger(stock.SeedItems())
	floor := tables.NewFloor(tables.SeedTables())
	engine := ticket.NewService(ticket.NewStore(), cat, ledger, floor, nil, 0.16)
	reportsService := reports.NewService(engine, authService, ledger)

	return NewRouter(Handlers{
		Auth:    auth.NewHandler(authService),
		Catalog: catalog.NewHandler(cat),
		Tables:  tables.NewHandler(floor),
		Tickets: ticket.NewHandler(engine),
		Stock:   stock.NewHandler(ledger),
		Reports: reports.NewHandler(reportsService),
		Suggest: suggest.NewHandler(suggest.NewGeminiClient(), engine),
		Receipt: receipt.NewHandler(engine),
	})
}

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d (%s)", username, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return resp.Token
}

func do(r *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestMenuRequiresToken(t *testing.T) {
	r := newTestRouter(t)

	if w := do(r, http.MethodGet, "/menu", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	token := login(t, r, "jane", "waiter123")
	if w := do(r, http.MethodGet, "/menu", token, nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", w.Code)
	}
}

func TestWaiterCannotReachGuardedRoutes(t *testing.T) {
	r := newTestRouter(t)
	waiter := login(t, r, "jane", "waiter123")

	if w := do(r, http.MethodGet, "/stock", waiter, nil); w.Code != http.StatusForbidden {
		t.Fatalf("stock: expected 403 for waiter, got %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/reports/summary", waiter, nil); w.Code != http.StatusForbidden {
		t.Fatalf("reports: expected 403 for waiter, got %d", w.Code)
	}
}

func TestOrderFlowOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	waiter := login(t, r, "jane", "waiter123")
	cashier := login(t, r, "peter", "cashier123")

	w := do(r, http.MethodPost, "/tables/t1/ticket", waiter, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("open ticket: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var opened struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &opened); err != nil {
		t.Fatalf("decode ticket: %v", err)
	}

	w = do(r, http.MethodPost, "/tickets/"+opened.ID+"/items", waiter,
		map[string]any{"menu_item_id": "m1", "quantity": 2})
	if w.Code != http.StatusOK {
		t.Fatalf("add item: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	// Waiters seat and serve; only tills settle.
	w = do(r, http.MethodPost, "/tickets/"+opened.ID+"/pay", waiter,
		map[string]any{"method": "cash"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("waiter pay: expected 403, got %d", w.Code)
	}

	w = do(r, http.MethodPost, "/tickets/"+opened.ID+"/pay", cashier,
		map[string]any{"method": "cash"})
	if w.Code != http.StatusOK {
		t.Fatalf("cashier pay: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/tickets/"+opened.ID+"/receipt", cashier, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("receipt: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Tribal Bistro")) {
		t.Errorf("receipt missing header:\n%s", w.Body.String())
	}
}

func TestManagerCanVoidAndReadReports(t *testing.T) {
	r := newTestRouter(t)
	waiter := login(t, r, "jane", "waiter123")
	manager := login(t, r, "mary", "manager123")

	w := do(r, http.MethodPost, "/tables/t2/ticket", waiter, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("open ticket: expected 200, got %d", w.Code)
	}
	var opened struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &opened)

	w = do(r, http.MethodPost, "/tickets/"+opened.ID+"/void", waiter,
		map[string]any{"confirm": true})
	if w.Code != http.StatusForbidden {
		t.Fatalf("waiter void: expected 403, got %d", w.Code)
	}

	w = do(r, http.MethodPost, "/tickets/"+opened.ID+"/void", manager,
		map[string]any{"confirm": true})
	if w.Code != http.StatusOK {
		t.Fatalf("manager void: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/reports/summary", manager, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("reports summary: expected 200, got %d", w.Code)
	}
}
