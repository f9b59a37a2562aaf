package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"sambapos/internal/catalog"
	"sambapos/internal/ticket"
)

type stubClient struct {
	text string
	err  error
}

func (s stubClient) Upsell(_ context.Context, _ []ticket.TicketItem) (string, error) {
	return s.text, s.err
}

type stubTickets struct {
	tickets map[string]*ticket.Ticket
}

func (s stubTickets) Get(id string) (*ticket.Ticket, error) {
	t, ok := s.tickets[id]
	if !ok {
		return nil, ticket.ErrTicketNotFound
	}
	return t, nil
}

func newSuggestRouter(client Client, tickets TicketReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(client, tickets)
	r.GET("/tickets/:id/suggestions", h.GetSuggestions)
	return r
}

func getSuggestion(t *testing.T, r *gin.Engine, id string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/tickets/"+id+"/suggestions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Suggestion string `json:"suggestion"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w.Code, resp.Suggestion
}

func TestSuggestionsForTicketWithItems(t *testing.T) {
	tickets := stubTickets{tickets: map[string]*ticket.Ticket{
		"T-1": {
			ID:     "T-1",
			Status: ticket.StatusOpen,
			Items: []ticket.TicketItem{
				{MenuItem: catalog.MenuItem{ID: "m1", Name: "Classic Burger"}, Quantity: 1},
			},
		},
	}}
	r := newSuggestRouter(stubClient{text: "How about some fries with that?"}, tickets)

	code, suggestion := getSuggestion(t, r, "T-1")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if suggestion != "How about some fries with that?" {
		t.Fatalf("unexpected suggestion: %q", suggestion)
	}
}

func TestSuggestionsEmptyTicket(t *testing.T) {
	tickets := stubTickets{tickets: map[string]*ticket.Ticket{
		"T-2": {ID: "T-2", Status: ticket.StatusOpen},
	}}
	r := newSuggestRouter(stubClient{text: "unused"}, tickets)

	code, suggestion := getSuggestion(t, r, "T-2")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if suggestion != "Add something to the order first." {
		t.Fatalf("unexpected suggestion: %q", suggestion)
	}
}

func TestSuggestionsDegradeOnClientFailure(t *testing.T) {
	tickets := stubTickets{tickets: map[string]*ticket.Ticket{
		"T-3": {
			ID:     "T-3",
			Status: ticket.StatusOpen,
			Items: []ticket.TicketItem{
				{MenuItem: catalog.MenuItem{ID: "m1", Name: "Classic Burger"}, Quantity: 1},
			},
		},
	}}
	r := newSuggestRouter(stubClient{err: errors.New("upstream down")}, tickets)

	code, suggestion := getSuggestion(t, r, "T-3")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if suggestion != "No suggestions right now." {
		t.Fatalf("unexpected suggestion: %q", suggestion)
	}
}

func TestSuggestionsUnknownTicket(t *testing.T) {
	r := newSuggestRouter(stubClient{}, stubTickets{tickets: map[string]*ticket.Ticket{}})

	code, _ := getSuggestion(t, r, "nope")
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}
