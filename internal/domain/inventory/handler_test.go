package inventory

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler(repo *mockRepo) (*Handler, *echo.Echo) {
	h := NewHandler(NewService(repo))
	e := echo.New()
	return h, e
}

func TestHandler_LowStock(t *testing.T) {
	h, e := newTestHandler(newMockRepo(
		position{hid: 1, mid: 1, hospital: "Central", med: "Paracetamol", qty: 3, reorder: intp(10)},
		position{hid: 1, mid: 2, hospital: "Central", med: "Ibuprofen", qty: 15, reorder: intp(10)},
	))
	req := httptest.NewRequest(http.MethodGet, "/api/inventory/low-stock", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.LowStock(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var got []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	for _, key := range []string{"HID", "HospitalName", "MID", "MedicationName", "Quantity", "ReorderLevel"} {
		if _, ok := got[0][key]; !ok {
			t.Errorf("expected key %s", key)
		}
	}
	if _, ok := got[0]["Shortfall"]; ok {
		t.Error("expected Shortfall to be omitted from low stock rows")
	}
}

func TestHandler_LowStock_EmptyArray(t *testing.T) {
	h, e := newTestHandler(newMockRepo())
	req := httptest.NewRequest(http.MethodGet, "/api/inventory/low-stock", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.LowStock(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestHandler_LowStock_Error(t *testing.T) {
	repo := newMockRepo()
	repo.err = errors.New("relation \"stock\" does not exist")
	h, e := newTestHandler(repo)
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := h.LowStock(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", httpErr.Code)
	}
}
