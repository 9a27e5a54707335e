package patient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/validate"
)

func newTestHandler() (*Handler, *mockRepo, *echo.Echo) {
	svc, repo := newTestService()
	h := NewHandler(svc)
	e := echo.New()
	e.Validator = validate.New()
	return h, repo, e
}

func postJSON(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/patients/add", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const janeBody = `{"iid":1,"cin":"AB1","full_name":"Jane Doe","birth":"1990-01-01","sex":"F","blood":"O+","phone":"555-0100"}`

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) writeResult {
	t.Helper()
	var res writeResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	return res
}

func TestHandler_AddPatient(t *testing.T) {
	h, repo, e := newTestHandler()
	c, rec := postJSON(e, janeBody)

	if err := h.AddPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	res := decodeResult(t, rec)
	if !res.Success || res.Message == "" {
		t.Errorf("unexpected body: %+v", res)
	}
	p := repo.store[1]
	if p == nil || p.BloodGroup == nil || *p.BloodGroup != "O+" {
		t.Fatalf("expected stored patient with blood group, got %+v", p)
	}
	if p.Birth.Format("2006-01-02") != "1990-01-01" {
		t.Errorf("unexpected birth: %s", p.Birth)
	}
}

func TestHandler_AddPatient_OptionalBlood(t *testing.T) {
	h, repo, e := newTestHandler()
	c, rec := postJSON(e, `{"iid":2,"cin":"AB2","full_name":"John Roe","birth":"1985-06-30","sex":"M","phone":"555-0101"}`)

	if err := h.AddPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if repo.store[2].BloodGroup != nil {
		t.Error("expected NULL blood group")
	}
}

func TestHandler_AddPatient_MissingFields(t *testing.T) {
	h, repo, e := newTestHandler()
	c, rec := postJSON(e, `{"iid":1,"cin":"AB1"}`)

	if err := h.AddPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	res := decodeResult(t, rec)
	if res.Success || !strings.Contains(res.Error, "full_name is required") {
		t.Errorf("unexpected body: %+v", res)
	}
	if len(repo.store) != 0 {
		t.Error("expected nothing stored")
	}
}

func TestHandler_AddPatient_InvalidSex(t *testing.T) {
	h, _, e := newTestHandler()
	c, rec := postJSON(e, strings.Replace(janeBody, `"sex":"F"`, `"sex":"female"`, 1))

	if err := h.AddPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_AddPatient_MalformedJSON(t *testing.T) {
	h, _, e := newTestHandler()
	c, rec := postJSON(e, `{"iid":`)

	if err := h.AddPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_AddPatient_Duplicate(t *testing.T) {
	h, _, e := newTestHandler()
	c, _ := postJSON(e, janeBody)
	if err := h.AddPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, rec := postJSON(e, janeBody)
	if err := h.AddPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	res := decodeResult(t, rec)
	if !strings.Contains(res.Error, "already exists") {
		t.Errorf("expected duplicate message, got %q", res.Error)
	}
}

func TestHandler_ListPatients(t *testing.T) {
	h, _, e := newTestHandler()
	for i, name := range []string{"Amy Young", "Bob Adams", "Carl Mendes"} {
		p := jane()
		p.IID = int64(i + 1)
		p.FullName = name
		_ = h.svc.Add(context.Background(), p)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/patients?limit=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListPatients(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var got []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0]["FullName"] != "Bob Adams" || got[1]["FullName"] != "Carl Mendes" {
		t.Errorf("unexpected order: %v", got)
	}
	for _, key := range []string{"IID", "FullName", "Sex", "Phone"} {
		if _, ok := got[0][key]; !ok {
			t.Errorf("expected key %s in record", key)
		}
	}
}

func TestHandler_ListPatients_Error(t *testing.T) {
	h, repo, e := newTestHandler()
	repo.err = errors.New("connection refused")

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.ListPatients(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", httpErr.Code)
	}
}
