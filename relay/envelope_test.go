package relay

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/codingconcepts/animerelay/models"
)

func TestResponseWrite(t *testing.T) {
	cases := []struct {
		name    string
		resp    Response
		expType string
	}{
		{name: "json", resp: JSON(http.StatusOK, `{"a":1}`), expType: "application/json"},
		{name: "invalid json is not touched", resp: JSON(http.StatusOK, `{"a":`), expType: "application/json"},
		{name: "plain text", resp: PlainText(http.StatusNotFound, "No releases found"), expType: "text/plain"},
		{name: "server error", resp: PlainText(http.StatusInternalServerError, "Error fetching releases"), expType: "text/plain"},
		{name: "binary", resp: Binary(http.StatusOK, "image/png", []byte{0, 1, 2, 0xff}), expType: "image/png"},
		{name: "empty binary", resp: Binary(http.StatusOK, "image/jpeg", nil), expType: "image/jpeg"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			if err := c.resp.Write(rec); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if rec.Code != c.resp.Status {
				t.Fatalf("exp status %d but got %d", c.resp.Status, rec.Code)
			}
			assertCORS(t, rec.Header())
			if act := rec.Header().Get("Content-Type"); act != c.expType {
				t.Fatalf("exp content type %q but got %q", c.expType, act)
			}
			if act := rec.Header().Get("Content-Length"); act != strconv.Itoa(len(c.resp.Body)) {
				t.Fatalf("exp content length %d but got %s", len(c.resp.Body), act)
			}
			if rec.Body.String() != string(c.resp.Body) {
				t.Fatalf("exp body %q but got %q", c.resp.Body, rec.Body.String())
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	cases := []struct {
		err       error
		expStatus int
		expBody   string
	}{
		{err: models.NewErrNotFound("No releases found"), expStatus: http.StatusNotFound, expBody: "No releases found"},
		{err: models.NewErrNotFound("%s not found", "latest.json"), expStatus: http.StatusNotFound, expBody: "latest.json not found"},
		{err: models.NewErrInvalid("Invalid URL"), expStatus: http.StatusBadRequest, expBody: "Invalid URL"},
		{err: models.NewErrUpstream(errors.New("eof"), "Error fetching releases"), expStatus: http.StatusInternalServerError, expBody: "Error fetching releases"},
		{err: fmt.Errorf("wrapped: %w", models.NewErrInvalid("Invalid URL")), expStatus: http.StatusBadRequest, expBody: "wrapped: Invalid URL"},
		{err: errors.New("boom"), expStatus: http.StatusInternalServerError, expBody: "boom"},
	}

	for _, c := range cases {
		t.Run(c.expBody, func(t *testing.T) {
			resp := ErrorResponse(c.err)
			assertPlainText(t, resp, c.expStatus, c.expBody)
		})
	}
}

func assertCORS(t *testing.T, h http.Header) {
	t.Helper()

	exp := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
	}
	for k, v := range exp {
		if act := h.Get(k); act != v {
			t.Fatalf("exp %s %q but got %q", k, v, act)
		}
	}
}
