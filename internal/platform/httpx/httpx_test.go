package httpx

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"vet-clinic-records/internal/platform/apperr"
	"vet-clinic-records/internal/platform/logger"
)

func TestError_StatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{apperr.Validation("Falta nombre"), http.StatusBadRequest, "Falta nombre"},
		{apperr.NotFound("Tutor no encontrado"), http.StatusNotFound, "Tutor no encontrado"},
		{errors.New("cassandra: timeout"), http.StatusInternalServerError, internalErrorMessage},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		Error(rec, req, logger.Nop(), tc.err)

		if rec.Code != tc.status {
			t.Fatalf("err %v: expected %d, got %d", tc.err, tc.status, rec.Code)
		}
		var env Envelope
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if env.OK || env.Error != tc.msg {
			t.Fatalf("unexpected envelope %+v", env)
		}
	}
}

func TestPositiveInt(t *testing.T) {
	cases := map[string]int{
		"/r":                          5,
		"/r?top=3":                    3,
		"/r?top=abc":                  5,
		"/r?top=0":                    5,
		"/r?top=-2":                   5,
		"/r?top=2.9":                  2,
		"/r?top=%20":                  5,
		"/r?other=10":                 5,
		"/r?top=1e20":                 math.MaxInt32,
		"/r?top=99999999999999999999": math.MaxInt32,
	}
	for url, want := range cases {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		if got := PositiveInt(req, "top", 5); got != want {
			t.Fatalf("%s: expected %d, got %d", url, want, got)
		}
	}
}

func TestList_NilBecomesEmptyArray(t *testing.T) {
	rec := httptest.NewRecorder()
	List[string](rec, nil)

	if got := rec.Body.String(); got != "{\"ok\":true,\"data\":[],\"total\":0}\n" {
		t.Fatalf("unexpected body %q", got)
	}
}
