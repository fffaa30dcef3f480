package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"bassam-order-service/internal/ledger"

	"github.com/go-chi/chi/v5"
)

var errMissingParam = errors.New("missing param")

func readPathString(r *http.Request, key string) (string, error) {
	value := strings.TrimSpace(chi.URLParam(r, key))
	if value == "" {
		return "", errMissingParam
	}
	return value, nil
}

func decodeBody(r *http.Request, dst any) error {
	defer func() { _ = r.Body.Close() }()
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}

// readDateRange reads optional inclusive start/end query bounds. Defaults
// cover everything: the zero start and a far-future end.
func readDateRange(r *http.Request) (time.Time, time.Time, error) {
	query := r.URL.Query()

	start := time.Time{}
	if value := strings.TrimSpace(query.Get("start")); value != "" {
		parsed, err := ledger.ParseDay(value)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}

	end := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	if value := strings.TrimSpace(query.Get("end")); value != "" {
		parsed, err := ledger.ParseDay(value)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = parsed
	}

	return start, end, nil
}
