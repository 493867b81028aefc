package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

func WriteJSON(w http.ResponseWriter, code int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		logrus.WithError(err).Warn("failed to encode response")
	}
}

// ParseId parses a single positive base 10 id. Signs, leading zeros, base prefixes
// and fractions are rejected.
func ParseId(raw string) (int64, error) {
	if raw == "" || raw[0] < '1' || raw[0] > '9' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidId, raw)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidId, raw)
	}
	return id, nil
}

// ParseIds parses a comma separated id list, e.g. "1,2,3". Invalid entries are an
// error rather than being dropped.
func ParseIds(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrIdRequired
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := ParseId(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
