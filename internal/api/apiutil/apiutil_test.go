package apiutil

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
)

func TestDecodeJSONRejectsUnknownFieldsAndTrailingData(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"name":"Rovers"}`},
		{name: "unknown field", body: `{"name":"Rovers","colour":"red"}`, wantErr: true},
		{name: "trailing object", body: `{"name":"Rovers"}{"name":"Town"}`, wantErr: true},
		{name: "empty", body: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload
			err := DecodeJSON(req, &dst)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for body %q", tt.body)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestIdempotencyKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if key, err := IdempotencyKey(req); err != nil || key != "" {
		t.Fatalf("expected empty key without header, got %q, %v", key, err)
	}

	req.Header.Set("Idempotency-Key", "6F9619FF-8B86-D011-B42D-00C04FC964FF")
	key, err := IdempotencyKey(req)
	if err != nil {
		t.Fatalf("parse key: %v", err)
	}
	if key != "6f9619ff-8b86-d011-b42d-00c04fc964ff" {
		t.Fatalf("expected canonical lower-case key, got %q", key)
	}

	req.Header.Set("Idempotency-Key", "retry-1")
	if _, err := IdempotencyKey(req); err == nil {
		t.Fatalf("expected error for non-UUID key")
	}
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("UTC+1", 60*60)
	got, err := ParseDate("2025-08-16", "startDate", loc)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if !got.Equal(time.Date(2025, 8, 16, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected date %s", got)
	}
	if _, err := ParseDate("16/08/2025", "startDate", loc); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}

func TestSQLiteConstraintClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})
	foreignKey := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}

	if !IsSQLiteUniqueViolation(unique) {
		t.Fatalf("expected wrapped unique violation to be detected")
	}
	if IsSQLiteUniqueViolation(foreignKey) {
		t.Fatalf("foreign key violation is not a unique violation")
	}
	if !IsSQLiteForeignKeyViolation(foreignKey) {
		t.Fatalf("expected foreign key violation to be detected")
	}
	if IsSQLiteForeignKeyViolation(errors.New("boom")) {
		t.Fatalf("plain error is not a constraint violation")
	}
}
