package infra

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestExtractMarker(t *testing.T) {
	marker, trimmed, err := extractMarker("--sql 1a2b3c4d-5e6f-4708-91a2-b3c4d5e6f708\nselect 1;")
	if err != nil {
		t.Fatalf("extractMarker: %v", err)
	}
	if marker != "1a2b3c4d-5e6f-4708-91a2-b3c4d5e6f708" {
		t.Fatalf("marker = %q", marker)
	}
	if strings.TrimSpace(trimmed) != "select 1;" {
		t.Fatalf("trimmed = %q", trimmed)
	}
}

func TestExtractMarkerRejectsMissingOrMalformed(t *testing.T) {
	for name, query := range map[string]string{
		"no marker":     "select 1;",
		"uppercase hex": "--sql 1A2B3C4D-5E6F-4708-91A2-B3C4D5E6F708\nselect 1;",
		"short uuid":    "--sql 1a2b3c4d-5e6f-4708-91a2\nselect 1;",
		"trailing text": "--sql 1a2b3c4d-5e6f-4708-91a2-b3c4d5e6f708 extra\nselect 1;",
	} {
		t.Run(name, func(t *testing.T) {
			if _, _, err := extractMarker(query); err == nil {
				t.Fatal("want marker error")
			}
		})
	}
}

// A bad marker must fail before any statement reaches the pool.
func TestRunnerRefusesUnmarkedQueries(t *testing.T) {
	r := NewSQLRunner(nil, zerolog.Nop())

	if _, err := r.Exec(context.Background(), "delete from submissions"); err == nil {
		t.Fatal("Exec accepted an unmarked query")
	}
	if err := r.QueryRow(context.Background(), "select 1").Scan(new(int)); err == nil {
		t.Fatal("QueryRow accepted an unmarked query")
	}
	if _, err := r.Query(context.Background(), "select 1"); err == nil {
		t.Fatal("Query accepted an unmarked query")
	}
}
