//go:build integration

package openstreetmap

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestClient_Reverse_Integration(t *testing.T) {
	// Munich, Marienplatz
	lat := 48.1372
	lon := 11.5756

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client := NewClient("", "", 15*time.Second, time.Minute, logger)

	resp, err := client.Reverse(context.Background(), lat, lon, "de")
	if err != nil {
		t.Fatalf("Failed to reverse geocode: %v", err)
	}

	rawJSON, _ := json.MarshalIndent(resp, "", "  ")
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.Address.CountryCode != "de" {
		t.Errorf("Expected country code de, got %s", resp.Address.CountryCode)
	}
	if resp.Address.Locality() != "München" {
		t.Errorf("Expected locality München, got %s", resp.Address.Locality())
	}
}

func TestClient_Search_Integration(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	client := NewClient("", "", 15*time.Second, time.Minute, logger)

	resp, err := client.Search(context.Background(), "Brandenburger Tor, Berlin", 3, "de", "de")
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if len(resp) == 0 {
		t.Fatal("No results returned")
	}
	t.Logf("Top result: %s (%s, %s)", resp[0].DisplayName, resp[0].Lat, resp[0].Lon)
}
