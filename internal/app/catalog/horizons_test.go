package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

// фрагмент реального ответа Horizons (EPHEM_TYPE=OBSERVER, CSV_FORMAT=YES)
const horizonsResult = `*******************************************************************************
 Date__(UT)__HR:MN, , , R.A._(ICRF), DEC__(ICRF), APmag, S-brt, Illu%, Ang-diam, delta, deldot, 1-way_down_LT,
*******************************************************************************
$$SOE
 2025-10-11 12:00, , , 123.45678, -12.34567, -1.85, 4.33, 97.155, 6.781, 0.54321, 11.0724, 4.5,
$$EOE
*******************************************************************************
`

func TestParseEphemerisTable(t *testing.T) {
	row := parseEphemerisTable(horizonsResult)
	if row == nil {
		t.Fatal("parseEphemerisTable returned nil")
	}

	payload := Normalize(row)
	if payload["lighttime"] != "4.5" {
		t.Fatalf("lighttime = %q, want 4.5", payload["lighttime"])
	}
	if payload["delta"] != "0.54321" {
		t.Fatalf("delta = %q", payload["delta"])
	}
	if payload["RA"] != "123.45678" {
		t.Fatalf("RA = %q", payload["RA"])
	}
	if payload["illumination"] != "97.155" {
		t.Fatalf("illumination = %q", payload["illumination"])
	}
}

func TestParseEphemerisTableNoData(t *testing.T) {
	if row := parseEphemerisTable("No ephemeris for target"); row != nil {
		t.Fatalf("expected nil row, got %+v", row)
	}
	if row := parseEphemerisTable("header\n****\n$$SOE\n$$EOE\n"); row != nil {
		t.Fatalf("expected nil row for empty table, got %+v", row)
	}
}

func TestHorizonsQueryBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if got := query.Get("COMMAND"); got != "'499'" {
			t.Errorf("COMMAND = %q", got)
		}
		if got := query.Get("CENTER"); !strings.Contains(got, "500@399") {
			t.Errorf("CENTER = %q, want geocentric", got)
		}
		json.NewEncoder(w).Encode(map[string]string{"result": horizonsResult})
	}))
	defer server.Close()

	client := NewHorizonsClient(server.URL, 5*time.Second)
	row, err := client.QueryBody(context.Background(), 499)
	if err != nil {
		t.Fatalf("QueryBody error: %v", err)
	}
	if row == nil {
		t.Fatal("QueryBody returned nil row")
	}
	if Normalize(row)["lighttime"] != "4.5" {
		t.Fatalf("lighttime missing from normalized payload")
	}
}

func TestHorizonsQueryBodyServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "unknown target"})
	}))
	defer server.Close()

	client := NewHorizonsClient(server.URL, 5*time.Second)
	if _, err := client.QueryBody(context.Background(), 499); err == nil {
		t.Fatal("expected error from service error field")
	}
}
