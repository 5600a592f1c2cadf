package openstreetmap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_Lookup(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		errContains string
		wantName    string
		wantCountry string
	}{
		{
			name:   "successful lookup",
			status: http.StatusOK,
			body: `{"place_id":1234,"name":"Col du Galibier","display_name":"Col du Galibier, Valloire, Savoie, France",
				"lat":"45.0641","lon":"6.4078","address":{"county":"Savoie","state":"Auvergne-Rhône-Alpes","country":"France","country_code":"fr"},
				"boundingbox":["45.06","45.07","6.40","6.41"]}`,
			wantName:    "Col du Galibier",
			wantCountry: "France",
		},
		{
			name:        "upstream error",
			status:      http.StatusForbidden,
			body:        "missing user agent",
			wantErr:     true,
			errContains: "fetch returned status 403",
		},
		{
			name:        "malformed body",
			status:      http.StatusOK,
			body:        `{"place_id":`,
			wantErr:     true,
			errContains: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("User-Agent") != userAgent {
					t.Errorf("User-Agent = %q, want %q", r.Header.Get("User-Agent"), userAgent)
				}
				if r.URL.Query().Get("format") != "json" {
					t.Errorf("format = %q, want json", r.URL.Query().Get("format"))
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClientWithBaseURL(server.URL, server.Client())
			got, err := client.Lookup(context.Background(), 45.0641, 6.4078)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Lookup() expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Lookup() error = %v, want error containing %v", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup() unexpected error = %v", err)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %v, want %v", got.Name, tt.wantName)
			}
			if got.Address.Country != tt.wantCountry {
				t.Errorf("Address.Country = %v, want %v", got.Address.Country, tt.wantCountry)
			}
		})
	}
}

func TestClient_Lookup_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClientWithBaseURL(server.URL, server.Client())
	if _, err := client.Lookup(ctx, 45.0641, 6.4078); err == nil {
		t.Fatal("Lookup() expected error for cancelled context")
	}
}
