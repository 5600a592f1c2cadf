package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestElevationClient_GetElevation(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		errContains string
		want        float64
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"elevation":[2642.0]}`,
			want:   2642,
		},
		{
			name:        "upstream error",
			status:      http.StatusBadRequest,
			body:        `{"error":true,"reason":"Latitude must be in range of -90 to 90°."}`,
			wantErr:     true,
			errContains: "fetch returned status 400",
		},
		{
			name:        "malformed body",
			status:      http.StatusOK,
			body:        `{"elevation":`,
			wantErr:     true,
			errContains: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.RawQuery
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewElevationClientWithBaseURL(srv.URL, srv.Client())
			resp, err := client.GetElevation(context.Background(), 45.0641, 6.4078)

			if !strings.Contains(gotQuery, "latitude=45.064100") || !strings.Contains(gotQuery, "longitude=6.407800") {
				t.Errorf("query = %q, want latitude and longitude parameters", gotQuery)
			}

			if tt.wantErr {
				if err == nil {
					t.Fatal("GetElevation() expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("GetElevation() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("GetElevation() unexpected error = %v", err)
			}
			if len(resp.Elevation) != 1 || resp.Elevation[0] != tt.want {
				t.Errorf("Elevation = %v, want [%v]", resp.Elevation, tt.want)
			}
		})
	}
}
