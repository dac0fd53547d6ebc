package telemetry

import (
	"errors"
	"testing"
)

func TestParseEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		endpoint string
		want     collector
		wantErr  error
	}{
		{"http://otel-collector:4318", collector{host: "otel-collector:4318", insecure: true}, nil},
		{"https://otel.example.com", collector{host: "otel.example.com"}, nil},
		{"otel-collector:4318", collector{host: "otel-collector:4318", insecure: true}, nil},
		{"", collector{}, errNoEndpoint},
	}
	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			t.Parallel()
			got, err := parseEndpoint(tt.endpoint)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("parseEndpoint(%q) error = %v, want %v", tt.endpoint, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseEndpoint(%q) = %+v, want %+v", tt.endpoint, got, tt.want)
			}
		})
	}
}
