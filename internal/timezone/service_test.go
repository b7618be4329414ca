package timezone

import (
	"testing"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "Munich",
			latitude:  48.1372,
			longitude: 11.5756,
			want:      "Europe/Berlin",
		},
		{
			name:      "Hamburg",
			latitude:  53.5511,
			longitude: 9.9937,
			want:      "Europe/Berlin",
		},
		{
			name:      "Vienna",
			latitude:  48.2082,
			longitude: 16.3738,
			want:      "Europe/Vienna",
		},
		{
			name:      "Zurich",
			latitude:  47.3769,
			longitude: 8.5417,
			want:      "Europe/Zurich",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Errorf("GetTimezone() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestService_GetLocation(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	loc, err := svc.GetLocation(52.52, 13.405)
	if err != nil {
		t.Fatalf("GetLocation() error = %v", err)
	}
	if loc.String() != "Europe/Berlin" {
		t.Errorf("GetLocation() = %v, want Europe/Berlin", loc)
	}
}

func TestNewService_Singleton(t *testing.T) {
	a, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	b, _ := NewService()
	if a != b {
		t.Error("NewService() returned different instances")
	}
}
