package snowfall

import (
	"reflect"
	"testing"
	"time"
)

var now = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

func hour(h int) time.Time {
	return now.Add(time.Duration(h) * time.Hour)
}

func ptr(v float64) *float64 {
	return &v
}

func TestAnalyze_Empty(t *testing.T) {
	got := Analyze(nil, now)
	want := Prediction{}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Analyze(nil) = %+v, want %+v", got, want)
	}
}

func TestAnalyze_AllInPast(t *testing.T) {
	obs := []Observation{
		{Timestamp: hour(-2), Temperature: -5, Condition: "heavy snow", Precipitation: 4},
		{Timestamp: hour(0), Temperature: -5, Condition: "heavy snow", Precipitation: 4},
	}
	got := Analyze(obs, now)
	if !reflect.DeepEqual(got, Prediction{}) {
		t.Errorf("Analyze(past only) = %+v, want zero prediction", got)
	}
}

func TestAnalyze_SingleHeavySnowHour(t *testing.T) {
	ts := hour(1)
	obs := []Observation{
		{Timestamp: ts, Temperature: -4, Condition: "heavy snow", Precipitation: 2, SoilTemperature: ptr(-1)},
	}

	got := Analyze(obs, now)

	if !got.WillSnow {
		t.Error("WillSnow = false, want true")
	}
	if !got.NeedsService {
		t.Error("NeedsService = false, want true")
	}
	if got.TotalAmountCm != 2.0 {
		t.Errorf("TotalAmountCm = %v, want 2.0", got.TotalAmountCm)
	}
	if got.StartTime == nil || !got.StartTime.Equal(ts) {
		t.Errorf("StartTime = %v, want %v", got.StartTime, ts)
	}
	if got.EndTime == nil || !got.EndTime.Equal(ts) {
		t.Errorf("EndTime = %v, want %v", got.EndTime, ts)
	}
}

func TestAnalyze_Window(t *testing.T) {
	obs := []Observation{
		{Timestamp: hour(1), Temperature: 1, Condition: "overcast"},
		{Timestamp: hour(2), Temperature: -1, Condition: "light snow", Precipitation: 0.5},
		{Timestamp: hour(3), Temperature: -2, Condition: "moderate snow", Precipitation: 1.5},
		{Timestamp: hour(4), Temperature: -2, Condition: "overcast"},
		{Timestamp: hour(5), Temperature: -3, Condition: "light snow showers", Precipitation: 1},
		{Timestamp: hour(6), Temperature: -3, Condition: "clear sky"},
	}

	got := Analyze(obs, now)

	if !got.WillSnow {
		t.Fatal("WillSnow = false, want true")
	}
	if got.StartTime == nil || !got.StartTime.Equal(hour(2)) {
		t.Errorf("StartTime = %v, want %v", got.StartTime, hour(2))
	}
	// The second snow spell ends at hour 6
	if got.EndTime == nil || !got.EndTime.Equal(hour(6)) {
		t.Errorf("EndTime = %v, want %v", got.EndTime, hour(6))
	}
	// Hour 2 cannot stick (-1°C, no soil temperature). Hour 3: 1.5*8/10 = 1.2, hour 5: 1*10/10 = 1.0
	if got.TotalAmountCm != 2.2 {
		t.Errorf("TotalAmountCm = %v, want 2.2", got.TotalAmountCm)
	}
	if !got.NeedsService {
		t.Error("NeedsService = false, want true")
	}
}

func TestAnalyze_UnorderedInput(t *testing.T) {
	ordered := []Observation{
		{Timestamp: hour(1), Temperature: -3, Condition: "light snow", Precipitation: 1},
		{Timestamp: hour(2), Temperature: -3, Condition: "heavy snow", Precipitation: 2},
		{Timestamp: hour(3), Temperature: 2, Condition: "light rain", Precipitation: 1},
	}
	shuffled := []Observation{ordered[2], ordered[0], ordered[1]}

	a := Analyze(ordered, now)
	b := Analyze(shuffled, now)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("order dependent result:\n%+v\n%+v", a, b)
	}
	if shuffled[0].Timestamp != hour(3) {
		t.Error("Analyze modified the input slice")
	}
	if a.EndTime == nil || !a.EndTime.Equal(hour(3)) {
		t.Errorf("EndTime = %v, want %v", a.EndTime, hour(3))
	}
	if a.TotalAmountCm != 3.0 {
		t.Errorf("TotalAmountCm = %v, want 3.0", a.TotalAmountCm)
	}
}

func TestAnalyze_DiscardsPast(t *testing.T) {
	obs := []Observation{
		{Timestamp: hour(-1), Temperature: -5, Condition: "heavy snow", Precipitation: 5},
		{Timestamp: hour(0), Temperature: -5, Condition: "heavy snow", Precipitation: 5},
		{Timestamp: hour(1), Temperature: 4, Condition: "light rain", Precipitation: 1},
	}
	got := Analyze(obs, now)
	if got.WillSnow || got.NeedsService || got.TotalAmountCm != 0 {
		t.Errorf("Analyze() = %+v, past snow must not count", got)
	}
}

func TestAnalyze_SnowWithoutVolume(t *testing.T) {
	obs := []Observation{
		{Timestamp: hour(1), Temperature: -5, Condition: "light snow", Precipitation: 0},
	}
	got := Analyze(obs, now)
	if !got.WillSnow {
		t.Error("WillSnow = false, want true")
	}
	if got.TotalAmountCm != 0 {
		t.Errorf("TotalAmountCm = %v, want 0", got.TotalAmountCm)
	}
	// Snow at -5°C can stick even without volume
	if !got.NeedsService {
		t.Error("NeedsService = false, want true")
	}
}

func TestAnalyze_WarmSnowDoesNotStick(t *testing.T) {
	obs := []Observation{
		{Timestamp: hour(1), Temperature: 1.5, Condition: "sleet", Precipitation: 3, SoilTemperature: ptr(4)},
		{Timestamp: hour(2), Temperature: 1, Condition: "light snow", Precipitation: 2, SoilTemperature: ptr(3)},
	}
	got := Analyze(obs, now)
	if !got.WillSnow {
		t.Error("WillSnow = false, want true")
	}
	if got.NeedsService {
		t.Error("NeedsService = true, want false")
	}
	if got.TotalAmountCm != 0 {
		t.Errorf("TotalAmountCm = %v, want 0", got.TotalAmountCm)
	}
}

func TestAnalyze_FrozenSoilUsesWarmRatio(t *testing.T) {
	obs := []Observation{
		{Timestamp: hour(1), Temperature: 1, Condition: "moderate snow", Precipitation: 2, SoilTemperature: ptr(-0.5)},
	}
	got := Analyze(obs, now)
	// 2 * 5 / 10
	if got.TotalAmountCm != 1.0 {
		t.Errorf("TotalAmountCm = %v, want 1.0", got.TotalAmountCm)
	}
	if !got.NeedsService {
		t.Error("NeedsService = false, want true")
	}
}

func TestAnalyze_IceRiskWithoutSnow(t *testing.T) {
	tests := []struct {
		name string
		obs  Observation
		want bool
	}{
		{"freezing rain", Observation{Timestamp: hour(1), Temperature: 2, Condition: "light freezing rain"}, true},
		{"hail", Observation{Timestamp: hour(1), Temperature: 10, Condition: "thunderstorm with heavy hail"}, true},
		{"rain at zero", Observation{Timestamp: hour(1), Temperature: 0, Condition: "light rain", Precipitation: 0.2}, true},
		{"rain on frozen soil", Observation{Timestamp: hour(1), Temperature: 2, Condition: "light rain", Precipitation: 0.2, SoilTemperature: ptr(-1)}, true},
		{"rain on warm soil", Observation{Timestamp: hour(1), Temperature: 2, Condition: "light rain", Precipitation: 0.2, SoilTemperature: ptr(1)}, false},
		{"dry frost", Observation{Timestamp: hour(1), Temperature: -4, Condition: "clear sky"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze([]Observation{tt.obs}, now)
			if got.NeedsService != tt.want {
				t.Errorf("NeedsService = %v, want %v", got.NeedsService, tt.want)
			}
			if got.WillSnow {
				t.Error("WillSnow = true, want false")
			}
		})
	}
}

func TestAnalyze_NeedsServiceIsSticky(t *testing.T) {
	obs := []Observation{
		{Timestamp: hour(1), Temperature: -1, Condition: "freezing drizzle", Precipitation: 0.1},
		{Timestamp: hour(2), Temperature: 8, Condition: "clear sky"},
		{Timestamp: hour(3), Temperature: 12, Condition: "clear sky"},
	}
	if got := Analyze(obs, now); !got.NeedsService {
		t.Error("NeedsService = false, want true after an earlier icy hour")
	}
}

func TestAnalyze_Rounding(t *testing.T) {
	obs := []Observation{
		{Timestamp: hour(1), Temperature: -1, Condition: "snow", Precipitation: 0.33, SoilTemperature: ptr(-1)},
		{Timestamp: hour(2), Temperature: -1, Condition: "snow", Precipitation: 0.33, SoilTemperature: ptr(-1)},
	}
	// 2 * 0.33 * 8 / 10 = 0.528
	if got := Analyze(obs, now).TotalAmountCm; got != 0.5 {
		t.Errorf("TotalAmountCm = %v, want 0.5", got)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	obs := []Observation{
		{Timestamp: hour(3), Temperature: -2, Condition: "heavy snow", Precipitation: 1.7},
		{Timestamp: hour(1), Temperature: -4, Condition: "light snow", Precipitation: 0.4},
	}
	if a, b := Analyze(obs, now), Analyze(obs, now); !reflect.DeepEqual(a, b) {
		t.Errorf("Analyze not deterministic: %+v vs %+v", a, b)
	}
}

func TestSnowToLiquidRatio(t *testing.T) {
	tests := []struct {
		temperature float64
		expected    float64
	}{
		{-10, 10},
		{-3, 10},
		{-2.9, 8},
		{-1, 8},
		{-0.5, 7},
		{0, 7},
		{0.1, 5},
		{3, 5},
	}

	for _, tt := range tests {
		if got := snowToLiquidRatio(tt.temperature); got != tt.expected {
			t.Errorf("snowToLiquidRatio(%v) = %v, want %v", tt.temperature, got, tt.expected)
		}
	}
}

func TestConditionVocabulary(t *testing.T) {
	tests := []struct {
		condition string
		snow      bool
		ice       bool
	}{
		{"Heavy Snow", true, false},
		{"light snow showers", true, false},
		{"sleet", true, false},
		{"light freezing rain", false, true},
		{"dense freezing drizzle", false, true},
		{"ice pellets", false, true},
		{"thunderstorm with light hail", false, true},
		{"light rain", false, false},
		{"overcast", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			if got := IsSnow(tt.condition); got != tt.snow {
				t.Errorf("IsSnow(%q) = %v, want %v", tt.condition, got, tt.snow)
			}
			if got := IsIce(tt.condition); got != tt.ice {
				t.Errorf("IsIce(%q) = %v, want %v", tt.condition, got, tt.ice)
			}
		})
	}
}
