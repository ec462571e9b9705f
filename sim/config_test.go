package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_FieldEquivalence(t *testing.T) {
	got := NewConfig([]float64{0.1, 0.2}, 5000, 100, Daily)
	want := Config{
		Probs:      []float64{0.1, 0.2},
		Samples:    5000,
		Horizon:    100,
		Resolution: Daily,
	}
	assert.Equal(t, want, got)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid weekly", NewConfig([]float64{0.1, 0.21}, 1000, 200, Weekly), false},
		{"valid daily", NewConfig([]float64{0.01}, 1, 1, Daily), false},
		{"no events", NewConfig(nil, 1000, 200, Weekly), true},
		{"probability zero", NewConfig([]float64{0.1, 0.0}, 1000, 200, Weekly), true},
		{"probability one", NewConfig([]float64{1.0}, 1000, 200, Weekly), true},
		{"probability negative", NewConfig([]float64{-0.1}, 1000, 200, Weekly), true},
		{"probability above one", NewConfig([]float64{1.5}, 1000, 200, Weekly), true},
		{"zero samples", NewConfig([]float64{0.1}, 0, 200, Weekly), true},
		{"negative samples", NewConfig([]float64{0.1}, -5, 200, Weekly), true},
		{"zero horizon", NewConfig([]float64{0.1}, 1000, 0, Weekly), true},
		{"invalid resolution", NewConfig([]float64{0.1}, 1000, 200, Resolution(7)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseResolution(t *testing.T) {
	tests := []struct {
		in      string
		want    Resolution
		wantErr bool
	}{
		{"weekly", Weekly, false},
		{"week", Weekly, false},
		{"daily", Daily, false},
		{"day", Daily, false},
		{"hourly", Weekly, true},
		{"", Weekly, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseResolution(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolution_String(t *testing.T) {
	assert.Equal(t, "weekly", Weekly.String())
	assert.Equal(t, "daily", Daily.String())
}
