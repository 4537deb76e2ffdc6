package resistor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckSeries(t *testing.T) {
	tests := []struct {
		name       string
		ohms       float64
		wantOn     bool
		wantSeries string
	}{
		{name: "10k is E12", ohms: 10000, wantOn: true, wantSeries: "E12"},
		{name: "4.7k is E12", ohms: 4700, wantOn: true, wantSeries: "E12"},
		{name: "8.2 ohms is E12", ohms: 8.2, wantOn: true, wantSeries: "E12"},
		{name: "5.1k is E24 but not E12", ohms: 5100, wantOn: true, wantSeries: "E24"},
		{name: "7.5M is E24", ohms: 7.5e6, wantOn: true, wantSeries: "E24"},
		{name: "3.16k is E48", ohms: 3160, wantOn: true, wantSeries: "E48"},
		{name: "1.02k is E96", ohms: 1020, wantOn: true, wantSeries: "E96"},
		{name: "off-series value", ohms: 12345, wantOn: false, wantSeries: "E96"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckSeries(tt.ohms)

			assert.Equal(t, tt.wantOn, got.OnSeries)
			assert.Equal(t, tt.wantSeries, got.Series)
		})
	}
}

func TestCheckSeries_NearestForOffSeries(t *testing.T) {
	got := CheckSeries(12345)

	assert.False(t, got.OnSeries)
	// E96 neighbors are 12.1k and 12.4k; 12.4k is closer.
	assert.InDelta(t, 12400, got.Nearest, 1)
}

func TestCheckSeries_Degenerate(t *testing.T) {
	assert.False(t, CheckSeries(0).OnSeries)
	assert.False(t, CheckSeries(-5).OnSeries)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		ohms float64
		want string
	}{
		{10000, "10kΩ"},
		{4700, "4.7kΩ"},
		{1e6, "1MΩ"},
		{1.5e6, "1.5MΩ"},
		{220, "220Ω"},
		{4.7, "4.7Ω"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.ohms))
	}
}

func TestParseShorthand(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "10k", want: 10000},
		{in: "4k7", want: 4700},
		{in: "1M", want: 1e6},
		{in: "2M2", want: 2.2e6},
		{in: "470R", want: 470},
		{in: "4r7", want: 4.7},
		{in: "2.2k", want: 2200},
		{in: "470", want: 470},
		{in: "10kΩ", want: 10000},
		{in: "470ω", want: 470},
		{in: "100 ohm", want: 100},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "k47", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShorthand(tt.in)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadShorthand)

				return
			}

			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, tt.want*1e-9)
		})
	}
}
