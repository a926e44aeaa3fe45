package artraster

import "testing"

func TestDefaultBrightness(t *testing.T) {
	tests := []struct {
		r    rune
		want uint8
	}{
		{'A', 180}, {'z', 180}, {'5', 180},
		{'@', 255}, {'#', 245}, {'~', 175}, {'█', 165}, {'░', 135},
		{' ', 0}, {'\t', 0}, {'\u00a0', 0},
		{'─', 200}, {'╬', 200}, {'╿', 200},
		{'.', 40}, {'\'', 30}, {'|', 100}, {'?', 120},
	}
	for _, tt := range tests {
		if got := DefaultCharacterMap.Brightness(tt.r); got != tt.want {
			t.Errorf("Brightness(%q) = %d, want %d", tt.r, got, tt.want)
		}
		if !DefaultCharacterMap.Has(tt.r) {
			t.Errorf("Has(%q) = false", tt.r)
		}
	}
}

func TestBrightnessFallback(t *testing.T) {
	for _, r := range []rune{'é', '€', 'ж', '\U0001F600', '\x01', 0xff} {
		if DefaultCharacterMap.Has(r) {
			t.Errorf("%q unexpectedly has an entry", r)
			continue
		}
		if got, want := DefaultCharacterMap.Brightness(r), uint8(r%256); got != want {
			t.Errorf("Brightness(%U) = %d, want %d", r, got, want)
		}
	}
}

func TestNewCharacterMap(t *testing.T) {
	cm := NewCharacterMap(map[rune]uint8{'A': 10, 'é': 99})
	for r, want := range map[rune]uint8{'A': 10, 'é': 99, 'B': 180, '@': 255} {
		if got := cm.Brightness(r); got != want {
			t.Errorf("Brightness(%q) = %d, want %d", r, got, want)
		}
	}
	if got := DefaultCharacterMap.Brightness('A'); got != 180 {
		t.Errorf("overrides leaked into the default map: 'A' = %d", got)
	}
}
