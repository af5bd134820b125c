package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		want    Color
		wantErr bool
	}{
		{"", ColorDefault, false},
		{"green", ColorGreen, false},
		{"Bright_Red", ColorBrightRed, false},
		{"#ff0", ColorBrightYellow, false},
		{"#fff", ColorBrightWhite, false},
		{"chartreuse", ColorDefault, true},
	}

	for _, tc := range tests {
		got, err := ParseColor(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %d, expected %d", tc.name, got, tc.want)
		}
	}
}
