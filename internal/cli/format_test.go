package cli

import "testing"

func TestFormatKcal_RoundsAndSeparates(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999.4, "999"},
		{1234.6, "1,235"},
		{1234567, "1,234,567"},
	}
	for _, tc := range cases {
		if got := FormatKcal(tc.in); got != tc.want {
			t.Errorf("FormatKcal(%f) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatSignedKcal_AlwaysSigned(t *testing.T) {
	if got := FormatSignedKcal(250); got != "+250" {
		t.Errorf("FormatSignedKcal(250) = %q", got)
	}
	if got := FormatSignedKcal(-480); got != "-480" {
		t.Errorf("FormatSignedKcal(-480) = %q", got)
	}
	if got := FormatSignedKcal(0); got != "+0" {
		t.Errorf("FormatSignedKcal(0) = %q", got)
	}
}

func TestFormatMacro_DropsWholeDecimal(t *testing.T) {
	if got := FormatMacro(38); got != "38g" {
		t.Errorf("FormatMacro(38) = %q", got)
	}
	if got := FormatMacro(4.5); got != "4.5g" {
		t.Errorf("FormatMacro(4.5) = %q", got)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("0c9a2f1e-5555-4444-3333-222211110000"); got != "0c9a2f1e" {
		t.Errorf("ShortID = %q", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID short input = %q", got)
	}
}
