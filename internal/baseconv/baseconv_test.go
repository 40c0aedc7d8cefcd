package baseconv

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		v    uint64
		base int
		bits int
		want string
	}{
		{255, 2, 8, "0b11111111"},
		{255, 8, 8, "0o377"},
		{255, 16, 8, "0xff"},
		{255, 10, 8, "-1"},
		{255, 10, 16, "255"},
		{0, 16, 32, "0x0"},
		{0x8000, 10, 16, "-32768"},
	}
	for _, tc := range cases {
		if got := Format(tc.v, tc.base, tc.bits); got != tc.want {
			t.Fatalf("Format(%d, base %d, %d-bit) = %q, expected %q", tc.v, tc.base, tc.bits, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		base  int
		bits  int
		want  uint64
	}{
		{"ff", 16, 64, 255},
		{"0xFF", 16, 64, 255},
		{"0b1010", 2, 64, 10},
		{"0o17", 8, 64, 15},
		{"-1", 10, 8, 255},
		{"-128", 10, 8, 128},
		{"300", 10, 8, 44},
		{" 42 ", 10, 64, 42},
	}
	for _, tc := range cases {
		got, err := Parse(tc.input, tc.base, tc.bits)
		if err != nil {
			t.Fatalf("Parse(%q, base %d): %v", tc.input, tc.base, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q, base %d, %d-bit) = %d, expected %d", tc.input, tc.base, tc.bits, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		input string
		base  int
	}{
		{"", 10},
		{"12g", 16},
		{"102", 2},
		{"-5", 16},
		{"1.5", 10},
	}
	for _, tc := range cases {
		if _, err := Parse(tc.input, tc.base, 64); err == nil {
			t.Fatalf("expected Parse(%q, base %d) to fail", tc.input, tc.base)
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	got, err := Convert("0xdead", 16, 2, 16)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got != "0b1101111010101101" {
		t.Fatalf("unexpected conversion: %q", got)
	}
	back, err := Convert(got, 2, 16, 16)
	if err != nil {
		t.Fatalf("convert back: %v", err)
	}
	if back != "0xdead" {
		t.Fatalf("round trip mismatch: %q", back)
	}
}

func TestSigned(t *testing.T) {
	cases := []struct {
		v    uint64
		bits int
		want int64
	}{
		{0x7f, 8, 127},
		{0x80, 8, -128},
		{0xff, 8, -1},
		{0xffff, 16, -1},
		{^uint64(0), 64, -1},
		{5, 32, 5},
	}
	for _, tc := range cases {
		if got := Signed(tc.v, tc.bits); got != tc.want {
			t.Fatalf("Signed(%#x, %d-bit) = %d, expected %d", tc.v, tc.bits, got, tc.want)
		}
	}
}

func TestArithmeticWraps(t *testing.T) {
	if got := Add(250, 10, 8); got != 4 {
		t.Fatalf("Add(250, 10, 8-bit) = %d, expected 4", got)
	}
	if got := Sub(0, 1, 8); got != 255 {
		t.Fatalf("Sub(0, 1, 8-bit) = %d, expected 255", got)
	}
	if got := Mul(16, 16, 8); got != 0 {
		t.Fatalf("Mul(16, 16, 8-bit) = %d, expected 0", got)
	}
	if got := Neg(1, 8); got != 255 {
		t.Fatalf("Neg(1, 8-bit) = %d, expected 255", got)
	}
	if got := Not(0, 8); got != 255 {
		t.Fatalf("Not(0, 8-bit) = %d, expected 255", got)
	}
}

func TestShifts(t *testing.T) {
	if got := ShiftLeft(1, 4, 8); got != 16 {
		t.Fatalf("1<<4 = %d, expected 16", got)
	}
	if got := ShiftLeft(1, 8, 8); got != 0 {
		t.Fatalf("expected shift by width to produce 0, got %d", got)
	}
	if got := ShiftRight(0x80, 7, 8); got != 1 {
		t.Fatalf("0x80>>7 = %d, expected 1", got)
	}
	if got := ShiftRight(0x80, 8, 8); got != 0 {
		t.Fatalf("expected shift by width to produce 0, got %d", got)
	}
}
