package redk

import (
	"math"
	"testing"
)

func TestStringValue(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
		ok   bool
	}{
		{"112年01月", "112年01月", true},
		{float64(11201), "11201", true},
		{float64(28.5), "28.5", true},
		{int64(850000), "850000", true},
		{[]byte("公寓"), "公寓", true},
		{true, "true", true},
		{nil, "", false},
		{struct{}{}, "", false},
	}
	for _, test := range tests {
		got, ok := StringValue(test.in)
		if got != test.want || ok != test.ok {
			t.Fatalf("StringValue(%v): got %q (%v), want %q (%v)", test.in, got, ok, test.want, test.ok)
		}
	}
}

func TestFloatValue(t *testing.T) {
	tests := []struct {
		in   interface{}
		want float64
	}{
		{"850000", 850000},
		{" 850000 ", 850000},
		{"24,225,000", 24225000},
		{850000.0, 850000},
		{int(42), 42},
		{[]byte("28.5"), 28.5},
	}
	for _, test := range tests {
		got, err := FloatValue(test.in)
		if err != nil {
			t.Fatalf("FloatValue(%v): %v", test.in, err)
		}
		if got != test.want {
			t.Fatalf("FloatValue(%v): got %v, want %v", test.in, got, test.want)
		}
	}
}

func TestFloatValueErrors(t *testing.T) {
	for _, in := range []interface{}{nil, "east", "", struct{}{}, math.NaN(), math.Inf(1)} {
		if got, err := FloatValue(in); err == nil {
			t.Fatalf("FloatValue(%v): expected error, got %v", in, got)
		}
	}
}
