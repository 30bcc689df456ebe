package services

import (
	"math"
	"testing"
)

func TestConvertUnit(t *testing.T) {
	tests := []struct {
		q        float64
		from, to string
		want     float64
	}{
		// mass
		{1, "KG", "G", 1000},
		{1, "KG", "gram", 1000},
		{0.5, "KG", "gram", 500},
		{250, "G", "KG", 0.25},
		{120, "gram", "G", 120},

		// volume
		{2, "L", "ML", 2000},
		{500, "ML", "L", 0.5},
		{330, "M/L", "ML", 330},
		{330, "M-L", "ML", 330},
		{1, "L", "M/L", 1000},

		// count
		{3, "piece", "piece", 3},

		// same label = no-op แม้หน่วยไม่รู้จัก
		{7, "dozen", "dozen", 7},

		// คนละตระกูล → คืนค่าเดิมเฉย ๆ
		{5, "piece", "KG", 5},
		{5, "KG", "piece", 5},
		{2, "L", "G", 2},

		// หน่วยไม่รู้จัก → คืนค่าเดิม
		{9, "oz", "G", 9},
		{9, "G", "oz", 9},
	}
	for _, tt := range tests {
		got := ConvertUnit(tt.q, tt.from, tt.to)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ConvertUnit(%v, %q, %q) = %v, want %v", tt.q, tt.from, tt.to, got, tt.want)
		}
	}
}

// แปลงไปกลับภายในตระกูลเดียวกันต้องได้ค่าเดิม (ยอมรับ error ของ float)
func TestConvertUnitRoundTrip(t *testing.T) {
	families := [][]string{
		{"KG", "G", "gram"},
		{"L", "ML", "M/L", "M-L"},
	}
	for _, fam := range families {
		for _, a := range fam {
			for _, b := range fam {
				x := 3.75
				got := ConvertUnit(ConvertUnit(x, a, b), b, a)
				if math.Abs(got-x) > 1e-9 {
					t.Errorf("round trip %q <-> %q: got %v, want %v", a, b, got, x)
				}
			}
		}
	}
}

func TestSameFamily(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"KG", "gram", true},
		{"G", "KG", true},
		{"L", "ML", true},
		{"ML", "M/L", true},
		{"piece", "piece", true},
		{"piece", "KG", false},
		{"L", "G", false},
		{"oz", "G", false},
		{"oz", "oz", true}, // หน่วยเดียวกันเป๊ะ ถือว่าเข้ากัน
	}
	for _, tt := range tests {
		if got := SameFamily(tt.a, tt.b); got != tt.want {
			t.Errorf("SameFamily(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestKnownUnit(t *testing.T) {
	for _, u := range []string{"KG", "G", "gram", "L", "ML", "M/L", "M-L", "piece"} {
		if !KnownUnit(u) {
			t.Errorf("KnownUnit(%q) = false, want true", u)
		}
	}
	if KnownUnit("oz") {
		t.Error("KnownUnit(\"oz\") = true, want false")
	}
}
