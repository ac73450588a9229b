package redk

import "testing"

func TestFilterInclusiveBounds(t *testing.T) {
	f := NewFilter()
	tests := []struct {
		price float64
		want  bool
	}{
		{DefaultMinPrice, true},
		{DefaultMaxPrice, true},
		{DefaultMinPrice - 1, false},
		{DefaultMaxPrice + 1, false},
		{850000, true},
	}
	for _, test := range tests {
		if got := f.AdmitPrice(test.price); got != test.want {
			t.Fatalf("AdmitPrice(%v): got %v, want %v", test.price, got, test.want)
		}
	}
}

func TestFilterBuildingTypes(t *testing.T) {
	f := NewFilter()
	if !f.AdmitBuildingType("住宅大樓") || !f.AdmitBuildingType("") {
		t.Fatal("empty allow-list must admit everything")
	}
	f.BuildingTypes = []string{"住宅大樓", "公寓"}
	if !f.AdmitBuildingType("公寓") {
		t.Fatal("listed type rejected")
	}
	if f.AdmitBuildingType("廠辦") || f.AdmitBuildingType("") {
		t.Fatal("unlisted type admitted")
	}
}

func TestFilterInvertedBoundsPassNothing(t *testing.T) {
	f := Filter{MinPrice: 100, MaxPrice: 1}
	for _, price := range []float64{0, 1, 50, 100, 1000} {
		if f.AdmitPrice(price) {
			t.Fatalf("inverted bounds admitted %v", price)
		}
	}
}
