package pantry

import (
	"testing"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "thousands grouping", amount: 1000, want: "$ 1.000"},
		{name: "six figures", amount: 152990, want: "$ 152.990"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPrice(tt.amount); got != tt.want {
				t.Fatalf("FormatPrice(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatPriceDeterministic(t *testing.T) {
	if FormatPrice(152990) != FormatPrice(152990) {
		t.Fatal("repeated calls disagree")
	}
}
