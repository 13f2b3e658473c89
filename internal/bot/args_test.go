package bot

import (
	"reflect"
	"testing"
)

func TestNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []float64
	}{
		{"plain pair", "1000 10", []float64{1000, 10}},
		{"prose between numbers", "1000 USD 10 meses aporte 100", []float64{1000, 10, 100}},
		{"comma decimals", "1000,50 10", []float64{1000.5, 10}},
		{"period decimals", "1000.50 10", []float64{1000.5, 10}},
		{"no numbers", "sem numeros aqui", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := numbers(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("numbers(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCheckProjection(t *testing.T) {
	if err := checkProjection("help", 10, 1000, 100); err != nil {
		t.Errorf("valid arguments rejected: %v", err)
	}
	if err := checkProjection("help", maxProjectionMonths+1, 1000); err == nil {
		t.Error("expected usage error for oversized months")
	}
	if err := checkProjection("help", 10, -1); err == nil {
		t.Error("expected usage error for negative amount")
	}
	// Negative months fall through to the engine, which yields an empty
	// series rather than an error.
	if err := checkProjection("help", -5, 1000); err != nil {
		t.Errorf("negative months should not be a usage error: %v", err)
	}
}
