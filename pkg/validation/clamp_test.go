package validation

import "testing"

func TestClampInt(t *testing.T) {
	tests := []struct {
		name     string
		val      int
		min      int
		max      int
		expected int
	}{
		{name: "Within range", val: 5, min: 1, max: 20, expected: 5},
		{name: "Below minimum", val: 0, min: 1, max: 20, expected: 1},
		{name: "Above maximum", val: 50, min: 1, max: 20, expected: 20},
		{name: "At minimum", val: 1, min: 1, max: 20, expected: 1},
		{name: "At maximum", val: 20, min: 1, max: 20, expected: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampInt(tt.val, tt.min, tt.max); got != tt.expected {
				t.Errorf("ClampInt(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.expected)
			}
		})
	}
}

func TestClampIntDefault(t *testing.T) {
	tests := []struct {
		name     string
		val      int
		expected int
	}{
		{name: "Unset falls back to default", val: 0, expected: 5},
		{name: "Negative falls back to default", val: -3, expected: 5},
		{name: "Set value passes through", val: 10, expected: 10},
		{name: "Set value above max clamps", val: 100, expected: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampIntDefault(tt.val, 1, 20, 5); got != tt.expected {
				t.Errorf("ClampIntDefault(%d, 1, 20, 5) = %d, expected %d", tt.val, got, tt.expected)
			}
		})
	}
}
