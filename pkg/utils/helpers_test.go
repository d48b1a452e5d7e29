package utils

import "testing"

func TestContains(t *testing.T) {
	slice := []string{"server", "uplink", "appliance"}

	if !Contains(slice, "uplink") {
		t.Error("expected to find uplink")
	}
	if Contains(slice, "fcoe") {
		t.Error("did not expect to find fcoe")
	}
	if Contains(nil, "anything") {
		t.Error("nil slice contains nothing")
	}
}

func TestContainsInt(t *testing.T) {
	slice := []int{1500, 9000}

	if !ContainsInt(slice, 9000) {
		t.Error("expected to find 9000")
	}
	if ContainsInt(slice, 1501) {
		t.Error("did not expect to find 1501")
	}
}

func TestGetIDFromObject(t *testing.T) {
	tests := []struct {
		name string
		obj  interface{}
		want int
	}{
		{"int", 42, 42},
		{"float from json", float64(42), 42},
		{"numeric string", "42", 42},
		{"non-numeric string", "forty-two", 0},
		{"map with int id", map[string]interface{}{"id": 7}, 7},
		{"map with float id", map[string]interface{}{"id": float64(7)}, 7},
		{"map with string id", map[string]interface{}{"id": "7"}, 7},
		{"map without id", map[string]interface{}{"name": "x"}, 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetIDFromObject(tt.obj); got != tt.want {
				t.Errorf("GetIDFromObject(%v) = %d, expected %d", tt.obj, got, tt.want)
			}
		})
	}
}
