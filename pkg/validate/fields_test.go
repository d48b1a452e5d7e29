package validate

import "testing"

func TestIsDottedQuad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid address", "192.168.1.1", true},
		{"all zeros", "0.0.0.0", true},
		{"all max", "255.255.255.255", true},
		{"segment too large", "192.168.1.256", false},
		{"negative segment", "192.168.-1.1", false},
		{"non-numeric segment", "192.168.one.1", false},
		{"three segments", "192.168.1", false},
		{"five segments", "192.168.1.1.1", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := IsDottedQuad(tt.input)
			if got != tt.want {
				t.Errorf("IsDottedQuad(%q) = %v, expected %v", tt.input, got, tt.want)
			}
			if !got && reason == "" {
				t.Error("rejection must carry a reason")
			}
		})
	}
}

func TestIsColonHex(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		groups int
		want   bool
	}{
		{"valid mac", "00:25:B5:99:00:00", 6, true},
		{"valid wwn", "20:00:00:25:B5:00:00:01", 8, true},
		{"lowercase hex", "aa:bb:cc:dd:ee:ff", 6, true},
		{"wrong group count", "00:25:B5:99:00", 6, false},
		{"group too long", "000:25:B5:99:00:00", 6, false},
		{"group too short", "0:25:B5:99:00:00", 6, false},
		{"non-hex group", "00:25:B5:99:00:GG", 6, false},
		{"mac checked as wwn", "00:25:B5:99:00:00", 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := IsColonHex(tt.input, tt.groups)
			if got != tt.want {
				t.Errorf("IsColonHex(%q, %d) = %v, expected %v", tt.input, tt.groups, got, tt.want)
			}
		})
	}
}

func TestIsUUIDSuffix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid suffix", "0000-000000000001", true},
		{"hex letters", "ABCD-ef0123456789", true},
		{"missing dash", "0000000000000001", false},
		{"short prefix", "000-000000000001", false},
		{"short suffix", "0000-00000000001", false},
		{"non-hex", "zzzz-000000000001", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := IsUUIDSuffix(tt.input)
			if got != tt.want {
				t.Errorf("IsUUIDSuffix(%q) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsIntInRange(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		lo, hi int
		want   bool
	}{
		{"in range", "5", 1, 10, true},
		{"lower bound", "1", 1, 10, true},
		{"upper bound", "10", 1, 10, true},
		{"below", "0", 1, 10, false},
		{"above", "11", 1, 10, false},
		{"not a number", "five", 1, 10, false},
		{"empty", "", 1, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := IsIntInRange(tt.input, tt.lo, tt.hi)
			if got != tt.want {
				t.Errorf("IsIntInRange(%q, %d, %d) = %v, expected %v", tt.input, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestCompareColonHex(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"a below b", "00:25:B5:99:00:00", "00:25:B5:99:00:FF", -1},
		{"equal", "00:25:B5:99:00:00", "00:25:B5:99:00:00", 0},
		{"a above b", "00:25:B5:99:01:00", "00:25:B5:99:00:FF", 1},
		{"case insensitive", "00:25:b5:99:00:00", "00:25:B5:99:00:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareColonHex(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("CompareColonHex(%q, %q) = %d, expected %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompareUUIDSuffix(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"a below b", "0000-000000000001", "0000-000000000002", -1},
		{"equal", "0000-0000000000FF", "0000-0000000000ff", 0},
		{"high prefix wins", "0001-000000000000", "0000-FFFFFFFFFFFF", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareUUIDSuffix(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("CompareUUIDSuffix(%q, %q) = %d, expected %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsOneOf(t *testing.T) {
	set := []string{"server", "uplink", "appliance"}

	if got, _ := IsOneOf("uplink", set); !got {
		t.Error("IsOneOf should accept a member of the set")
	}
	if got, reason := IsOneOf("storage", set); got {
		t.Error("IsOneOf should reject a value outside the set")
	} else if reason == "" {
		t.Error("rejection must carry a reason")
	}
}
