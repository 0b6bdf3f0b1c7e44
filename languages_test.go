package lingua

import "testing"

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"EN", "en"},
		{"en_US", "en-us"},
		{"en-US", "en-us"},
		{"ZH_tw", "zh-tw"},
	}

	for _, tt := range tests {
		if got := NormalizeTag(tt.in); got != tt.want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBaseLang(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"en-US", "en"},
		{"en_US", "en"},
		{"zh-Hant-TW", "zh"},
	}

	for _, tt := range tests {
		if got := BaseLang(tt.in); got != tt.want {
			t.Errorf("BaseLang(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSameLanguage(t *testing.T) {
	tests := []struct {
		a, b   string
		policy LanguageMatchPolicy
		want   bool
	}{
		{"en", "EN", MatchExact, true},
		{"en-US", "en_us", MatchExact, true},
		{"en", "en-US", MatchExact, false},
		{"en", "eng", MatchExact, false},
		{"en", "en-US", MatchBaseLang, true},
		{"en-GB", "en-US", MatchBaseLang, true},
		{"en", "es", MatchBaseLang, false},
		{"en", "eng", MatchBaseLang, false},
	}

	for _, tt := range tests {
		if got := SameLanguage(tt.a, tt.b, tt.policy); got != tt.want {
			t.Errorf("SameLanguage(%q, %q, %v) = %v, want %v", tt.a, tt.b, tt.policy, got, tt.want)
		}
	}
}

func TestLanguageName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"es_ES", "Spanish (Spain)"},
		{"es-ES", "Spanish (Spain)"},
		{"es", "Spanish (Spain)"},
		{"ja", "Japanese (Japan)"},
		{"xx", "xx"},
	}

	for _, tt := range tests {
		if got := LanguageName(tt.in); got != tt.want {
			t.Errorf("LanguageName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDirection(t *testing.T) {
	if got := Direction("ar-SA"); got != "rtl" {
		t.Errorf("Direction(ar-SA) = %q, want rtl", got)
	}
	if got := Direction("en"); got != "ltr" {
		t.Errorf("Direction(en) = %q, want ltr", got)
	}
	if !IsRTL("he_IL") {
		t.Error("IsRTL(he_IL) should be true")
	}
	if IsRTL("es") {
		t.Error("IsRTL(es) should be false")
	}
}
