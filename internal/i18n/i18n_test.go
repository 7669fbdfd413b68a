package i18n

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"es", "es"},
		{"ja", "ja"},
		{"pt", "en"},
		{"", "en"},
		{"EN", "en"},
	}
	for _, tt := range tests {
		if got := Resolve(tt.in); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTable_AllLocalesComplete(t *testing.T) {
	c := NewCatalog(nil)
	for lang := range supportedLanguages {
		table := c.Table(lang)
		for _, k := range allKeys {
			if table[k] == "" {
				t.Errorf("locale %s: key %q empty", lang, k)
			}
		}
	}
}

func TestTable_UnsupportedFallsBackToEnglish(t *testing.T) {
	c := NewCatalog(nil)
	got := c.Table("xx")
	want := c.Table("en")
	if got[KeyGenericRefusal] != want[KeyGenericRefusal] {
		t.Errorf("unsupported language should serve English table")
	}
}

func TestTable_Cached(t *testing.T) {
	c := NewCatalog(nil)
	first := c.Table("fr")
	second := c.Table("fr")
	if first[KeyRouterFailure] != second[KeyRouterFailure] {
		t.Error("cached table should be stable across lookups")
	}
}

func TestLookup_NeverEmpty(t *testing.T) {
	c := NewCatalog(nil)
	for _, k := range allKeys {
		if c.Lookup("de", k) == "" {
			t.Errorf("Lookup(de, %q) returned empty string", k)
		}
	}
}
