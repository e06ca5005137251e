package utils

import "testing"

func TestT(t *testing.T) {
	if got := T("es", "auth.invalid"); got != "Correo o contraseña no válidos" {
		t.Fatalf("unexpected translation: %q", got)
	}
	if got := T("fr", "auth.invalid"); got != "Invalid email or password" {
		t.Fatalf("unsupported locale must fall back to English, got %q", got)
	}
	if got := T("en", "no.such.key"); got != "no.such.key" {
		t.Fatalf("unknown key must echo, got %q", got)
	}
}

func TestDetermineLocale(t *testing.T) {
	supported := []string{"en", "es"}
	cases := []struct {
		query  string
		accept string
		want   string
	}{
		{"", "", "en"},
		{"es", "", "es"},
		{"ES", "", "es"},
		{"de", "es", "es"},
		{"", "es-419,es;q=0.9", "es"},
		{"", "fr;q=0.9,es;q=0.5", "es"},
		{"", "en;q=0.5,es;q=0.9", "es"},
		{"", "ja,ko", "en"},
	}
	for _, c := range cases {
		if got := DetermineLocale(c.query, c.accept, supported, "en"); got != c.want {
			t.Errorf("DetermineLocale(%q, %q) = %q, want %q", c.query, c.accept, got, c.want)
		}
	}
}
