package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLocale(t *testing.T) {
	var got string
	h := Locale(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = LocaleFromContext(r.Context())
	}))

	cases := []struct {
		url    string
		accept string
		want   string
	}{
		{"/", "", "en"},
		{"/", "es", "es"},
		{"/", "es-MX,es;q=0.9,en;q=0.8", "es"},
		{"/", "fr-FR,fr;q=0.9", "en"},
		{"/?lang=es", "en", "es"},
		{"/?lang=de", "es", "es"},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, c.url, nil)
		if c.accept != "" {
			req.Header.Set("Accept-Language", c.accept)
		}
		h.ServeHTTP(httptest.NewRecorder(), req)
		if got != c.want {
			t.Errorf("url=%q accept=%q: got %q, want %q", c.url, c.accept, got, c.want)
		}
	}
}
