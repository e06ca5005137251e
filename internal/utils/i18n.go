package utils

// Minimal server-side i18n for fixed keys. Page copy lives in the frontend;
// the server only translates the few strings it originates.

var translations = map[string]map[string]string{
	"en": {
		"health.ok":      "ok",
		"shell.checking": "Checking authentication...",
		"auth.invalid":   "Invalid email or password",
	},
	"es": {
		"health.ok":      "bien",
		"shell.checking": "Verificando autenticación...",
		"auth.invalid":   "Correo o contraseña no válidos",
	},
}

// T returns the translated string for key in locale; falls back to English.
func T(locale, key string) string {
	if m, ok := translations[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := translations["en"][key]; ok {
		return v
	}
	return key
}
