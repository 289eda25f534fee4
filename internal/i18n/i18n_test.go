//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{name: "english message", key: ErrKeyCustomerNotFound, locale: "en", expected: "Customer not found"},
		{name: "tamil message", key: ErrKeyNotFound, locale: "ta", expected: "கிடைக்கவில்லை"},
		{name: "empty locale defaults to english", key: ErrKeyInvalidRequest, locale: "", expected: "Invalid request"},
		{name: "unsupported locale falls back to english", key: ErrKeyTimeout, locale: "fr", expected: "Request timeout"},
		{name: "unknown key returns key", key: "error.nope", locale: "ta", expected: "error.nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestEveryLocaleHasEveryKey(t *testing.T) {
	translator := NewTranslator()
	for key := range defaultMessages[DefaultLocale] {
		for locale, msgs := range defaultMessages {
			_, ok := msgs[key]
			assert.True(t, ok, "locale %s missing %s", locale, key)
		}
	}
	assert.True(t, translator.Supports("ta"))
	assert.False(t, translator.Supports("pt"))
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "no header", header: "", expected: "en"},
		{name: "tamil with region", header: "ta-IN", expected: "ta"},
		{name: "first supported wins", header: "fr-FR,ta;q=0.9,en;q=0.8", expected: "ta"},
		{name: "upper case", header: "TA", expected: "ta"},
		{name: "nothing supported", header: "de,fr", expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.header)
			}
			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}
