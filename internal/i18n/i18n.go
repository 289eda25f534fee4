// Package i18n provides internationalization support for the tile estimator.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages,
	}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, falling back to
// DefaultLocale and finally to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether locale has a message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale picks the first Accept-Language entry with a message table,
// honouring the header's order and ignoring q-values.
func GetLocale(c *gin.Context) string {
	return ParseLocale(c.GetHeader(AcceptLanguageHeader))
}

// ParseLocale resolves an Accept-Language value such as "ta-IN,en;q=0.8".
func ParseLocale(header string) string {
	for _, part := range strings.Split(header, ",") {
		lang := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if idx := strings.IndexByte(lang, '-'); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := defaultMessages[lang]; ok {
			return lang
		}
	}
	return DefaultLocale
}

var defaultMessages = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:     "Invalid request",
		ErrKeyInvalidRequestBody: "Invalid request body",
		ErrKeyValidationFailed:   "Please correct the highlighted fields",
		ErrKeyInternalError:      "An unexpected error occurred",
		ErrKeyNotFound:           "Not found",
		ErrKeyCustomerNotFound:   "Customer not found",
		ErrKeyInvalidCustomerID:  "Invalid customer id",
		ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
		ErrKeyConflict:           "Conflict",
		ErrKeyTimeout:            "Request timeout",
		ErrKeyStoreUnavailable:   "The estimate could not be saved right now, please try again",
		ErrKeyMalformedRoom:      "A room contains an unsupported application",
		ErrKeyReportFailed:       "Failed to generate the document",
		SuccessKeyCustomerSaved:  "Customer saved successfully",
	},
	"ta": {
		ErrKeyInvalidRequest:     "தவறான கோரிக்கை",
		ErrKeyInvalidRequestBody: "தவறான கோரிக்கை உள்ளடக்கம்",
		ErrKeyValidationFailed:   "குறிக்கப்பட்ட புலங்களை சரிசெய்யவும்",
		ErrKeyInternalError:      "எதிர்பாராத பிழை ஏற்பட்டது",
		ErrKeyNotFound:           "கிடைக்கவில்லை",
		ErrKeyCustomerNotFound:   "வாடிக்கையாளர் கிடைக்கவில்லை",
		ErrKeyInvalidCustomerID:  "தவறான வாடிக்கையாளர் அடையாளம்",
		ErrKeyRateLimitExceeded:  "அதிகமான கோரிக்கைகள், சிறிது நேரம் கழித்து முயற்சிக்கவும்",
		ErrKeyConflict:           "முரண்பாடு",
		ErrKeyTimeout:            "கோரிக்கை நேரம் முடிந்தது",
		ErrKeyStoreUnavailable:   "மதிப்பீட்டை இப்போது சேமிக்க முடியவில்லை, மீண்டும் முயற்சிக்கவும்",
		ErrKeyMalformedRoom:      "ஒரு அறையில் ஆதரிக்கப்படாத பயன்பாடு உள்ளது",
		ErrKeyReportFailed:       "ஆவணத்தை உருவாக்க முடியவில்லை",
		SuccessKeyCustomerSaved:  "வாடிக்கையாளர் வெற்றிகரமாக சேமிக்கப்பட்டார்",
	},
}
