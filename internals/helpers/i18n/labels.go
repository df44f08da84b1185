// Display-label translation for enum values and group names.
// The original frontend renders these labels directly, so list/detail
// representations carry them instead of the raw stored codes.
package i18n

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultLang = "en"

var labels = map[string]map[string]string{
	"en": {
		"active":    "Active",
		"inactive":  "Inactive",
		"left":      "Left",
		"fired":     "Fired",
		"hidden":    "Hidden",
		"archived":  "Archived",
		"man":       "Man",
		"woman":     "Woman",
		"undefined": "Undefined",
		"superuser": "superuser",
		"owner":     "owner",
		"teacher":   "teacher",
	},
	"ru": {
		"active":    "Активный",
		"inactive":  "Неактивный",
		"left":      "Ушел",
		"fired":     "Уволен",
		"hidden":    "Скрытый",
		"archived":  "В архиве",
		"man":       "Мужчина",
		"woman":     "Женщина",
		"undefined": "Не указан",
		"superuser": "суперпользователь",
		"owner":     "владелец",
		"teacher":   "преподаватель",
	},
}

// Lang picks the response language from Accept-Language. Only the primary
// subtag matters; anything unknown falls back to English.
func Lang(c *fiber.Ctx) string {
	if c == nil {
		return DefaultLang
	}
	raw := strings.TrimSpace(c.Get(fiber.HeaderAcceptLanguage))
	if raw == "" {
		return DefaultLang
	}
	primary := raw
	if i := strings.IndexAny(primary, ",;"); i >= 0 {
		primary = primary[:i]
	}
	if i := strings.Index(primary, "-"); i >= 0 {
		primary = primary[:i]
	}
	primary = strings.ToLower(strings.TrimSpace(primary))
	if _, ok := labels[primary]; ok {
		return primary
	}
	return DefaultLang
}

// Label translates a stored enum code into its display label.
func Label(lang, code string) string {
	if m, ok := labels[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := labels[DefaultLang][code]; ok {
		return s
	}
	return code
}
