package logging

import (
	"log/slog"
	"strings"
)

var defaultSensitiveKeys = []string{
	"password",
	"passwd",
	"sid",
	"_sid",
	"token",
	"authorization",
	"secret",
	"credential",
	"api_key",
	"apikey",
}

// SensitiveMasker は機密情報を含む属性の値を [REDACTED] に置き換える
type SensitiveMasker struct {
	sensitiveKeys map[string]bool
}

func NewSensitiveMasker(keys []string) *SensitiveMasker {
	m := make(map[string]bool, len(keys))
	for _, key := range keys {
		m[strings.ToLower(key)] = true
	}
	return &SensitiveMasker{sensitiveKeys: m}
}

func (sm *SensitiveMasker) MaskAttrs(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]any, 0, len(attrs))
		for _, attr := range attrs {
			maskedAttrs = append(maskedAttrs, sm.MaskAttrs(nil, attr))
		}
		return slog.Group(a.Key, maskedAttrs...)
	}

	key := strings.ToLower(a.Key)
	if sm.sensitiveKeys[key] {
		return slog.String(a.Key, "[REDACTED]")
	}
	for sensitiveKey := range sm.sensitiveKeys {
		if strings.Contains(key, sensitiveKey) {
			return slog.String(a.Key, "[REDACTED]")
		}
	}

	if a.Value.Kind() == slog.KindString && key == "url" {
		return slog.String(a.Key, MaskSensitiveParams(a.Value.String()))
	}

	return a
}

var defaultMasker = NewSensitiveMasker(defaultSensitiveKeys)

// MaskSensitiveAttrs は slog.HandlerOptions.ReplaceAttr に渡すための関数
func MaskSensitiveAttrs(groups []string, a slog.Attr) slog.Attr {
	return defaultMasker.MaskAttrs(groups, a)
}
