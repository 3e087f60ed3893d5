// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

// Package i18n provides the site's user-facing strings. Turkish is the
// primary language; English is kept for international alumni.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no supported language matches.
const DefaultLanguage = "tr"

// SupportedLanguages lists the site languages, primary first.
var SupportedLanguages = []string{"tr", "en"}

var supportedTags = []language.Tag{
	language.Turkish,
	language.English,
}

var matcher = language.NewMatcher(supportedTags)

// translations maps lang -> key -> text. Keys missing from a language
// fall back to Turkish.
var translations = map[string]map[string]string{
	"tr": {
		"site.title":               "TÜMED - Mezunlar Derneği",
		"nav.home":                 "Ana Sayfa",
		"nav.faaliyetler":          "Faaliyetler",
		"nav.haberler":             "Haberler",
		"nav.admin":                "Yönetim Paneli",
		"auth.login":               "Giriş Yap",
		"auth.logout":              "Çıkış Yap",
		"auth.email":               "E-posta",
		"auth.password":            "Parola",
		"auth.invalid_credentials": "E-posta veya parola hatalı",
		"auth.locked":              "Hesap geçici olarak kilitlendi. Lütfen daha sonra tekrar deneyin.",
		"auth.unavailable":         "Giriş şu anda yapılamıyor. Lütfen daha sonra tekrar deneyin.",
		"list.empty":               "Henüz içerik bulunmuyor.",
		"list.page":                "Sayfa %d / %d",
		"pagination.prev":          "Önceki",
		"pagination.next":          "Sonraki",
		"error.not_found":          "Aradığınız sayfa bulunamadı.",
		"error.internal":           "Bir hata oluştu. Lütfen daha sonra tekrar deneyin.",
	},
	"en": {
		"site.title":               "TÜMED - Alumni Association",
		"nav.home":                 "Home",
		"nav.faaliyetler":          "Activities",
		"nav.haberler":             "News",
		"nav.admin":                "Admin Panel",
		"auth.login":               "Sign In",
		"auth.logout":              "Sign Out",
		"auth.email":               "Email",
		"auth.password":            "Password",
		"auth.invalid_credentials": "Invalid email or password",
		"auth.locked":              "Account temporarily locked. Please try again later.",
		"auth.unavailable":         "Sign-in is currently unavailable. Please try again later.",
		"list.empty":               "No content yet.",
		"list.page":                "Page %d of %d",
		"pagination.prev":          "Previous",
		"pagination.next":          "Next",
		"error.not_found":          "The page you are looking for was not found.",
		"error.internal":           "Something went wrong. Please try again later.",
	},
}

// T translates a message key to the specified language, falling back
// to Turkish and finally to the key itself. Optional args are applied
// with fmt.Sprintf.
func T(lang, key string, args ...any) string {
	text, ok := translations[lang][key]
	if !ok {
		text, ok = translations[DefaultLanguage][key]
		if !ok {
			return key
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

// MatchLanguage finds the best supported language for an
// Accept-Language header value or a bare language code.
func MatchLanguage(acceptLang string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		tag, err := language.Parse(acceptLang)
		if err != nil {
			return DefaultLanguage
		}
		tags = []language.Tag{tag}
	}

	_, idx, _ := matcher.Match(tags...)
	if idx >= 0 && idx < len(SupportedLanguages) {
		return SupportedLanguages[idx]
	}
	return DefaultLanguage
}

// IsSupported checks if a language code is supported.
func IsSupported(lang string) bool {
	lang = strings.ToLower(lang)
	for _, supported := range SupportedLanguages {
		if supported == lang {
			return true
		}
	}
	return false
}
