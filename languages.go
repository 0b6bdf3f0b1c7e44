package lingua

import "strings"

// LanguageMatchPolicy controls when two language tags are considered the
// same language for the purpose of the translate short-circuit.
type LanguageMatchPolicy int

const (
	// MatchExact treats tags as equal only on an exact case-insensitive
	// match ("en-US" == "EN-us", but "en" != "en-US"). This is the default.
	MatchExact LanguageMatchPolicy = iota

	// MatchBaseLang additionally treats tags sharing a base language as
	// equal ("en" == "en-US"). Opt-in: it also suppresses translation
	// between regional variants.
	MatchBaseLang
)

// NormalizeTag lower-cases a language tag and unifies the subtag separator
// ("en_US" -> "en-us").
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.ReplaceAll(tag, "_", "-"))
}

// BaseLang extracts the base language code from a tag ("en-US" -> "en").
func BaseLang(tag string) string {
	return strings.SplitN(NormalizeTag(tag), "-", 2)[0]
}

// SameLanguage reports whether two tags name the same language under the
// given match policy.
func SameLanguage(a, b string, policy LanguageMatchPolicy) bool {
	na, nb := NormalizeTag(a), NormalizeTag(b)
	if na == nb {
		return true
	}
	if policy == MatchBaseLang {
		return BaseLang(na) == BaseLang(nb)
	}
	return false
}

// LanguageNames maps locale codes to human-readable names for engine prompts.
var LanguageNames = map[string]string{
	"en_US": "English (United States)",
	"en_GB": "English (United Kingdom)",
	"de_DE": "German (Germany)",
	"es_ES": "Spanish (Spain)",
	"es_MX": "Spanish (Mexico)",
	"fr_FR": "French (France)",
	"it_IT": "Italian (Italy)",
	"ja_JP": "Japanese (Japan)",
	"pt_BR": "Portuguese (Brazil)",
	"pt_PT": "Portuguese (Portugal)",
	"zh_CN": "Chinese (Simplified)",
	"zh_TW": "Chinese (Traditional)",
	"ar_SA": "Arabic (Saudi Arabia)",
	"cs_CZ": "Czech (Czech Republic)",
	"da_DK": "Danish (Denmark)",
	"el_GR": "Greek (Greece)",
	"fi_FI": "Finnish (Finland)",
	"he_IL": "Hebrew (Israel)",
	"hi_IN": "Hindi (India)",
	"hu_HU": "Hungarian (Hungary)",
	"id_ID": "Indonesian (Indonesia)",
	"ko_KR": "Korean (South Korea)",
	"nl_NL": "Dutch (Netherlands)",
	"nb_NO": "Norwegian Bokmål (Norway)",
	"pl_PL": "Polish (Poland)",
	"ro_RO": "Romanian (Romania)",
	"ru_RU": "Russian (Russia)",
	"sv_SE": "Swedish (Sweden)",
	"th_TH": "Thai (Thailand)",
	"tr_TR": "Turkish (Turkey)",
	"uk_UA": "Ukrainian (Ukraine)",
	"vi_VN": "Vietnamese (Vietnam)",
}

// shortCodeToLocale maps base language codes to a representative locale.
var shortCodeToLocale = map[string]string{
	"en": "en_US",
	"de": "de_DE",
	"es": "es_ES",
	"fr": "fr_FR",
	"it": "it_IT",
	"ja": "ja_JP",
	"pt": "pt_BR",
	"zh": "zh_CN",
	"ko": "ko_KR",
	"ru": "ru_RU",
	"ar": "ar_SA",
	"he": "he_IL",
	"hi": "hi_IN",
	"nl": "nl_NL",
	"pl": "pl_PL",
	"tr": "tr_TR",
	"vi": "vi_VN",
}

// LanguageName returns the human-readable name for a language tag, tolerating
// either separator style and bare base codes. Falls back to the tag itself.
func LanguageName(tag string) string {
	if name, ok := LanguageNames[tag]; ok {
		return name
	}
	if name, ok := LanguageNames[strings.ReplaceAll(tag, "-", "_")]; ok {
		return name
	}
	if locale, ok := shortCodeToLocale[BaseLang(tag)]; ok {
		if name, ok := LanguageNames[locale]; ok {
			return name
		}
	}
	return tag
}

// rtlLanguages contains base language codes written right-to-left.
var rtlLanguages = map[string]bool{
	"ar": true, // Arabic
	"he": true, // Hebrew
	"fa": true, // Persian/Farsi
	"ur": true, // Urdu
	"ps": true, // Pashto
	"sd": true, // Sindhi
	"ug": true, // Uyghur
}

// Direction returns "rtl" for right-to-left languages, "ltr" otherwise.
func Direction(tag string) string {
	if rtlLanguages[BaseLang(tag)] {
		return "rtl"
	}
	return "ltr"
}

// IsRTL reports whether the language uses right-to-left text direction.
func IsRTL(tag string) bool {
	return Direction(tag) == "rtl"
}
