package registry

import (
	"fmt"
	"sort"
)

// DefaultLanguage is the locale listed first in choosers and used when no
// preference is configured.
const DefaultLanguage = "en-US"

// displayNames maps locale codes to human-readable names. The mapping is
// bijective: codeForName below is derived from it at init time.
var displayNames = map[string]string{
	"ach":   "Acholi",
	"af":    "Afrikaans",
	"an":    "Aragonese",
	"ar":    "Arabic",
	"ast":   "Asturian",
	"az":    "Azerbaijani",
	"be":    "Belarusian",
	"bg":    "Bulgarian",
	"bn":    "Bengali",
	"br":    "Breton",
	"bs":    "Bosnian",
	"ca":    "Catalan",
	"cak":   "Kaqchikel",
	"cs":    "Czech",
	"cy":    "Welsh",
	"da":    "Danish",
	"de":    "German",
	"dsb":   "Lower Sorbian",
	"el":    "Greek",
	"en-CA": "English (Canadian)",
	"en-GB": "English (British)",
	"en-US": "English (US)",
	"eo":    "Esperanto",
	"es-AR": "Spanish (Argentina)",
	"es-CL": "Spanish (Chile)",
	"es-ES": "Spanish (Spain)",
	"es-MX": "Spanish (Mexico)",
	"et":    "Estonian",
	"eu":    "Basque",
	"fa":    "Persian",
	"ff":    "Fulah",
	"fi":    "Finnish",
	"fr":    "French",
	"fy-NL": "Frisian",
	"ga-IE": "Irish",
	"gd":    "Gaelic (Scotland)",
	"gl":    "Galician",
	"gn":    "Guarani",
	"gu-IN": "Gujarati",
	"he":    "Hebrew",
	"hi-IN": "Hindi (India)",
	"hr":    "Croatian",
	"hsb":   "Upper Sorbian",
	"hu":    "Hungarian",
	"hy-AM": "Armenian",
	"ia":    "Interlingua",
	"id":    "Indonesian",
	"is":    "Icelandic",
	"it":    "Italian",
	"ja":    "Japanese",
	"ka":    "Georgian",
	"kab":   "Kabyle",
	"kk":    "Kazakh",
	"km":    "Khmer",
	"kn":    "Kannada",
	"ko":    "Korean",
	"lij":   "Ligurian",
	"lt":    "Lithuanian",
	"lv":    "Latvian",
	"mk":    "Macedonian",
	"mr":    "Marathi",
	"ms":    "Malay",
	"my":    "Burmese",
	"nb-NO": "Norwegian (Bokmal)",
	"ne-NP": "Nepali",
	"nl":    "Dutch",
	"nn-NO": "Norwegian (Nynorsk)",
	"oc":    "Occitan",
	"pa-IN": "Punjabi (India)",
	"pl":    "Polish",
	"pt-BR": "Portuguese (Brazilian)",
	"pt-PT": "Portuguese (Portugal)",
	"rm":    "Romansh",
	"ro":    "Romanian",
	"ru":    "Russian",
	"sco":   "Scots",
	"si":    "Sinhala",
	"sk":    "Slovak",
	"sl":    "Slovenian",
	"son":   "Songhai",
	"sq":    "Albanian",
	"sr":    "Serbian",
	"sv-SE": "Swedish",
	"ta":    "Tamil",
	"te":    "Telugu",
	"th":    "Thai",
	"tl":    "Filipino",
	"tr":    "Turkish",
	"trs":   "Triqui",
	"uk":    "Ukrainian",
	"ur":    "Urdu",
	"uz":    "Uzbek",
	"vi":    "Vietnamese",
	"xh":    "Xhosa",
	"zh-CN": "Chinese (Simplified)",
	"zh-TW": "Chinese (Traditional)",
}

// codeForName is the reverse direction of displayNames, precomputed once.
var codeForName map[string]string

// orderedNames caches the chooser ordering: alphabetical by display name
// with the default language first.
var orderedNames []string

func init() {
	codeForName = make(map[string]string, len(displayNames))
	orderedNames = make([]string, 0, len(displayNames))

	defaultName := displayNames[DefaultLanguage]

	for code, name := range displayNames {
		codeForName[name] = code

		if name != defaultName {
			orderedNames = append(orderedNames, name)
		}
	}

	sort.Strings(orderedNames)
	orderedNames = append([]string{defaultName}, orderedNames...)
}

// DisplayName returns the human-readable name for a locale code.
func DisplayName(code string) (string, error) {
	name, ok := displayNames[code]
	if !ok {
		return "", fmt.Errorf("language code %q: %w", code, ErrNotFound)
	}

	return name, nil
}

// CodeForDisplayName returns the locale code for a human-readable name.
func CodeForDisplayName(name string) (string, error) {
	code, ok := codeForName[name]
	if !ok {
		return "", fmt.Errorf("language %q: %w", name, ErrNotFound)
	}

	return code, nil
}

// DisplayNames returns all display names ordered alphabetically, except
// the default language which is always listed first.
func DisplayNames() []string {
	result := make([]string, len(orderedNames))
	copy(result, orderedNames)

	return result
}

// LanguageCodes returns every locale code known to the registry.
// Order is unspecified.
func LanguageCodes() []string {
	codes := make([]string, 0, len(displayNames))
	for code := range displayNames {
		codes = append(codes, code)
	}

	return codes
}
