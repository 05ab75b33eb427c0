package derive

import (
	polis "github.com/kennycode-git/polis-metadata-tool"
)

// languageSampleSize caps how much text the heuristic inspects.
const languageSampleSize = 200

// DetectLanguage classifies text as English or non-English using an ASCII
// ratio heuristic over the first 200 characters. Returns the empty Language
// only when text is empty; whitespace counts as ASCII.
func DetectLanguage(text string) polis.Language {
	if text == "" {
		return ""
	}

	runes := []rune(text)
	if len(runes) > languageSampleSize {
		runes = runes[:languageSampleSize]
	}

	ascii := 0
	for _, r := range runes {
		if r < 128 {
			ascii++
		}
	}

	if float64(ascii)/float64(len(runes)) > 0.8 {
		return polis.LanguageEnglish
	}
	return polis.LanguageOther
}
