package helpers

import "unicode/utf8"

// Finds the intended word for a string that is one deleted or one substituted
// character away from it. Only words longer than three characters are
// considered, since shorter words produce too many false positives.
type TypoDetector struct {
	oneCharTypos map[string]string
}

func MakeTypoDetector(valid []string) TypoDetector {
	detector := TypoDetector{oneCharTypos: make(map[string]string)}

	for _, correct := range valid {
		if len(correct) > 3 {
			// Every way of dropping one character maps back to the word
			for i, ch := range correct {
				detector.oneCharTypos[correct[:i]+correct[i+utf8.RuneLen(ch):]] = correct
			}
		}
	}

	return detector
}

func (detector TypoDetector) MaybeCorrectTypo(typo string) (string, bool) {
	// "strin" => "string"
	if corrected, ok := detector.oneCharTypos[typo]; ok {
		return corrected, true
	}

	// "strimg" => "string"
	for i, ch := range typo {
		if corrected, ok := detector.oneCharTypos[typo[:i]+typo[i+utf8.RuneLen(ch):]]; ok {
			return corrected, true
		}
	}

	return "", false
}
