package wordfreq

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const (
	zwj        = '\u200d'
	variation  = '\ufe0f'
	apostrophe = '\u2019'
)

// Tokenize splits text into lowercase tokens.
//
// Text is NFC-normalized and lowercased. A token is a maximal run of letters,
// digits and combining marks. Apostrophes are kept inside a token, folded to
// ASCII, and trimmed from its ends. Each pictographic symbol (emoji and the
// like) becomes a token of its own, together with any modifiers and
// zero-width-joined symbols that follow it. Everything else separates tokens.
func Tokenize(text string) []string {
	text = cases.Lower(language.Und).String(norm.NFC.String(text))

	var (
		tokens []string
		cur    strings.Builder
		symbol bool // cur holds a symbol sequence
		joined bool // last rune of the symbol was a joiner
	)
	flush := func() {
		tok := strings.ReplaceAll(cur.String(), string(apostrophe), "'")
		if tok = strings.Trim(tok, "'"); tok != "" {
			tokens = append(tokens, tok)
		}
		cur.Reset()
		symbol, joined = false, false
	}

	for _, r := range text {
		switch {
		case symbol && (unicode.In(r, unicode.Mn, unicode.Me, unicode.Sk) || r == variation):
			cur.WriteRune(r)
		case symbol && r == zwj:
			cur.WriteRune(r)
			joined = true
		case unicode.Is(unicode.So, r):
			if symbol && joined {
				cur.WriteRune(r)
				joined = false
				continue
			}
			flush()
			symbol = true
			cur.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r):
			if symbol {
				flush()
			}
			cur.WriteRune(r)
		case (r == '\'' || r == apostrophe) && cur.Len() > 0 && !symbol:
			cur.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return tokens
}

// isSymbol reports whether tok is a symbol token as produced by Tokenize.
func isSymbol(tok string) bool {
	for _, r := range tok {
		return unicode.Is(unicode.So, r)
	}
	return false
}
