package engine

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	reParen    = regexp.MustCompile(`\([^()]*\)`)
	reBracket  = regexp.MustCompile(`\[[^\]]*\]`)
	reBrace    = regexp.MustCompile(`\{[^}]*\}`)
	reNonWord  = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	reSpaces   = regexp.MustCompile(`\s+`)
	reCommaWS  = regexp.MustCompile(`\s*,\s*`)
	reCommas   = regexp.MustCompile(`,+`)
	reAlnum    = regexp.MustCompile(`[\p{L}\p{N}]`)
	reWordyKey = regexp.MustCompile(`^[a-zA-Z0-9가-힣\s]+$`)
)

// noisePattern is one removable keyword. Wordy keywords (alphanumeric or
// Hangul) are removed only at word boundaries so that 핫 never eats the
// front of 핫핑크; symbol keywords are removed as bare substrings.
type noisePattern struct {
	re      *regexp.Regexp
	bounded bool
}

// Normalizer strips decorative markup and noise keywords from product
// names. Deterministic and memoized by raw input; the cache evicts its
// oldest half when full.
type Normalizer struct {
	patterns []noisePattern
	cache    *boundedCache[string]
}

func NewNormalizer(keywords []string) *Normalizer {
	n := &Normalizer{cache: newBoundedCache[string](normalizeCacheCap, true)}
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" || strings.HasPrefix(kw, "*") {
			continue // size-range markers, see DefaultNoiseKeywords
		}
		n.patterns = append(n.patterns, noisePattern{
			re:      regexp.MustCompile(`(?i)` + regexp.QuoteMeta(strings.ToLower(kw))),
			bounded: reWordyKey.MatchString(kw),
		})
	}
	return n
}

// strip removes the keyword's occurrences from s. Go's \b is ASCII-only,
// so the word-boundary rule for Hangul keywords is enforced by hand: an
// occurrence is removed only when its neighboring runes are not letters,
// digits or underscore.
func (p noisePattern) strip(s string) string {
	if !p.bounded {
		return p.re.ReplaceAllString(s, "")
	}
	locs := p.re.FindAllStringIndex(s, -1)
	if locs == nil {
		return s
	}
	var b strings.Builder
	prev := 0
	for _, loc := range locs {
		if !boundaryBefore(s, loc[0]) || !boundaryAfter(s, loc[1]) {
			continue
		}
		b.WriteString(s[prev:loc[0]])
		prev = loc[1]
	}
	if prev == 0 {
		return s
	}
	b.WriteString(s[prev:])
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func (n *Normalizer) Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if v, ok := n.cache.get(s); ok {
		return v
	}
	out := n.normalize(s)
	n.cache.put(s, out)
	return out
}

func (n *Normalizer) normalize(s string) string {
	out := strings.ToLower(s)

	// Markup first: three parenthesis passes clear nested "(S(3~4)~XL(7~8))"
	// style size blocks from the inside out.
	for i := 0; i < 3; i++ {
		out = reParen.ReplaceAllString(out, "")
	}
	out = reBracket.ReplaceAllString(out, "")
	out = reBrace.ReplaceAllString(out, "")
	out = reNonWord.ReplaceAllString(out, " ")
	out = reSpaces.ReplaceAllString(out, " ")
	out = strings.TrimSpace(out)

	for _, p := range n.patterns {
		out = p.strip(out)
	}
	out = reCommaWS.ReplaceAllString(out, ",")
	out = reCommas.ReplaceAllString(out, ",")
	out = reSpaces.ReplaceAllString(out, " ")
	out = strings.Trim(out, ", ")

	// Over-stripped names are useless for matching; fall back to the plain
	// lowercased input rather than returning an empty-ish string.
	if utf8.RuneCountInString(out) < 2 || !reAlnum.MatchString(out) {
		return strings.ToLower(s)
	}
	return out
}
