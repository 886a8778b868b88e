package engine

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	reSizeRange  = regexp.MustCompile(`^([A-Z]+)\s*\(?\s*([0-9]+)\s*[-~]\s*([0-9]+)\s*\)?$`)
	reAlphaCode  = regexp.MustCompile(`\b([A-Z]+)(?:[0-9]+)?\b`)
	reBracketSep = regexp.MustCompile(`[\[\]()]`)
	reDigitsOnly = regexp.MustCompile(`^[0-9]+$`)
)

// adultJunior pairs each adult size code with its junior counterpart.
// bareAdult matches an independent occurrence of the adult code once the
// junior substring has been removed.
var adultJunior = []struct {
	adult     string
	junior    string
	bareAdult *regexp.Regexp
}{
	{"S", "JS", regexp.MustCompile(`\bS\b`)},
	{"M", "JM", regexp.MustCompile(`\bM\b`)},
	{"L", "JL", regexp.MustCompile(`\bL\b`)},
	{"XL", "JXL", regexp.MustCompile(`\bXL\b`)},
}

// NormalizeSizeFormat rewrites range notations like "L 24~36" or "L(24-36)"
// into the canonical CODE(start~end) form and unifies -/~ separators.
// Input is expected uppercased.
func NormalizeSizeFormat(size string) string {
	s := strings.TrimSpace(size)
	if s == "" {
		return ""
	}
	if m := reSizeRange.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s(%s~%s)", m[1], m[2], m[3])
	}
	return strings.ReplaceAll(s, "-", "~")
}

// CheckSizeMatch scores an uploaded size against a catalog size pattern.
// Binary by design: 0 or 100, no partial credit, because a partial size
// match still ships the wrong garment.
//
// The junior exclusion runs before any positive rule and overrides all of
// them: "M" against a pattern that carries JM but no independent M is a
// junior-only listing and must not match.
func CheckSizeMatch(uploadSize, catalogPattern string) float64 {
	if strings.TrimSpace(uploadSize) == "" || strings.TrimSpace(catalogPattern) == "" {
		return 0
	}
	up := NormalizeSizeFormat(strings.ToUpper(strings.TrimSpace(uploadSize)))
	pat := strings.ToUpper(catalogPattern)

	for _, aj := range adultJunior {
		if up != aj.adult || !strings.Contains(pat, aj.junior) {
			continue
		}
		if !hasIndependentAdult(pat, aj.adult, aj.junior, aj.bareAdult) {
			return 0
		}
	}

	// exact bracketed token
	if strings.Contains(pat, "["+up+"]") {
		return 100
	}
	// whole normalized upload contained as-is (covers "S(10~18)" forms)
	if strings.Contains(pat, up) {
		return 100
	}
	// leading alphabetic code match: "S(10~18)" matches a pattern listing S
	upCode := up
	if i := strings.IndexByte(up, '('); i >= 0 {
		upCode = up[:i]
	}
	for _, m := range reAlphaCode.FindAllStringSubmatch(pat, -1) {
		if m[1] == upCode {
			return 100
		}
	}
	// space-padded whole word: "M L XL" style patterns
	if strings.Contains(" "+pat+" ", " "+up+" ") {
		return 100
	}
	// brackets stripped, token-wise: "(XS)[S][M]" -> "XS S M"
	for _, tok := range strings.Fields(reBracketSep.ReplaceAllString(pat, " ")) {
		if tok == up {
			return 100
		}
	}
	return 0
}

// hasIndependentAdult reports whether the pattern contains the adult code
// on its own: either bracketed, or as a bare word after the junior
// substring is removed. For L, XL is stripped too so that "XL" never
// stands in for an independent "L".
func hasIndependentAdult(pat, adult, junior string, bare *regexp.Regexp) bool {
	if strings.Contains(pat, "["+adult+"]") {
		return true
	}
	stripped := strings.ReplaceAll(pat, junior, "")
	if adult == "L" {
		stripped = strings.ReplaceAll(stripped, "XL", "")
	}
	return bare.MatchString(stripped)
}

// sizeVariantTable covers known spellings of letter sizes, used by the
// fallback pass only.
var sizeVariantTable = []struct {
	code     string
	variants []string
}{
	{"xs", []string{"엑스에스", "x-small", "extra small"}},
	{"s", []string{"에스", "small", "소"}},
	{"m", []string{"엠", "medium", "중", "미디움"}},
	{"l", []string{"엘", "large", "대", "라지"}},
	{"xl", []string{"엑스엘", "x-large", "extra large"}},
	{"xxl", []string{"더블엑스엘", "2xl", "xx-large"}},
	{"xxxl", []string{"트리플엑스엘", "3xl", "xxx-large"}},
	{"free", []string{"프리", "프리사이즈", "one size"}},
}

// sizeRatio is the lenient 0..1 size comparator of the fallback pass.
// Numeric sizes (90, 95, 100...) band by absolute difference; known letter
// variants score a fixed 0.95; everything else falls back to the edit
// ratio.
func sizeRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	al := strings.ToLower(strings.TrimSpace(a))
	bl := strings.ToLower(strings.TrimSpace(b))
	base := Ratio(al, bl)

	if reDigitsOnly.MatchString(al) && reDigitsOnly.MatchString(bl) {
		n1, _ := strconv.Atoi(al)
		n2, _ := strconv.Atoi(bl)
		switch diff := math.Abs(float64(n1 - n2)); {
		case diff == 0:
			return 1
		case diff <= 5:
			return 0.8
		case diff <= 10:
			return 0.6
		default:
			return base
		}
	}

	for _, e := range sizeVariantTable {
		if (al == e.code || containsString(e.variants, al)) &&
			(bl == e.code || containsString(e.variants, bl)) {
			return 0.95
		}
	}
	return base
}
