package engine

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jihun2da/newmatch/internal/match/model"
)

// Option strings arrive in a handful of shapes. Each shape gets its own
// pattern, tried in a fixed order until one yields both fields.
var (
	reColorEq    = regexp.MustCompile(`(?i)(?:색상|컬러|color)\s*=\s*([^,/]+?)(?:\s*[,/]|\s*(?:사이즈|size)|$)`)
	reColorColon = regexp.MustCompile(`(?i)(?:색상|컬러|color)\s*:\s*([^,/]+?)(?:\s*[,/]|\s*(?:사이즈|size)|$)`)
	reSizeKV     = regexp.MustCompile(`(?i)(?:사이즈|size)\s*[=:]\s*([^,/]+?)(?:\s*[,/]|$)`)

	reSlashPair = regexp.MustCompile(`^([^/]+)/([^/]+)$`)
	reDashPair  = regexp.MustCompile(`^([^-]+)-([^-]+)$`)
	reSizeHint  = regexp.MustCompile(`(?i)[0-9]|[smlx]`)
	reExactSize = regexp.MustCompile(`(?i)^[smlx]$|^[0-9]+$`)

	reTrailingSep = regexp.MustCompile(`\s*[/\\|]+\s*$`)

	// Catalog rows use a distinct bracketed syntax: 색상{...}//사이즈{...}
	reSizeField  = regexp.MustCompile(`사이즈\{([^}]*)\}`)
	reColorField = regexp.MustCompile(`색상\{([^}]*)\}`)
)

// ParseOptions extracts color and size from a free-text option string on
// an uploaded row. Empty fields mean the option did not specify them.
func ParseOptions(text string) model.ParsedOption {
	t := strings.TrimSpace(text)
	if t == "" || strings.EqualFold(t, "nan") {
		return model.ParsedOption{}
	}
	var color, size string

	// key=value / key:value pairs
	if m := reColorEq.FindStringSubmatch(t); m != nil {
		color = strings.TrimSpace(m[1])
	}
	if m := reSizeKV.FindStringSubmatch(t); m != nil {
		size = strings.TrimSpace(m[1])
	}
	if color == "" {
		if m := reColorColon.FindStringSubmatch(t); m != nil {
			color = strings.TrimSpace(m[1])
		}
	}

	// bare "color/size", accepted only when the right side looks like a size
	if color == "" && size == "" {
		if m := reSlashPair.FindStringSubmatch(t); m != nil {
			left, right := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			if reSizeHint.MatchString(right) {
				color, size = left, right
			}
		}
	}

	// bare "left-right": an exact size token decides which side is which
	if color == "" && size == "" {
		if m := reDashPair.FindStringSubmatch(t); m != nil {
			left, right := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			switch {
			case reExactSize.MatchString(left):
				size, color = left, right
			case reSizeHint.MatchString(right):
				color, size = left, right
			}
		}
	}

	color = strings.TrimSpace(reTrailingSep.ReplaceAllString(color, ""))
	size = strings.TrimSpace(reTrailingSep.ReplaceAllString(size, ""))
	return model.ParsedOption{Color: color, Size: size}
}

// ExtractSize pulls the 사이즈{...} field from a catalog option string,
// lowercased, with |/\ separators converted to spaces.
func ExtractSize(option string) string {
	return extractField(reSizeField, option)
}

// ExtractColor pulls the 색상{...} field from a catalog option string.
func ExtractColor(option string) string {
	return extractField(reColorField, option)
}

func extractField(re *regexp.Regexp, option string) string {
	m := re.FindStringSubmatch(option)
	if m == nil {
		return ""
	}
	s := strings.ToLower(strings.TrimSpace(m[1]))
	s = strings.ReplaceAll(s, "|", " ")
	s = strings.ReplaceAll(s, "\\", " ")
	return s
}

// optionVariants expands a color/size value into its comparable variants:
// the whole value, each comma- and slash-separated alternative, and a
// parenthesis-stripped form. All lowercased, sorted, deduplicated.
func optionVariants(text string) []string {
	t := strings.TrimSpace(text)
	if t == "" {
		return nil
	}
	set := map[string]struct{}{strings.ToLower(t): {}}
	for _, sep := range []string{",", "/"} {
		if !strings.Contains(t, sep) {
			continue
		}
		for _, part := range strings.Split(t, sep) {
			if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
				set[p] = struct{}{}
			}
		}
	}
	if stripped := strings.ToLower(strings.TrimSpace(reParen.ReplaceAllString(t, ""))); stripped != "" {
		set[stripped] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
