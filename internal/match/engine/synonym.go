package engine

import (
	"sort"
	"strings"
)

// synonymEntry maps a canonical term to its spellings, abbreviations and
// transliterations. Order matters: exact-match expansion takes the first
// entry whose variant list contains the token, so the table is a slice,
// not a map.
type synonymEntry struct {
	canonical string
	variants  []string
}

var synonymTable = []synonymEntry{
	// clothing categories
	{"티셔츠", []string{"티", "티샤츠", "티셔츠", "반팔", "반팔티", "tshirt"}},
	{"바지", []string{"팬츠", "바지", "슬랙스", "pants"}},
	{"원피스", []string{"원피스", "드레스", "ops"}},
	{"가디건", []string{"가디건", "cardigan", "가디"}},
	{"후드", []string{"후드", "후디", "hoodie", "후드티"}},
	{"맨투맨", []string{"맨투맨", "맨투", "mtm", "스웨트"}},
	{"조끼", []string{"조끼", "베스트", "vest"}},
	{"점퍼", []string{"점퍼", "자켓", "jacket", "잠바"}},
	{"니트", []string{"니트", "knit", "스웨터"}},
	{"블라우스", []string{"블라우스", "블라우즈", "blouse"}},
	{"치마", []string{"스커트", "치마", "skirt"}},
	{"레깅스", []string{"레깅스", "레깅", "leggings"}},
	{"조거", []string{"조거", "조거팬츠", "jogger"}},
	{"셔츠", []string{"셔츠", "샤츠", "shirt"}},
	{"코트", []string{"코트", "coat", "외투"}},
	{"패딩", []string{"패딩", "padding", "파딩"}},
	{"점프슈트", []string{"점프슈트", "점프수트", "jumpsuit"}},
	{"레이스", []string{"레이스", "lace"}},

	// colors
	{"화이트", []string{"흰색", "white", "화이트", "백색"}},
	{"블랙", []string{"검정", "black", "블랙", "흑색"}},
	{"네이비", []string{"남색", "navy", "네이비", "곤색"}},
	{"베이지", []string{"베이지", "베이직", "beige"}},
	{"그레이", []string{"회색", "gray", "grey", "그레이"}},
	{"브라운", []string{"갈색", "brown", "브라운"}},
	{"핑크", []string{"분홍", "pink", "핑크"}},
	{"레드", []string{"빨강", "red", "레드"}},
	{"옐로우", []string{"노랑", "yellow", "옐로우", "옐로"}},
	{"그린", []string{"초록", "green", "그린"}},
	{"블루", []string{"파랑", "blue", "블루"}},
	{"퍼플", []string{"보라", "purple", "퍼플"}},
	{"오렌지", []string{"주황", "orange", "오렌지"}},
	{"카키", []string{"카키", "khaki"}},
	{"와인", []string{"와인", "wine", "버건디"}},
	{"아이보리", []string{"아이보리", "ivory"}},

	// sizes
	{"프리", []string{"free", "프리", "프리사이즈", "f"}},
	{"xl", []string{"xl", "엑스엘"}},

	// materials
	{"면", []string{"면", "cotton", "코튼"}},
	{"폴리", []string{"폴리", "poly", "폴리에스터"}},
	{"데님", []string{"데님", "denim", "청"}},
	{"울", []string{"울", "wool", "양모"}},
	{"린넨", []string{"린넨", "linen", "마"}},

	// styles
	{"캐주얼", []string{"캐주얼", "casual"}},
	{"베이직", []string{"베이직", "basic", "기본"}},
	{"러블리", []string{"러블리", "lovely"}},
}

// ExpandSynonyms returns the space-joined, sorted union of the input's
// tokens and every synonym-table entry matching a token exactly or as a
// substring in either direction. Memoized; inserts stop once the cache cap
// is reached.
func (e *Engine) ExpandSynonyms(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	if v, ok := e.synCache.get(text); ok {
		return v
	}
	words := strings.Fields(strings.ToLower(text))
	expanded := make(map[string]struct{}, len(words)*2)
	for _, w := range words {
		expanded[w] = struct{}{}
	}
	for _, w := range words {
		for _, entry := range synonymTable {
			if containsString(entry.variants, w) {
				for _, s := range entry.variants {
					expanded[s] = struct{}{}
				}
				break
			}
		}
		for _, entry := range synonymTable {
			if strings.Contains(w, entry.canonical) || strings.Contains(entry.canonical, w) {
				expanded[entry.canonical] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(expanded))
	for s := range expanded {
		out = append(out, s)
	}
	sort.Strings(out)
	result := strings.Join(out, " ")
	e.synCache.put(text, result)
	return result
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
