package catalog

import "github.com/jihun2da/newmatch/internal/match/model"

// FallbackRecords is the static dataset served when the sheet is
// unreachable: fifteen known-good rows spanning letter, numeric and
// FREE size notations.
func FallbackRecords() []model.CatalogRecord {
	return []model.CatalogRecord{
		{Brand: "소예", Product: "테리헤어밴드", Supplier: "소예패션", WholesalePrice: 8000, OptionText: "사이즈{S,M,L}"},
		{Brand: "린도", Product: "세일러린넨바디수트", Supplier: "린도키즈", WholesalePrice: 15000, OptionText: "사이즈{80,90,100}"},
		{Brand: "마마미", Product: "클래식썸머셔츠", Supplier: "마마미브랜드", WholesalePrice: 18000, OptionText: "사이즈{FREE}"},
		{Brand: "로다제이", Product: "코코넛슈트", Supplier: "로다제이", WholesalePrice: 14000, OptionText: "사이즈{S,M,L,XL}"},
		{Brand: "바비", Product: "래쉬가드", Supplier: "바비브랜드", WholesalePrice: 10000, OptionText: "사이즈{5,7,9,11,13}"},
		{Brand: "보니토", Product: "래쉬가드스윔세트", Supplier: "보니토코리아", WholesalePrice: 20000, OptionText: "사이즈{5,7,9,11,13}"},
		{Brand: "아르키드", Product: "슬립온", Supplier: "아르키드", WholesalePrice: 30000, OptionText: "사이즈{150,160,170}"},
		{Brand: "미미앤루", Product: "티셔츠", Supplier: "미미앤루", WholesalePrice: 12000, OptionText: "사이즈{S,M,L}"},
		{Brand: "니니벨로", Product: "루비볼레로세트", Supplier: "니니벨로", WholesalePrice: 16000, OptionText: "사이즈{90,100,110}"},
		{Brand: "화이트스케치북", Product: "카고롱스커트", Supplier: "화이트스케치북", WholesalePrice: 8000, OptionText: "사이즈{5,7,9,11,13}"},
		{Brand: "키즈", Product: "래쉬가드", Supplier: "키즈패션", WholesalePrice: 12000, OptionText: "사이즈{5,7,9,11,13}"},
		{Brand: "여름", Product: "원피스", Supplier: "여름브랜드", WholesalePrice: 20000, OptionText: "사이즈{S,M,L}"},
		{Brand: "아동", Product: "수영복", Supplier: "아동복전문", WholesalePrice: 15000, OptionText: "사이즈{90,100,110}"},
		{Brand: "유아", Product: "티셔츠", Supplier: "유아복몰", WholesalePrice: 10000, OptionText: "사이즈{80,90,100}"},
		{Brand: "베이비", Product: "반바지", Supplier: "베이비웨어", WholesalePrice: 14000, OptionText: "사이즈{S,M,L}"},
	}
}
