package engine

// DefaultNoiseKeywords is the built-in noise list stripped from product
// names before matching: marketing fluff, season tags, audience tags,
// decorative symbols and size-range markers. A keywords.xlsx next to the
// binary overrides it (first column, one keyword per row).
//
// Entries wrapped in '*' are size-range markers kept for sheet tooling;
// the normalizer skips them because the bracketed size notation they refer
// to is already removed by the markup pass.
func DefaultNoiseKeywords() []string {
	return []string{
		"세트", "SET", "set", "단품", "단가", "포인트", "POINT", "point",
		"신상", "추천", "베스트", "인기", "핫", "HOT", "hot", "NEW", "new",
		"특가", "할인", "세일", "SALE", "sale", "이벤트", "EVENT", "event",
		"무료배송", "배송비무료", "당일배송", "빠른배송", "즉시배송",
		"리뷰", "후기", "평점", "별점", "댓글", "추천수", "좋아요",
		"브랜드", "정품", "오리지널", "authentic", "AUTHENTIC",
		"프리미엄", "럭셔리", "고급", "최고급", "퀄리티", "품질",
		"2024", "2023", "2022", "SS", "FW", "AW", "봄", "여름", "가을", "겨울",
		"아동", "키즈", "베이비", "유아", "어린이", "아기", "신생아",
		"남아", "여아", "남녀공용", "공용", "남여공용",
		"(", ")", "[", "]", "{", "}", "★", "☆", "♥", "♡", "◎", "○", "●",
		"※", "♠", "♣", "♦", "▲", "▼", "◀", "▶", "■", "□", "▣", "▤",
		"~", "-", "_", "=", "+", "!", "@", "#", "$", "%", "^", "&", "*",
		".", ",", "?", "/", "\\", "|", ":", ";", "'", "\"", "`",
		"<", ">", "《", "》", "「", "」", "『", "』", "【", "】",
		"*13~15*", "*11~13*", "*9~11*", "*7~9*", "*5~7*", "*3~5*",
		"*90~100*", "*100~110*", "*110~120*", "*120~130*", "*130~140*",
		"*140~150*", "*150~160*", "*160~170*",
		"*XS~XL*", "*S~XL*", "*M~XL*", "*L~XXL*", "*FREE*",
		"*JS~JXL*", "*JM~JXL*", "*JS~JL*", "*JM~JL*",
	}
}
