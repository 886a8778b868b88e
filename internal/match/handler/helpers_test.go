package handler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jihun2da/newmatch/internal/match/model"
)

func TestSplitBrandProduct(t *testing.T) {
	cases := []struct {
		in      string
		brand   string
		product string
	}{
		{"소예 테리헤어밴드", "소예", "테리헤어밴드"},
		{"소예 꽃 티셔츠", "소예", "꽃 티셔츠"},
		{"소예(본사) 꽃 티셔츠", "소예(본사)", "꽃 티셔츠"},
		{"소예", "소예", ""},
		{"", "", ""},
	}
	for _, c := range cases {
		brand, product := SplitBrandProduct(c.in)
		require.Equal(t, c.brand, brand, "input %q", c.in)
		require.Equal(t, c.product, product, "input %q", c.in)
	}
}

func TestToInputRows(t *testing.T) {
	rows := [][]string{
		{"순번", "주문일", "주문자", "연락처", "브랜드 상품명", "옵션", "수량"},
		{"1", "", "", "", "소예 테리헤어밴드", "색상=블랙/사이즈=M", "2"},
		{"2", "", "", "", "", "사이즈=L", "1"}, // no item cell, dropped
		{"3", "", "", "", "린도 바디수트", "", ""},
		{"짧은행"},
	}
	out := ToInputRows(rows, DefaultMapping())
	require.Equal(t, []model.InputRow{
		{Brand: "소예", Product: "테리헤어밴드", OptionText: "색상=블랙/사이즈=M", Quantity: 2},
		{Brand: "린도", Product: "바디수트", Quantity: 1},
	}, out)
}

func TestParseQty(t *testing.T) {
	require.Equal(t, 2, parseQty("2"))
	require.Equal(t, 2, parseQty("2.0"))
	require.Equal(t, 1200, parseQty("1,200"))
	require.Equal(t, 1, parseQty(""))
	require.Equal(t, 1, parseQty("x"))
	require.Equal(t, 1, parseQty("-3"))
}
