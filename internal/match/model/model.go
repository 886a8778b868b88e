package model

// CatalogRecord is one row of the brand matching sheet. Records are
// immutable once loaded; the engine holds references into the snapshot
// and never copies them into mutable state.
type CatalogRecord struct {
	Brand          string  `json:"brand"`
	Product        string  `json:"product"`
	Supplier       string  `json:"supplier"`
	WholesalePrice float64 `json:"wholesalePrice"`
	OptionText     string  `json:"option"`
}

// InputRow is one uploaded order line-item.
type InputRow struct {
	Brand      string `json:"brand"`
	Product    string `json:"product"`
	OptionText string `json:"option"`
	Quantity   int    `json:"qty"`
}

// ParsedOption holds the color/size extracted from an option string.
// Empty fields mean "not specified" and are treated as wildcards.
type ParsedOption struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

// Diagnostics carries the per-factor scores behind a match decision.
type Diagnostics struct {
	ProductSim float64 `json:"productSim"`
	SizeSim    float64 `json:"sizeSim"`
	ColorSim   float64 `json:"colorSim"`
	TotalSim   float64 `json:"totalSim"`
}

type MatchResult struct {
	Success        bool        `json:"success"`
	Supplier       string      `json:"supplier"`
	WholesalePrice float64     `json:"wholesalePrice"`
	MatchedLabel   string      `json:"matchedLabel"` // brand + product of the catalog row
	Quantity       int         `json:"qty"`
	Amount         float64     `json:"amount"` // wholesale price x quantity
	Reason         string      `json:"reason,omitempty"`
	Diag           Diagnostics `json:"diag"`
}

// FailedRow is the snapshot of an input row that produced no match in the
// primary pass, fed into the fallback similarity pass.
type FailedRow struct {
	Brand    string `json:"brand"`
	Product  string `json:"product"`
	Color    string `json:"color"`
	Size     string `json:"size"`
	Quantity int    `json:"qty"`
	RowIndex int    `json:"row"`
}

// SimilarResult is one fallback-pass outcome. Scores are on a 0..1 scale,
// unlike the 0..100 primary-pass diagnostics.
type SimilarResult struct {
	Source         FailedRow `json:"source"`
	Brand          string    `json:"brand"`
	Product        string    `json:"product"`
	Supplier       string    `json:"supplier"`
	WholesalePrice float64   `json:"wholesalePrice"`
	OptionText     string    `json:"option"`
	ProductSim     float64   `json:"productSim"`
	ColorSim       float64   `json:"colorSim"`
	SizeSim        float64   `json:"sizeSim"`
	TotalSim       float64   `json:"totalSim"`
	Similar        bool      `json:"similar"`
}
