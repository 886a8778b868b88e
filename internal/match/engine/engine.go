package engine

import (
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/jihun2da/newmatch/internal/match/model"
)

// Engine matches uploaded order rows against a brand-indexed catalog
// snapshot. Matching is read-only on the snapshot; SetCatalog swaps the
// whole index atomically, so concurrent requests either see the old
// catalog or the new one, never a mix.
type Engine struct {
	log  zerolog.Logger
	cfg  Config
	norm *Normalizer

	mu    sync.RWMutex
	index *BrandIndex

	synCache  *boundedCache[string]
	jamoCache *boundedCache[string]
	simCache  *boundedCache[float64]
}

func New(log zerolog.Logger, keywords []string, cfg Config) *Engine {
	return &Engine{
		log:       log,
		cfg:       cfg.withDefaults(),
		norm:      NewNormalizer(keywords),
		index:     BuildBrandIndex(nil),
		synCache:  newBoundedCache[string](synonymCacheCap, false),
		jamoCache: newBoundedCache[string](jamoCacheCap, false),
		simCache:  newBoundedCache[float64](similarityCacheCap, false),
	}
}

// SetCatalog replaces the catalog snapshot wholesale.
func (e *Engine) SetCatalog(records []model.CatalogRecord) {
	idx := BuildBrandIndex(records)
	e.mu.Lock()
	e.index = idx
	e.mu.Unlock()
	e.log.Info().
		Int("records", idx.Len()).
		Int("brands", len(idx.Brands())).
		Msg("catalog snapshot replaced")
}

func (e *Engine) snapshot() *BrandIndex {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.index
}

type candidate struct {
	rec        *model.CatalogRecord
	productSim float64
}

// MatchRow runs the two-stage primary pass for a single row.
func (e *Engine) MatchRow(brand, product, size, color string) model.MatchResult {
	return e.matchRow(e.snapshot(), brand, product, size, color, time.Now().Add(e.cfg.RowTimeout))
}

func (e *Engine) matchRow(idx *BrandIndex, brand, product, size, color string, deadline time.Time) model.MatchResult {
	if strings.TrimSpace(brand) == "" || strings.TrimSpace(product) == "" {
		return fail("빈 브랜드 또는 상품명")
	}

	size = NormalizeSizeFormat(strings.ToUpper(strings.TrimSpace(size)))
	color = strings.ToLower(strings.TrimSpace(color))
	normProduct := e.norm.Normalize(product)

	bucket := idx.Lookup(brand)
	if len(bucket) == 0 {
		return fail("브랜드 없음: " + brand)
	}

	// Stage 1: product-name screen over the brand bucket.
	stage1Deadline := time.Now().Add(e.cfg.Stage1Timeout)
	if deadline.Before(stage1Deadline) {
		stage1Deadline = deadline
	}
	uploadLen := utf8.RuneCountInString(normProduct)

	candidates := make([]candidate, 0, stage2TopN)
	for i, rec := range bucket {
		if i >= stage1CandidateCap {
			break
		}
		if time.Now().After(stage1Deadline) {
			e.log.Warn().Str("brand", brand).Int("scanned", i).Msg("stage1 budget expired, using partial candidates")
			break
		}
		normCat := e.norm.Normalize(rec.Product)
		catLen := utf8.RuneCountInString(normCat)
		if uploadLen == 0 || catLen == 0 {
			continue
		}
		shorter, longer := uploadLen, catLen
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		if float64(shorter)/float64(longer) < lengthRatioMin {
			continue
		}
		sim := e.Similarity(normProduct, normCat)
		if sim < stage1Floor {
			continue
		}
		candidates = append(candidates, candidate{rec: rec, productSim: sim})
	}
	if len(candidates) == 0 {
		return fail("상품명 유사 후보 없음")
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].productSim > candidates[j].productSim
	})
	if len(candidates) > stage2TopN {
		candidates = candidates[:stage2TopN]
	}

	// Stage 2: option-aware scoring over the top candidates.
	var best model.MatchResult
	bestTotal := -1.0
	for _, c := range candidates {
		if time.Now().After(deadline) {
			e.log.Warn().Str("brand", brand).Msg("row budget expired mid stage2")
			break
		}

		colorSim := 100.0
		if color != "" {
			if pat := ExtractColor(c.rec.OptionText); pat != "" {
				colorSim = e.ColorSimilarity(color, pat)
			} else {
				colorSim = 0
			}
		}

		sizeSim := 100.0
		if size != "" {
			if pat := ExtractSize(c.rec.OptionText); pat != "" {
				sizeSim = CheckSizeMatch(size, pat)
			} else {
				sizeSim = 0
			}
		}
		if sizeSim < sizeGate {
			continue
		}

		priceSim := neutralPriceScore
		total := c.productSim*weightProduct +
			sizeSim*weightSize +
			colorSim*weightColor +
			priceSim*weightPrice
		if total < totalFloor {
			continue
		}

		res := model.MatchResult{
			Success:        true,
			Supplier:       c.rec.Supplier,
			WholesalePrice: c.rec.WholesalePrice,
			MatchedLabel:   c.rec.Brand + " " + c.rec.Product,
			Diag: model.Diagnostics{
				ProductSim: c.productSim,
				SizeSim:    sizeSim,
				ColorSim:   colorSim,
				TotalSim:   total,
			},
		}
		if total >= earlyAccept {
			return res
		}
		if total > bestTotal {
			bestTotal = total
			best = res
		}
	}
	if bestTotal < 0 {
		return fail("옵션 조건 불일치")
	}
	return best
}

func fail(reason string) model.MatchResult {
	return model.MatchResult{Success: false, Reason: reason}
}

// ProcessBatch runs the primary pass over every input row. Rows with no
// brand or product fail in place but are not forwarded to the fallback
// pass, since the fallback needs at least a brand bucket to scan.
func (e *Engine) ProcessBatch(rows []model.InputRow) ([]model.MatchResult, []model.FailedRow) {
	idx := e.snapshot()
	started := time.Now()

	results := make([]model.MatchResult, 0, len(rows))
	var failed []model.FailedRow
	for i, row := range rows {
		opt := ParseOptions(row.OptionText)
		qty := row.Quantity
		if qty <= 0 {
			qty = 1
		}

		res := e.matchRow(idx, row.Brand, row.Product, opt.Size, opt.Color, time.Now().Add(e.cfg.RowTimeout))
		res.Quantity = qty
		if res.Success {
			res.Amount = res.WholesalePrice * float64(qty)
		} else {
			res.MatchedLabel = FailureLabel
			if strings.TrimSpace(row.Brand) != "" && strings.TrimSpace(row.Product) != "" {
				failed = append(failed, model.FailedRow{
					Brand:    row.Brand,
					Product:  row.Product,
					Color:    opt.Color,
					Size:     opt.Size,
					Quantity: qty,
					RowIndex: i,
				})
			}
		}
		results = append(results, res)
	}

	e.log.Info().
		Int("rows", len(rows)).
		Int("matched", len(rows)-len(failed)).
		Int("failed", len(failed)).
		Dur("took", time.Since(started)).
		Msg("batch processed")
	return results, failed
}

// FindSimilar is the lenient second chance for rows the primary pass
// rejected. It scores on a 0..1 scale with a much lower floor and plain
// edit distance, and reports near-misses instead of committing a match.
func (e *Engine) FindSimilar(failed []model.FailedRow) []model.SimilarResult {
	idx := e.snapshot()

	out := make([]model.SimilarResult, 0, len(failed))
	for _, row := range failed {
		bucket := idx.Lookup(row.Brand)
		if len(bucket) == 0 {
			continue
		}
		if len(bucket) > fallbackCandidateCap {
			bucket = bucket[:fallbackCandidateCap]
		}

		deadline := time.Now().Add(e.cfg.FallbackRowTimeout)
		normUpload := e.norm.Normalize(row.Product)
		uploadColors := optionVariants(row.Color)
		uploadSizes := optionVariants(row.Size)

		var best model.SimilarResult
		found := false
		scanned := 0
		for _, rec := range bucket {
			if scanned >= fallbackScanCap || time.Now().After(deadline) {
				break
			}
			scanned++

			ps := Ratio(normUpload, e.norm.Normalize(rec.Product))
			if ps < fallbackProductFloor {
				continue
			}

			colorSim := bestVariantScore(uploadColors, ExtractColor(rec.OptionText), colorRatio)
			sizeSim := bestVariantScore(uploadSizes, ExtractSize(rec.OptionText), sizeRatio)

			// Reweight when the upload row omits a field so an absent
			// option never drags the total down.
			var total float64
			switch {
			case row.Color == "" && row.Size == "":
				total = ps
			case row.Color == "":
				total = ps*0.8 + sizeSim*fallbackWeightSize
			case row.Size == "":
				total = ps*0.8 + colorSim*fallbackWeightColor
			default:
				total = ps*fallbackWeightProduct +
					colorSim*fallbackWeightColor +
					sizeSim*fallbackWeightSize
			}

			if !found || total > best.TotalSim {
				found = true
				best = model.SimilarResult{
					Source:         row,
					Brand:          rec.Brand,
					Product:        rec.Product,
					Supplier:       rec.Supplier,
					WholesalePrice: rec.WholesalePrice,
					OptionText:     rec.OptionText,
					ProductSim:     ps,
					ColorSim:       colorSim,
					SizeSim:        sizeSim,
					TotalSim:       total,
					Similar:        total >= fallbackAcceptFloor,
				}
			}
		}
		// A row whose bucket produced no candidate above the floor is
		// still reported, with zero scores and Similar=false, so the
		// result sheet accounts for every failed row.
		if !found {
			best = model.SimilarResult{Source: row}
		}
		out = append(out, best)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalSim > out[j].TotalSim })
	return out
}

// bestVariantScore takes the best pairwise score between the upload-side
// variants and the catalog option field's variants. Either side missing
// scores zero; the caller's reweighting handles that case.
func bestVariantScore(uploadVariants []string, catalogField string, score func(a, b string) float64) float64 {
	if len(uploadVariants) == 0 || strings.TrimSpace(catalogField) == "" {
		return 0
	}
	catVariants := optionVariants(catalogField)
	best := 0.0
	for _, u := range uploadVariants {
		for _, c := range catVariants {
			if s := score(u, c); s > best {
				best = s
			}
		}
	}
	return best
}

// Stats reports cache and catalog occupancy, for the health endpoint.
func (e *Engine) Stats() map[string]any {
	idx := e.snapshot()
	return map[string]any{
		"catalogRecords":  idx.Len(),
		"catalogBrands":   len(idx.Brands()),
		"similarityCache": e.simCache.size(),
		"synonymCache":    e.synCache.size(),
		"jamoCache":       e.jamoCache.size(),
	}
}
