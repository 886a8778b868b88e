package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jihun2da/newmatch/internal/match/model"
)

// Client loads the brand catalog from a published Google Sheets CSV
// export. Any fetch or parse problem degrades to the built-in fallback
// dataset instead of an error, so the service always has a catalog.
type Client struct {
	log          zerolog.Logger
	url          string
	http         *http.Client
	lenientDedup bool
}

func NewClient(log zerolog.Logger, url string, timeout time.Duration, lenientDedup bool) *Client {
	return &Client{
		log:          log,
		url:          url,
		http:         &http.Client{Timeout: timeout},
		lenientDedup: lenientDedup,
	}
}

// Fetch downloads and parses the catalog. On failure it logs the cause
// and returns FallbackRecords.
func (c *Client) Fetch(ctx context.Context) []model.CatalogRecord {
	records, err := c.fetch(ctx)
	if err != nil {
		c.log.Error().Err(err).Str("url", c.url).Msg("catalog fetch failed, using fallback dataset")
		return FallbackRecords()
	}
	if len(records) == 0 {
		c.log.Warn().Str("url", c.url).Msg("catalog fetch returned no usable rows, using fallback dataset")
		return FallbackRecords()
	}
	c.log.Info().Int("records", len(records)).Msg("catalog fetched")
	return records
}

func (c *Client) fetch(ctx context.Context) ([]model.CatalogRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	body = bytes.TrimPrefix(body, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return c.FromRows(rows), nil
}

// FromRows converts raw sheet rows to catalog records. Expected layout:
// brand, product, supplier, wholesale price, option. Header rows, rows
// missing brand or product, and duplicates are dropped.
func (c *Client) FromRows(rows [][]string) []model.CatalogRecord {
	out := make([]model.CatalogRecord, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if len(row) < 5 {
			continue
		}
		brand := strings.TrimSpace(row[0])
		product := strings.TrimSpace(row[1])
		if skipBrand(brand) || skipProduct(product) {
			continue
		}
		option := strings.TrimSpace(row[4])

		key := strings.ToLower(brand) + "\x00" + strings.ToLower(product)
		if !c.lenientDedup {
			key += "\x00" + strings.ToLower(option)
		}
		if _, ok := seen[key]; ok {
			continue // keep the first occurrence
		}
		seen[key] = struct{}{}

		out = append(out, model.CatalogRecord{
			Brand:          brand,
			Product:        product,
			Supplier:       strings.TrimSpace(row[2]),
			WholesalePrice: parsePrice(row[3]),
			OptionText:     option,
		})
	}
	return out
}

func skipBrand(s string) bool {
	l := strings.ToLower(s)
	return l == "" || l == "nan" || s == "브랜드"
}

func skipProduct(s string) bool {
	l := strings.ToLower(s)
	return l == "" || l == "nan" || s == "상품명"
}

// parsePrice tolerates thousands separators and stray whitespace;
// anything unparseable or negative becomes 0, which the scorer treats
// as "price unknown".
func parsePrice(s string) float64 {
	s = strings.NewReplacer(",", "", " ", "", " ", "", "원", "").Replace(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
