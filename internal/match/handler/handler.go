package handler

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/jihun2da/newmatch/internal/catalog"
	"github.com/jihun2da/newmatch/internal/config"
	"github.com/jihun2da/newmatch/internal/fileio"
	"github.com/jihun2da/newmatch/internal/match/engine"
	"github.com/jihun2da/newmatch/internal/match/model"
)

type Handler struct {
	cfg     config.Config
	log     zerolog.Logger
	engine  *engine.Engine
	catalog *catalog.Client
}

func New(cfg config.Config, log zerolog.Logger, eng *engine.Engine, cat *catalog.Client) *Handler {
	return &Handler{cfg: cfg, log: log, engine: eng, catalog: cat}
}

type matchResponse struct {
	Results []model.MatchResult   `json:"results"`
	Similar []model.SimilarResult `json:"similar"`
	Rows    int                   `json:"rows"`
	Matched int                   `json:"matched"`
	Failed  int                   `json:"failed"`
	Elapsed string                `json:"elapsed"`
}

// Match accepts a multipart order-sheet upload and returns per-row
// results plus fallback suggestions as JSON.
func (h *Handler) Match(w http.ResponseWriter, r *http.Request) {
	rows, ok := h.readUpload(w, r)
	if !ok {
		return
	}
	start := time.Now()
	results, failed := h.engine.ProcessBatch(rows)
	similar := h.engine.FindSimilar(failed)

	resp := matchResponse{
		Results: results,
		Similar: similar,
		Rows:    len(rows),
		Matched: len(rows) - len(failed),
		Failed:  len(failed),
		Elapsed: time.Since(start).String(),
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		h.log.Error().Err(err).Msg("write json")
	}
}

// Export runs the same pipeline but answers with an xlsx workbook.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	rows, ok := h.readUpload(w, r)
	if !ok {
		return
	}
	results, failed := h.engine.ProcessBatch(rows)
	similar := h.engine.FindSimilar(failed)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="match_result.xlsx"`)
	if err := fileio.WriteResults(w, results, similar); err != nil {
		h.log.Error().Err(err).Msg("write workbook")
	}
}

// ReloadCatalog re-fetches the catalog sheet and swaps the snapshot.
func (h *Handler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.CatalogTimeout)
	defer cancel()

	records := h.catalog.Fetch(ctx)
	h.engine.SetCatalog(records)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]any{"records": len(records)})
}

// readUpload parses the multipart form, reads the "file" part and maps
// it to input rows. Column positions can be overridden per request via
// item_col / option_col / qty_col / skip_rows form values.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) ([]model.InputRow, bool) {
	defer r.Body.Close()
	if err := r.ParseMultipartForm(int64(h.cfg.MaxUploadMB) << 20); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	defer file.Close()

	raw, err := h.readRows(file, header)
	if err != nil {
		http.Error(w, "failed to read file: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}

	def := DefaultMapping()
	m := Mapping{
		ItemCol:   atoi(r.FormValue("item_col"), def.ItemCol),
		OptionCol: atoi(r.FormValue("option_col"), def.OptionCol),
		QtyCol:    atoi(r.FormValue("qty_col"), def.QtyCol),
		SkipRows:  atoi(r.FormValue("skip_rows"), def.SkipRows),
	}
	rows := ToInputRows(raw, m)
	if len(rows) == 0 {
		http.Error(w, "no order rows found in file", http.StatusBadRequest)
		return nil, false
	}
	return rows, true
}

func (h *Handler) readRows(file multipart.File, header *multipart.FileHeader) ([][]string, error) {
	return fileio.ReadAnyRows(file, header.Filename)
}
