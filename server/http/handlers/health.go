package handlers

import (
	"encoding/json"
	"net/http"
)

func Health(stats func() map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "ok",
			"stats":  stats(),
		})
	}
}
