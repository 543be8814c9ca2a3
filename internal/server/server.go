// Package server exposes one pipeline run over HTTP. The snapshot is
// computed at startup and served read-only, so handlers share it without
// locking.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"snack-insights-go/internal/aggregator"
	"snack-insights-go/internal/logger"
	"snack-insights-go/internal/pipeline"
	"snack-insights-go/internal/types"
)

// Handler builds the API routes over a finished pipeline run.
func Handler(res pipeline.Result) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	mux.HandleFunc("/api/summary", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).WithField("handler", "summary").Info("summary requested")
		healthy := res.HealthyCount()
		pct := 0.0
		if len(res.Products) > 0 {
			pct = 100 * float64(healthy) / float64(len(res.Products))
		}
		writeJSON(w, http.StatusOK, types.SummaryResponse{
			TotalProducts:   len(res.Products),
			TotalCategories: len(res.Categories),
			TotalBrands:     len(res.Brands),
			HealthyProducts: healthy,
			HealthyPct:      pct,
			Thresholds:      res.Thresholds,
		})
	})

	mux.HandleFunc("/api/brands", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "brands")
		brands := res.Brands
		if t := r.URL.Query().Get("top"); t != "" {
			n, err := strconv.Atoi(t)
			if err != nil || n < 1 {
				reqLog.WithField("top", t).Warn("bad top parameter")
				http.Error(w, "top must be a positive integer", http.StatusBadRequest)
				return
			}
			if n < len(brands) {
				brands = brands[:n]
			}
		}
		reqLog.WithField("returned", len(brands)).Info("leaderboard served")
		writeJSON(w, http.StatusOK, types.LeaderboardResponse{
			Thresholds: res.Thresholds,
			MinSupport: res.MinSupport,
			Brands:     brands,
		})
	})

	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).WithField("handler", "categories").Info("category gap served")
		writeJSON(w, http.StatusOK, types.CategoryGapResponse{
			Thresholds: res.Thresholds,
			Categories: res.Categories,
		})
	})

	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "products")
		filter, err := parseProductFilter(r)
		if err != nil {
			reqLog.WithError(err).Warn("bad filter")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		matched := make([]types.Product, 0, 64)
		for _, p := range res.Products {
			if filter.match(p, res.Thresholds) {
				matched = append(matched, p)
			}
		}
		out := matched
		if filter.limit > 0 && filter.limit < len(out) {
			out = out[:filter.limit]
		}
		reqLog.WithField("matched", len(matched)).WithField("returned", len(out)).Info("products served")
		writeJSON(w, http.StatusOK, types.ProductsResponse{
			Matched:  len(matched),
			Returned: len(out),
			Products: out,
		})
	})

	mux.HandleFunc("/api/recommendation", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).WithField("handler", "recommendation").Info("recommendation served")
		writeJSON(w, http.StatusOK, res.Recommendation)
	})

	return mux
}

// productFilter mirrors the dashboard sidebar: category multi-select,
// nutrient sliders, healthy-only toggle.
type productFilter struct {
	categories map[string]struct{}
	maxSugar   float64
	minProtein float64
	healthy    bool
	limit      int
}

func parseProductFilter(r *http.Request) (productFilter, error) {
	q := r.URL.Query()
	f := productFilter{maxSugar: -1, minProtein: -1, limit: 20}

	if cats := q.Get("category"); cats != "" {
		f.categories = map[string]struct{}{}
		for _, c := range strings.Split(cats, ",") {
			f.categories[strings.TrimSpace(strings.ToLower(c))] = struct{}{}
		}
	}
	var err error
	if v := q.Get("max_sugar"); v != "" {
		if f.maxSugar, err = strconv.ParseFloat(v, 64); err != nil {
			return f, fmt.Errorf("max_sugar must be numeric")
		}
	}
	if v := q.Get("min_protein"); v != "" {
		if f.minProtein, err = strconv.ParseFloat(v, 64); err != nil {
			return f, fmt.Errorf("min_protein must be numeric")
		}
	}
	if v := q.Get("limit"); v != "" {
		if f.limit, err = strconv.Atoi(v); err != nil || f.limit < 1 {
			return f, fmt.Errorf("limit must be a positive integer")
		}
	}
	f.healthy = q.Get("healthy") == "1" || strings.EqualFold(q.Get("healthy"), "true")
	return f, nil
}

func (f productFilter) match(p types.Product, th types.Thresholds) bool {
	if f.categories != nil {
		if _, ok := f.categories[strings.ToLower(p.PrimaryCategory)]; !ok {
			return false
		}
	}
	if f.maxSugar >= 0 && p.Sugars100g > f.maxSugar {
		return false
	}
	if f.minProtein >= 0 && p.Proteins100g < f.minProtein {
		return false
	}
	if f.healthy && !aggregator.Classify(p, th) {
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.New().WithError(err).Error("failed to write response")
	}
}
