/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Seednode/hanabi-variants/variants"
	"github.com/julienschmidt/httprouter"
)

type apiError struct {
	Error string `json:"error"`
}

type identityResponse struct {
	Variant  string             `json:"variant"`
	Note     string             `json:"note"`
	Matched  bool               `json:"matched"`
	Identity *variants.Identity `json:"identity,omitempty"`
	Suit     string             `json:"suit,omitempty"`
}

func writeJSON(cfg *Config, w http.ResponseWriter, status int, v any) (int, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return 0, err
	}
	body = append(body, '\n')

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	securityHeaders(cfg, w)
	w.WriteHeader(status)

	return w.Write(body)
}

// serveJSON renders whatever lookup returns. A nil result is a 404.
func serveJSON(cfg *Config, what string, errs chan<- error, lookup func(p httprouter.Params, r *http.Request) any) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		startTime := time.Now()

		status := http.StatusOK
		result := lookup(p, r)
		if result == nil {
			status = http.StatusNotFound
			result = apiError{Error: "not found"}
		}

		written, err := writeJSON(cfg, w, status, result)
		if err != nil {
			errs <- err

			return
		}

		logf(cfg, "SERVE: %s (%s) to %s in %s",
			what,
			humanReadableSize(int64(written)),
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

func matchIdentity(v *variants.Variant, note string) identityResponse {
	resp := identityResponse{Variant: v.Name, Note: note}

	id, ok := v.IdentityNotePattern.Match(note)
	if !ok {
		return resp
	}

	resp.Matched = true
	resp.Identity = &id
	if id.SuitIndex >= 0 {
		resp.Suit = v.Suits[id.SuitIndex].Name
	}
	return resp
}

func registerAPI(cfg *Config, reg *Registry, m *metrics, mux *httprouter.Router, errs chan<- error) {
	mux.GET(cfg.prefix+"/api/variants", m.instrument("api_catalog",
		serveJSON(cfg, "Variant catalog", errs, func(httprouter.Params, *http.Request) any {
			return reg.Catalog
		})))

	mux.GET(cfg.prefix+"/api/names", m.instrument("api_names",
		serveJSON(cfg, "Variant names", errs, func(httprouter.Params, *http.Request) any {
			return reg.Catalog.Names()
		})))

	mux.GET(cfg.prefix+"/api/variants/:name", m.instrument("api_variant",
		serveJSON(cfg, "Variant", errs, func(p httprouter.Params, _ *http.Request) any {
			if v, ok := reg.Catalog.Get(p.ByName("name")); ok {
				return v
			}
			return nil
		})))

	mux.GET(cfg.prefix+"/api/variants/:name/identity", m.instrument("api_identity",
		serveJSON(cfg, "Identity note", errs, func(p httprouter.Params, r *http.Request) any {
			if v, ok := reg.Catalog.Get(p.ByName("name")); ok {
				return matchIdentity(v, r.URL.Query().Get("note"))
			}
			return nil
		})))

	mux.GET(cfg.prefix+"/api/ids/:id", m.instrument("api_id",
		serveJSON(cfg, "Variant by id", errs, func(p httprouter.Params, _ *http.Request) any {
			id, err := strconv.Atoi(p.ByName("id"))
			if err != nil {
				return nil
			}
			if v, ok := reg.Catalog.ByID(id); ok {
				return v
			}
			return nil
		})))

	mux.GET(cfg.prefix+"/api/colors", m.instrument("api_colors",
		serveJSON(cfg, "Colors", errs, func(httprouter.Params, *http.Request) any {
			return reg.Colors
		})))

	mux.GET(cfg.prefix+"/api/suits", m.instrument("api_suits",
		serveJSON(cfg, "Suits", errs, func(httprouter.Params, *http.Request) any {
			return reg.Suits
		})))
}
