/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

const qrSize = 320

// variantURL is the absolute URL of a variant page as seen by the client,
// respecting TLS and X-Forwarded-Proto.
func variantURL(cfg *Config, r *http.Request, name string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return scheme + "://" + r.Host + variantPath(cfg, name)
}

// serveVariantQR renders a PNG QR code linking to a variant's page, for
// sharing a variant at the table.
func serveVariantQR(cfg *Config, reg *Registry) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		v, ok := reg.Catalog.Get(p.ByName("name"))
		if !ok {
			http.Error(w, "no such variant", http.StatusNotFound)
			return
		}

		png, err := qrcode.Encode(variantURL(cfg, r, v.Name), qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(len(png)))
		w.Header().Set("Cache-Control", "public, max-age=3600")
		securityHeaders(cfg, w)

		_, _ = w.Write(png)
	}
}
