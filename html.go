/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"
	"html"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Seednode/hanabi-variants/variants"
	"github.com/julienschmidt/httprouter"
)

func writeHTML(cfg *Config, w http.ResponseWriter, status int, page string) (int, error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(page)))
	securityHeaders(cfg, w)
	w.WriteHeader(status)

	return w.Write([]byte(page))
}

func serveHomePage(cfg *Config, reg *Registry, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		var body strings.Builder

		body.WriteString(fmt.Sprintf("<h1>Variants</h1><p>%d variants, compiled %s.</p>",
			reg.Catalog.Len(), reg.Loaded.Format(time.RFC1123)))
		body.WriteString(`<table><tr><th>ID</th><th>Name</th><th>Suits</th><th>Max score</th></tr>`)

		for _, v := range reg.Catalog.All() {
			body.WriteString(fmt.Sprintf(`<tr><td>%d</td><td><a href="%s">%s</a></td><td>%s</td><td>%d</td></tr>`,
				v.ID,
				html.EscapeString(variantPath(cfg, v.Name)),
				html.EscapeString(v.Name),
				html.EscapeString(suitSummary(v)),
				v.MaxScore,
			))
		}

		body.WriteString(`</table>`)

		written, err := writeHTML(cfg, w, http.StatusOK, newPage("Variants", body.String()))
		if err != nil {
			errs <- err

			return
		}

		logf(cfg, "SERVE: Home page (%s) to %s in %s",
			humanReadableSize(int64(written)),
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

func serveVariantPage(cfg *Config, reg *Registry, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		startTime := time.Now()

		v, ok := reg.Catalog.Get(p.ByName("name"))
		if !ok {
			_, err := writeHTML(cfg, w, http.StatusNotFound, newPage("Not Found", "No such variant."))
			if err != nil {
				errs <- err
			}

			return
		}

		var body strings.Builder

		body.WriteString(fmt.Sprintf("<h1>%s</h1>", html.EscapeString(v.Name)))
		body.WriteString(`<table>`)

		row := func(label, value string) {
			body.WriteString(fmt.Sprintf("<tr><th>%s</th><td>%s</td></tr>", label, html.EscapeString(value)))
		}

		row("ID", strconv.Itoa(v.ID))
		row("Suits", suitSummary(v))
		row("Ranks", joinInts(v.Ranks))
		row("Clue colors", strings.Join(v.ClueColorNames(), ", "))
		row("Clue ranks", joinInts(v.ClueRanks))
		row("Max score", strconv.Itoa(v.MaxScore))
		if v.SpecialRank != -1 {
			row("Special rank", strconv.Itoa(v.SpecialRank))
		}
		if flags := enabledFlags(v); len(flags) > 0 {
			row("Rules", strings.Join(flags, ", "))
		}
		row("Identity notes", v.IdentityNotePattern.String())

		body.WriteString(`</table>`)
		body.WriteString(fmt.Sprintf(`<p><img alt="QR code" src="%s/qr" width="320" height="320"></p>`,
			html.EscapeString(variantPath(cfg, v.Name))))
		body.WriteString(fmt.Sprintf(`<p><a href="%s/">All variants</a></p>`, html.EscapeString(cfg.prefix)))

		written, err := writeHTML(cfg, w, http.StatusOK, newPage(v.Name, body.String()))
		if err != nil {
			errs <- err

			return
		}

		logf(cfg, "SERVE: Variant page for %q (%s) to %s in %s",
			v.Name,
			humanReadableSize(int64(written)),
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

func serveHealthCheck(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(cfg, w)

		_, err := w.Write([]byte("Ok\n"))
		if err != nil {
			errs <- err

			return
		}
	}
}

func serveRobots(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		data := `User-agent: *
Disallow: /api/
Disallow: /ws

User-agent: GPTBot
Disallow: /

User-agent: CCBot
Disallow: /`

		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		securityHeaders(cfg, w)

		_, err := w.Write([]byte(data))
		if err != nil {
			errs <- err

			return
		}
	}
}

func registerVariantPages(cfg *Config, reg *Registry, m *metrics, mux *httprouter.Router, errs chan<- error) {
	mux.GET(cfg.prefix+"/variants/:name", m.instrument("variant_page", serveVariantPage(cfg, reg, errs)))
	mux.GET(cfg.prefix+"/variants/:name/qr", m.instrument("variant_qr", serveVariantQR(cfg, reg)))
}

func suitSummary(v *variants.Variant) string {
	parts := make([]string, 0, len(v.Suits))
	for i, s := range v.Suits {
		parts = append(parts, fmt.Sprintf("%s (%s)", s.DisplayName, v.SuitAbbreviations[i]))
	}
	return strings.Join(parts, ", ")
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ", ")
}

func enabledFlags(v *variants.Variant) []string {
	flags := []struct {
		name string
		set  bool
	}{
		{"colorCluesTouchNothing", v.ColorCluesTouchNothing},
		{"rankCluesTouchNothing", v.RankCluesTouchNothing},
		{"specialAllClueColors", v.SpecialAllClueColors},
		{"specialAllClueRanks", v.SpecialAllClueRanks},
		{"specialNoClueColors", v.SpecialNoClueColors},
		{"specialNoClueRanks", v.SpecialNoClueRanks},
		{"specialDeceptive", v.SpecialDeceptive},
		{"oddsAndEvens", v.OddsAndEvens},
		{"funnels", v.Funnels},
		{"chimneys", v.Chimneys},
		{"showSuitNames", v.ShowSuitNames},
	}

	var out []string
	for _, f := range flags {
		if f.set {
			out = append(out, f.name)
		}
	}
	return out
}
