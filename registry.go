/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"log"
	"os"
	"time"

	"github.com/Seednode/hanabi-variants/data"
	"github.com/Seednode/hanabi-variants/variants"
	"github.com/pkg/errors"
)

// Registry is the compiled catalog plus the reference tables it was built
// from. It is built once at startup and only read afterwards.
type Registry struct {
	Catalog  *variants.Catalog
	Colors   []*variants.Color
	Suits    []*variants.Suit
	Loaded   time.Time
	Duration time.Duration
}

type sources struct {
	colors   []byte
	suits    []byte
	variants []byte
}

func readSource(path string, embedded []byte) ([]byte, error) {
	if path == "" {
		return embedded, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return contents, nil
}

func readSources(cfg *Config, variantsFile string) (sources, error) {
	var (
		s   sources
		err error
	)

	if s.colors, err = readSource(cfg.colorsFile, data.Colors); err != nil {
		return sources{}, err
	}
	if s.suits, err = readSource(cfg.suitsFile, data.Suits); err != nil {
		return sources{}, err
	}
	if s.variants, err = readSource(variantsFile, data.Variants); err != nil {
		return sources{}, err
	}
	return s, nil
}

func compileSources(s sources) (*Registry, error) {
	startTime := time.Now()

	colors, err := variants.LoadColors(s.colors)
	if err != nil {
		return nil, errors.Wrap(err, "loading colors")
	}
	colorTable := variants.IndexColors(colors)

	suits, err := variants.LoadSuits(s.suits, colorTable)
	if err != nil {
		return nil, errors.Wrap(err, "loading suits")
	}

	catalog, err := variants.Compile(colorTable, variants.IndexSuits(suits), variants.StartCardRank, s.variants)
	if err != nil {
		return nil, errors.Wrap(err, "compiling variants")
	}

	return &Registry{
		Catalog:  catalog,
		Colors:   colors,
		Suits:    suits,
		Loaded:   time.Now(),
		Duration: time.Since(startTime),
	}, nil
}

// loadRegistry reads the configured (or embedded) tables and compiles them.
// Any failure leaves no registry behind.
func loadRegistry(cfg *Config) (*Registry, error) {
	s, err := readSources(cfg, cfg.variantsFile)
	if err != nil {
		return nil, err
	}

	reg, err := compileSources(s)
	if err != nil {
		logValidations(err)
		return nil, err
	}

	logf(cfg, "LOAD: Compiled %d variants from %d suits and %d colors (%s) in %s",
		reg.Catalog.Len(),
		len(reg.Suits),
		len(reg.Colors),
		humanReadableSize(int64(len(s.colors)+len(s.suits)+len(s.variants))),
		reg.Duration.Round(time.Microsecond),
	)

	return reg, nil
}

// logValidations prints every catalog problem, since the returned error
// only summarises the first.
func logValidations(err error) {
	list, ok := variants.AsValidations(err)
	if !ok || len(list) < 2 {
		return
	}
	for i := range list {
		log.Printf("%s | ERROR: %s", time.Now().Format(logDate), list[i].Error())
	}
}
