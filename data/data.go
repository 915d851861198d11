/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package data embeds the default color, suit, and variant catalogs.
package data

import _ "embed"

//go:embed colors.json
var Colors []byte

//go:embed suits.json
var Suits []byte

//go:embed variants.json
var Variants []byte
