package main

import (
	"path/filepath"
	"strings"
)

// Kind says which adapter handles a file, decided by extension alone.
type Kind int

const (
	KindUnsupported Kind = iota
	KindRaster
	KindVector
)

var rasterExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".ico":  true,
}

// Classify maps a file name to its conversion kind by case-insensitive
// extension match. No content sniffing.
func Classify(name string) Kind {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case rasterExtensions[ext]:
		return KindRaster
	case ext == ".svg":
		return KindVector
	default:
		return KindUnsupported
	}
}
