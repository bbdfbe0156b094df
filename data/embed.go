// Package data bundles the bin reference dataset into the binary.
package data

import "embed"

//go:embed bin-list-data.csv
var FS embed.FS
