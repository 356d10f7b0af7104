// Package buildinfo exposes version metadata injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/housesell/internal/buildinfo.BuildVersion=v1.0.0 \
//	  -X github.com/dmitrijs2005/housesell/internal/buildinfo.BuildDate=$(date -u +%F) \
//	  -X github.com/dmitrijs2005/housesell/internal/buildinfo.BuildCommit=$(git rev-parse --short HEAD)" \
//	  ./cmd/housesell
package buildinfo

import (
	"fmt"
	"io"
)

var (
	BuildVersion = "N/A"
	BuildDate    = "N/A"
	BuildCommit  = "N/A"
)

// PrintBuildData writes the version banner to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", BuildVersion)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "Build commit: %s\n", BuildCommit)
}
