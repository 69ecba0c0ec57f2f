// Copyright 2026 The Emberforge Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/emberforge/respath/lib/respath"
)

// pathReport is the flattened component breakdown of one parsed path,
// shared by the parse and join commands for both text and JSON
// output.
type pathReport struct {
	Input            string   `json:"input"`
	Canonical        string   `json:"canonical"`
	Native           string   `json:"native"`
	Protocol         string   `json:"protocol"`
	ProtocolHash     string   `json:"protocol_hash"`
	Drive            string   `json:"drive,omitempty"`
	Directories      []string `json:"directories"`
	Filename         string   `json:"filename,omitempty"`
	Stem             string   `json:"stem,omitempty"`
	Extension        string   `json:"extension,omitempty"`
	Portion          string   `json:"portion,omitempty"`
	Absolute         bool     `json:"absolute"`
	UnresolvedParent bool     `json:"unresolved_parent,omitempty"`
}

func reportFor(input string, p respath.Path) pathReport {
	return pathReport{
		Input:            input,
		Canonical:        p.String(),
		Native:           p.NativeString(),
		Protocol:         p.Protocol(),
		ProtocolHash:     p.ProtocolHash().String(),
		Drive:            p.Drive(),
		Directories:      p.Directories(),
		Filename:         p.Filename(),
		Stem:             p.Stem(),
		Extension:        p.Extension(),
		Portion:          p.Portion(),
		Absolute:         p.IsAbsolute(),
		UnresolvedParent: p.HasUnresolvedParentReference(),
	}
}

func printReport(w io.Writer, report pathReport) error {
	writer := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintf(writer, "input\t%s\n", report.Input)
	fmt.Fprintf(writer, "canonical\t%s\n", report.Canonical)
	fmt.Fprintf(writer, "native\t%s\n", report.Native)
	fmt.Fprintf(writer, "protocol\t%s\n", report.Protocol)
	fmt.Fprintf(writer, "protocol-hash\t%s\n", report.ProtocolHash)
	if report.Drive != "" {
		fmt.Fprintf(writer, "drive\t%s\n", report.Drive)
	}
	if len(report.Directories) > 0 {
		fmt.Fprintf(writer, "directories\t%s\n", strings.Join(report.Directories, " / "))
	}
	if report.Filename != "" {
		fmt.Fprintf(writer, "filename\t%s\n", report.Filename)
		fmt.Fprintf(writer, "stem\t%s\n", report.Stem)
		if report.Extension != "" {
			fmt.Fprintf(writer, "extension\t%s\n", report.Extension)
		}
	}
	if report.Portion != "" {
		fmt.Fprintf(writer, "portion\t%s\n", report.Portion)
	}
	fmt.Fprintf(writer, "absolute\t%t\n", report.Absolute)
	if report.UnresolvedParent {
		fmt.Fprintf(writer, "unresolved-parent\ttrue\n")
	}
	return writer.Flush()
}

// flavorFromName maps the --flavor flag value to a path flavor.
func flavorFromName(name string) (respath.Flavor, error) {
	switch name {
	case "", "native":
		return respath.NativeFlavor(), nil
	case "posix":
		return respath.POSIX, nil
	case "windows":
		return respath.Windows, nil
	}
	return respath.Flavor{}, fmt.Errorf("unknown flavor %q (expected native, posix, or windows)", name)
}
