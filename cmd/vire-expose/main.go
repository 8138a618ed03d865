// Command vire-expose cross-checks a YAML exposure Manifest
// (internal/expose.Manifest) against the Go package it claims to
// describe, so a renamed or removed method fails a build instead of
// silently dropping Language-level coverage: load a config, inspect,
// print one line per binding, fail loud on the first mismatch.
package main

import (
	"fmt"
	"os"

	"github.com/vire-lang/vire/internal/expose"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <manifest.yaml> <go-package-path>\n", os.Args[0])
		os.Exit(2)
	}
	manifestPath, pkgPath := os.Args[1], os.Args[2]

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	manifest, err := expose.LoadManifest(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Manifest: %s\n", manifestPath)
	fmt.Printf("Types: %d\n", len(manifest.Types))
	for _, t := range manifest.Types {
		fmt.Printf("  %s → %d methods, %d members\n", t.Name, len(t.Methods), len(t.Members))
	}

	fmt.Printf("\nInspecting %s...\n", pkgPath)
	inspector := expose.NewInspector()
	errs := inspector.CheckManifest(pkgPath, manifest)
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "- %v\n", e)
		}
		os.Exit(1)
	}

	fmt.Println("\nAll checks passed")
}
