// check_catalog validates a content catalog and prints what each genre holds.
// Usage: go run scripts/check_catalog.go [catalog.yaml]
// Without an argument the built-in catalog is checked. With -export <out.yaml>
// the built-in catalog is written out as a starting point for edits.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"taleforge/internal/game"
)

func main() {
	code := run(os.Args[1:])
	if code != 0 {
		os.Exit(code)
	}
}

func run(args []string) int {
	switch {
	case len(args) == 2 && args[0] == "-export":
		return export(args[1])
	case len(args) > 1:
		fmt.Fprintf(os.Stderr, "usage: go run scripts/check_catalog.go [catalog.yaml | -export out.yaml]\n")
		return 1
	}

	var (
		cat *game.Catalog
		err error
	)
	if len(args) == 1 {
		cat, err = game.LoadCatalog(args[0])
	} else {
		cat, err = game.DefaultCatalog()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	for _, g := range game.Genres {
		gc := cat.Genres[g]
		fmt.Printf("%-8s locations=%d enemies=%d bosses=%d events=%d items=%d\n",
			g, len(gc.Locations), len(gc.Enemies), len(gc.Bosses), len(gc.Events), countItems(gc))
		for _, loc := range gc.Locations {
			if gc.Describe(loc) == "" {
				fmt.Printf("  warning: %q has no description\n", loc)
			}
		}
	}
	fmt.Printf("item effects=%d hints=%d perspectives=%d\n", len(cat.ItemEffects), len(cat.Hints), len(cat.Perspectives))
	return 0
}

func export(outPath string) int {
	outPath = filepath.Clean(outPath)
	if strings.Contains(outPath, "..") {
		fmt.Fprintf(os.Stderr, "path must not escape current directory\n")
		return 1
	}
	cat, err := game.DefaultCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	b, err := yaml.Marshal(cat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		return 1
	}
	if err := os.WriteFile(outPath, b, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", outPath, err)
		return 1
	}
	fmt.Println(outPath)
	return 0
}

func countItems(gc *game.GenreContent) int {
	n := 0
	for _, items := range gc.Items {
		n += len(items)
	}
	return n
}
