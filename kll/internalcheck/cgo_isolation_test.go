package internalcheck

import (
	"fmt"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// bindingsPkg is the only package allowed to import "C". Everything else must
// go through its exported wrappers so that argument validation cannot be
// bypassed.
const bindingsPkg = "github.com/homeffjy/kll-go/internal/bindings"

func TestCgoIsolation(t *testing.T) {
	cfg := &packages.Config{
		Mode:  packages.NeedFiles | packages.NeedName,
		Tests: true,
	}

	pkgs, err := packages.Load(cfg, "github.com/homeffjy/kll-go/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	// Parse the on-disk sources rather than the loaded syntax: cgo
	// preprocessing rewrites the import away before type checking.
	fset := token.NewFileSet()
	var findings []string
	seen := map[string]bool{}

	for _, pkg := range pkgs {
		if strings.HasPrefix(pkg.PkgPath, bindingsPkg) {
			continue
		}
		for _, name := range pkg.GoFiles {
			if seen[name] {
				continue
			}
			seen[name] = true

			file, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", name, err)
			}
			for _, imp := range file.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				if err != nil || path != "C" {
					continue
				}
				findings = append(findings, fmt.Sprintf("%s imports \"C\"", name))
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("cgo must stay inside %s:\n%s", bindingsPkg, strings.Join(findings, "\n"))
	}
}
