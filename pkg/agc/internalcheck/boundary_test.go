package internalcheck

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const bindingsPkg = "github.com/genomekit/agc-go/internal/bindings"

// TestForeignMemoryStaysInBindings enforces the layering rule: only
// internal/bindings may import "C" or "unsafe". Every package above it
// works exclusively with Go-owned copies of native data.
func TestForeignMemoryStaysInBindings(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
	}

	pkgs, err := packages.Load(cfg, "github.com/genomekit/agc-go/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string
	for _, pkg := range pkgs {
		if pkg.PkgPath == bindingsPkg {
			continue
		}
		for _, file := range pkg.Syntax {
			for _, imp := range file.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				if err != nil {
					continue
				}
				if path == "C" || path == "unsafe" {
					pos := pkg.Fset.Position(imp.Pos())
					findings = append(findings, fmt.Sprintf("%s: import %q belongs only in %s", pos, path, bindingsPkg))
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("FFI boundary violation:\n%s", strings.Join(findings, "\n"))
	}
}

// TestBindingsOnlyImportedByAgc keeps the raw layer private to the managed
// wrapper: nothing besides pkg/agc may reach for internal/bindings.
func TestBindingsOnlyImportedByAgc(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports,
	}

	pkgs, err := packages.Load(cfg, "github.com/genomekit/agc-go/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	const wrapperPkg = "github.com/genomekit/agc-go/pkg/agc"

	var findings []string
	for _, pkg := range pkgs {
		if pkg.PkgPath == wrapperPkg || pkg.PkgPath == bindingsPkg {
			continue
		}
		if _, ok := pkg.Imports[bindingsPkg]; ok {
			findings = append(findings, fmt.Sprintf("%s imports %s; use %s instead", pkg.PkgPath, bindingsPkg, wrapperPkg))
		}
	}

	if len(findings) > 0 {
		t.Fatalf("raw-layer privacy violation:\n%s", strings.Join(findings, "\n"))
	}
}
