// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// outer layers no inner layer may import
var outer = []string{
	"dnalign/internal/appcore", "dnalign/internal/app", "dnalign/internal/serveapp",
	"dnalign/internal/cli", "dnalign/internal/clibase", "dnalign/cmd/",
}

func banned(extra ...string) []string { return append(append([]string{}, outer...), extra...) }

// under reports whether path is prefix itself or a package below it. A
// prefix ending in "/" matches only below.
func under(path, prefix string) bool {
	if strings.HasSuffix(prefix, "/") {
		return strings.HasPrefix(path, prefix)
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"dnalign/internal/engine": banned(
			"dnalign/internal/pipeline", "dnalign/internal/writers",
			"dnalign/internal/output", "dnalign/internal/pretty", "dnalign/internal/server",
		),
		"dnalign/internal/pipeline": banned("dnalign/internal/writers", "dnalign/internal/server"),
		"dnalign/internal/writers":  banned("dnalign/internal/pipeline", "dnalign/internal/server"),
		"dnalign/internal/output":   banned("dnalign/internal/pipeline", "dnalign/internal/writers"),
		"dnalign/internal/pretty":   banned("dnalign/internal/pipeline", "dnalign/internal/writers", "dnalign/internal/engine"),
		"dnalign/internal/server":   banned("dnalign/internal/pipeline", "dnalign/internal/writers"),
		"dnalign/pkg/":              banned("dnalign/internal/"),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "dnalign/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !under(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if under(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
