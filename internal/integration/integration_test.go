// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dnalign/internal/app"
	"dnalign/internal/config"
	"dnalign/pkg/api"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(config.EnvConfig, "")
	var out, errBuf bytes.Buffer
	code := app.Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestInlineClassicReport(t *testing.T) {
	code, out, errS := run(t, "--top", "ACGT", "--bottom", "AGT", "--color", "never")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errS)
	}
	want := "Optimal alignment score is 1\n\n" +
		"   -   2  \n" +
		"      ACGT\n" +
		"      A GT\n" +
		"   +  1 11\n" +
		"\n"
	if out != want {
		t.Fatalf("mismatch:\n--- got ---\n%q\n--- want ---\n%q", out, want)
	}
}

func TestFASTAPairsToJSON(t *testing.T) {
	fa := write(t, "in.fa", ">a\nGATTACA\n>b\nGCATGCT\n>c\nACGT\n>d\nAGT\n")
	code, out, errS := run(t, fa, "-o", "json")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errS)
	}
	var got []api.AlignmentV1
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("json: %v\n%s", err, out)
	}
	if len(got) != 2 || got[0].ID != "a~b" || got[1].ID != "c~d" || got[1].Score != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestGzipFASTA(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte(">x\nACGT\n>y\nACGT\n"))
	_ = zw.Close()
	fa := write(t, "in.fa.gz", buf.String())
	code, out, errS := run(t, "--sequences", fa, "-o", "tsv", "--no-header")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errS)
	}
	if !strings.HasPrefix(out, "x~y\t4\t4\t4\t0\t0\t1.0000\tACGT\tACGT") {
		t.Fatalf("unexpected TSV: %q", out)
	}
}

func TestPairsTSVSortedJSONL(t *testing.T) {
	tsv := write(t, "pairs.tsv", "# id top bottom\nz\tACGT\tACGT\na\tA\tT\n")
	code, out, errS := run(t, "--pairs", tsv, "-o", "jsonl", "--sort")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errS)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], `"id":"a"`) || !strings.Contains(lines[1], `"id":"z"`) {
		t.Fatalf("unexpected JSONL: %q", out)
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	run1 := func(threads int) string {
		code, out, errS := run(t, "--random", "30", "--seed", "11", "--min-length", "5", "--max-length-random", "40",
			"--threads", fmt.Sprint(threads), "--output", "json")
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errS)
		}
		return out
	}
	serial := run1(1)
	parallel := run1(4)
	if serial != parallel {
		t.Fatalf("parallel output differs from serial\nserial: %s\nparallel:%s", serial, parallel)
	}
}

func TestMemoMatchesTable(t *testing.T) {
	args := []string{"--random", "20", "--seed", "5", "--min-length", "1", "--max-length-random", "25", "-o", "tsv"}
	c1, table, _ := run(t, append(args, "--method", "table")...)
	c2, memo, _ := run(t, append(args, "--method", "memo")...)
	if c1 != 0 || c2 != 0 || table != memo {
		t.Fatalf("methods differ (exit %d/%d)\n%s\n%s", c1, c2, table, memo)
	}
}

func TestTooLongExit2(t *testing.T) {
	code, out, errS := run(t, "--top", "ACGTACGT", "--bottom", "A", "--max-length", "4")
	if code != 2 {
		t.Fatalf("want exit 2, got %d", code)
	}
	if out != "" || !strings.Contains(errS, "too long") {
		t.Fatalf("unexpected output %q / %q", out, errS)
	}
}

func TestStrictRejectsSymbols(t *testing.T) {
	code, _, errS := run(t, "--top", "ACGN", "--bottom", "A", "--strict")
	if code != 2 || !strings.Contains(errS, "manual") {
		t.Fatalf("want exit 2 naming the pair, got %d: %s", code, errS)
	}
	code, _, _ = run(t, "--top", "acg t", "--bottom", "A")
	if code != 0 {
		t.Fatalf("lenient mode should normalize input, got exit %d", code)
	}
}

func TestEmptyPairsFileExitCode(t *testing.T) {
	tsv := write(t, "empty.tsv", "# nothing\n")
	if code, _, _ := run(t, "--pairs", tsv); code != 1 {
		t.Fatalf("want default no-input exit 1, got %d", code)
	}
	if code, _, _ := run(t, "--pairs", tsv, "--no-input-exit-code", "0"); code != 0 {
		t.Fatalf("want 0, got %d", code)
	}
}

func TestUsageAndVersion(t *testing.T) {
	if code, out, _ := run(t, "-h"); code != 0 || !strings.Contains(out, "dnalign – optimal pairwise DNA alignment") {
		t.Fatalf("help: exit %d\n%s", code, out)
	}
	if code, out, _ := run(t, "--version"); code != 0 || !strings.HasPrefix(out, "dnalign version ") {
		t.Fatalf("version: exit %d %q", code, out)
	}
	if code, out, _ := run(t, "--examples"); code != 0 || !strings.Contains(out, "quickstart") {
		t.Fatalf("examples: exit %d %q", code, out)
	}
	if code, _, errS := run(t, "--bogus"); code != 2 || errS == "" {
		t.Fatalf("bad flag: exit %d", code)
	}
}

func TestOddFASTAIsUsageError(t *testing.T) {
	fa := write(t, "odd.fa", ">a\nA\n>b\nC\n>c\nG\n")
	if code, _, errS := run(t, fa); code != 2 || !strings.Contains(errS, "odd number") {
		t.Fatalf("want exit 2, got %d: %s", code, errS)
	}
}

func TestConfigFileScheme(t *testing.T) {
	cfg := write(t, "dnalign.yaml", "scoring:\n  match: 5\n")
	code, out, errS := run(t, "--config", cfg, "--top", "AA", "--bottom", "AA", "-o", "tsv", "--no-header")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errS)
	}
	if !strings.HasPrefix(out, "manual\t10\t") {
		t.Fatalf("config scheme not applied: %q", out)
	}
}
