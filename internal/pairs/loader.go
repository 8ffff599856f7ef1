package pairs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadTSV reads pairs from a whitespace-separated file. Each line is
// "id top bottom" or "top bottom" (ids default to pair<line>). Blank lines
// and lines starting with '#' are skipped.
func LoadTSV(path string) ([]Pair, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ParseTSV(fh, path)
}

// ParseTSV is LoadTSV over an open reader; name prefixes error messages.
func ParseTSV(r io.Reader, name string) ([]Pair, error) {
	var list []Pair
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		switch len(f) {
		case 2:
			list = append(list, Pair{ID: fmt.Sprintf("pair%d", ln), Top: f[0], Bottom: f[1]})
		case 3:
			list = append(list, Pair{ID: f[0], Top: f[1], Bottom: f[2]})
		default:
			return nil, fmt.Errorf("%s:%d bad field count %d (want 2 or 3)", name, ln, len(f))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return list, nil
}
