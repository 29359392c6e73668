package lines

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLineSize = 1024 * 1024

// Read splits r into lines. A trailing "\r" is dropped from each line.
func Read(r io.Reader) ([]string, error) {
	var out []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		out = append(out, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan lines: %w", err)
	}

	return out, nil
}

// ReadFiles reads the lines of every path in order. No paths, or "-", read stdin.
func ReadFiles(paths []string, stdin io.Reader) ([]string, error) {
	if len(paths) == 0 {
		return Read(stdin)
	}

	var out []string
	for _, p := range paths {
		ls, err := readPath(p, stdin)
		if err != nil {
			return nil, err
		}
		out = append(out, ls...)
	}

	return out, nil
}

func readPath(path string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		return Read(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	ls, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ls, nil
}
