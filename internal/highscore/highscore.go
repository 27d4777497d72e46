// Package highscore reads and writes the flat highscore file: one
// "<score> <name>" line per entry, best first.
package highscore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// Capacity is the number of entries the list keeps.
	Capacity = 10

	// NotRanked is returned by Rank for a score that does not make the list.
	NotRanked = -1
)

// Entry is one line of the highscore file.
type Entry struct {
	Score int
	Name  string
}

// Parse reads entries in file order. Lines without a leading integer
// followed by a space, and lines with a negative score, are skipped.
// Lines may be of any length.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if e, ok := parseLine(strings.TrimRight(line, "\r\n")); ok {
				entries = append(entries, e)
			}
		}
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return entries, err
		}
	}
}

func parseLine(line string) (Entry, bool) {
	i := strings.IndexByte(line, ' ')
	if i < 0 {
		return Entry{}, false
	}
	score, err := strconv.Atoi(strings.TrimSpace(line[:i]))
	if err != nil || score < 0 {
		return Entry{}, false
	}
	return Entry{Score: score, Name: strings.TrimSpace(line[i+1:])}, true
}

// Load reads the highscore file at path. A missing file is an empty list.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot open %s: %w", path, err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot read %s: %w", path, err)
	}
	return entries, nil
}

// Rank returns the index score would take in entries: before the first
// entry it beats, otherwise at the end. Returns NotRanked when it beats
// nothing and the list is already full.
func Rank(entries []Entry, score int) int {
	for i, e := range entries {
		if score > e.Score {
			return i
		}
	}
	if len(entries) >= Capacity {
		return NotRanked
	}
	return len(entries)
}

// Insert returns a new list with the entry placed at its rank and the
// tail dropped beyond Capacity. An unranked score returns the list as is.
func Insert(entries []Entry, score int, name string) []Entry {
	rank := Rank(entries, score)
	if rank == NotRanked {
		return entries
	}

	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries[:rank]...)
	out = append(out, Entry{Score: score, Name: strings.TrimSpace(name)})
	out = append(out, entries[rank:]...)
	if len(out) > Capacity {
		out = out[:Capacity]
	}
	return out
}

// Write formats entries one per line.
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%d %s\n", e.Score, e.Name); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save rewrites the file at path with entries, creating parent
// directories as needed.
func Save(path string, entries []Entry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("highscore: cannot create %s: %w", path, err)
	}
	if err := Write(f, entries); err != nil {
		f.Close()
		return fmt.Errorf("highscore: cannot write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("highscore: cannot close %s: %w", path, err)
	}
	return nil
}

// File is a highscore list bound to a path.
type File struct {
	Path string
}

// Open returns a File for path.
func Open(path string) *File {
	return &File{Path: path}
}

// Load reads the list.
func (f *File) Load() ([]Entry, error) {
	return Load(f.Path)
}

// Save rewrites the list.
func (f *File) Save(entries []Entry) error {
	return Save(f.Path, entries)
}
