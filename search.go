package zzre

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

// Match is a line accepted by the automaton.
type Match struct {
	Path string // path of the file, including the root it was found under
	Line int    // 1-based line number
	Text string // the line, without its line ending
}

// FormatMatch renders m as "<file>":<line>:<text>.
func FormatMatch(m Match) string {
	return fmt.Sprintf("%q:%d:%s", m.Path, m.Line, m.Text)
}

// MatchFunc is called by Search for each matching line. Returning a non-nil
// error stops the search; returning fs.SkipAll stops it without error.
type MatchFunc = func(Match) error

// Search reads every file under each of the roots line by line, and calls f
// for each line the automaton accepts. A root may be a file or a directory;
// directories are walked recursively in lexical order, skipping hidden
// entries unless SkipHidden(false) is given.
// Files that cannot be read are logged and skipped. A root that does not
// exist is an error.
func Search(ctx context.Context, a *Automaton, roots []string, f MatchFunc, opts ...SearchOption) error {
	if f == nil {
		return errors.New("nil MatchFunc in arg to Search")
	}
	cfg := newSearchConfig(opts)

	wctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	// Spin up this many worker goroutines.
	workCh := make(chan searchWork)
	var wg sync.WaitGroup
	for i := 0; i < cfg.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := searchWorker(wctx, cfg, a, f, workCh); err != nil {
				cancel(err)
			}
		}()
	}

	// Feed work to the workers.
	for _, root := range roots {
		if err := walkRoot(wctx, cfg, root, workCh); err != nil {
			cancel(err)
			break
		}
	}
	close(workCh)
	wg.Wait()

	err := context.Cause(wctx)
	if errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

type searchWork struct {
	fsys fs.FS
	name string // path within fsys
	path string // path to report
}

// walkRoot sends each file under root to workCh.
func walkRoot(ctx context.Context, cfg *searchConfig, root string, workCh chan<- searchWork) error {
	fsys, name, report := cfg.filesystem, root, func(p string) string { return p }
	if fsys == nil {
		// os.DirFS needs a directory, so a file root is opened from its
		// parent.
		dir := root
		name = "."
		fi, err := os.Stat(root)
		if err != nil {
			return fmt.Errorf("searching %q: %w", root, err)
		}
		if !fi.IsDir() {
			dir, name = filepath.Split(root)
			if dir == "" {
				dir = "."
			}
		}
		fsys = os.DirFS(dir)
		report = func(p string) string {
			if cfg.translateSlashes {
				return filepath.Join(dir, filepath.FromSlash(p))
			}
			return path.Join(filepath.ToSlash(dir), p)
		}
	}

	cfg.log.Debugf("starting walk of root %q at %q", root, name)
	return fs.WalkDir(fsys, name, func(p string, d fs.DirEntry, err error) error {
		// Check that work isn't cancelled yet
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			if p == name {
				return fmt.Errorf("searching %q: %w", root, err)
			}
			cfg.log.Warningf("skipping %q: %v", report(p), err)
			return nil
		}
		if cfg.skipHidden && p != name && strings.HasPrefix(d.Name(), ".") {
			cfg.log.Debugf("skipping hidden %q", report(p))
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if t := d.Type(); t&fs.ModeSymlink == 0 && !t.IsRegular() {
			// Pipes, devices and the like.
			return nil
		}

		select {
		case <-ctx.Done():
			return context.Cause(ctx)

		case workCh <- searchWork{fsys: fsys, name: p, path: report(p)}:
			// work has been fed
			return nil
		}
	})
}

func searchWorker(ctx context.Context, cfg *searchConfig, a *Automaton, f MatchFunc, workCh <-chan searchWork) error {
	for {
		select {
		case work, open := <-workCh:
			if !open {
				return nil
			}
			if err := searchFile(ctx, cfg, a, f, work); err != nil {
				return err
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// searchFile calls f for each line in the file that a accepts.
func searchFile(ctx context.Context, cfg *searchConfig, a *Automaton, f MatchFunc, work searchWork) error {
	r, err := work.fsys.Open(work.name)
	if err != nil {
		cfg.log.Warningf("skipping %q: %v", work.path, err)
		return nil
	}
	defer r.Close()

	lines, err := searchLines(ctx, a, work.path, r, f)
	if err != nil {
		var rerr readError
		if !errors.As(err, &rerr) {
			return err
		}
		// Read errors only end this file.
		cfg.log.Warningf("stopped reading %q after %d lines: %v", work.path, lines, rerr.err)
		return nil
	}
	cfg.log.Debugf("searched %d lines of %q", lines, work.path)
	return nil
}

// readError wraps an error from reading the input, to tell it apart from
// errors returned by the MatchFunc.
type readError struct{ err error }

func (e readError) Error() string { return e.err.Error() }
func (e readError) Unwrap() error { return e.err }

// searchLines matches each line read from r, returning the number of lines
// read. Lines may be of any length.
func searchLines(ctx context.Context, a *Automaton, name string, r io.Reader, f MatchFunc) (int, error) {
	br := bufio.NewReader(r)
	line := 0
	for {
		if err := ctx.Err(); err != nil {
			return line, err
		}
		text, rerr := br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return line, readError{rerr}
		}
		if text == "" && rerr == io.EOF {
			return line, nil
		}
		line++
		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
		if a.Match(text) {
			if err := f(Match{Path: name, Line: line, Text: text}); err != nil {
				return line, err
			}
		}
		if rerr == io.EOF {
			return line, nil
		}
	}
}
