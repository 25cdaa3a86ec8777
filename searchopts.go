package zzre

import (
	"io/fs"

	"github.com/tliron/commonlog"
)

// SearchOption functions optionally alter how Search operates.
type SearchOption = func(*searchConfig)

type searchConfig struct {
	translateSlashes bool
	skipHidden       bool
	goroutines       int
	filesystem       fs.FS
	log              commonlog.Logger
}

func newSearchConfig(opts []SearchOption) *searchConfig {
	cfg := &searchConfig{
		translateSlashes: true,
		skipHidden:       true,
		goroutines:       1,
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(cfg)
	}
	if cfg.log == nil {
		cfg.log = commonlog.GetLogger("zzre.search")
	}
	if cfg.goroutines <= 0 {
		cfg.goroutines = 1
	}
	return cfg
}

// WithFilesystem allows overriding the default filesystem (the OS). Roots
// are then interpreted as paths within fsys, and reported paths are fs.FS
// paths.
func WithFilesystem(fsys fs.FS) SearchOption {
	return func(cfg *searchConfig) {
		cfg.filesystem = fsys
	}
}

// WithGoroutineLimit sets the number of files searched concurrently. If more
// than 1, the MatchFunc must be safe to call from multiple goroutines, and
// matches from different files may be reported in any order. The default
// is 1.
func WithGoroutineLimit(n int) SearchOption {
	return func(cfg *searchConfig) {
		cfg.goroutines = n
	}
}

// WithLogger sets the logger used for progress and for files that could not
// be read. By default the "zzre.search" commonlog logger is used.
func WithLogger(log commonlog.Logger) SearchOption {
	return func(cfg *searchConfig) {
		cfg.log = log
	}
}

// TranslateSlashes enables or disables translating walked fs.FS paths
// (always with forward slashes, / ) using filepath.FromSlash before they are
// reported. It only applies to the OS filesystem, and is enabled by default.
func TranslateSlashes(enable bool) SearchOption {
	return func(cfg *searchConfig) {
		cfg.translateSlashes = enable
	}
}

// SkipHidden enables or disables skipping hidden files and directories,
// which are those whose name starts with a dot. Roots are searched even if
// they are hidden. Enabled by default.
func SkipHidden(enable bool) SearchOption {
	return func(cfg *searchConfig) {
		cfg.skipHidden = enable
	}
}
