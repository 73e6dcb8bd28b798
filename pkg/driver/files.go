package driver

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/dlclark/regexp2"
)

// CollectFiles expands directory arguments into the source files below them
// that match the include patterns and none of the exclude patterns. Files
// found in one directory are sorted; plain file arguments are kept as given.
func CollectFiles(args []string, cfg *Config) ([]string, error) {
	include, err := compilePatterns(cfg.Files.Include)
	if err != nil {
		return nil, fmt.Errorf("files.include: %w", err)
	}
	exclude, err := compilePatterns(cfg.Files.Exclude)
	if err != nil {
		return nil, fmt.Errorf("files.exclude: %w", err)
	}

	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		var found []string
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			slashed := filepath.ToSlash(path)
			ok, err := matchAny(include, slashed)
			if err != nil || !ok {
				return err
			}
			skip, err := matchAny(exclude, slashed)
			if err != nil || skip {
				return err
			}
			found = append(found, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", arg, err)
		}
		sort.Strings(found)
		paths = append(paths, found...)
	}
	return paths, nil
}

func compilePatterns(patterns []string) ([]*regexp2.Regexp, error) {
	res := make([]*regexp2.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp2.Compile(p, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		res = append(res, re)
	}
	return res, nil
}

func matchAny(patterns []*regexp2.Regexp, path string) (bool, error) {
	for _, re := range patterns {
		ok, err := re.MatchString(path)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
