package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/mage2-ls/mage2-ls/config"
	"github.com/mage2-ls/mage2-ls/index"
)

type ScanCmd struct {
	Path string `help:"Path to the workspace root." short:"p" default:"."`
}

func (s *ScanCmd) Run() error {
	absPath, err := filepath.Abs(s.Path)
	if err != nil {
		return err
	}

	cfg, err := config.Load(absPath)
	if err != nil {
		return err
	}
	ignores, err := cfg.CompileIgnore()
	if err != nil {
		return err
	}

	ix := index.New()
	opts := index.ScanOptions{Ignore: ignores}

	roots := []string{absPath}
	for _, extra := range cfg.Paths {
		if !filepath.IsAbs(extra) {
			extra = filepath.Join(absPath, extra)
		}
		roots = append(roots, extra)
	}
	for _, root := range roots {
		if err := ix.ScanRoot(root, opts); err != nil {
			return err
		}
	}

	modules := ix.Modules()
	prefixes := make([]string, 0, len(modules))
	for prefix := range modules {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	for _, prefix := range prefixes {
		fmt.Printf("%s -> %s\n", prefix, modules[prefix])
	}
	fmt.Printf("%d modules\n", len(prefixes))
	return nil
}
