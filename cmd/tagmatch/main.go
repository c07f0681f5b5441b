// Command tagmatch generates combined tag dispatchers from tagmatch.yaml
// definition files.
//
// Usage:
//
//	tagmatch [-verify] [-C dir] [config ...]
//
// With no config arguments, tagmatch.yaml is searched for in dir and its
// parents. Generated files are written next to each definition file. With
// -verify, nothing is written and tagmatch exits non-zero if any generated
// file on disk is missing or out of date.
//
// A typical use is a directive next to the definition file:
//
//	//go:generate go run github.com/sdboyer/tagmatch/cmd/tagmatch
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/sdboyer/tagmatch"
)

const appName = "tagmatch"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet(appName, flag.ContinueOnError)
	flags.SetOutput(stderr)
	verify := flags.Bool("verify", false, "verify generated files are up to date instead of writing them")
	root := flags.String("C", ".", "directory to run in; config paths and outputs are relative to it")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [-verify] [-C dir] [config ...]\n", appName)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	color := colorizer(stderr)
	if err := generate(ctx, *root, *verify, flags.Args()); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", appName, color(err.Error()))
		return 1
	}
	return 0
}

func generate(ctx context.Context, root string, verify bool, configs []string) error {
	if len(configs) == 0 {
		found, err := tagmatch.FindConfig(root)
		if err != nil {
			return err
		}
		if found == "" {
			return fmt.Errorf("no %s found in %s or its parents", tagmatch.ConfigFile, root)
		}
		configs = []string{found}
	}

	units := make([]*tagmatch.Unit, 0, len(configs))
	for _, path := range configs {
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		cfg, err := tagmatch.LoadConfig(path)
		if err != nil {
			return err
		}
		dir, err := relDir(root, filepath.Dir(path))
		if err != nil {
			return err
		}
		u, err := cfg.Resolve(dir)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		units = append(units, u)
	}

	fsys, err := tagmatch.Pipeline().GenerateFS(units...)
	if err != nil {
		return err
	}
	if fsys == nil {
		return errors.New("nothing to generate")
	}

	if verify {
		return fsys.Verify(ctx, root)
	}
	return fsys.Write(ctx, root)
}

func relDir(root, dir string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return filepath.Rel(absRoot, absDir)
}

func colorizer(w io.Writer) func(string) string {
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return func(s string) string { return s }
	}
	return func(s string) string { return "\x1b[31m" + s + "\x1b[0m" }
}
