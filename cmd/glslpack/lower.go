package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"

	"glslpack/internal/astio"
	"glslpack/internal/diag"
	"glslpack/internal/lower"
	"glslpack/internal/pack"
	"glslpack/internal/packcache"
)

var (
	lowerLangVersion int
	lowerOut         string
	lowerNoCache     bool
	lowerJobs        int
)

func init() {
	lowerCmd.Flags().IntVar(&lowerLangVersion, "lang-version", 0, "shader language version override (0 means use the dump's own)")
	lowerCmd.Flags().StringVar(&lowerOut, "out", "", "output directory (default: next to each input)")
	lowerCmd.Flags().BoolVar(&lowerNoCache, "no-cache", false, "bypass the pack cache")
	lowerCmd.Flags().IntVar(&lowerJobs, "jobs", 0, "number of parallel workers (0 means GOMAXPROCS)")
}

var lowerCmd = &cobra.Command{
	Use:   "lower [files or directories]",
	Short: "Lower front-end dumps into packs",
	Long:  `Reads *.json dumps produced by the GLSL front end, lowers each into an interned pack and writes it as a *.pack msgpack file.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		colorMode, _ := cmd.Flags().GetString("color")
		applyColorMode(colorMode)
		quiet, _ := cmd.Flags().GetBool("quiet")
		maxDiagnostics, _ := cmd.Flags().GetInt("max-diagnostics")

		files, err := collectDumpFiles(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return errors.New("no *.json dumps found")
		}

		manifest, _, err := loadProjectManifest(".")
		if err != nil {
			return err
		}

		cache := openCache(cmd.ErrOrStderr(), manifest, quiet)
		outDir := lowerOut
		if outDir == "" && manifest != nil {
			outDir = manifest.Config.Pack.Out
			if outDir != "" && !filepath.IsAbs(outDir) {
				outDir = filepath.Join(manifest.Root, outDir)
			}
		}
		langVersion := lowerLangVersion
		if langVersion == 0 && manifest != nil {
			langVersion = manifest.Config.Pack.Version
		}

		jobs := lowerJobs
		if jobs <= 0 {
			jobs = runtime.GOMAXPROCS(0)
		}

		results := make([]lowerResult, len(files))
		g, gctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(min(jobs, len(files)))
		for i, path := range files {
			i, path := i, path
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				results[i] = lowerOneFile(path, outDir, langVersion, maxDiagnostics, cache)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		failed := 0
		for _, r := range results {
			printLowerResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), r, quiet)
			if r.Err != nil {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d dumps failed", failed, len(files))
		}
		return nil
	},
}

// lowerResult holds the outcome for one input dump.
type lowerResult struct {
	Path    string
	OutPath string
	Bag     *diag.Bag
	Cached  bool
	Err     error
}

// collectDumpFiles expands arguments into a sorted list of dump files.
// A directory argument contributes every *.json file beneath it.
func collectDumpFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".json") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	// Deterministic processing order.
	sort.Strings(files)
	return files, nil
}

// openCache opens the pack cache unless disabled. Cache failures degrade
// to uncached operation with a warning, never abort the run.
func openCache(errOut io.Writer, manifest *projectManifest, quiet bool) *packcache.Cache {
	if lowerNoCache {
		return nil
	}
	dir := ""
	if manifest != nil {
		if manifest.Config.Cache.Disabled {
			return nil
		}
		dir = manifest.Config.Cache.Dir
		if dir != "" && !filepath.IsAbs(dir) {
			dir = filepath.Join(manifest.Root, dir)
		}
	}
	var (
		cache *packcache.Cache
		err   error
	)
	if dir != "" {
		cache, err = packcache.OpenAt(dir)
	} else {
		cache, err = packcache.Open("glslpack")
	}
	if err != nil {
		if !quiet {
			fmt.Fprintf(errOut, "warning: pack cache unavailable: %v\n", err)
		}
		return nil
	}
	return cache
}

func lowerOneFile(path, outDir string, langVersion, maxDiagnostics int, cache *packcache.Cache) lowerResult {
	result := lowerResult{Path: path, Bag: diag.NewBag(maxDiagnostics)}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = err
		return result
	}
	result.OutPath = outPathFor(path, outDir)

	key := packcache.DigestFor(data, langVersion)
	if p, ok, err := cache.Get(key); err == nil && ok {
		result.Cached = true
		result.Err = writePack(result.OutPath, p)
		return result
	}

	root, dumpVersion, err := astio.DecodeBytes(data)
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", path, err)
		return result
	}
	version := langVersion
	if version == 0 {
		version = dumpVersion
	}

	p, err := lower.Lower(root, version, lower.Options{
		Reporter: diag.BagReporter{Bag: result.Bag},
	})
	if err != nil {
		result.Err = err
		return result
	}

	if err := cache.Put(key, p); err != nil {
		// A cache write failure only costs the next run time.
		result.Bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.LowerInfo,
			Message:  "failed to store pack in cache: " + err.Error(),
		})
	}
	result.Err = writePack(result.OutPath, p)
	return result
}

// outPathFor swaps the dump extension for .pack, optionally relocating
// into the output directory.
func outPathFor(path, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".pack"
	if outDir == "" {
		return filepath.Join(filepath.Dir(path), base)
	}
	return filepath.Join(outDir, base)
}

func writePack(path string, p *pack.Pack) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(f).Encode(p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	pathColor    = color.New(color.FgCyan)
	okColor      = color.New(color.FgGreen)
)

func printLowerResult(out, errOut io.Writer, r lowerResult, quiet bool) {
	for _, d := range r.Bag.Items() {
		c := warningColor
		if d.Severity >= diag.SevError {
			c = errorColor
		}
		fmt.Fprintf(errOut, "%s: %s %s: %s", pathColor.Sprint(r.Path),
			c.Sprint(d.Severity.String()), d.Code.String(), d.Message)
		if d.Node != "" {
			fmt.Fprintf(errOut, " (at %s", d.Node)
			if d.Parent != "" {
				fmt.Fprintf(errOut, " in %s", d.Parent)
			}
			fmt.Fprint(errOut, ")")
		}
		fmt.Fprintln(errOut)
	}

	if r.Err != nil {
		var lowErr *lower.Error
		if errors.As(r.Err, &lowErr) {
			fmt.Fprintf(errOut, "%s: %s %s: %s\n", pathColor.Sprint(r.Path),
				errorColor.Sprint("error"), lowErr.Code.String(), lowErr.Message)
		} else {
			fmt.Fprintf(errOut, "%s: %s %v\n", pathColor.Sprint(r.Path),
				errorColor.Sprint("error"), r.Err)
		}
		return
	}
	if quiet {
		return
	}
	status := okColor.Sprint("lowered")
	if r.Cached {
		status = okColor.Sprint("cached")
	}
	fmt.Fprintf(out, "%s %s -> %s\n", status, pathColor.Sprint(r.Path), r.OutPath)
}
