package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/poma-odoo/odoo-sort-go/internal/walker"
	"github.com/poma-odoo/odoo-sort-go/pkg/core"
	"github.com/poma-odoo/odoo-sort-go/pkg/output"
	"github.com/poma-odoo/odoo-sort-go/pkg/sortengine"
)

var version = "dev"

const defaultFilePermissions = 0644

var (
	flagCheck      bool
	flagSortFields bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "osort [paths...]",
	Short: "Reorder Odoo Python source into dependency-respecting statement order",
	Long: `osort reorders the top-level and class-body statements of a Python
source file so that each name is defined after everything it depends on,
without changing what the file does. Given no paths it sorts the current
directory.`,
	Version: version,
	Args:    cobra.ArbitraryArgs,
	RunE:    run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagCheck, "check", false, "report files that would be resorted instead of rewriting them")
	rootCmd.Flags().BoolVar(&flagSortFields, "sort-fields", false, "additionally sort field declarations alphabetically by name")
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
}

func run(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := core.LoadConfigWithDefaults(cwd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cmd.Flags().Changed("sort-fields") {
		flagSortFields = cfg.Settings.SortFields
	}

	r := output.NewReporter(os.Stderr, flagCheck)

	files, missing := collectFiles(paths, cfg)
	for _, p := range missing {
		r.Errorf("%s does not exist", p)
		r.RecordUnsortable()
	}

	exitCode := 0
	if len(missing) > 0 {
		exitCode = 1
	}

	for _, path := range files {
		if processFile(path, r) {
			exitCode = 1
		}
	}

	r.Summary()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

// collectFiles resolves the positional path arguments into a sorted,
// de-duplicated file list: directories are walked for *.py files
// honoring cfg's exclusions, plain files are taken as given regardless
// of extension. Arguments that don't exist on disk are reported
// separately rather than silently dropped.
func collectFiles(paths []string, cfg *core.Config) (files, missing []string) {
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			missing = append(missing, p)
			continue
		}
		if info.IsDir() {
			found, _ := walker.New(p, cfg).WalkSync()
			for _, f := range found {
				add(f)
			}
			continue
		}
		add(p)
	}

	sort.Strings(files)
	return files, missing
}

// processFile sorts one file and reports its outcome, returning true if
// the run's exit code should reflect failure (drift under --check, or a
// file that couldn't be sorted at all).
func processFile(path string, r *output.Reporter) (failed bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		r.Errorf("%s is not readable", path)
		r.RecordUnsortable()
		return true
	}

	unsortable := false
	report := func(message string) {
		r.Errorf("%s", message)
		unsortable = true
	}

	opts := sortengine.Options{
		Filename:   path,
		SortFields: flagSortFields,
		OnUnknownEncoding: core.UnknownEncodingHandler(func(message, encoding string) error {
			report(fmt.Sprintf("unknown encoding, '%s', in %s", encoding, path))
			return nil
		}),
		OnDecodingError: core.DecodingHandler(func(message string) error {
			report(fmt.Sprintf("encoding error in %s: %s", path, message))
			return nil
		}),
		OnParseError: core.ParseHandler(func(message string, line, column int) error {
			report(fmt.Sprintf("syntax error in %s: line %d, column %d", path, line, column))
			return nil
		}),
		OnUnresolved: core.UnresolvedHandler(func(message, name string, line, column int) error {
			report(fmt.Sprintf("unresolved dependency '%s' in %s: line %d, column %d", name, path, line, column))
			return nil
		}),
		OnWildcardImport: core.WildcardImportHandler(func(line, column int) error {
			report(fmt.Sprintf("can't reliably determine dependencies on * import in %s: line %d, column %d", path, line, column))
			return nil
		}),
	}

	out, err := sortengine.Sort(data, opts)
	if err != nil {
		report(fmt.Sprintf("%s: %s", path, err))
	}

	if unsortable {
		r.RecordUnsortable()
		return true
	}

	if string(out) == string(data) {
		r.RecordUnchanged()
		return false
	}

	if flagCheck {
		r.Errorf("%s is incorrectly sorted", path)
		r.RecordResorted()
		return true
	}

	if err := os.WriteFile(path, out, defaultFilePermissions); err != nil {
		r.Errorf("%s: %s", path, err)
		r.RecordUnsortable()
		return true
	}
	r.Sorting(path)
	r.RecordResorted()
	return false
}
