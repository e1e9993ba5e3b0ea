// Package main provides the CLI entrypoint for tentwenty.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/tentwenty/internal/catalog"
	"github.com/verte-zerg/tentwenty/internal/config"
	"github.com/verte-zerg/tentwenty/internal/generator"
	"github.com/verte-zerg/tentwenty/internal/imageview"
	"github.com/verte-zerg/tentwenty/internal/listing"
	"github.com/verte-zerg/tentwenty/internal/logging"
	"github.com/verte-zerg/tentwenty/internal/model"
	"github.com/verte-zerg/tentwenty/internal/plain"
	"github.com/verte-zerg/tentwenty/internal/quiz"
	"github.com/verte-zerg/tentwenty/internal/tui"
)

const (
	defaultTheme       = "cosmo"
	defaultImageWidth  = 36
	defaultImageHeight = 15
	defaultLogLevel    = "info"
)

var (
	drillCatalog     string
	drillAssets      string
	drillSeed        int64
	drillTheme       string
	drillImagePolicy string
	drillImageWidth  int
	drillImageHeight int
	drillImages      bool
	drillPlain       bool

	logFile  string
	logLevel string

	pagesCatalog string
	pagesPage    int

	catalogSource string
	catalogFormat string
	catalogOut    string
	catalogForce  bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tentwenty",
		Short:         "10-20 system EEG measurement drill",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDrillCmd,
	}

	rootCmd.Flags().StringVar(&drillCatalog, "catalog", "", "catalog file (.toml/.yaml); built-in pages when empty")
	rootCmd.Flags().StringVar(&drillAssets, "assets", "", "directory holding image assets")
	rootCmd.Flags().Int64Var(&drillSeed, "seed", 0, "random seed for prompts (0: time based)")
	rootCmd.Flags().StringVar(&drillTheme, "theme", defaultTheme, "color theme ("+strings.Join(tui.ThemeNames(), ", ")+")")
	rootCmd.Flags().StringVar(&drillImagePolicy, "image-policy", "", "on image load failure: abort (stay on page) or ignore (default: abort with --assets, else ignore)")
	rootCmd.Flags().IntVar(&drillImageWidth, "image-width", defaultImageWidth, "image preview width in cells")
	rootCmd.Flags().IntVar(&drillImageHeight, "image-height", defaultImageHeight, "image preview height in cells")
	rootCmd.Flags().BoolVar(&drillImages, "images", true, "show image previews")
	rootCmd.Flags().BoolVar(&drillPlain, "plain", false, "line mode instead of the full-screen interface")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file (default: XDG state dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newPagesCmd())
	rootCmd.AddCommand(newCatalogCmd())

	return rootCmd
}

func runDrillCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "catalog", &drillCatalog, fileCfg.Quiz.Catalog)
	applyStringConfig(cmd, "assets", &drillAssets, fileCfg.Quiz.Assets)
	applyInt64Config(cmd, "seed", &drillSeed, fileCfg.Quiz.Seed)
	applyStringConfig(cmd, "theme", &drillTheme, fileCfg.Display.Theme)
	applyStringConfig(cmd, "image-policy", &drillImagePolicy, fileCfg.Display.ImagePolicy)
	applyIntConfig(cmd, "image-width", &drillImageWidth, fileCfg.Display.ImageWidth)
	applyIntConfig(cmd, "image-height", &drillImageHeight, fileCfg.Display.ImageHeight)
	applyBoolConfig(cmd, "images", &drillImages, fileCfg.Display.Images)

	cfg := model.Config{
		CatalogPath: drillCatalog,
		AssetsDir:   drillAssets,
		Seed:        drillSeed,
		Theme:       strings.ToLower(strings.TrimSpace(drillTheme)),
		ImagePolicy: strings.ToLower(strings.TrimSpace(drillImagePolicy)),
		ImageWidth:  drillImageWidth,
		ImageHeight: drillImageHeight,
		Images:      drillImages,
		Plain:       drillPlain,
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	theme, err := tui.LookupTheme(cfg.Theme)
	if err != nil {
		return err
	}
	policy, err := resolvePolicy(cfg)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cmd, fileCfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	var gen *generator.Generator
	if cfg.Seed != 0 {
		gen = generator.NewSeeded(cfg.Seed)
	} else {
		gen = generator.New()
	}
	ctrl := quiz.NewController(cat, gen, logger)

	var images *imageview.Renderer
	if cfg.Images {
		images = imageview.NewRenderer(imageview.NewResolver(imageview.DefaultDirs(cfg.AssetsDir)...), cfg.ImageWidth, cfg.ImageHeight)
	}

	logger.Info("drill started",
		zap.String("catalog", catalogName(cfg.CatalogPath)),
		zap.Int("pages", cat.Len()),
		zap.String("theme", theme.Name),
		zap.String("image_policy", string(policy)),
		zap.Bool("plain", cfg.Plain),
	)

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if cfg.Plain || !interactive {
		// Half-block previews are unreadable without a color terminal.
		if !interactive {
			images = nil
		}
		runner := plain.New(ctrl, images, policy, logger, cmd.InOrStdin(), cmd.OutOrStdout())
		if err := runner.Run(cmd.Context()); err != nil {
			return fmt.Errorf("failed to run drill: %w", err)
		}
		return nil
	}

	m := tui.NewModel(ctrl, tui.Options{
		Theme:  theme,
		Policy: policy,
		Images: images,
		Logger: logger,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newPagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "List catalog pages",
		Args:  cobra.NoArgs,
		RunE:  runPagesCmd,
	}
	cmd.Flags().StringVar(&pagesCatalog, "catalog", "", "catalog file (default: config or built-in)")
	cmd.Flags().IntVar(&pagesPage, "page", 0, "show the measurement table of one page")
	return cmd
}

func runPagesCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "catalog", &pagesCatalog, fileCfg.Quiz.Catalog)
	cat, err := loadCatalog(pagesCatalog)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if pagesPage != 0 {
		page, err := cat.Get(pagesPage)
		if err != nil {
			return err
		}
		return listing.Measurements(out, page)
	}
	return listing.Pages(out, cat, outputWidth())
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Write the active catalog to a file for editing",
		Args:  cobra.NoArgs,
		RunE:  runCatalogCmd,
	}
	cmd.Flags().StringVar(&catalogSource, "from", "", "source catalog file (default: built-in)")
	cmd.Flags().StringVar(&catalogFormat, "format", "", "output format: toml or yaml (default: from --out extension)")
	cmd.Flags().StringVar(&catalogOut, "out", "", "output path, '-' for stdout (default: XDG config dir)")
	cmd.Flags().BoolVar(&catalogForce, "force", false, "overwrite an existing file")
	return cmd
}

func runCatalogCmd(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(catalogSource)
	if err != nil {
		return err
	}
	out := catalogOut
	if out == "" {
		out = config.DefaultCatalogPath()
	}
	format, err := resolveCatalogFormat(catalogFormat, out)
	if err != nil {
		return err
	}

	if out == "-" {
		return catalog.Encode(cmd.OutOrStdout(), format, cat)
	}
	if !catalogForce {
		if _, err := os.Stat(out); err == nil {
			return fmt.Errorf("catalog already exists: %s (use --force to overwrite)", out)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat catalog: %w", err)
		}
	}
	if err := writeCatalog(out, format, cat); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	logErrf("Wrote %s\n", out)
	return nil
}

func resolvePolicy(cfg model.Config) (imageview.Policy, error) {
	if cfg.ImagePolicy == "" {
		return imageview.DefaultPolicy(cfg.AssetsDir), nil
	}
	return imageview.ParsePolicy(cfg.ImagePolicy)
}

func resolveCatalogFormat(name, out string) (catalog.Format, error) {
	if name != "" {
		return catalog.ParseFormat(name)
	}
	if out == "-" {
		return catalog.FormatTOML, nil
	}
	return catalog.FormatFromPath(out)
}

func writeCatalog(path string, format catalog.Format, cat *catalog.Catalog) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create catalog dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "catalog-*")
	if err != nil {
		return fmt.Errorf("failed to create temp catalog: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := catalog.Encode(tmpFile, format, cat); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close catalog: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return cat, nil
}

func catalogName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

func openLogger(cmd *cobra.Command, fileCfg config.FileConfig) (*zap.Logger, func() error, error) {
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	path := logFile
	if path == "" {
		path = config.DefaultLogPath()
	}
	logger, closeFn, err := logging.New(logging.Options{Path: path, Level: logLevel})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log: %w", err)
	}
	return logger, closeFn, nil
}

func outputWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tentwenty configuration
# Uncomment a value to enable it. CLI flags override config values.

[quiz]
# catalog = ""            # Catalog file (.toml/.yaml); built-in pages when empty
# assets = ""             # Directory holding assets/images/...
# seed = 0                # Random seed for prompts (0: time based)

[display]
# theme = %q          # Color theme (%s)
# image-policy = "ignore" # On image load failure: abort or ignore (default: abort when assets is set)
# image-width = %d        # Image preview width in cells
# image-height = %d       # Image preview height in cells
# images = true           # Show image previews

[log]
# file = ""               # Log file (default: %s)
# level = %q           # debug, info, warn or error
`,
		defaultTheme,
		strings.Join(tui.ThemeNames(), ", "),
		defaultImageWidth,
		defaultImageHeight,
		config.DefaultLogPath(),
		defaultLogLevel,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
