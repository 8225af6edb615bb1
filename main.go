package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/media-browser/internal/api"
	"github.com/ytget/media-browser/internal/browser"
	"github.com/ytget/media-browser/internal/config"
	"github.com/ytget/media-browser/internal/i18n"
	"github.com/ytget/media-browser/internal/logging"
	"github.com/ytget/media-browser/internal/model"
	"github.com/ytget/media-browser/internal/tui"
	"github.com/ytget/media-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.media-browser"
	AppName = "Media Browser"

	WindowWidth  = 1100
	WindowHeight = 760

	// tuiLogFile keeps log lines off the alternate screen
	tuiLogFile = "media-browser-tui.log"
)

// cli holds the flag values and what PersistentPreRunE builds from them
type cli struct {
	configPath    string
	categoriesURL string
	mediaURL      string
	timeout       time.Duration
	verbose       bool

	listCategory string
	listSort     bool
	listWidth    int

	cfg    config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "media-browser",
		Short: "Browse media by category",
		Long: `Media Browser fetches a category list and the media of each category from
a JSON API and shows them as cards. Pick a category to replace the cards and
toggle the view-count sort to reorder them.

Run without arguments to open the desktop window.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: c.runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", config.DefaultConfigFile, "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&c.categoriesURL, "categories-url", "", "Categories endpoint (overrides config)")
	rootCmd.PersistentFlags().StringVar(&c.mediaURL, "media-url", "", "Media endpoint prefix; the category id is appended (overrides config)")
	rootCmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 0, "HTTP request timeout (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window",
		Args:  cobra.NoArgs,
		RunE:  c.runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse in the terminal",
		Long: `Opens a full-screen terminal browser.

Keys: ←/→ move between categories, enter shows the category, s toggles the
view-count sort, r reloads, q quits. Logs go to ` + tuiLogFile + ` in the
temporary directory.`,
		Args: cobra.NoArgs,
		RunE: c.runTUI,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the cards of one category and exit",
		Args:  cobra.NoArgs,
		RunE:  c.runList,
	}
	listCmd.Flags().StringVar(&c.listCategory, "category", "", "Category id (default from config)")
	listCmd.Flags().BoolVar(&c.listSort, "sort", false, "Sort by view count, highest first")
	listCmd.Flags().IntVar(&c.listWidth, "width", 80, "Output width in columns")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := c.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, listCmd, configCmd)
	return rootCmd
}

// setup loads the configuration, applies flag overrides and builds the logger
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("categories-url") {
		cfg.API.CategoriesURL = c.categoriesURL
	}
	if flags.Changed("media-url") {
		cfg.API.MediaURL = c.mediaURL
	}
	if flags.Changed("timeout") {
		cfg.API.Timeout = c.timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	var outputs []string
	if cmd.Name() == "tui" {
		outputs = append(outputs, filepath.Join(os.TempDir(), tuiLogFile))
	}
	logger, err := logging.New(cfg.Logging, c.verbose, outputs...)
	if err != nil {
		return err
	}
	c.logger = logger

	logger.Info("media browser starting",
		zap.String("version", version),
		zap.String("command", cmd.Name()),
		zap.String("categories_url", cfg.API.CategoriesURL))
	return nil
}

// newFetcher builds the API client shared by the data and image paths
func (c *cli) newFetcher() (api.Fetcher, error) {
	client, err := api.NewClient(api.Options{
		CategoriesURL: c.cfg.API.CategoriesURL,
		MediaURL:      c.cfg.API.MediaURL,
		Timeout:       c.cfg.API.Timeout,
		UserAgent:     c.cfg.API.UserAgent + "/" + version,
		Logger:        c.logger.Named("api"),
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (c *cli) runGUI(cmd *cobra.Command, args []string) error {
	client, err := c.newFetcher()
	if err != nil {
		return err
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	// preferences edited in the settings dialog win over the file
	settings := config.NewSettings(myApp, c.cfg.UI)
	effective := settings.Apply(c.cfg)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	root := ui.NewRootUI(ctx, myWindow, ui.Options{
		Source:   client,
		Images:   client,
		Settings: settings,
		UI:       effective.UI,
		Logger:   c.logger.Named("ui"),
	})
	myApp.Lifecycle().SetOnStarted(root.Start)
	myWindow.SetOnClosed(func() {
		root.Close()
		cancel()
	})

	myWindow.ShowAndRun()
	return nil
}

func (c *cli) runTUI(cmd *cobra.Command, args []string) error {
	client, err := c.newFetcher()
	if err != nil {
		return err
	}
	return tui.Run(cmd.Context(), client, tui.Options{
		DefaultCategory: c.cfg.UI.DefaultCategory,
		Language:        c.cfg.UI.Language,
		Logger:          c.logger.Named("tui"),
	})
}

// runList drives the controller without a window: fetches resolve inline, so
// the items are ready when Start returns.
func (c *cli) runList(cmd *cobra.Command, args []string) error {
	client, err := c.newFetcher()
	if err != nil {
		return err
	}

	category := c.cfg.UI.DefaultCategory
	if cmd.Flags().Changed("category") {
		category = c.listCategory
	}

	b := browser.New(client, nil, browser.Options{
		DefaultCategory: category,
		Logger:          c.logger.Named("browser"),
	})
	b.Start(cmd.Context())

	if b.Status() == model.LoadStatusFailed && len(b.Categories()) == 0 {
		return errors.New("could not load categories")
	}
	if _, ok := model.FindCategory(b.Categories(), category); !ok && cmd.Flags().Changed("category") {
		return fmt.Errorf("unknown category %q", category)
	}
	if c.listSort {
		b.ToggleSort()
	}

	loc := i18n.NewLocalization()
	loc.SetLanguage(c.cfg.UI.Language)

	out := cmd.OutOrStdout()
	switch b.Status() {
	case model.LoadStatusFailed:
		return fmt.Errorf("could not load category %q", b.State().SelectedCategory)
	case model.LoadStatusEmpty:
		_, err = fmt.Fprintln(out, loc.GetText(i18n.KeyNoContent))
		return err
	}
	_, err = fmt.Fprintln(out, tui.RenderCards(b.Items(), tui.DefaultStyles(), loc, c.listWidth))
	return err
}
