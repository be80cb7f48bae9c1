package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/lyrx/internal/controller"
	"github.com/desertthunder/lyrx/internal/repositories"
	"github.com/desertthunder/lyrx/internal/services"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/desertthunder/lyrx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	lyrics     services.Service
	api        *services.APIService
	store      repositories.Store
	clipboard  controller.Clipboard
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	engine     *tasks.LyricsEngine
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Lyrics     services.Service
	API        *services.APIService
	Store      repositories.Store
	Clipboard  controller.Clipboard
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
//
// A nil Store keeps favorites and preferences in memory for the life of the process.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Store == nil {
		opts.Store = repositories.NewMemoryStore()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = shared.SystemClipboard{}
	}

	var api tasks.APIClient
	if opts.API != nil {
		api = opts.API
	}
	engine := tasks.NewLyricsEngine(opts.Lyrics, api)

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		lyrics:     opts.Lyrics,
		api:        opts.API,
		store:      opts.Store,
		clipboard:  opts.Clipboard,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
		engine:     engine,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		searchCommand, lyricsCommand, openCommand, shareCommand, downloadCommand, favoritesCommand, prefsCommand,
		exportCommand, serveCommand, setupCommand, configCommand, apiCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the logger used by the runner and everything it builds afterwards.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// controller builds a [controller.Controller] over the runner's store.
func (r *Runner) controller() *controller.Controller {
	return r.controllerIn(r.config.Export.Dir)
}

// controllerIn is [Runner.controller] with downloads written to dir.
func (r *Runner) controllerIn(dir string) *controller.Controller {
	return controller.New(controller.Options{
		Favorites:    r.favorites(),
		Preferences:  repositories.NewPreferenceRepository(r.store),
		Clipboard:    r.clipboard,
		ShareBaseURL: r.config.Share.BaseURL,
		DownloadDir:  dir,
		Logger:       r.logger,
	})
}

func (r *Runner) favorites() *repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(r.store)
}

func (r *Runner) requireLyrics() error {
	if r.lyrics == nil {
		return fmt.Errorf("%w: lyrics service not initialized", shared.ErrServiceUnavailable)
	}
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
