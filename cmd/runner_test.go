package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/lyrx/internal/formatter"
	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/repositories"
	"github.com/desertthunder/lyrx/internal/services"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/desertthunder/lyrx/internal/tasks"
	tu "github.com/desertthunder/lyrx/internal/testing"
	"github.com/urfave/cli/v3"
)

type testEnv struct {
	runner    *Runner
	output    *bytes.Buffer
	svc       *tu.MockService
	clipboard *tu.MockClipboard
	store     *repositories.MemoryStore
	dir       string
}

func queenTracks() []models.Track {
	return []models.Track{
		tu.NewTrack(1, "Queen", "Bohemian Rhapsody", 354, "Is this the real life?", "[00:00.50] Is this the real life?"),
		tu.NewTrack(2, "Queen", "Bohemian Rhapsody (Live)", 361, "Mama, just killed a man", ""),
	}
}

func newTestEnv(t *testing.T, api *services.APIService) *testEnv {
	t.Helper()

	env := &testEnv{
		output: &bytes.Buffer{},
		svc: &tu.MockService{Results: map[string][]models.Track{
			"Queen":                   queenTracks(),
			"Queen Bohemian Rhapsody": queenTracks(),
		}},
		clipboard: &tu.MockClipboard{},
		store:     repositories.NewMemoryStore(),
		dir:       t.TempDir(),
	}

	config := shared.DefaultConfig()
	config.Export.Dir = env.dir
	config.Share.BaseURL = "http://localhost:3000/"

	env.runner = NewRunner(RunnerOpts{
		Config:    config,
		Lyrics:    env.svc,
		API:       api,
		Store:     env.store,
		Clipboard: env.clipboard,
		Logger:    shared.NewLogger(&bytes.Buffer{}),
		Output:    env.output,
	})
	return env
}

func (e *testEnv) run(args ...string) error {
	app := &cli.Command{Name: "lyrx", Commands: e.runner.register()}
	return app.Run(context.Background(), append([]string{"lyrx"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			httpClient := &http.Client{}
			svc := &tu.MockService{}
			api := &services.APIService{}
			store := repositories.NewMemoryStore()

			runner := NewRunner(RunnerOpts{
				Config:     config,
				Logger:     logger,
				Output:     output,
				HTTPClient: httpClient,
				Lyrics:     svc,
				API:        api,
				Store:      store,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.httpClient != httpClient {
				t.Error("expected httpClient to be set")
			}
			if runner.lyrics != svc {
				t.Error("expected lyrics service to be set")
			}
			if runner.api != api {
				t.Error("expected api to be set")
			}
			if runner.store != store {
				t.Error("expected store to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil httpClient uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{HTTPClient: nil})

			if runner.httpClient != http.DefaultClient {
				t.Error("expected httpClient to default to http.DefaultClient")
			}
		})

		t.Run("with nil store keeps state in memory", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if _, ok := runner.store.(*repositories.MemoryStore); !ok {
				t.Errorf("expected memory store, got %T", runner.store)
			}
		})

		t.Run("with configPath sets field", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{ConfigPath: "/test/path/config.toml"})

			if runner.configPath != "/test/path/config.toml" {
				t.Errorf("expected configPath to be set, got %s", runner.configPath)
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writeJSON(map[string]string{"key": "value"}, true)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			expected := `{"key":"value"}` + "\n"
			if result := output.String(); result != expected {
				t.Errorf("expected %q, got %q", expected, result)
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			// channels cannot be marshaled to JSON
			err := runner.writeJSON(make(chan int), false)
			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result := output.String(); result != "hello world" {
				t.Errorf("expected 'hello world', got %q", result)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writePlain("test")
			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		names := map[string]bool{}
		for i, cmd := range commands {
			if cmd == nil {
				t.Fatalf("command at index %d is nil", i)
			}
			names[cmd.Name] = true
		}

		for _, want := range []string{"search", "lyrics", "open", "share", "download", "favorites", "prefs", "export", "serve", "setup", "config", "api", "tui"} {
			if !names[want] {
				t.Errorf("expected %s command to be registered", want)
			}
		}
	})
}

func TestLyricsCommands(t *testing.T) {
	t.Run("search lists results", func(t *testing.T) {
		env := newTestEnv(t, nil)

		if err := env.run("search", "Queen"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		out := env.output.String()
		if !strings.Contains(out, `2 results for "Queen"`) {
			t.Errorf("expected result header, got %s", out)
		}
		if !strings.Contains(out, "Queen - Bohemian Rhapsody (Live)") || !strings.Contains(out, "id=2") {
			t.Errorf("expected second result, got %s", out)
		}
		if !strings.Contains(out, "[5:54] [synced]") {
			t.Errorf("expected duration and synced badges, got %s", out)
		}
	})

	t.Run("search as JSON", func(t *testing.T) {
		env := newTestEnv(t, nil)

		if err := env.run("search", "--json", "Queen"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var tracks []models.Track
		if err := json.Unmarshal(env.output.Bytes(), &tracks); err != nil {
			t.Fatalf("expected JSON output, got %v", err)
		}
		if len(tracks) != 2 || tracks[1].ID != 2 {
			t.Errorf("expected both tracks in order, got %+v", tracks)
		}
	})

	t.Run("search with no matches prints message", func(t *testing.T) {
		env := newTestEnv(t, nil)

		if err := env.run("search", "nothing", "here"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(env.output.String(), `No results found for "nothing here"`) {
			t.Errorf("expected no-match message, got %s", env.output.String())
		}
		if env.svc.Queries[0] != "nothing here" {
			t.Errorf("expected arguments joined into one query, got %q", env.svc.Queries[0])
		}
	})

	t.Run("search without query", func(t *testing.T) {
		env := newTestEnv(t, nil)

		if err := env.run("search"); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
		if env.svc.Calls() != 0 {
			t.Error("expected no search to be issued")
		}
	})

	t.Run("search failure is returned", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.svc.Err = shared.ErrAPIRequest

		if err := env.run("search", "Queen"); !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("lyrics picks result by id", func(t *testing.T) {
		env := newTestEnv(t, nil)

		if err := env.run("lyrics", "--id", "2", "Queen"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		out := env.output.String()
		if !strings.Contains(out, "Bohemian Rhapsody (Live)\nBy: Queen") || !strings.Contains(out, "Mama, just killed a man") {
			t.Errorf("expected text export of track 2, got %s", out)
		}
	})

	t.Run("lyrics with unknown id", func(t *testing.T) {
		env := newTestEnv(t, nil)

		if err := env.run("lyrics", "--id", "99", "Queen"); !errors.Is(err, shared.ErrTrackNotFound) {
			t.Errorf("expected ErrTrackNotFound, got %v", err)
		}
	})

	t.Run("synced lyrics", func(t *testing.T) {
		env := newTestEnv(t, nil)

		if err := env.run("lyrics", "--synced", "Queen"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(env.output.String(), "[00:00.50] Is this the real life?") {
			t.Errorf("expected LRC lyrics, got %s", env.output.String())
		}

		if err := env.run("lyrics", "--synced", "--id", "2", "Queen"); !errors.Is(err, shared.ErrSyncedUnavailable) {
			t.Errorf("expected ErrSyncedUnavailable, got %v", err)
		}
	})

	t.Run("share copies link", func(t *testing.T) {
		env := newTestEnv(t, nil)

		if err := env.run("share", "Queen"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		link := strings.TrimSpace(env.output.String())
		want, _ := formatter.BuildShareLink("http://localhost:3000/", queenTracks()[0])
		if link != want {
			t.Errorf("expected %s, got %s", want, link)
		}
		if env.clipboard.Text != link {
			t.Errorf("expected link on clipboard, got %q", env.clipboard.Text)
		}
	})

	t.Run("share still prints link when clipboard fails", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.clipboard.Err = shared.ErrServiceUnavailable

		if err := env.run("share", "Queen"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(env.output.String(), "id=1") {
			t.Errorf("expected link, got %s", env.output.String())
		}
	})

	t.Run("open resolves share link", func(t *testing.T) {
		env := newTestEnv(t, nil)
		link, _ := formatter.BuildShareLink("http://localhost:3000/", queenTracks()[1])

		if err := env.run("open", link); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(env.output.String(), "Mama, just killed a man") {
			t.Errorf("expected lyrics of shared track, got %s", env.output.String())
		}
	})

	t.Run("open with missing id in results", func(t *testing.T) {
		env := newTestEnv(t, nil)

		err := env.run("open", "http://localhost:3000/?track=Bohemian+Rhapsody&artist=Queen&id=77")
		if !errors.Is(err, shared.ErrTrackNotFound) {
			t.Errorf("expected ErrTrackNotFound, got %v", err)
		}
	})

	t.Run("open with malformed link", func(t *testing.T) {
		env := newTestEnv(t, nil)

		if err := env.run("open", "http://localhost:3000/?track=x"); !errors.Is(err, shared.ErrInvalidShareLink) {
			t.Errorf("expected ErrInvalidShareLink, got %v", err)
		}
	})

	t.Run("download writes file", func(t *testing.T) {
		env := newTestEnv(t, nil)
		dir := filepath.Join(t.TempDir(), "out")

		if err := env.run("download", "--format", "lrc", "--dir", dir, "Queen"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		path := filepath.Join(dir, formatter.Filename(queenTracks()[0], formatter.FormatLRC))
		if content := tu.MustReadFile(t, path); content != "[00:00.50] Is this the real life?" {
			t.Errorf("unexpected file content %q", content)
		}
	})

	t.Run("download rejects unknown format", func(t *testing.T) {
		env := newTestEnv(t, nil)

		if err := env.run("download", "--format", "pdf", "Queen"); !errors.Is(err, shared.ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})
}

func TestFavoritesCommands(t *testing.T) {
	t.Run("add, list, export and remove", func(t *testing.T) {
		env := newTestEnv(t, nil)

		if err := env.run("favorites", "add", "--id", "2", "Queen"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		env.output.Reset()
		if err := env.run("favorites", "list", "--json"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		var favorites []models.Track
		if err := json.Unmarshal(env.output.Bytes(), &favorites); err != nil {
			t.Fatalf("expected JSON output, got %v", err)
		}
		if len(favorites) != 1 || favorites[0].ID != 2 {
			t.Fatalf("expected track 2 saved, got %+v", favorites)
		}

		env.output.Reset()
		if err := env.run("favorites", "export", "--format", "yaml", "--stdout"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(env.output.String(), "artist: Queen") {
			t.Errorf("expected YAML export, got %s", env.output.String())
		}

		path := filepath.Join(t.TempDir(), "favs.md")
		if err := env.run("favorites", "export", "--format", "markdown", "--output", path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(tu.MustReadFile(t, path), "1. Queen - Bohemian Rhapsody (Live)") {
			t.Error("expected markdown export on disk")
		}

		if err := env.run("favorites", "remove", "2"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := env.run("favorites", "remove", "2"); !errors.Is(err, shared.ErrTrackNotFound) {
			t.Errorf("expected ErrTrackNotFound, got %v", err)
		}
	})

	t.Run("adding twice keeps one entry", func(t *testing.T) {
		env := newTestEnv(t, nil)

		for range 2 {
			if err := env.run("favorites", "add", "Queen"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		}

		favorites, err := repositories.NewFavoriteRepository(env.store).Load()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(favorites) != 1 {
			t.Errorf("expected one favorite, got %d", len(favorites))
		}
		if !strings.Contains(env.output.String(), "Already a favorite") {
			t.Errorf("expected duplicate notice, got %s", env.output.String())
		}
	})

	t.Run("remove rejects non-numeric id", func(t *testing.T) {
		env := newTestEnv(t, nil)

		if err := env.run("favorites", "remove", "abc"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestPrefsCommands(t *testing.T) {
	t.Run("set persists values", func(t *testing.T) {
		env := newTestEnv(t, nil)

		if err := env.run("prefs", "set", "--theme", "light", "--size", "lg", "--animation", "stars"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		prefs, err := repositories.NewPreferenceRepository(env.store).Load()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if prefs.Theme != models.ThemeLight || prefs.Font.Size != models.FontSizeLG || prefs.Animation != models.AnimationStars {
			t.Errorf("unexpected preferences %+v", prefs)
		}
		if prefs.Font.LineHeight != models.DefaultLineHeight {
			t.Errorf("expected untouched line height, got %s", prefs.Font.LineHeight)
		}
		if !strings.Contains(env.output.String(), "Theme:       light") {
			t.Errorf("expected updated preferences printed, got %s", env.output.String())
		}
	})

	t.Run("invalid value saves nothing", func(t *testing.T) {
		env := newTestEnv(t, nil)

		err := env.run("prefs", "set", "--theme", "light", "--size", "huge")
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
		if _, ok, _ := env.store.Get(repositories.ThemeKey); ok {
			t.Error("expected theme to stay unsaved")
		}
	})

	t.Run("set without flags", func(t *testing.T) {
		env := newTestEnv(t, nil)

		if err := env.run("prefs", "set"); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("show defaults", func(t *testing.T) {
		env := newTestEnv(t, nil)

		if err := env.run("prefs", "show"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		for _, want := range []string{"Font size:   base", "Line height: relaxed", "Animation:   waves", "Theme:       dark"} {
			if !strings.Contains(env.output.String(), want) {
				t.Errorf("expected %q in %s", want, env.output.String())
			}
		}
	})
}

func TestExportCommand(t *testing.T) {
	env := newTestEnv(t, nil)

	queries := filepath.Join(t.TempDir(), "queries.txt")
	if err := os.WriteFile(queries, []byte("# favorites\nQueen\n\nnothing\n"), 0644); err != nil {
		t.Fatalf("failed to write queries: %v", err)
	}

	out := filepath.Join(t.TempDir(), "export")
	err := env.run("export", "--file", queries, "--dir", out, "--rate", "100", "--workers", "2", "--format", "txt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.Contains(env.output.String(), "Success: 1/2") {
		t.Errorf("expected summary, got %s", env.output.String())
	}
	tu.AssertFileExists(t, filepath.Join(out, "export_manifest.json"))
	tu.AssertFileExists(t, filepath.Join(out, formatter.Filename(queenTracks()[0], formatter.FormatText)))

	if _, err := os.Stat(filepath.Join(out, formatter.Filename(queenTracks()[0], formatter.FormatLRC))); !os.IsNotExist(err) {
		t.Error("expected only the requested format to be written")
	}
}

func TestAPICommands(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/search" && r.URL.Query().Get("q") == "broken":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"boom"}`))
		case r.URL.Path == "/search":
			w.Write([]byte(`[{"id":1,"trackName":"Bohemian Rhapsody","artistName":"Queen"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"not found"}`))
		}
	}))
	defer srv.Close()

	api := services.NewAPIService(srv.URL, "lyrx-test", srv.Client())

	t.Run("get prints JSON", func(t *testing.T) {
		env := newTestEnv(t, api)

		if err := env.run("api", "get", "--pretty=false", "/search?q=queen"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(env.output.String(), `"artistName":"Queen"`) {
			t.Errorf("expected raw response, got %s", env.output.String())
		}
	})

	t.Run("get non-2xx", func(t *testing.T) {
		env := newTestEnv(t, api)

		if err := env.run("api", "get", "/missing"); !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("dump collects responses and errors", func(t *testing.T) {
		env := newTestEnv(t, api)
		save := filepath.Join(t.TempDir(), "dump.json")

		if err := env.run("api", "dump", "--pretty=false", "--save", save, "queen", "broken"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var dump tasks.DumpResult
		if err := json.Unmarshal(env.output.Bytes(), &dump); err != nil {
			t.Fatalf("expected JSON dump, got %v", err)
		}
		if len(dump.Responses) != 1 || len(dump.Errors) != 1 {
			t.Errorf("expected one response and one error, got %+v", dump)
		}
		if dump.Errors[0].Status != http.StatusInternalServerError {
			t.Errorf("expected 500 recorded, got %d", dump.Errors[0].Status)
		}
		tu.AssertFileExists(t, save)
	})

	t.Run("dump without queries", func(t *testing.T) {
		env := newTestEnv(t, api)

		if err := env.run("api", "dump"); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})
}

func TestSetupCommands(t *testing.T) {
	t.Run("config init", func(t *testing.T) {
		env := newTestEnv(t, nil)
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := env.run("config", "init", "--path", path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := shared.LoadConfig(path); err != nil {
			t.Errorf("expected a loadable config, got %v", err)
		}

		if err := env.run("config", "init", "--path", path); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument for existing file, got %v", err)
		}
		if err := env.run("config", "init", "--path", path, "--force"); err != nil {
			t.Errorf("expected --force to overwrite, got %v", err)
		}
	})

	t.Run("config show", func(t *testing.T) {
		env := newTestEnv(t, nil)

		if err := env.run("config", "show"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(env.output.String(), `base_url = "http://localhost:3000/"`) {
			t.Errorf("expected share base URL in output, got %s", env.output.String())
		}
	})

	t.Run("setup database", func(t *testing.T) {
		env := newTestEnv(t, nil)
		path := filepath.Join(t.TempDir(), "db", "lyrx.db")

		if err := env.run("setup", "database", "--path", path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		tu.AssertFileExists(t, path)
		if !strings.Contains(env.output.String(), "schema version") {
			t.Errorf("expected schema version, got %s", env.output.String())
		}
	})
}
