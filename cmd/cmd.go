// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func jsonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
		},
	}
}

func idFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "id",
		Usage: "Pick the result with this track id instead of the first",
	}
}

// searchCommand lists matching tracks
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Aliases:   []string{"s"},
		Usage:     "Search for lyrics by artist, title or lyrics text",
		ArgsUsage: "<query>",
		Flags:     jsonFlags(),
		Action:    r.Search,
	}
}

// lyricsCommand prints a track's lyrics
func lyricsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "lyrics",
		Aliases:   []string{"l"},
		Usage:     "Print the lyrics of the best match for a query",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			idFlag(),
			&cli.BoolFlag{
				Name:  "synced",
				Usage: "Print time-synced (LRC) lyrics",
			},
		},
		Action: r.Lyrics,
	}
}

// openCommand resolves a share link
func openCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "open",
		Usage:     "Print the lyrics for a share link",
		ArgsUsage: "<share-url>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "synced",
				Usage: "Print time-synced (LRC) lyrics",
			},
		},
		Action: r.Open,
	}
}

// shareCommand builds a share link
func shareCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "share",
		Usage:     "Print a share link for a track and copy it to the clipboard",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			idFlag(),
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the link in the default browser",
			},
		},
		Action: r.Share,
	}
}

// downloadCommand writes a lyrics file
func downloadCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "download",
		Aliases:   []string{"dl"},
		Usage:     "Save a track's lyrics as .txt or .lrc",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			idFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "File format (txt or lrc)",
				Value:   "txt",
			},
			&cli.StringFlag{
				Name:  "dir",
				Usage: "Output directory (defaults to export.dir)",
			},
		},
		Action: r.Download,
	}
}

// favoritesCommand manages saved tracks
func favoritesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "favorites",
		Aliases: []string{"fav"},
		Usage:   "Manage favorite tracks",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List favorites",
				Flags:  jsonFlags(),
				Action: r.FavoritesList,
			},
			{
				Name:      "add",
				Usage:     "Search and add the best match to favorites",
				ArgsUsage: "<query>",
				Flags:     []cli.Flag{idFlag()},
				Action:    r.FavoritesAdd,
			},
			{
				Name:      "remove",
				Aliases:   []string{"rm"},
				Usage:     "Remove a favorite by track id",
				ArgsUsage: "<id>",
				Action:    r.FavoritesRemove,
			},
			{
				Name:  "export",
				Usage: "Export favorites as json, yaml, csv, md or txt",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format",
						Value:   "json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (defaults to favorites.<format>)",
					},
					&cli.BoolFlag{
						Name:  "stdout",
						Usage: "Write to standard output instead of a file",
					},
				},
				Action: r.FavoritesExport,
			},
		},
	}
}

// prefsCommand shows and edits display preferences
func prefsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "prefs",
		Usage: "Show or change display preferences",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show current preferences",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.PrefsShow,
			},
			{
				Name:  "set",
				Usage: "Change one or more preferences",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "size", Usage: "Font size (xs, sm, base, lg, xl, 2xl)"},
					&cli.StringFlag{Name: "family", Usage: "Font family (default, serif, sans, mono)"},
					&cli.StringFlag{Name: "line-height", Usage: "Line height (tight, normal, relaxed, loose)"},
					&cli.StringFlag{Name: "animation", Usage: "Background animation (none, stars, floating, waves)"},
					&cli.StringFlag{Name: "theme", Usage: "Theme (light, dark)"},
				},
				Action: r.PrefsSet,
			},
		},
	}
}

// exportCommand bulk-downloads lyrics
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Download lyrics for every query in a file (one per line)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "Query file, or - for stdin",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "dir",
				Usage: "Output directory (default: lyrics_export_<epoch>)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Concurrent file writers (max 10)",
			},
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "Searches per second",
			},
			&cli.StringSliceFlag{
				Name:  "format",
				Usage: "Formats to write, txt and/or lrc (default: both)",
			},
		},
		Action: r.Export,
	}
}

// serveCommand runs the share-link server
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve share links and a small JSON API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Listen address (defaults to server.host:server.port)",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand initializes local storage
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize local storage",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Create the database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Database path (defaults to database.path)",
					},
					&cli.BoolFlag{
						Name:  "rollback",
						Usage: "Roll back the most recent migration instead",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// configCommand manages config.toml
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage configuration",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write an example config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Where to write the file",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing file",
					},
				},
				Action: r.ConfigInit,
			},
			{
				Name:   "show",
				Usage:  "Print the effective configuration",
				Action: r.ConfigShow,
			},
		},
	}
}

// apiCommand handles direct API calls
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct calls to the lyrics API",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Direct GET, prints raw JSON",
				ArgsUsage: "<path>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
			{
				Name:      "dump",
				Usage:     "Fetch raw search responses for one or more queries",
				ArgsUsage: "[query...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "file",
						Usage: "Read additional queries from a file (one per line)",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
					&cli.StringFlag{
						Name:  "save",
						Usage: "Also write the dump to this file",
					},
				},
				Action: r.APIDump,
			},
		},
	}
}

// tuiCommand launches the interactive browser
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Browse lyrics interactively",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "link",
				Usage: "Open a share link on start",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Where to write logs while the TUI is running",
				Value: "./tmp/lyrx-tui.log",
			},
		},
		Action: r.TUI,
	}
}
