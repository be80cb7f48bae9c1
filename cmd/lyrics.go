package main

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/desertthunder/lyrx/internal/controller"
	"github.com/desertthunder/lyrx/internal/formatter"
	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/urfave/cli/v3"
)

// queryArg joins the positional arguments into a single search query.
func queryArg(cmd *cli.Command) (string, error) {
	query := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if query == "" {
		return "", fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}
	return query, nil
}

// pickTrack returns the result with id, or the first result when id is zero.
func pickTrack(results []models.Track, id int) (models.Track, error) {
	if id == 0 {
		return results[0], nil
	}
	i := slices.IndexFunc(results, func(t models.Track) bool { return t.ID == id })
	if i < 0 {
		return models.Track{}, fmt.Errorf("%w: no result with id %d", shared.ErrTrackNotFound, id)
	}
	return results[i], nil
}

// selectTrack searches for query and selects the chosen result on ctrl.
func (r *Runner) selectTrack(ctx context.Context, ctrl *controller.Controller, query string, id int) (models.Track, error) {
	if err := r.requireLyrics(); err != nil {
		return models.Track{}, err
	}

	results, err := ctrl.Search(ctx, r.lyrics, query)
	if err != nil {
		return models.Track{}, err
	}

	track, err := pickTrack(results, id)
	if err != nil {
		return models.Track{}, err
	}
	ctrl.Select(track)
	r.logger.Debug("selected track", "id", track.ID, "artist", track.ArtistName, "track", track.TrackName)
	return track, nil
}

func (r *Runner) writeTrackLine(i int, t models.Track, favorite bool) {
	r.writePlain("%2d. %s - %s", i, t.ArtistName, t.TrackName)
	if t.AlbumName != "" && t.AlbumName != t.TrackName {
		r.writePlain(" (%s)", t.AlbumName)
	}
	r.writePlain(" [%s]", shared.FormatDuration(t.Duration))
	if t.HasSyncedLyrics() {
		r.writePlain(" [synced]")
	}
	if favorite {
		r.writePlain(" ♥")
	}
	r.writePlain("  id=%d\n", t.ID)
}

// Search lists the tracks matching a query.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query, err := queryArg(cmd)
	if err != nil {
		return err
	}
	if err := r.requireLyrics(); err != nil {
		return err
	}

	r.logger.Info("searching lyrics", "query", query, "service", r.lyrics.Name())

	ctrl := r.controller()
	results, err := ctrl.Search(ctx, r.lyrics, query)
	if errors.Is(err, shared.ErrNoMatches) {
		if cmd.Bool("json") {
			return r.writeJSON([]models.Track{}, cmd.Bool("pretty"))
		}
		if s, ok := ctrl.State().(controller.ErrorShown); ok {
			return r.writePlain("%s\n", s.Message)
		}
	}
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(results, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("%d results for %q", len(results), query))
	for i, t := range results {
		r.writeTrackLine(i+1, t, ctrl.IsFavorite(t.ID))
	}
	return nil
}

// Lyrics prints the lyrics of the first result, or of the result with --id.
func (r *Runner) Lyrics(ctx context.Context, cmd *cli.Command) error {
	query, err := queryArg(cmd)
	if err != nil {
		return err
	}

	track, err := r.selectTrack(ctx, r.controller(), query, int(cmd.Int("id")))
	if err != nil {
		return err
	}
	return r.writeLyrics(track, cmd.Bool("synced"))
}

func (r *Runner) writeLyrics(track models.Track, synced bool) error {
	if synced {
		data, err := formatter.ExportToLRC(track)
		if err != nil {
			return err
		}
		return r.writePlain("%s\n", data)
	}
	return r.writePlain("%s\n", formatter.ExportToText(track))
}

// Open resolves a share link and prints the linked track's lyrics.
func (r *Runner) Open(ctx context.Context, cmd *cli.Command) error {
	raw := cmd.Args().First()
	if raw == "" {
		return fmt.Errorf("%w: share link", shared.ErrMissingArgument)
	}
	if err := r.requireLyrics(); err != nil {
		return err
	}

	ctrl := r.controller()
	req, ok, err := ctrl.OpenShareLink(raw)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: search already in progress", shared.ErrInvalidInput)
	}

	r.logger.Info("opening share link", "query", req.Query)
	results, err := r.lyrics.Search(ctx, req.Query)
	ctrl.Resolve(req, results, err)
	if err != nil {
		return err
	}

	track, ok := ctrl.Selected()
	if !ok {
		if s, isErr := ctrl.State().(controller.ErrorShown); isErr {
			return fmt.Errorf("%w: %s", shared.ErrNoMatches, s.Message)
		}
		return fmt.Errorf("%w: shared track is not in the results for %q", shared.ErrTrackNotFound, req.Query)
	}
	return r.writeLyrics(track, cmd.Bool("synced"))
}

// Share prints a share link for a track and copies it to the clipboard.
func (r *Runner) Share(ctx context.Context, cmd *cli.Command) error {
	query, err := queryArg(cmd)
	if err != nil {
		return err
	}

	ctrl := r.controller()
	if _, err := r.selectTrack(ctx, ctrl, query, int(cmd.Int("id"))); err != nil {
		return err
	}

	link, copied, err := ctrl.ShareLink()
	if err != nil {
		return err
	}

	r.writePlain("%s\n", link)
	if copied {
		r.logger.Info("share link copied to clipboard")
	}

	if cmd.Bool("open") {
		if err := shared.OpenBrowser(link); err != nil {
			r.logger.Warn("failed to open browser", "error", err)
		}
	}
	return nil
}

// Download writes a track's lyrics as .txt or .lrc.
func (r *Runner) Download(ctx context.Context, cmd *cli.Command) error {
	query, err := queryArg(cmd)
	if err != nil {
		return err
	}

	format, err := formatter.ParseLyricsFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	dir := cmd.String("dir")
	if dir == "" {
		dir = r.config.Export.Dir
	}

	ctrl := r.controllerIn(dir)
	track, err := r.selectTrack(ctx, ctrl, query, int(cmd.Int("id")))
	if err != nil {
		return err
	}

	path, err := ctrl.Download(format)
	if err != nil {
		return err
	}

	r.logger.Info("lyrics downloaded", "id", track.ID, "path", path)
	return r.writePlain("✓ Saved %s\n", path)
}
