package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/desertthunder/lyrx/internal/formatter"
	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/urfave/cli/v3"
)

// FavoritesList prints the saved favorites.
func (r *Runner) FavoritesList(ctx context.Context, cmd *cli.Command) error {
	favorites := r.controller().Favorites()

	if cmd.Bool("json") {
		return r.writeJSON(favorites, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Favorites (%d)", len(favorites)))
	if len(favorites) == 0 {
		return r.writePlain("No favorites yet. Add one with 'lyrx favorites add <query>'.\n")
	}
	for i, t := range favorites {
		r.writeTrackLine(i+1, t, false)
	}
	return nil
}

// FavoritesAdd searches for a query and saves the chosen result as a favorite.
func (r *Runner) FavoritesAdd(ctx context.Context, cmd *cli.Command) error {
	query, err := queryArg(cmd)
	if err != nil {
		return err
	}

	ctrl := r.controller()
	track, err := r.selectTrack(ctx, ctrl, query, int(cmd.Int("id")))
	if err != nil {
		return err
	}

	if ctrl.IsFavorite(track.ID) {
		return r.writePlain("Already a favorite: %s - %s\n", track.ArtistName, track.TrackName)
	}
	ctrl.ToggleFavorite(track)
	return r.writePlain("✓ Added %s - %s\n", track.ArtistName, track.TrackName)
}

// FavoritesRemove removes the favorite with the given track id.
func (r *Runner) FavoritesRemove(ctx context.Context, cmd *cli.Command) error {
	arg := cmd.Args().First()
	if arg == "" {
		return fmt.Errorf("%w: track id", shared.ErrMissingArgument)
	}
	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("%w: track id %q is not a number", shared.ErrInvalidArgument, arg)
	}

	if !r.controller().RemoveFavorite(id) {
		return fmt.Errorf("%w: no favorite with id %d", shared.ErrTrackNotFound, id)
	}
	return r.writePlain("✓ Removed %d\n", id)
}

// FavoritesExport writes the favorites list as json, yaml, csv, md or txt.
func (r *Runner) FavoritesExport(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFavoritesFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	favorites := r.controller().Favorites()
	if cmd.Bool("stdout") {
		data, err := formatter.ExportFavorites(favorites, format)
		if err != nil {
			return err
		}
		_, err = r.output.Write(data)
		return err
	}

	path, err := formatter.WriteFavoritesExport(favorites, format, cmd.String("output"))
	if err != nil {
		return err
	}

	r.logger.Info("favorites exported", "format", format, "count", len(favorites), "path", path)
	return r.writePlain("✓ Exported %d favorites to %s\n", len(favorites), path)
}

// PrefsShow prints the current display preferences.
func (r *Runner) PrefsShow(ctx context.Context, cmd *cli.Command) error {
	prefs := r.controller().Preferences()

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"font":      prefs.Font,
			"animation": prefs.Animation,
			"theme":     prefs.Theme,
		}, true)
	}

	r.writePlainHeader("Display preferences")
	r.writePlain("Font size:   %s\n", prefs.Font.Size)
	r.writePlain("Font family: %s\n", prefs.Font.Family)
	r.writePlain("Line height: %s\n", prefs.Font.LineHeight)
	r.writePlain("Animation:   %s\n", prefs.Animation)
	r.writePlain("Theme:       %s\n", prefs.Theme)
	return nil
}

// PrefsSet updates the preferences named by flags. Unknown values are rejected before anything is saved.
func (r *Runner) PrefsSet(ctx context.Context, cmd *cli.Command) error {
	ctrl := r.controller()
	var updates []func()

	if v := cmd.String("size"); v != "" {
		size, err := models.ParseFontSize(v)
		if err != nil {
			return err
		}
		updates = append(updates, func() { ctrl.SetFontSize(size) })
	}
	if v := cmd.String("family"); v != "" {
		family, err := models.ParseFontFamily(v)
		if err != nil {
			return err
		}
		updates = append(updates, func() { ctrl.SetFontFamily(family) })
	}
	if v := cmd.String("line-height"); v != "" {
		lh, err := models.ParseLineHeight(v)
		if err != nil {
			return err
		}
		updates = append(updates, func() { ctrl.SetLineHeight(lh) })
	}
	if v := cmd.String("animation"); v != "" {
		a, err := models.ParseAnimation(v)
		if err != nil {
			return err
		}
		updates = append(updates, func() { ctrl.SetAnimation(a) })
	}
	if v := cmd.String("theme"); v != "" {
		theme, err := models.ParseTheme(v)
		if err != nil {
			return err
		}
		updates = append(updates, func() { ctrl.SetTheme(theme) })
	}

	if len(updates) == 0 {
		return fmt.Errorf("%w: at least one of --size, --family, --line-height, --animation or --theme", shared.ErrMissingArgument)
	}
	for _, update := range updates {
		update()
	}

	return r.PrefsShow(ctx, cmd)
}
