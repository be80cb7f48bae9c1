package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/desertthunder/lyrx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// APIGet makes a direct GET request to the lyrics API
func (r *Runner) APIGet(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("%w: path", shared.ErrMissingArgument)
	}
	if r.api == nil {
		return fmt.Errorf("%w: API client not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Info("GET request", "path", path)

	resp, err := r.api.Get(ctx, path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, string(resp.Body))
	}

	if resp.IsJSON {
		return r.writeJSON(resp.JSONData, cmd.Bool("pretty"))
	}

	r.output.Write(resp.Body)
	r.output.Write([]byte("\n"))
	return nil
}

// APIDump fetches the raw search response for each query and prints them as one document.
func (r *Runner) APIDump(ctx context.Context, cmd *cli.Command) error {
	queries := cmd.Args().Slice()
	if path := cmd.String("file"); path != "" {
		fromFile, err := readQueries(path, os.Stdin)
		if err != nil {
			return err
		}
		queries = append(queries, fromFile...)
	}
	if len(queries) == 0 {
		return fmt.Errorf("%w: at least one query or --file", shared.ErrMissingArgument)
	}

	r.logger.Info("dumping API responses", "queries", len(queries))

	progressCh := make(chan tasks.ProgressUpdate, len(queries))
	dump, err := r.engine.Dump(ctx, progressCh, queries)
	close(progressCh)
	for update := range progressCh {
		r.logger.Debug(update.Message, "phase", update.Phase)
	}
	if err != nil {
		return err
	}

	if save := cmd.String("save"); save != "" {
		data, err := shared.MarshalJSON(dump, true)
		if err != nil {
			return fmt.Errorf("failed to marshal dump: %w", err)
		}
		if err := os.WriteFile(save, data, 0644); err != nil {
			r.logger.Warn("failed to save dump", "error", err)
		} else {
			r.logger.Info("dump saved", "file", save)
		}
	}

	return r.writeJSON(dump, cmd.Bool("pretty"))
}
