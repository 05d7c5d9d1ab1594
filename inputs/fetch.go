package inputs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/reusee/chrono/chronoconfigs"
	"github.com/reusee/chrono/logs"
	"github.com/reusee/chrono/nets"
)

var ErrNoSession = errors.New("no session configured, set session in chrono.cue or AOC_SESSION")

// Fetch returns the path of the cached input for the day, downloading it
// first if needed.
type Fetch func(ctx context.Context, year, day int) (string, error)

func (Module) Fetch(
	client nets.HTTPClient,
	baseURL BaseURL,
	session chronoconfigs.Session,
	dir chronoconfigs.InputDir,
	logger logs.Logger,
) Fetch {
	return func(ctx context.Context, year, day int) (string, error) {
		path := Path(dir, day)
		if _, err := os.Stat(path); err == nil {
			logger.DebugContext(ctx, "cached input", "path", path)
			return path, nil
		}
		if session == "" {
			return "", ErrNoSession
		}

		url := fmt.Sprintf("%s/%d/day/%d/input", baseURL, year, day)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", err
		}
		req.AddCookie(&http.Cookie{
			Name:  "session",
			Value: string(session),
		})
		resp, err := client.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("fetch %s: %s", url, resp.Status)
		}
		content, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", err
		}
		tmp := path + ".tmp"
		if err := os.WriteFile(tmp, content, 0644); err != nil {
			return "", err
		}
		if err := os.Rename(tmp, path); err != nil {
			return "", err
		}
		logger.InfoContext(ctx, "input downloaded", "path", path, "bytes", len(content))
		return path, nil
	}
}

func Path(dir chronoconfigs.InputDir, day int) string {
	return filepath.Join(string(dir), fmt.Sprintf("day%02d.txt", day))
}
