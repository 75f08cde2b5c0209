package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports"
	"go.trai.ch/zerr"
)

func (f *Fetcher) fetchHTTP(ctx context.Context, spec domain.SourceSpec, opts ports.FetchOptions) error {
	cfg := domain.ConfigFromContext(ctx)
	archive := filepath.Join(cfg.Paths.Download, downloadName(spec))

	if _, err := os.Stat(archive); err != nil {
		f.logger.Info("downloading " + spec.URI)
		if err := f.download(ctx, spec.URI, archive); err != nil {
			return err
		}
	}

	if spec.DownloadOnly {
		return nil
	}
	if dirExists(spec.Destination) && !opts.Force {
		return nil
	}

	f.logger.Info("extracting " + filepath.Base(archive))
	return f.extractInto(ctx, archive, spec.Destination)
}

// extractInto unpacks archive into a temporary sibling of dest and moves it
// into place once complete, replacing any previous dest. A failed extraction
// leaves no dest behind.
func (f *Fetcher) extractInto(ctx context.Context, archive, dest string) error {
	parent := filepath.Dir(dest)
	if err := os.MkdirAll(parent, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination"), "path", dest)
	}
	tmp, err := os.MkdirTemp(parent, "."+filepath.Base(dest)+".*.extract")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create extraction directory"), "path", dest)
	}
	defer func() { _ = os.RemoveAll(tmp) }()
	if err := os.Chmod(tmp, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create extraction directory"), "path", tmp)
	}

	if err := f.extract(ctx, archive, tmp); err != nil {
		return err
	}

	if err := os.RemoveAll(dest); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove destination"), "path", dest)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to move extracted sources into place"), "path", dest)
	}
	return nil
}

// downloadName is the file name of a download: the declared one, or a hash
// of the URL keeping the archive extension.
func downloadName(spec domain.SourceSpec) string {
	if spec.Filename != "" {
		return spec.Filename
	}
	name := spec.URI
	if u, err := url.Parse(spec.URI); err == nil {
		name = u.Path
	}
	return strconv.FormatUint(xxhash.Sum64String(spec.URI), 16) + archiveExt(path.Base(name))
}

// archiveExt returns the extension of name, keeping compound tar extensions whole.
func archiveExt(name string) string {
	lower := strings.ToLower(name)
	for _, ext := range []string{".tar.gz", ".tar.xz"} {
		if strings.HasSuffix(lower, ext) {
			return ext
		}
	}
	return strings.ToLower(filepath.Ext(name))
}

// download streams uri into dst through a temporary file, so an interrupted
// download never leaves a partial archive behind.
func (f *Fetcher) download(ctx context.Context, uri, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create download directory"), "path", dst)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, http.NoBody)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid download url"), "url", uri)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "download failed"), "url", uri)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zerr.With(zerr.With(zerr.New("download failed"), "url", uri), "status", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.part")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "download interrupted"), "url", uri)
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp file")
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to move download into place"), "path", dst)
	}
	return nil
}
