package fetch

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// extract unpacks archive into dest according to its extension.
func (f *Fetcher) extract(ctx context.Context, archive, dest string) error {
	var err error
	switch ext := archiveExt(archive); ext {
	case ".zip":
		err = extractZip(archive, dest)
	case ".tar.gz", ".tgz":
		err = extractTar(archive, dest, func(r io.Reader) (io.Reader, error) { return gzip.NewReader(r) })
	case ".tar.xz":
		err = extractTar(archive, dest, func(r io.Reader) (io.Reader, error) { return xz.NewReader(r) })
	case ".7z":
		sevenZip := domain.ConfigFromContext(ctx).Executable("7z")
		err = f.exec(ctx, dest, sevenZip, "x", "-y", "-o"+dest, archive)
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnsupportedArchive, ext), "archive", archive)
	}
	if err != nil {
		return zerr.With(err, "archive", archive)
	}
	return nil
}

func extractZip(archive, dest string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return zerr.Wrap(err, "failed to open zip archive")
	}
	defer func() { _ = r.Close() }()

	for _, file := range r.File {
		target, err := safeJoin(dest, file.Name)
		if err != nil {
			return err
		}
		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return zerr.Wrap(err, "failed to create directory")
			}
			continue
		}
		if err := extractZipFile(file, target); err != nil {
			return err
		}
	}
	return nil
}

func extractZipFile(file *zip.File, target string) error {
	src, err := file.Open()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open zip entry"), "entry", file.Name)
	}
	defer func() { _ = src.Close() }()
	return writeEntry(src, target, file.Mode())
}

func extractTar(archive, dest string, decompress func(io.Reader) (io.Reader, error)) error {
	file, err := os.Open(archive) //nolint:gosec // archive lives in the download directory
	if err != nil {
		return zerr.Wrap(err, "failed to open archive")
	}
	defer func() { _ = file.Close() }()

	stream, err := decompress(file)
	if err != nil {
		return zerr.Wrap(err, "failed to decompress archive")
	}

	tr := tar.NewReader(stream)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return zerr.Wrap(err, "failed to read tar entry")
		}

		target, err := safeJoin(dest, hdr.Name)
		if err != nil {
			return err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return zerr.Wrap(err, "failed to create directory")
			}
		case tar.TypeReg:
			if err := writeEntry(tr, target, fs.FileMode(hdr.Mode).Perm()); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if _, err := safeJoin(filepath.Dir(target), hdr.Linkname); err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
				return zerr.Wrap(err, "failed to create directory")
			}
			if err := os.Symlink(hdr.Linkname, target); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create symlink"), "entry", hdr.Name)
			}
		}
	}
}

func writeEntry(src io.Reader, target string, mode fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory")
	}
	if mode == 0 {
		mode = domain.FilePerm
	}
	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode) //nolint:gosec // target is checked by safeJoin
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", target)
	}
	if _, err := io.Copy(dst, src); err != nil { //nolint:gosec // archives come from declared sources
		_ = dst.Close()
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", target)
	}
	return dst.Close()
}

// safeJoin joins an archive entry name onto dest and rejects names that
// escape it.
func safeJoin(dest, name string) (string, error) {
	target := filepath.Join(dest, name)
	root := filepath.Clean(dest)
	if target != root && !strings.HasPrefix(target, root+string(os.PathSeparator)) {
		return "", zerr.With(zerr.New("archive entry escapes destination"), "entry", name)
	}
	return target, nil
}
