package fetch

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports"
	"go.trai.ch/zerr"
)

func (f *Fetcher) fetchGit(ctx context.Context, spec domain.SourceSpec, opts ports.FetchOptions) error {
	if !f.mustRetrieve(ctx, spec.Destination, opts.Force) {
		return nil
	}
	git := domain.ConfigFromContext(ctx).Executable("git")
	dest := spec.Destination
	remote := spec.Remote
	if remote == "" {
		remote = "origin"
	}
	branch := spec.Branch
	if branch == "" {
		branch = "master"
	}

	if dirExists(dest) {
		f.logger.Info("updating " + dest)
		if err := f.exec(ctx, dest, git, "fetch", "--tags", remote); err != nil {
			return err
		}
		switch {
		case spec.Commit != "":
			if err := f.exec(ctx, dest, git, "checkout", spec.Commit); err != nil {
				return err
			}
		case spec.Tag != "":
			if err := f.exec(ctx, dest, git, "checkout", "tags/"+spec.Tag); err != nil {
				return err
			}
		default:
			if err := f.exec(ctx, dest, git, "checkout", branch); err != nil {
				return err
			}
			if err := f.exec(ctx, dest, git, "reset", "--hard", remote+"/"+branch); err != nil {
				return err
			}
		}
	} else {
		f.logger.Info("cloning " + spec.URI)
		if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create checkout parent"), "path", dest)
		}
		args := []string{git, "clone", "--origin", remote}
		switch {
		case spec.Tag != "":
			args = append(args, "--branch", spec.Tag)
		case spec.Commit == "":
			args = append(args, "--branch", branch)
		}
		args = append(args, spec.URI, dest)
		if err := f.exec(ctx, "", args...); err != nil {
			return err
		}
		if spec.Commit != "" {
			if err := f.exec(ctx, dest, git, "checkout", spec.Commit); err != nil {
				return err
			}
		}
	}

	if !spec.Submodules {
		return nil
	}
	if opts.Force {
		if err := f.exec(ctx, dest, git, "submodule", "foreach", "--recursive", "git clean -dfx"); err != nil {
			return err
		}
	}
	args := []string{git, "submodule", "update", "--init", "--recursive"}
	if spec.SubmodulesRemote {
		args = append(args, "--remote")
	}
	return f.exec(ctx, dest, args...)
}

func (f *Fetcher) fetchHg(ctx context.Context, spec domain.SourceSpec, opts ports.FetchOptions) error {
	if !f.mustRetrieve(ctx, spec.Destination, opts.Force) {
		return nil
	}
	hg := domain.ConfigFromContext(ctx).Executable("hg")
	dest := spec.Destination

	rev := spec.Commit
	if rev == "" {
		rev = spec.Tag
	}
	if rev == "" {
		rev = spec.Branch
	}

	if dirExists(dest) {
		f.logger.Info("updating " + dest)
		remote := spec.Remote
		if remote == "" {
			remote = "default"
		}
		if err := f.exec(ctx, dest, hg, "pull", remote); err != nil {
			return err
		}
		args := []string{hg, "update", "--clean"}
		if rev != "" {
			args = append(args, rev)
		}
		return f.exec(ctx, dest, args...)
	}

	f.logger.Info("cloning " + spec.URI)
	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create checkout parent"), "path", dest)
	}
	args := []string{hg, "clone"}
	if rev != "" {
		args = append(args, "--updaterev", rev)
	}
	args = append(args, spec.URI, dest)
	return f.exec(ctx, "", args...)
}
