package app

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/engine/scheduler"
	"go.trai.ch/unibuild/internal/ui/output"
	"go.trai.ch/unibuild/internal/ui/style"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// renderPlan prints one line per unit: icon, name, verdict and reason.
func renderPlan(w io.Writer, report *scheduler.Report) error {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile(w))

	width := 0
	for _, u := range report.Units {
		width = max(width, lipgloss.Width(u.Name))
	}
	nameStyle := r.NewStyle().Width(width + 2)
	reasonStyle := r.NewStyle().Foreground(style.Muted)

	var b strings.Builder
	builds := 0
	for _, u := range report.Units {
		icon, verdict := style.Circle, "skip"
		if u.Build {
			icon, verdict = style.Dot, "build"
			builds++
		}
		verdictStyle := r.NewStyle().Foreground(style.StateColor(verdict)).Width(8)
		b.WriteString(verdictStyle.Render(icon+" "+verdict) + nameStyle.Render(u.Name) + reasonStyle.Render(u.Reason) + "\n")
	}
	b.WriteString(r.NewStyle().Foreground(style.Accent).Render(
		fmt.Sprintf("%s %d of %d units to build", style.Arrow, builds, len(report.Units))) + "\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return zerr.Wrap(err, "failed to write plan")
	}
	return nil
}

type outputsEntry struct {
	Name    string   `yaml:"name"`
	Outputs []string `yaml:"outputs"`
}

type outputsDocument struct {
	Prerequisites []outputsEntry `yaml:"prerequisites,omitempty"`
	Projects      []outputsEntry `yaml:"projects,omitempty"`
}

// renderOutputs prints discovered files as a units.yml override that declares
// them as the unit's expected outputs.
func renderOutputs(w io.Writer, cfg *domain.Config, unit *domain.BuildUnit, files []string) error {
	prefix := ""
	if cfg.BaseDir != "" {
		prefix = "{base_dir}/"
	} else if unit.WorkingDirectory != "" {
		prefix = filepath.ToSlash(unit.WorkingDirectory) + "/"
	}

	entry := outputsEntry{Name: unit.Name, Outputs: make([]string, len(files))}
	for i, f := range files {
		entry.Outputs[i] = prefix + f
	}

	var doc outputsDocument
	if unit.Kind == domain.KindPrerequisite {
		doc.Prerequisites = []outputsEntry{entry}
	} else {
		doc.Projects = []outputsEntry{entry}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return zerr.Wrap(err, "failed to encode outputs")
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, "failed to encode outputs")
	}
	return nil
}
