package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// unitsFile represents units.yml. Units are kept as raw nodes so that an
// override can be decoded on top of its base, field by field.
type unitsFile struct {
	ProjectDefaults *yaml.Node  `yaml:"project_defaults"`
	Prerequisites   []yaml.Node `yaml:"prerequisites"`
	Projects        []yaml.Node `yaml:"projects"`
}

// unitLayers is one unit in declared order, with every document that defines it.
type unitLayers struct {
	name   string
	kind   domain.UnitKind
	layers []*yaml.Node
}

func (l *Loader) loadUnits(root string, cfg *domain.Config) ([]domain.BuildUnit, error) {
	var base unitsFile
	if err := yaml.Unmarshal(defaultUnits, &base); err != nil {
		return nil, errors.Join(domain.ErrConfigInvalid, zerr.Wrap(err, "failed to parse built-in units"))
	}

	var override unitsFile
	path := filepath.Join(root, domain.UnitsFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the workspace root
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, "failed to read units file"), "file", path)
	default:
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, errors.Join(domain.ErrConfigInvalid,
				zerr.With(zerr.Wrap(err, "failed to parse units file"), "file", path))
		}
	}

	ordered, err := collectLayers(&base, &override)
	if err != nil {
		return nil, err
	}

	var projectDefaults []*yaml.Node
	for _, d := range []*yaml.Node{base.ProjectDefaults, override.ProjectDefaults} {
		if d != nil {
			projectDefaults = append(projectDefaults, d)
		}
	}

	values := cfg.Values()
	units := make([]domain.BuildUnit, 0, len(ordered))
	for _, entry := range ordered {
		layers := entry.layers
		if entry.kind == domain.KindProject {
			layers = append(append([]*yaml.Node(nil), projectDefaults...), layers...)
		}

		var dto UnitDTO
		for _, n := range layers {
			if err := n.Decode(&dto); err != nil {
				return nil, errors.Join(domain.ErrConfigInvalid,
					zerr.With(zerr.Wrap(err, "failed to decode unit"), "unit", entry.name))
			}
		}
		if dto.Enabled != nil && !*dto.Enabled {
			l.logger.Warn("unit disabled: " + entry.name)
			continue
		}

		unit, err := toUnit(entry.name, entry.kind, &dto, values)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, nil
}

// collectLayers orders units as prerequisites then projects, appending
// override documents to the unit of the same name and new units to the end
// of their section.
func collectLayers(base, override *unitsFile) ([]*unitLayers, error) {
	byName := make(map[string]*unitLayers)
	var prereqs, projects []*unitLayers

	add := func(section *[]*unitLayers, kind domain.UnitKind, nodes []yaml.Node, merge bool) error {
		for i := range nodes {
			n := &nodes[i]
			var head struct {
				Name string `yaml:"name"`
			}
			if err := n.Decode(&head); err != nil {
				return errors.Join(domain.ErrConfigInvalid, zerr.Wrap(err, "failed to decode unit"))
			}
			if head.Name == "" {
				return zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "unit without a name"), "line", n.Line)
			}
			if existing, ok := byName[head.Name]; ok {
				if !merge {
					return zerr.With(zerr.Wrap(domain.ErrDuplicateUnit, head.Name), "unit", head.Name)
				}
				existing.layers = append(existing.layers, n)
				continue
			}
			entry := &unitLayers{name: head.Name, kind: kind, layers: []*yaml.Node{n}}
			byName[head.Name] = entry
			*section = append(*section, entry)
		}
		return nil
	}

	if err := add(&prereqs, domain.KindPrerequisite, base.Prerequisites, false); err != nil {
		return nil, err
	}
	if err := add(&projects, domain.KindProject, base.Projects, false); err != nil {
		return nil, err
	}
	if err := add(&prereqs, domain.KindPrerequisite, override.Prerequisites, true); err != nil {
		return nil, err
	}
	if err := add(&projects, domain.KindProject, override.Projects, true); err != nil {
		return nil, err
	}

	return append(prereqs, projects...), nil
}

// toUnit converts a decoded unit into its domain form. Every string is
// formatted against the configuration and the unit's name; {source} is left
// for the application to fill in once the unit was fetched.
func toUnit(name string, kind domain.UnitKind, dto *UnitDTO, values map[string]string) (domain.BuildUnit, error) {
	vals := make(map[string]string, len(values)+1)
	for k, v := range values {
		vals[k] = v
	}
	vals["name"] = name

	backend := domain.BackendKind(dto.Backend)
	switch backend {
	case domain.BackendCMake, domain.BackendScript, domain.BackendCompile,
		domain.BackendInstaller, domain.BackendNone:
	case "":
		backend = domain.BackendNone
	default:
		return domain.BuildUnit{}, zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownBackend, dto.Backend),
			"unit", name), "backend", dto.Backend)
	}

	unit := domain.BuildUnit{
		Name:             name,
		Kind:             kind,
		WorkingDirectory: dto.WorkingDir,
		BuildDirectory:   dto.BuildDir,
		ExpectedOutputs:  dto.Outputs,
		DependsOn:        dto.DependsOn,
		Config: domain.BuildConfig{
			Backend: backend,
			Target:  dto.Target,
		},
	}
	if unit.WorkingDirectory == "" {
		return domain.BuildUnit{}, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "unit has no working_dir"), "unit", name)
	}

	if dto.Source != nil {
		src, err := toSource(name, dto.Source, vals)
		if err != nil {
			return domain.BuildUnit{}, err
		}
		unit.Source = src
	}

	if dto.CMake != nil {
		unit.Config.CMake = &domain.CMakeConfig{
			Generator: dto.CMake.Generator,
			Source:    dto.CMake.Source,
			Defines:   dto.CMake.Defines,
		}
	}
	if dto.Script != nil {
		unit.Config.Script = &domain.ScriptConfig{
			Env:             dto.Script.Env,
			Prepare:         dto.Script.Prepare,
			Clean:           dto.Script.Clean,
			Configure:       dto.Script.Configure,
			Build:           dto.Script.Build,
			RecordConfigure: dto.Script.RecordConfigure,
		}
	}
	if dto.Compile != nil {
		unit.Config.Compile = &domain.CompileConfig{
			Pre:      dto.Compile.Pre,
			Compiler: dto.Compile.Compiler,
			Archiver: dto.Compile.Archiver,
			Sources:  dto.Compile.Sources,
			Output:   dto.Compile.Output,
		}
	}
	if dto.Installer != nil {
		unit.Config.Installer = &domain.InstallerConfig{
			Command:        dto.Installer.Command,
			WaitFor:        dto.Installer.WaitFor,
			Attempts:       dto.Installer.Attempts,
			IntervalMillis: dto.Installer.IntervalMS,
		}
	}
	for _, r := range dto.Install {
		unit.Config.Install = append(unit.Config.Install, domain.CopyRule{
			Pattern:     r.Pattern,
			Destination: r.Destination,
			Exclude:     r.Exclude,
		})
	}
	for _, a := range dto.AppendLines {
		unit.Config.AppendLines = append(unit.Config.AppendLines, domain.AppendLines{File: a.File, Lines: a.Lines})
	}
	if dto.UserFile != nil {
		unit.Config.UserFile = &domain.UserFile{Path: dto.UserFile.Path, Template: dto.UserFile.Template}
	}

	return unit.Resolve(vals), nil
}

func toSource(unit string, dto *SourceDTO, values map[string]string) (*domain.SourceSpec, error) {
	kind := domain.SourceKind(dto.Kind)
	switch kind {
	case domain.SourceGit, domain.SourceHg, domain.SourceHTTP:
	default:
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "unknown source kind"),
			"unit", unit), "kind", dto.Kind)
	}

	dest := domain.Format(dto.Destination, values)
	if dest == "" {
		dest = filepath.Join(values["build_dir"], unit)
	}

	return &domain.SourceSpec{
		Kind:             kind,
		URI:              domain.Format(dto.URI, values),
		Destination:      filepath.Clean(dest),
		Subdir:           domain.Format(dto.Subdir, values),
		Remote:           dto.Remote,
		Branch:           dto.Branch,
		Tag:              dto.Tag,
		Commit:           dto.Commit,
		Submodules:       dto.Submodules,
		SubmodulesRemote: dto.SubmodulesRemote,
		Filename:         domain.Format(dto.Filename, values),
		DownloadOnly:     dto.DownloadOnly,
	}, nil
}
