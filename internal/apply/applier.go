package apply

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"platform-config/internal/common"
	"platform-config/internal/diagnostic"
	"platform-config/internal/diff"
	"platform-config/internal/logging"
	"platform-config/internal/mapping"
	"platform-config/internal/plan"
	"platform-config/internal/project"
	"platform-config/internal/source"
)

// Applier merges the source document into every prepared platform of a project.
type Applier struct {
	fs     afero.Fs
	layout project.Layout
	prefs  *mapping.PreferenceMap
	dryRun bool
	logger *zerolog.Logger
}

// Option configures an Applier.
type Option func(*Applier)

// WithDryRun disables writes; changed targets are reported as diffs.
func WithDryRun(dryRun bool) Option {
	return func(a *Applier) {
		a.dryRun = dryRun
	}
}

// WithLogger replaces the global logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Applier) {
		a.logger = &logger
	}
}

// New creates an Applier. A nil prefs uses the built-in preference map.
func New(fs afero.Fs, layout project.Layout, prefs *mapping.PreferenceMap, opts ...Option) *Applier {
	if prefs == nil {
		prefs = mapping.Default()
	}

	a := &Applier{
		fs:     fs,
		layout: layout,
		prefs:  prefs,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Run processes every platform directory once, in directory listing order.
// Failures are isolated per platform and recorded in the report.
func (a *Applier) Run() *Report {
	report := &Report{
		RunID:  ulid.Make().String(),
		Root:   a.layout.Root,
		DryRun: a.dryRun,
	}

	log := logging.ForRun(report.RunID)
	if a.logger != nil {
		log = a.logger.With().Str("run", report.RunID).Logger()
	}

	platforms, err := a.layout.Platforms(a.fs)
	if err != nil {
		report.Error = err.Error()
		log.Error().Err(err).Msg("Failed to list platforms")

		return report
	}

	if len(platforms) == 0 {
		log.Warn().Str("dir", filepath.Join(a.layout.Root, a.layout.PlatformsDir)).Msg("No platforms found")
	}

	// The source document is shared by every platform of the run.
	src, srcErr := source.Load(a.fs, a.layout.SourcePath())

	for _, p := range platforms {
		res := &PlatformResult{Platform: p.ID, Dir: p.Dir, State: StateDiscovered}
		report.Platforms = append(report.Platforms, res)

		log.Info().Msgf("Processing settings for platform: %s", p.ID)

		err := srcErr
		if err == nil {
			err = a.applyPlatform(log, src, p, res)
		}

		if err != nil {
			res.fail(err)
			log.Error().Err(err).Str("platform", p.ID).Msg("Failed to apply platform settings")

			continue
		}

		res.State = StateApplied
	}

	return report
}

func (a *Applier) applyPlatform(log zerolog.Logger, src *source.Reader, p project.Platform, res *PlatformResult) error {
	pl := plan.Build(src, a.prefs, p.ID)
	res.Diagnostics.Merge(pl.Diagnostics)
	res.State = StateIndexed

	log.Debug().Str("platform", p.ID).Int("records", pl.Len()).Msg("Indexed source document")

	files, err := a.collect(src, p, pl, res)
	if err != nil {
		return err
	}

	for _, f := range files {
		tr, diags, err := a.applyFile(log, f)
		res.Diagnostics.Merge(diags)

		if err != nil {
			return err
		}

		res.Targets = append(res.Targets, tr)
	}

	for _, info := range res.Diagnostics.Infos {
		log.Debug().Str("platform", p.ID).Str("reason", info.Code).Msg(info.String())
	}

	return nil
}

// collect resolves every planned target to a file on disk, grouping targets
// that share a file. A target without an engine is skipped.
func (a *Applier) collect(src *source.Reader, p project.Platform, pl *plan.Plan, res *PlatformResult) ([]*targetFile, error) {
	var files []*targetFile

	byPath := make(map[string]*targetFile)

	for _, target := range pl.TargetNames() {
		eng, ok := engineFor(p.ID, target)
		if !ok {
			res.Diagnostics.AddSkip(diagnostic.ReasonUnsupportedTarget,
				fmt.Sprintf("no merge engine for %s on platform %s", target, p.ID), target, "")

			continue
		}

		path, err := eng.locate(a.fs, a.layout, p.Dir, src)
		if err != nil {
			return nil, fmt.Errorf("failed to locate %s: %w", target, err)
		}

		f, ok := byPath[path]
		if !ok {
			f = &targetFile{path: path, engine: eng}
			byPath[path] = f
			files = append(files, f)
		}

		f.targets = append(f.targets, target)
		f.records = append(f.records, pl.Records(target)...)
	}

	return files, nil
}

func (a *Applier) applyFile(log zerolog.Logger, f *targetFile) (TargetResult, diagnostic.Diagnostics, error) {
	tr := TargetResult{Targets: f.targets, Path: f.path, Records: len(f.records)}

	before, err := afero.ReadFile(a.fs, f.path)
	if err != nil {
		return tr, diagnostic.Diagnostics{}, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	after, diags, err := f.engine.merge(before, f.records)
	if err != nil {
		return tr, diags, fmt.Errorf("failed to merge %s: %w", f.path, err)
	}

	tr.Changed = !bytes.Equal(before, after)

	if a.dryRun {
		if tr.Changed {
			d := diff.Compute(a.relative(f.path), string(before), string(after))
			tr.Diff, tr.Additions, tr.Deletions = d.Text, d.Additions, d.Deletions
		}

		log.Info().Str("engine", f.engine.name).Bool("changed", tr.Changed).
			Msgf("Would write %s: %s", common.BaseName(f.path), f.path)

		return tr, diags, nil
	}

	if err := writeTarget(a.fs, f.path, after); err != nil {
		return tr, diags, err
	}

	tr.Written = true
	log.Info().Msgf("Wrote %s: %s", common.BaseName(f.path), f.path)

	return tr, diags, nil
}

// relative returns path relative to the project root when possible.
func (a *Applier) relative(path string) string {
	rel, err := filepath.Rel(a.layout.Root, path)
	if err != nil {
		return path
	}

	return rel
}
