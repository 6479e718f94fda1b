// Package generate materializes the sample Teams scaffold: a quarter-bucketed
// tree of phase folders, main deliverable placeholders, and dated review cycles.
package generate

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/dshills/teamsgen/internal/artifact"
	"github.com/dshills/teamsgen/internal/catalog"
	"github.com/dshills/teamsgen/internal/config"
	"github.com/dshills/teamsgen/internal/fsio"
	"github.com/dshills/teamsgen/internal/manifest"
)

// Generator runs one synchronous generation pass. Re-running with the same
// configuration and run date reproduces the same tree, overwriting in place.
type Generator struct {
	FS     fsio.FS
	Writer artifact.Writer
	Logf   func(format string, args ...any) // progress logging; nil disables
}

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// QuarterBucket returns the time-bucket folder name "<year>_<quarter>Q"
// for a date, quarter = (month-1)/3 + 1.
func QuarterBucket(t time.Time) string {
	quarter := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("%d_%dQ", t.Year(), quarter)
}

// Run generates the full tree under cfg.RootPath and returns the manifest of
// everything it created. Directory and file creation errors abort the run;
// rich-format writer failures degrade per artifact and never abort.
func (g *Generator) Run(cfg *config.Config, runDate time.Time) (*manifest.Manifest, error) {
	m := &manifest.Manifest{
		Input: manifest.Input{
			ConfigFile: cfg.Path,
			Root:       cfg.RootPath,
			Project:    cfg.ProjectName,
			Item:       cfg.ItemName,
			RunDate:    runDate.Format("2006-01-02"),
		},
	}

	itemRel := path.Join(cfg.ProjectName, cfg.ItemName)
	if err := g.ensureDir(m, itemRel); err != nil {
		return nil, err
	}
	g.logf("created project root: %s", filepath.Join(cfg.RootPath, filepath.FromSlash(itemRel)))

	bucketRel := path.Join(itemRel, QuarterBucket(runDate))
	if err := g.ensureDir(m, bucketRel); err != nil {
		return nil, err
	}
	g.logf("created quarter folder: %s", path.Base(bucketRel))

	for _, phase := range catalog.Phases() {
		if err := g.generatePhase(m, cfg, phase, bucketRel, runDate); err != nil {
			return nil, err
		}
	}

	m.Summary = manifest.Summarize(m.Entries)
	g.logf("sample Teams structure complete: %d directories, %d files",
		m.Summary.DirCount, m.Summary.FileCount())
	return m, nil
}

func (g *Generator) generatePhase(m *manifest.Manifest, cfg *config.Config, phase catalog.Phase, bucketRel string, runDate time.Time) error {
	phaseRel := path.Join(bucketRel, phase.FolderName())
	if err := g.ensureDir(m, phaseRel); err != nil {
		return err
	}
	g.logf("  created phase folder: %s", phase.FolderName())

	// Main deliverables directly under the phase folder. Document stems are
	// recorded for reuse by the review cycles; source placeholders are not.
	var recorded []catalog.Deliverable
	for _, d := range catalog.Deliverables(phase.Code) {
		if d.Source {
			if err := g.writeArtifact(m, phaseRel, artifact.KindSource, "", cfg, d.Stem+".py"); err != nil {
				return err
			}
			continue
		}
		if err := g.writeDocument(m, phaseRel, cfg, d); err != nil {
			return err
		}
		recorded = append(recorded, d)
	}

	// Every phase gets the full review folder skeleton; only the cycles below
	// decide which review types receive dated content.
	resultsRel := path.Join(phaseRel, catalog.ResultsFolder)
	for _, rel := range []string{
		resultsRel,
		path.Join(resultsRel, string(catalog.ReviewInternal)),
		path.Join(resultsRel, string(catalog.ReviewExternal)),
	} {
		if err := g.ensureDir(m, rel); err != nil {
			return err
		}
	}

	for _, cycle := range catalog.Cycles(phase.Code) {
		if err := g.generateCycle(m, cfg, phase, resultsRel, cycle, recorded, runDate); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) generateCycle(m *manifest.Manifest, cfg *config.Config, phase catalog.Phase, resultsRel string, cycle catalog.Cycle, recorded []catalog.Deliverable, runDate time.Time) error {
	date := runDate.AddDate(0, 0, -cycle.DaysAgo)
	cycleRel := path.Join(resultsRel, string(cycle.Kind), date.Format("20060102"))
	if err := g.ensureDir(m, cycleRel); err != nil {
		return err
	}
	g.logf("    created review cycle folder: %s/%s", cycle.Kind, path.Base(cycleRel))

	if v := catalog.Variant(phase.Code, cycle); v != nil {
		// Named exception: this cycle gets a single variant-named document
		// instead of copies of the recorded deliverables.
		if err := g.writeDocument(m, cycleRel, cfg, *v); err != nil {
			return err
		}
	} else {
		for _, d := range recorded {
			if err := g.writeDocument(m, cycleRel, cfg, d); err != nil {
				return err
			}
		}
	}

	checklistName := fmt.Sprintf("review_checklist_%s_%s_%s_%s.xlsx",
		phase.Code, cycle.Label, cfg.ProjectName, cfg.ItemName)
	checklistTitle := cfg.Title(catalog.ChecklistTitleKey, artifact.ChecklistHeader)
	if err := g.writeArtifact(m, cycleRel, artifact.KindChecklist, checklistTitle, cfg, checklistName); err != nil {
		return err
	}

	minutesName := fmt.Sprintf("review_minutes_%s_%s_%s_%s.xlsx",
		phase.Name, cycle.Label, cfg.ProjectName, cfg.ItemName)
	minutesTitle := cfg.Title(catalog.MinutesTitleKey, artifact.MinutesHeader)
	return g.writeArtifact(m, cycleRel, artifact.KindMinutes, minutesTitle, cfg, minutesName)
}

// writeDocument writes one main-document placeholder named
// "<stem>_<project>_<item>.xlsx", resolving the title from the config lookup
// with the stem itself as fallback.
func (g *Generator) writeDocument(m *manifest.Manifest, dirRel string, cfg *config.Config, d catalog.Deliverable) error {
	name := fmt.Sprintf("%s_%s_%s.xlsx", d.Stem, cfg.ProjectName, cfg.ItemName)
	title := cfg.Title(d.TitleKey, d.Stem)
	return g.writeArtifact(m, dirRel, artifact.KindMain, title, cfg, name)
}

func (g *Generator) writeArtifact(m *manifest.Manifest, dirRel string, kind artifact.Kind, title string, cfg *config.Config, name string) error {
	rel := path.Join(dirRel, name)
	data, outcome := g.Writer.Write(kind, title, cfg.ProjectName, cfg.ItemName, name)

	abs := filepath.Join(cfg.RootPath, filepath.FromSlash(rel))
	if err := g.FS.WriteFile(abs, data, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}

	m.Entries = append(m.Entries, manifest.Entry{
		Path:     rel,
		Kind:     manifest.EntryFile,
		Artifact: kind,
		Outcome:  outcome,
	})
	g.logf("      wrote %s (%s)", name, outcome)
	return nil
}

func (g *Generator) ensureDir(m *manifest.Manifest, rel string) error {
	full := filepath.Join(m.Input.Root, filepath.FromSlash(rel))
	if err := g.FS.MkdirAll(full, dirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", rel, err)
	}
	m.Entries = append(m.Entries, manifest.Entry{Path: rel, Kind: manifest.EntryDir})
	return nil
}

func (g *Generator) logf(format string, args ...any) {
	if g.Logf != nil {
		g.Logf(format, args...)
	}
}
