// Package build orchestrates a full site build: scan the project tree,
// run the asset pipeline, render pages, and write the output tree.
package build

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/atelierbuild/atelier/internal/assets"
	"github.com/atelierbuild/atelier/internal/config"
	"github.com/atelierbuild/atelier/internal/content"
	"github.com/atelierbuild/atelier/internal/logfields"
	"github.com/atelierbuild/atelier/internal/media"
	"github.com/atelierbuild/atelier/internal/site"
	"github.com/atelierbuild/atelier/internal/storage"
)

// Runner executes site builds against one configuration.
type Runner struct {
	cfg      *config.Config
	pipeline *assets.Pipeline
	compiler *site.Compiler
	log      *slog.Logger
}

// NewRunner wires a runner from the configuration. A nil logger falls
// back to slog.Default.
func NewRunner(cfg *config.Config, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		cfg:      cfg,
		pipeline: assets.NewPipeline(cfg.Images, nil, log),
		compiler: site.New(cfg),
		log:      log,
	}
}

// Run performs one full build. Per-project problems are recorded on the
// report and the build continues; the returned error is reserved for
// conditions that make any output impossible, like an unreadable
// projects root.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := NewReport()
	started := time.Now()
	log := r.log.With("build.id", report.BuildID)

	types, err := content.NewScanner(r.cfg.Paths.Projects, log).Scan()
	if err != nil {
		return report, fmt.Errorf("scan projects: %w", err)
	}

	if err := storage.EnsureDir(r.cfg.Paths.Output); err != nil {
		return report, fmt.Errorf("prepare output: %w", err)
	}

	for ti := range types {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		r.buildType(ctx, &types[ti], report, log)
	}

	r.writeSitePages(types, report, log)
	r.copySiteAssets(report, log)

	log.Info("build finished",
		logfields.Stage("build"),
		logfields.Count(report.Projects()),
		logfields.DurationMS(float64(time.Since(started).Milliseconds())),
		slog.Int("failures", len(report.Failures())))
	return report, nil
}

// buildType processes every project of one type and renders the type's
// listing page.
func (r *Runner) buildType(ctx context.Context, t *content.ProjectType, report *Report, log *slog.Logger) {
	entries := make([]site.ProjectEntry, 0, len(t.Projects))
	for _, p := range t.Projects {
		set := media.Resolve(p.ImagesDir(), p.Vimeo, p.YouTube, log)
		r.processProject(ctx, p, set, report, log)
		entries = append(entries, site.ProjectEntry{Project: p, Media: set})
	}

	page, err := r.compiler.TypePage(*t, entries)
	if err != nil {
		report.AddFailure(t.Name, "render", err)
		return
	}
	r.writePage(page, t.Name, report, log)
}

// processProject runs the asset pipeline for one project and renders
// its detail page.
func (r *Runner) processProject(ctx context.Context, p content.Project, set media.Set, report *Report, log *slog.Logger) {
	name := p.Type + "/" + p.Slug
	destDir := filepath.Join(r.cfg.Paths.Output, p.Type, p.Slug, "images")

	for _, err := range r.pipeline.Process(ctx, p.ImagesDir(), destDir, set) {
		report.AddFailure(name, "assets", err)
	}
	report.AddImages(len(set.Items))

	page, err := r.compiler.ProjectPage(site.ProjectEntry{Project: p, Media: set})
	if err != nil {
		report.AddFailure(name, "render", err)
		return
	}
	r.writePage(page, name, report, log)
	report.AddProject()
	log.Debug("project built", logfields.Project(p.Slug), logfields.Type(p.Type), logfields.Count(len(set.Items)))
}

// writeSitePages renders the home page, about page, and stylesheet.
func (r *Runner) writeSitePages(types []content.ProjectType, report *Report, log *slog.Logger) {
	home, err := r.compiler.HomePage(types, r.decorations(log))
	if err != nil {
		report.AddFailure("", "render", err)
	} else {
		r.writePage(home, "home", report, log)
	}

	about, err := r.compiler.AboutPage(r.aboutBody(report, log))
	if err != nil {
		report.AddFailure("", "render", err)
	} else {
		r.writePage(about, "about", report, log)
	}

	css, err := r.compiler.Stylesheet()
	if err != nil {
		report.AddFailure("", "render", err)
	} else {
		r.writePage(css, "stylesheet", report, log)
	}
}

// aboutBody reads and renders the configured about page. A missing file
// is fine; the compiler substitutes a placeholder for an empty body.
func (r *Runner) aboutBody(report *Report, log *slog.Logger) template.HTML {
	raw, err := os.ReadFile(r.cfg.Paths.About)
	if os.IsNotExist(err) {
		log.Info("no about page, using placeholder", logfields.Path(r.cfg.Paths.About))
		return ""
	}
	if err != nil {
		report.AddFailure("", "about", err)
		return ""
	}
	body, err := content.RenderMarkdown(raw)
	if err != nil {
		report.AddFailure("", "about", err)
		return ""
	}
	return body
}

// decorations returns the configured decoration file names that exist
// in the assets directory, in configured order.
func (r *Runner) decorations(log *slog.Logger) []string {
	var found []string
	for _, name := range r.cfg.Site.Decorations {
		p := filepath.Join(r.cfg.Paths.Assets, name)
		if storage.Exists(p) {
			found = append(found, name)
			continue
		}
		log.Warn("decoration not found, skipping", logfields.File(name), logfields.Path(p))
	}
	return found
}

// copySiteAssets mirrors the shared assets directory into the output
// tree. A missing source directory is not an error.
func (r *Runner) copySiteAssets(report *Report, log *slog.Logger) {
	if !storage.Exists(r.cfg.Paths.Assets) {
		return
	}
	dest := filepath.Join(r.cfg.Paths.Output, "assets")
	if err := storage.CopyDir(r.cfg.Paths.Assets, dest); err != nil {
		report.AddFailure("", "assets", err)
		return
	}
	log.Debug("site assets copied", logfields.Path(dest))
}

func (r *Runner) writePage(page site.Page, what string, report *Report, log *slog.Logger) {
	if _, err := storage.WriteUnder(r.cfg.Paths.Output, page.Path, page.Content); err != nil {
		report.AddFailure(what, "write", err)
		return
	}
	report.AddPage()
}
