package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atelierbuild/atelier/internal/frontmatter"
	"github.com/atelierbuild/atelier/internal/logfields"
)

const metadataFile = "info.md"

// Scanner discovers project types and projects under a two-level directory
// layout: <root>/<type>/<slug>.
type Scanner struct {
	root string
	log  *slog.Logger
}

// NewScanner creates a scanner over the given projects root.
func NewScanner(root string, log *slog.Logger) *Scanner {
	if log == nil {
		log = slog.Default()
	}
	return &Scanner{root: root, log: log}
}

// Scan enumerates all project types and their projects, sorted by directory
// name for deterministic output.
//
// A project without an info.md is excluded with a warning; an unreadable
// projects root is the only fatal condition.
func (s *Scanner) Scan() ([]ProjectType, error) {
	typeDirs, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read projects root %s: %w", s.root, err)
	}

	var types []ProjectType
	for _, td := range typeDirs {
		if !td.IsDir() || strings.HasPrefix(td.Name(), ".") {
			continue
		}

		pt, err := s.scanType(td.Name())
		if err != nil {
			return nil, err
		}
		if len(pt.Projects) == 0 {
			s.log.Warn("Type directory has no buildable projects", logfields.Type(td.Name()))
			continue
		}
		types = append(types, pt)
	}

	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })

	total := 0
	for _, pt := range types {
		total += len(pt.Projects)
	}
	s.log.Info("Content scan complete", logfields.Count(total), slog.Int("types", len(types)))
	return types, nil
}

func (s *Scanner) scanType(typeName string) (ProjectType, error) {
	typePath := filepath.Join(s.root, typeName)
	entries, err := os.ReadDir(typePath)
	if err != nil {
		return ProjectType{}, fmt.Errorf("read type directory %s: %w", typePath, err)
	}

	pt := ProjectType{Name: typeName, Title: DisplayTitle(typeName)}
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}

		proj, ok := s.loadProject(typeName, e.Name())
		if !ok {
			continue
		}
		pt.Projects = append(pt.Projects, proj)
	}

	sort.Slice(pt.Projects, func(i, j int) bool { return pt.Projects[i].Slug < pt.Projects[j].Slug })
	return pt, nil
}

// loadProject parses one project's metadata file. Missing or unparseable
// metadata excludes the project from the build without failing it.
func (s *Scanner) loadProject(typeName, slug string) (Project, bool) {
	dir := filepath.Join(s.root, typeName, slug)
	metaPath := filepath.Join(dir, metadataFile)

	data, err := os.ReadFile(metaPath)
	if err != nil {
		s.log.Warn("Project metadata not found, excluding project",
			logfields.Type(typeName), logfields.Project(slug), logfields.Path(metaPath))
		return Project{}, false
	}

	meta, body, err := frontmatter.Parse(data)
	if err != nil {
		s.log.Warn("Project metadata unparseable, excluding project",
			logfields.Type(typeName), logfields.Project(slug), logfields.Error(err))
		return Project{}, false
	}

	proj := Project{
		Type:      typeName,
		Slug:      slug,
		Title:     meta.Title,
		Date:      meta.Date,
		Materials: meta.Materials,
		Dir:       dir,
		Vimeo:     meta.Vimeo,
		YouTube:   meta.YouTube,
	}
	if proj.Title == "" {
		proj.Title = slug
	}

	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		html, err := RenderMarkdown([]byte(trimmed))
		if err != nil {
			s.log.Warn("Statement rendering failed, omitting statement",
				logfields.Project(slug), logfields.Error(err))
		} else {
			proj.Statement = html
		}
	}

	s.log.Debug("Project loaded", logfields.Type(typeName), logfields.Project(slug))
	return proj, true
}
