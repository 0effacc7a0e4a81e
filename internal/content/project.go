package content

import (
	"html/template"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Project is one subdirectory under a project type. It is constructed once
// per build by parsing the project's info.md and never mutated afterwards.
type Project struct {
	Type      string // type directory name
	Slug      string // project directory name, used verbatim in URLs
	Title     string
	Date      string // opaque display text, never parsed
	Materials string
	Statement template.HTML // rendered markdown body, empty when absent
	Dir       string        // absolute path to the project directory
	Vimeo     []string      // raw video URLs from frontmatter, in order
	YouTube   []string
}

// ImagesDir returns the path of the project's media folder. The folder may
// not exist; callers treat a missing folder as "no local media".
func (p Project) ImagesDir() string {
	return p.Dir + "/images"
}

// ProjectType groups the projects of one top-level category directory.
type ProjectType struct {
	Name     string // directory name, used verbatim in URLs
	Title    string // humanized display title
	Projects []Project
}

var titleCaser = cases.Title(language.English)

// DisplayTitle humanizes a directory slug for display:
// "screen-prints" becomes "Screen Prints".
func DisplayTitle(slug string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return titleCaser.String(words)
}
