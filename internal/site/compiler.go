// Package site renders the pages of the portfolio site. Every renderer is a
// pure function from content and configuration to an HTML document; the
// orchestrator decides where the result is written.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"path"

	"github.com/atelierbuild/atelier/internal/config"
	"github.com/atelierbuild/atelier/internal/content"
	"github.com/atelierbuild/atelier/internal/media"
)

// Page is one compiled output document.
type Page struct {
	Path    string // path relative to the output root
	Content []byte
}

// ProjectEntry pairs a project with its resolved media set.
type ProjectEntry struct {
	Project content.Project
	Media   media.Set
}

// Compiler renders pages against one immutable site configuration.
type Compiler struct {
	cfg *config.Config
}

// New creates a compiler for the given configuration.
func New(cfg *config.Config) *Compiler {
	return &Compiler{cfg: cfg}
}

// itemView is the template-facing shape of one media item on the detail
// page. PopupIndex is the item's position in the lightbox sequence, or -1
// for items the lightbox excludes (videos).
type itemView struct {
	IsImage    bool
	IsPDF      bool
	FullSrc    string
	EmbedURL   string
	PopupIndex int
}

// ProjectPage renders a project detail page for
// <type>/<slug>/index.html (two directory levels deep).
func (c *Compiler) ProjectPage(e ProjectEntry) (Page, error) {
	items := make([]itemView, 0, len(e.Media.Items))
	var popup []itemView
	for _, it := range e.Media.Items {
		v := itemView{PopupIndex: -1}
		switch it.Kind {
		case media.KindImage:
			v.IsImage = true
			v.FullSrc = "images/" + media.Stem(it.Source) + ".webp"
		case media.KindPDF:
			v.IsPDF = true
			v.FullSrc = "images/" + it.Source
		default:
			v.EmbedURL = it.EmbedURL()
		}
		if v.IsImage || v.IsPDF {
			v.PopupIndex = len(popup)
			popup = append(popup, v)
		}
		items = append(items, v)
	}

	data := struct {
		SiteTitle  string
		TypeTitle  string
		Title      string
		Date       string
		Materials  string
		Statement  template.HTML
		Items      []itemView
		PopupItems []itemView
	}{
		SiteTitle:  c.cfg.Site.Title,
		TypeTitle:  content.DisplayTitle(e.Project.Type),
		Title:      e.Project.Title,
		Date:       e.Project.Date,
		Materials:  e.Project.Materials,
		Statement:  e.Project.Statement,
		Items:      items,
		PopupItems: popup,
	}

	body, err := render("detail", detailTemplate, data)
	if err != nil {
		return Page{}, err
	}
	return Page{Path: path.Join(e.Project.Type, e.Project.Slug, "index.html"), Content: body}, nil
}

// TypePage renders the listing page of one project type at
// <type>/index.html (one directory level deep).
func (c *Compiler) TypePage(t content.ProjectType, entries []ProjectEntry) (Page, error) {
	type cardView struct {
		Title      string
		Date       string
		URL        string
		ThumbSrc   string
		ThumbIsPDF bool
	}

	cards := make([]cardView, 0, len(entries))
	for _, e := range entries {
		card := cardView{
			Title: e.Project.Title,
			Date:  e.Project.Date,
			URL:   e.Project.Slug + "/index.html",
		}
		if thumb, ok := e.Media.Thumbnail(); ok {
			switch thumb.Kind {
			case media.KindPDF:
				card.ThumbSrc = path.Join(e.Project.Slug, "images", thumb.Source)
				card.ThumbIsPDF = true
			default:
				card.ThumbSrc = path.Join(e.Project.Slug, "images", thumb.ThumbFile())
			}
		}
		cards = append(cards, card)
	}

	data := struct {
		SiteTitle string
		TypeTitle string
		Cards     []cardView
	}{
		SiteTitle: c.cfg.Site.Title,
		TypeTitle: t.Title,
		Cards:     cards,
	}

	body, err := render("type", typeTemplate, data)
	if err != nil {
		return Page{}, err
	}
	return Page{Path: path.Join(t.Name, "index.html"), Content: body}, nil
}

// HomePage renders the site home page. decorations holds the configured
// decorative asset names that were actually found on disk, in configured
// order; the first two flank the hero copy.
func (c *Compiler) HomePage(types []content.ProjectType, decorations []string) (Page, error) {
	type typeLink struct {
		Title string
		URL   string
	}

	links := make([]typeLink, 0, len(types))
	for _, t := range types {
		links = append(links, typeLink{Title: t.Title, URL: t.Name + "/index.html"})
	}

	data := struct {
		SiteTitle       string
		Subtitle        string
		Types           []typeLink
		LeftDecoration  string
		RightDecoration string
	}{
		SiteTitle: c.cfg.Site.Title,
		Subtitle:  c.cfg.Site.Subtitle,
		Types:     links,
	}
	if len(decorations) > 0 {
		data.LeftDecoration = "assets/" + decorations[0]
	}
	if len(decorations) > 1 {
		data.RightDecoration = "assets/" + decorations[1]
	}

	body, err := render("home", homeTemplate, data)
	if err != nil {
		return Page{}, err
	}
	return Page{Path: "index.html", Content: body}, nil
}

// aboutPlaceholder is shown when no about.md exists yet.
const aboutPlaceholder = template.HTML("<p>Nothing here yet — check back soon.</p>")

// AboutPage renders the about page from pre-rendered markdown. An empty
// body gets a friendly placeholder.
func (c *Compiler) AboutPage(body template.HTML) (Page, error) {
	if body == "" {
		body = aboutPlaceholder
	}

	data := struct {
		SiteTitle string
		Body      template.HTML
	}{
		SiteTitle: c.cfg.Site.Title,
		Body:      body,
	}

	out, err := render("about", aboutTemplate, data)
	if err != nil {
		return Page{}, err
	}
	return Page{Path: "about.html", Content: out}, nil
}

func render(name, text string, data any) ([]byte, error) {
	tpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s template: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s page: %w", name, err)
	}
	return buf.Bytes(), nil
}
