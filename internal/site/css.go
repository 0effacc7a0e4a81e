package site

import (
	"bytes"
	"fmt"
	"text/template"
)

// The stylesheet is generated, not static: every color/size/font token is
// interpolated from the theme configuration so the config stays the single
// source of truth for styling.
const stylesheetTemplate = `:root {
  --background: {{ .Background }};
  --text: {{ .Text }};
  --accent: {{ .Accent }};
  --card-background: {{ .CardBackground }};
  --content-width: {{ .MaxContentWidth }}px;
  --thumb-size: {{ .ThumbDisplay }}px;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  background: var(--background);
  color: var(--text);
  font-family: {{ .FontFamily }};
  line-height: 1.5;
}

h1, h2, h3 { font-family: {{ .HeadingFont }}; }

a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }

header nav {
  display: flex;
  gap: 1.5rem;
  padding: 1rem 1.5rem;
}

main {
  max-width: var(--content-width);
  margin: 0 auto;
  padding: 0 1.5rem 3rem;
}

.project-meta .date { margin-right: 1rem; }
.project-meta .materials { font-style: italic; }

.carousel { position: relative; }
.carousel-slide { display: none; margin: 0; }
.carousel-slide.current { display: block; }
.carousel-slide img { max-width: 100%; height: auto; cursor: zoom-in; }
.video-frame { width: 100%; aspect-ratio: 16 / 9; border: 0; }
.pdf-frame { width: 100%; height: 70vh; }

.carousel-nav, .popup-nav {
  position: absolute;
  top: 50%;
  transform: translateY(-50%);
  background: var(--card-background);
  color: var(--text);
  border: 0;
  font-size: 1.5rem;
  padding: 0.25rem 0.75rem;
  cursor: pointer;
}
.carousel-nav.prev, .popup-nav.prev { left: 0.5rem; }
.carousel-nav.next, .popup-nav.next { right: 0.5rem; }

.popup {
  position: fixed;
  inset: 0;
  background: rgba(0, 0, 0, 0.85);
  display: flex;
  align-items: center;
  justify-content: center;
}
.popup[hidden] { display: none; }
.popup-slide { display: none; margin: 0; max-width: 90vw; max-height: 90vh; }
.popup-slide.current { display: block; }
.popup-slide img { max-width: 90vw; max-height: 90vh; }
.popup-close {
  position: absolute;
  top: 1rem;
  right: 1rem;
  background: none;
  border: 0;
  color: #fff;
  font-size: 2rem;
  cursor: pointer;
}

.cards {
  list-style: none;
  margin: 0;
  padding: 0;
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(var(--thumb-size), 1fr));
  gap: 1.5rem;
}
.card a {
  display: block;
  background: var(--card-background);
  padding: 0.75rem;
  color: var(--text);
}
.card-thumb {
  width: 100%;
  aspect-ratio: 1;
  object-fit: cover;
  display: block;
}
.card-thumb.placeholder { background: var(--background); }
.card-title { display: block; margin-top: 0.5rem; }
.card-date { display: block; font-size: 0.85rem; opacity: 0.7; }

.home .hero {
  display: flex;
  align-items: center;
  justify-content: center;
  gap: 2rem;
  padding: 4rem 0 2rem;
  text-align: center;
}
.decoration { max-height: 8rem; }
.type-nav ul { list-style: none; padding: 0; text-align: center; }
.type-nav li { margin: 0.5rem 0; font-size: 1.25rem; }
`

// Stylesheet renders style.css from the theme tokens.
func (c *Compiler) Stylesheet() (Page, error) {
	tpl, err := template.New("stylesheet").Option("missingkey=error").Parse(stylesheetTemplate)
	if err != nil {
		return Page{}, fmt.Errorf("parse stylesheet template: %w", err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, c.cfg.Theme); err != nil {
		return Page{}, fmt.Errorf("render stylesheet: %w", err)
	}
	return Page{Path: "style.css", Content: buf.Bytes()}, nil
}
