package site

// HTML page templates. Each page is a self-contained document; the only
// shared file is the generated stylesheet.

const detailTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }} — {{ .SiteTitle }}</title>
  <link rel="stylesheet" href="../../style.css">
</head>
<body>
  <header>
    <nav>
      <a href="../../index.html">{{ .SiteTitle }}</a>
      <a href="../index.html">{{ .TypeTitle }}</a>
    </nav>
  </header>
  <main class="project">
    <h1>{{ .Title }}</h1>
    <p class="project-meta">
      {{- if .Date }}<span class="date">{{ .Date }}</span>{{ end }}
      {{- if .Materials }}<span class="materials">{{ .Materials }}</span>{{ end -}}
    </p>
{{ if .Items }}
    <div class="carousel" id="carousel">
{{ range $i, $item := .Items }}      <figure class="carousel-slide{{ if eq $i 0 }} current{{ end }}">
{{ if $item.IsImage }}        <img src="{{ $item.FullSrc }}" alt="{{ $.Title }}" data-popup-index="{{ $item.PopupIndex }}">
{{ else if $item.IsPDF }}        <object class="pdf-frame" data="{{ $item.FullSrc }}" type="application/pdf" data-popup-index="{{ $item.PopupIndex }}"></object>
{{ else }}        <iframe class="video-frame" src="{{ $item.EmbedURL }}" title="video" allowfullscreen></iframe>
{{ end }}      </figure>
{{ end }}      {{ if gt (len .Items) 1 }}<button class="carousel-nav prev" type="button" aria-label="Previous">&#8249;</button>
      <button class="carousel-nav next" type="button" aria-label="Next">&#8250;</button>{{ end }}
    </div>
{{ end }}
{{ if .Statement }}    <div class="statement">{{ .Statement }}</div>
{{ end }}  </main>
{{ if .PopupItems }}
  <div class="popup" id="popup" hidden>
    <button class="popup-close" type="button" aria-label="Close">&times;</button>
{{ range .PopupItems }}    <figure class="popup-slide">
{{ if .IsImage }}      <img src="{{ .FullSrc }}" alt="{{ $.Title }}">
{{ else }}      <object class="pdf-frame" data="{{ .FullSrc }}" type="application/pdf"></object>
{{ end }}    </figure>
{{ end }}    <button class="popup-nav prev" type="button" aria-label="Previous">&#8249;</button>
    <button class="popup-nav next" type="button" aria-label="Next">&#8250;</button>
  </div>
{{ end }}
  <script>
  (function () {
    var slides = Array.prototype.slice.call(document.querySelectorAll('.carousel-slide'));
    var current = 0;
    function show(i) {
      if (slides.length === 0) { return; }
      current = (i + slides.length) % slides.length;
      slides.forEach(function (s, n) { s.classList.toggle('current', n === current); });
    }
    var prev = document.querySelector('.carousel-nav.prev');
    var next = document.querySelector('.carousel-nav.next');
    if (prev) { prev.addEventListener('click', function () { show(current - 1); }); }
    if (next) { next.addEventListener('click', function () { show(current + 1); }); }

    var popup = document.getElementById('popup');
    if (!popup) { return; }
    var popupSlides = Array.prototype.slice.call(popup.querySelectorAll('.popup-slide'));
    var popupCurrent = 0;
    function showPopup(i) {
      popupCurrent = (i + popupSlides.length) % popupSlides.length;
      popupSlides.forEach(function (s, n) { s.classList.toggle('current', n === popupCurrent); });
    }
    document.querySelectorAll('[data-popup-index]').forEach(function (el) {
      el.addEventListener('click', function () {
        var i = parseInt(el.getAttribute('data-popup-index'), 10);
        if (i < 0) { return; }
        popup.hidden = false;
        showPopup(i);
      });
    });
    popup.querySelector('.popup-close').addEventListener('click', function () { popup.hidden = true; });
    popup.querySelector('.popup-nav.prev').addEventListener('click', function () { showPopup(popupCurrent - 1); });
    popup.querySelector('.popup-nav.next').addEventListener('click', function () { showPopup(popupCurrent + 1); });
    showPopup(0);
  })();
  </script>
</body>
</html>`

const typeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .TypeTitle }} — {{ .SiteTitle }}</title>
  <link rel="stylesheet" href="../style.css">
</head>
<body>
  <header>
    <nav>
      <a href="../index.html">{{ .SiteTitle }}</a>
    </nav>
  </header>
  <main>
    <h1>{{ .TypeTitle }}</h1>
    <ul class="cards">
{{ range .Cards }}      <li class="card">
        <a href="{{ .URL }}">
{{ if .ThumbIsPDF }}          <object class="card-thumb" data="{{ .ThumbSrc }}" type="application/pdf"></object>
{{ else if .ThumbSrc }}          <img class="card-thumb" src="{{ .ThumbSrc }}" alt="{{ .Title }}">
{{ else }}          <span class="card-thumb placeholder"></span>
{{ end }}          <span class="card-title">{{ .Title }}</span>
          {{ if .Date }}<span class="card-date">{{ .Date }}</span>{{ end }}
        </a>
      </li>
{{ end }}    </ul>
  </main>
</body>
</html>`

const homeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .SiteTitle }}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <main class="home">
    <div class="hero">
{{ if .LeftDecoration }}      <img class="decoration" src="{{ .LeftDecoration }}" alt="">
{{ end }}      <div class="hero-copy">
        <h1>{{ .SiteTitle }}</h1>
        {{ if .Subtitle }}<p class="subtitle">{{ .Subtitle }}</p>{{ end }}
      </div>
{{ if .RightDecoration }}      <img class="decoration" src="{{ .RightDecoration }}" alt="">
{{ end }}    </div>
    <nav class="type-nav">
      <ul>
{{ range .Types }}        <li><a href="{{ .URL }}">{{ .Title }}</a></li>
{{ end }}        <li><a href="about.html">About</a></li>
      </ul>
    </nav>
  </main>
</body>
</html>`

const aboutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>About — {{ .SiteTitle }}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <header>
    <nav>
      <a href="index.html">{{ .SiteTitle }}</a>
    </nav>
  </header>
  <main class="about">
    <h1>About</h1>
    <div class="statement">{{ .Body }}</div>
  </main>
</body>
</html>`
