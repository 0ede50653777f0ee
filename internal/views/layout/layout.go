// Package layout renders the HTML document shell around the portfolio.
package layout

import (
	"github.com/a-h/templ"

	"folio/internal/theme"
	"folio/internal/views/markup"
)

// Head carries the document metadata.
type Head struct {
	Title       string
	Description string
}

// Page renders a full document with the palette applied to <html> and <body>.
func Page(head Head, palette theme.Palette, body templ.Component) templ.Component {
	return markup.Component(func(h *markup.Writer) {
		h.Raw("<!DOCTYPE html>")
		h.Open("html", "lang", "en", "class", palette.HTMLClass, "data-theme", palette.Key.String())
		h.Raw("<head>")
		h.Raw(`<meta charset="utf-8">`)
		h.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.Element("title", head.Title)
		if head.Description != "" {
			h.Open("meta", "name", "description", "content", head.Description)
		}
		h.Raw(`<script src="https://cdn.tailwindcss.com"></script>`)
		h.Raw(`<script>tailwind.config = { darkMode: "class" };</script>`)
		h.Raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
		h.Raw("</head>")
		h.Open("body", "class", palette.BodyClass)
		h.Render(body)
		h.Raw("<script>")
		h.Raw(clientScript)
		h.Raw("</script>")
		h.Raw("</body></html>")
	})
}

// clientScript reports section geometry to /nav/active on scroll and rotates
// the hero descriptions. It also reacts to the theme-changed and nav-select
// events the server sends through HX-Trigger.
const clientScript = `
(function () {
  var pending = false;
  var inflight = null;
  function activeSection() {
    var link = document.querySelector('#navigation [data-state="active"]');
    return link ? link.dataset.navSection : "";
  }
  function report() {
    pending = false;
    var sections = {};
    document.querySelectorAll("section[data-section]").forEach(function (el) {
      var rect = el.getBoundingClientRect();
      sections[el.dataset.section] = { top: rect.top, bottom: rect.bottom };
    });
    if (inflight) { inflight.abort(); }
    var controller = new AbortController();
    inflight = controller;
    fetch("/nav/active", {
      method: "POST",
      headers: { "Content-Type": "application/json", "HX-Request": "true" },
      body: JSON.stringify({ sections: sections, previous: activeSection() }),
      signal: controller.signal
    }).then(function (res) { return res.ok ? res.text() : null; }).then(function (html) {
      if (inflight === controller) { inflight = null; }
      var nav = document.getElementById("navigation");
      if (html && nav) { nav.outerHTML = html; htmx.process(document.getElementById("navigation")); }
    }).catch(function () {
      if (inflight === controller) { inflight = null; }
    });
  }
  function schedule() {
    if (!pending) { pending = true; window.requestAnimationFrame(report); }
  }
  window.addEventListener("scroll", schedule, { passive: true });
  window.addEventListener("load", report);

  document.querySelectorAll("[data-rotate]").forEach(function (el) {
    var items = el.querySelectorAll("[data-rotate-item]");
    var period = parseInt(el.dataset.period, 10) || 3000;
    var index = 0;
    if (items.length < 2) { return; }
    setInterval(function () {
      items[index].hidden = true;
      index = (index + 1) % items.length;
      items[index].hidden = false;
    }, period);
  });

  document.body.addEventListener("nav-select", function (evt) {
    var target = evt.detail && evt.detail.anchor ? document.querySelector(evt.detail.anchor) : null;
    if (target) { target.scrollIntoView({ behavior: "smooth" }); }
  });

  document.body.addEventListener("theme-changed", function (evt) {
    var detail = evt.detail || {};
    if (detail.htmlClass) { document.documentElement.className = detail.htmlClass; }
    if (detail.theme) { document.documentElement.dataset.theme = detail.theme; }
    var swap = detail.swap || {};
    Object.keys(swap).forEach(function (from) {
      document.querySelectorAll("." + CSS.escape(from)).forEach(function (el) {
        el.classList.replace(from, swap[from]);
      });
    });
    if (detail.bodyClass) { document.body.className = detail.bodyClass; }
  });
})();
`
