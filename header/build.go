package header

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/headerbar/config"
	"github.com/heathj/headerbar/dom"
	"github.com/heathj/headerbar/parser"
)

// Host returns the document a header from cfg mounts into: the page markup
// at cfg.Page when one is configured, an empty document otherwise.
func Host(cfg *config.Config) (*dom.HTMLDocument, error) {
	if cfg.Page == "" {
		return dom.NewHTMLDocument(), nil
	}
	f, err := os.Open(cfg.Page)
	if err != nil {
		return nil, errors.Wrapf(err, "opening page %s", cfg.Page)
	}
	defer f.Close()

	doc, err := parser.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading page %s", cfg.Page)
	}
	return doc, nil
}

// Build creates a header from cfg. The result is neither mounted nor
// attached.
func Build(doc *dom.HTMLDocument, cfg *config.Config) *Header {
	h := New(doc,
		WithAttribute(cfg.Handle),
		WithBoundary(cfg.Boundary),
		WithLogger(logrus.WithField("component", "header")),
	)
	h.SetURL(cfg.URL)
	if cfg.Title != "" {
		h.SetTitle(cfg.Title)
	}
	profile := h.Profile()
	if cfg.Username != "" {
		profile.SetUsername(cfg.Username)
	}
	profile.SetImage(cfg.Image)
	for _, item := range cfg.Menu {
		a := profile.Menu().AddItem(item.Text, item.Icon, nil)
		if item.Href != "" {
			a.SetAttribute("href", item.Href)
		}
	}
	return h
}

// Mount appends the header row to the document body and attaches it.
func (h *Header) Mount() *Header {
	if body := h.doc.Body(); body != nil {
		body.AppendChild(h.Out())
	}
	return h.Attach()
}

// Unmount detaches the header and removes its row from the tree.
func (h *Header) Unmount() *Header {
	h.Detach()
	row := h.Out()
	if row.ParentNode != nil {
		row.ParentNode.RemoveChild(row)
	}
	return h
}
