package header

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathj/headerbar/config"
	"github.com/heathj/headerbar/delegate"
	"github.com/heathj/headerbar/dom"
)

func click(target *dom.Node) {
	target.DispatchEvent(dom.NewEvent("click", dom.EventInit{Bubbles: true, Cancelable: true}))
}

func mounted(t *testing.T) (*dom.HTMLDocument, *Header) {
	t.Helper()
	doc := dom.NewHTMLDocument()
	h := New(doc).SetTitle("Dashboard").Mount()
	h.Profile().SetUsername("ada")
	require.True(t, h.Attached())
	return doc, h
}

func TestMenuVisibilityIsIdempotent(t *testing.T) {
	h := New(dom.NewHTMLDocument())
	menu := h.Profile().Menu()

	assert.False(t, menu.Status())
	menu.Show().Show()
	assert.True(t, menu.Status())
	assert.Equal(t, "submenu show", menu.Container().ClassName())

	menu.Hide().Hide()
	assert.False(t, menu.Status())
	assert.Equal(t, "submenu", menu.Container().ClassName())

	menu.Toggle()
	assert.True(t, menu.Status())
	menu.Toggle()
	assert.False(t, menu.Status())
}

func TestClickInsideProfileShowsMenu(t *testing.T) {
	_, h := mounted(t)
	menu := h.Profile().Menu()

	click(h.Profile().Username())
	assert.True(t, menu.Status())

	click(h.Profile().Image())
	assert.True(t, menu.Status())

	item := menu.AddItem("Settings", "settings", nil)
	click(item)
	assert.True(t, menu.Status())
}

func TestClickOutsideProfileHidesMenu(t *testing.T) {
	doc, h := mounted(t)
	menu := h.Profile().Menu()

	for name, target := range map[string]*dom.Node{
		"body":  doc.Body(),
		"title": h.Title().FirstChild,
		"row":   h.Row(),
	} {
		menu.Show()
		click(target)
		assert.False(t, menu.Status(), name)
	}

	// nothing to dismiss
	click(doc.Body())
	assert.False(t, menu.Status())
}

func TestCloseBeforeRenderHasNoSideEffects(t *testing.T) {
	doc := dom.NewHTMLDocument()
	h := New(doc).Attach()

	click(doc.Body())
	assert.False(t, h.Profile().elements.has("container"))
	assert.False(t, h.Profile().Menu().elements.has("container"))
	assert.Equal(t, 1, doc.ListenerCount("click"))
}

func TestMountIntoParsedPage(t *testing.T) {
	page := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(page, []byte(`<!DOCTYPE html><html><body><main id="app"><p>content</p></main></body></html>`), 0o600))

	cfg := config.Default()
	cfg.Page = page
	doc, err := Host(cfg)
	require.NoError(t, err)
	app := doc.GetElementByID("app")
	require.NotNil(t, app)

	h := Build(doc, cfg).Mount()
	assert.Same(t, h.Out(), doc.Body().LastChild)

	h.Profile().Menu().Show()
	click(app.FirstChild)
	assert.False(t, h.Profile().Menu().Status())

	cfg.Page = filepath.Join(t.TempDir(), "missing.html")
	_, err = Host(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening page")
}

func TestHostWithoutPageIsEmptyDocument(t *testing.T) {
	doc, err := Host(config.Default())
	require.NoError(t, err)
	assert.Equal(t, "#document\n| <html>\n|   <head>\n|   <body>", doc.Node.String())
}

func TestOutsideElementWithDirectiveStillDismisses(t *testing.T) {
	doc, h := mounted(t)
	menu := h.Profile().Menu()
	other := doc.Body().AppendChild(doc.CreateElement("div"))
	other.SetAttribute(h.Attribute(), "click:show")

	menu.Show()
	click(other)
	assert.False(t, menu.Status())
}

func TestDetachStopsDismissal(t *testing.T) {
	doc, h := mounted(t)
	menu := h.Profile().Menu()

	h.Attach()
	assert.Equal(t, 1, doc.ListenerCount("click"))

	h.Detach().Detach()
	assert.False(t, h.Attached())
	assert.Equal(t, 0, doc.ListenerCount("click"))

	menu.Show()
	click(doc.Body())
	assert.True(t, menu.Status())

	h.Unmount()
	assert.Nil(t, h.Out().ParentNode)
	assert.Empty(t, doc.Body().ChildNodes)
}

func TestCloseThroughDirective(t *testing.T) {
	doc := dom.NewHTMLDocument()
	h := New(doc)
	doc.Body().AppendChild(h.Out())
	button := doc.Body().AppendChild(doc.CreateElement("button"))
	button.SetAttribute(h.Attribute(), "click:close")
	button.AddEventListener("click", h, false)

	h.Profile().Menu().Show()
	click(button)
	assert.False(t, h.Profile().Menu().Status())
	assert.Equal(t, []string{"close"}, h.Dispatcher().Methods())
	assert.Equal(t, []string{"hide", "show", "toggle"}, h.Profile().Menu().Dispatcher().Methods())
}

func TestKeyboardWildcardTogglesMenu(t *testing.T) {
	doc, h := mounted(t)
	menu := h.Profile().Menu()
	button := h.Profile().Container().AppendChild(doc.CreateElement("button"))
	button.SetAttribute(h.Attribute(), ":toggle")
	button.AddEventListener("keydown", menu, false)

	button.DispatchEvent(dom.NewEvent("keydown", dom.EventInit{Bubbles: true}))
	assert.True(t, menu.Status())
	button.DispatchEvent(dom.NewEvent("keydown", dom.EventInit{Bubbles: true}))
	assert.False(t, menu.Status())
}

func TestCustomAttributeAndBoundary(t *testing.T) {
	doc := dom.NewHTMLDocument()
	region := doc.Body().AppendChild(doc.CreateElement("main"))
	h := New(doc, WithAttribute("data-on"), WithBoundary("main"))
	region.AppendChild(h.Out())
	h.Attach()

	assert.Equal(t, ":show", h.Profile().Container().GetAttribute("data-on"))
	assert.Empty(t, h.Profile().Container().GetAttribute(delegate.DefaultAttribute))

	click(h.Profile().Username())
	assert.True(t, h.Profile().Menu().Status())
	click(region)
	assert.False(t, h.Profile().Menu().Status())
}

func TestElementsAreMemoized(t *testing.T) {
	h := New(dom.NewHTMLDocument())
	p := h.Profile()

	assert.Same(t, p.Container(), p.Out())
	assert.Same(t, p.Username(), p.Username())
	assert.Same(t, p.Image(), p.Image())
	assert.Same(t, h.Row(), h.Out())
	assert.Same(t, h.Title(), h.Left().FirstChild)
	assert.Same(t, p.Container(), h.Right().FirstChild)
	assert.Same(t, p.Menu().Container(), p.Container().LastChild)
	assert.Equal(t, 1, p.Container().ListenerCount("click"))
}

func TestReentrantBuildKeepsFirstNode(t *testing.T) {
	doc := dom.NewHTMLDocument()
	c := newElements()
	first := doc.CreateElement("span")
	second := doc.CreateElement("span")

	got := c.get("slot", func() *dom.Node {
		c.get("slot", func() *dom.Node { return first })
		return second
	})
	assert.Same(t, first, got)
	assert.True(t, c.has("slot"))
	assert.Same(t, first, c.get("slot", func() *dom.Node { return second }))
}

func TestProfileContent(t *testing.T) {
	h := New(dom.NewHTMLDocument())
	p := h.Profile()

	p.SetUsername("ada").SetUsername(" lovelace")
	assert.Equal(t, "ada lovelace", p.Username().TextContent())
	require.Len(t, p.Username().ChildNodes, 1)
	assert.Equal(t, len("ada lovelace"), p.Username().FirstChild.Text.Length)

	assert.Equal(t, DefaultAvatar, p.Image().GetAttribute("src"))
	p.SetImage("x.p")
	assert.Equal(t, DefaultAvatar, p.Image().GetAttribute("src"))
	p.SetImage("/me.png")
	assert.Equal(t, "/me.png", p.Image().GetAttribute("src"))
}

func TestTitleAndMenuItems(t *testing.T) {
	h := New(dom.NewHTMLDocument()).SetURL("/home").SetTitle("Reports")
	a := h.Title().FirstChild
	require.NotNil(t, a)
	assert.Equal(t, "/home", a.GetAttribute("href"))
	assert.Equal(t, "title-text ellipsis", a.ClassName())
	assert.Equal(t, "Reports", h.Title().TextContent())

	var got *Menu
	menu := h.Profile().Menu()
	item := menu.AddItem("Sign out", "logout", func(m *Menu, e *dom.Event) {
		got = m
		m.Hide()
	})
	assert.Equal(t, "logoutSign out", item.TextContent())
	assert.Equal(t, "material-icons", item.FirstChild.ClassName())
	assert.Equal(t, "LI", item.ParentNode.TagName())

	item.DispatchEvent(dom.NewEvent("click", dom.EventInit{}))
	assert.Same(t, menu, got)
}

func TestBuildFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Title = "Console"
	cfg.URL = "/console"
	cfg.Username = "grace"
	cfg.Image = "/grace.png"
	cfg.Menu = []config.MenuItem{
		{Text: "Profile", Icon: "person", Href: "/profile"},
		{Text: "Sign out", Icon: "logout"},
	}

	doc := dom.NewHTMLDocument()
	h := Build(doc, cfg).Mount()

	assert.Same(t, h.Out(), doc.Body().FirstChild)
	assert.Equal(t, "Console", h.Title().TextContent())
	assert.Equal(t, "grace", h.Profile().Username().TextContent())
	assert.Equal(t, "/grace.png", h.Profile().Image().GetAttribute("src"))

	items := h.Profile().Menu().Container().GetElementsByTagName("a")
	require.Len(t, items, 2)
	assert.Equal(t, "/profile", items[0].GetAttribute("href"))
	assert.False(t, items[1].HasAttribute("href"))

	html := dom.OuterHTML(h.Profile().Container())
	assert.Contains(t, html, `data-handle-event=":show"`)
	assert.Contains(t, html, `<ul class="submenu">`)
}
