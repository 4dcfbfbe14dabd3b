package header

import "github.com/heathj/headerbar/dom"

// DefaultAvatar is the image shown until SetImage is called.
const DefaultAvatar = "data:image/svg+xml;base64," +
	"PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciIHZpZXdCb3g9IjAgMCAyNCAyNCIgZmlsbD0iI2ZmZmZmZiI+" +
	"PGNpcmNsZSBjeD0iMTIiIGN5PSI4IiByPSI0Ii8+PHBhdGggZD0iTTQgMjBjMC00IDQtNiA4LTZzOCAyIDggNnoiLz48L3N2Zz4="

const minImageSrc = 4

// Profile is the user block on the right of the header: name, avatar and
// the dropdown menu.
type Profile struct {
	header   *Header
	elements *elements
	menu     *Menu
}

func NewProfile(header *Header) *Profile {
	p := &Profile{
		header:   header,
		elements: newElements(),
	}
	p.menu = NewMenu(p)
	return p
}

func (p *Profile) Header() *Header {
	return p.header
}

func (p *Profile) Menu() *Menu {
	return p.menu
}

// Container is the div.inline wrapping the profile. It carries the ":show"
// directive and hands its clicks to the menu.
func (p *Profile) Container() *dom.Node {
	return p.elements.get("container", func() *dom.Node {
		username, image, menu := p.Username(), p.Image(), p.menu.Out()
		div := p.header.Document().CreateElement("div")
		div.SetClassName("inline")
		div.AppendChild(username)
		div.AppendChild(image)
		div.AppendChild(menu)
		div.SetAttribute(p.header.Attribute(), ":show")
		div.AddEventListener("click", p.menu, false)
		return div
	})
}

func (p *Profile) Username() *dom.Node {
	return p.elements.get("username", func() *dom.Node {
		span := p.header.Document().CreateElement("span")
		span.SetClassName("username")
		return span
	})
}

// SetUsername appends text to the username span, extending its trailing
// text node when there is one.
func (p *Profile) SetUsername(text string) *Profile {
	span := p.Username()
	if last := span.LastChild; last != nil && last.NodeType == dom.TextNode {
		last.Text.AppendData(text)
		return p
	}
	span.AppendChild(p.header.Document().CreateTextNode(text))
	return p
}

func (p *Profile) Image() *dom.Node {
	return p.elements.get("image", func() *dom.Node {
		img := p.header.Document().CreateElement("img")
		img.SetClassName("image")
		img.SetAttribute("src", DefaultAvatar)
		return img
	})
}

// SetImage replaces the avatar source. Sources shorter than four bytes are
// ignored.
func (p *Profile) SetImage(src string) *Profile {
	if len(src) < minImageSrc {
		return p
	}
	p.Image().SetAttribute("src", src)
	return p
}

func (p *Profile) Out() *dom.Node {
	return p.Container()
}
