package main

import (
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/heathj/headerbar/config"
	"github.com/heathj/headerbar/dom"
	"github.com/heathj/headerbar/header"
)

func main() {
	path := flag.String("config", "", "path to a YAML header config")
	page := flag.String("page", "", "HTML page to mount the header into")
	flag.Parse()

	cfg := config.Default()
	if *path != "" {
		loaded, err := config.Load(*path)
		if err != nil {
			logrus.WithError(err).Fatal("could not load config")
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if *page != "" {
		cfg.Page = *page
	}
	logrus.SetLevel(cfg.Level())

	doc, err := header.Host(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not load page")
	}
	h := header.Build(doc, cfg).Mount()
	defer h.Unmount()

	menu := h.Profile().Menu()
	click := func(target *dom.Node) {
		target.DispatchEvent(dom.NewEvent("click", dom.EventInit{Bubbles: true, Cancelable: true}))
		logrus.WithFields(logrus.Fields{
			"target": target.NodeName,
			"shown":  menu.Status(),
		}).Info("click dispatched")
	}

	click(h.Profile().Username())
	fmt.Println(dom.SerializeHTML(doc.Node))
	// the first element of the host page stands in for the outside click
	outside := doc.Body()
	if first := doc.Body().FirstChild; first != nil && first != h.Out() {
		outside = first
	}
	click(outside)
	fmt.Println(dom.SerializeHTML(doc.Node))
}
