package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/common-nighthawk/go-figure"

	"github.com/joeydtaylor/steeze-pages/pkg/config"
)

// PrintBanner writes the application name in the configured figlet font, followed by the
// description. A banner of "off" prints nothing.
func PrintBanner(w io.Writer, a config.App) (err error) {
	font := strings.ToLower(strings.TrimSpace(a.StartupBanner))
	if font == "" || font == "off" {
		return nil
	}
	defer func() {
		// go-figure panics on fonts it does not embed
		if r := recover(); r != nil {
			err = fmt.Errorf("banner font %q: %v", font, r)
		}
	}()
	figure.Write(w, figure.NewFigure(a.Name, font, false))
	if a.Description != "" {
		_, err = fmt.Fprintln(w, a.Description)
	}
	return err
}
