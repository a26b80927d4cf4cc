package html

// Favicon collects the icon related head links.
type Favicon struct {
	links []Markup
}

func NewFavicon() *Favicon { return &Favicon{} }

func (f *Favicon) WithIcon(href string) *Favicon {
	return f.add(Sprintf(`<link rel="icon" href="%s">`, href))
}

func (f *Favicon) WithIconForSizes(href, sizes string) *Favicon {
	return f.add(Sprintf(`<link rel="icon" sizes="%s" href="%s">`, sizes, href))
}

func (f *Favicon) WithAppleTouchIcon(href, sizes string) *Favicon {
	return f.add(Sprintf(`<link rel="apple-touch-icon" sizes="%s" href="%s">`, sizes, href))
}

func (f *Favicon) WithMaskIcon(href, color string) *Favicon {
	return f.add(Sprintf(`<link rel="mask-icon" href="%s" color="%s">`, href, color))
}

func (f *Favicon) WithManifest(href string) *Favicon {
	return f.add(Sprintf(`<link rel="manifest" href="%s">`, href))
}

func (f *Favicon) WithThemeColor(color string) *Favicon {
	return f.add(Sprintf(`<meta name="theme-color" content="%s">`, color))
}

func (f *Favicon) WithMsTileColor(color string) *Favicon {
	return f.add(Sprintf(`<meta name="msapplication-TileColor" content="%s">`, color))
}

func (f *Favicon) add(m Markup) *Favicon {
	f.links = append(f.links, m)
	return f
}

func (f *Favicon) Render() Markup {
	if f == nil {
		return ""
	}
	return Join(f.links...)
}
