package html

import "strings"

// OptionID is an optional element id. Whitespace is trimmed and inner blanks become
// underscores.
type OptionID struct {
	v string
}

func (o *OptionID) Set(id string) {
	o.v = strings.Join(strings.Fields(id), "_")
}

func (o OptionID) Get() (string, bool) { return o.v, o.v != "" }

func (o OptionID) String() string { return o.v }

// Attr renders ` id="..."`, or nothing when unset.
func (o OptionID) Attr() Markup {
	if o.v == "" {
		return ""
	}
	return Sprintf(` id="%s"`, o.v)
}

// OptionString is an optional trimmed string.
type OptionString struct {
	v string
}

func (o *OptionString) Set(s string) { o.v = strings.TrimSpace(s) }

func (o OptionString) Get() (string, bool) { return o.v, o.v != "" }

func (o OptionString) String() string { return o.v }
