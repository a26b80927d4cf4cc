package module

type basic struct{ ThemeBase }

// Basic is the default theme, always enabled before the application root.
var Basic Theme = &basic{}

func (*basic) Name() string        { return "Basic" }
func (*basic) Description() string { return "Default page layout without styling." }
func (b *basic) Theme() Theme      { return b }
