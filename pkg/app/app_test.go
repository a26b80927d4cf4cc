package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeydtaylor/steeze-pages/pkg/config"
	"github.com/joeydtaylor/steeze-pages/pkg/core/module"
)

type legacy struct{ module.Base }

func (legacy) Name() string { return "Legacy" }

type site struct{ module.Base }

func (site) Name() string                 { return "Site" }
func (site) DropModules() []module.Module { return []module.Module{legacy{}} }

func TestModulesCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := NewCommand(site{})
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"modules"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "Enabled modules:\n  1. Basic\n  2. Site\nThemes: Basic\nDropped: Legacy\n", out.String())
}

func TestModulesCommandReportsCompositionErrors(t *testing.T) {
	cmd := NewCommand(broken{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"modules"})
	err := cmd.Execute()

	var ce *module.CompositionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Legacy", ce.Module)
}

type broken struct{ module.Base }

func (broken) Name() string                  { return "Broken" }
func (broken) Dependencies() []module.Module { return []module.Module{legacy{}} }
func (broken) DropModules() []module.Module  { return []module.Module{legacy{}} }

func TestPrintBanner(t *testing.T) {
	a := config.Defaults().App
	a.Description = "A test site"

	var out bytes.Buffer
	require.NoError(t, PrintBanner(&out, a))
	assert.NotEmpty(t, out.String())
	assert.Contains(t, out.String(), "A test site\n")

	out.Reset()
	a.StartupBanner = "off"
	require.NoError(t, PrintBanner(&out, a))
	assert.Empty(t, out.String())

	a.StartupBanner = "no-such-font"
	assert.Error(t, PrintBanner(&out, a))
}
