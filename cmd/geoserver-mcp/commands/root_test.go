package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := Root("1.2.3")
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1.2.3\n", out.String())
}

func TestRunCommandRejectsInvalidConfig(t *testing.T) {
	t.Setenv("GEOSERVER_URL", "not-a-url")

	cmd := Root("test")
	cmd.SetArgs([]string{"run"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	require.Error(t, cmd.Execute())
}

func TestRunCommandRejectsUnknownFlag(t *testing.T) {
	cmd := Root("test")
	cmd.SetArgs([]string{"run", "--unknown"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	require.Error(t, cmd.Execute())
}
