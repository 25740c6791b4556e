package shellintegration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnippet_SupportedShellsDefineDrAndNotFoundHandler(t *testing.T) {
	cases := map[string]string{
		"zsh":  "command_not_found_handler",
		"bash": "command_not_found_handle",
		"fish": "fish_command_not_found",
		"pwsh": "CommandNotFoundAction",
	}
	for shell, marker := range cases {
		snippet, ok := Snippet(shell, "dela")
		assert.True(t, ok, shell)
		assert.Contains(t, snippet, marker, shell)
		assert.Contains(t, snippet, "dr", shell)
		assert.NotContains(t, snippet, "%!", shell, "no stray fmt verb should leak into the snippet")
	}
}

func TestSnippet_ReentrancyGuardOnlyWrapsEval(t *testing.T) {
	// DELA_TASK_RUNNING must not be set ahead of allow-command/get-command:
	// those calls must actually consult the allowlist on the bare-name path.
	zsh, _ := Snippet("zsh", "dela")
	assert.NotContains(t, zsh, "DELA_TASK_RUNNING=1 dela allow-command")
	assert.Contains(t, zsh, `DELA_TASK_RUNNING=1 eval "$__dela_cmd"`)

	bash, _ := Snippet("bash", "dela")
	assert.NotContains(t, bash, "DELA_TASK_RUNNING=1 dela allow-command")
	assert.Contains(t, bash, `DELA_TASK_RUNNING=1 eval "$__dela_cmd"`)

	fish, _ := Snippet("fish", "dela")
	assert.NotContains(t, fish, "set -x DELA_TASK_RUNNING 1\n    dela allow-command")
	assert.Contains(t, fish, "set -lx DELA_TASK_RUNNING 1")

	pwsh, _ := Snippet("pwsh", "dela")
	assert.NotContains(t, pwsh, "$env:DELA_TASK_RUNNING = \"1\"\n        & dela allow-command")
	assert.Contains(t, pwsh, `$env:DELA_TASK_RUNNING = "1"`)
}

func TestSnippet_UnsupportedShellReturnsFalse(t *testing.T) {
	_, ok := Snippet("csh", "dela")
	assert.False(t, ok)
}

func TestRcFilePath_KnownShellsResolveUnderHome(t *testing.T) {
	home := "/home/test"
	for _, shell := range []string{"zsh", "bash", "fish"} {
		path, ok := RcFilePath(shell, home)
		assert.True(t, ok, shell)
		assert.Contains(t, path, home, shell)
	}
}

func TestRcFilePath_UnsupportedShellReturnsFalse(t *testing.T) {
	_, ok := RcFilePath("csh", "/home/test")
	assert.False(t, ok)
}

func TestIntegrationLine_EmbedsBinaryName(t *testing.T) {
	assert.Equal(t, `eval "$(dela configure-shell)"`, IntegrationLine("dela"))
}
