// Package shellintegration holds the static per-shell snippets dela prints
// via `configure-shell` (spec.md §6): a `dr` convenience function and a
// command-not-found handler that delegates to get-command/allow-command.
package shellintegration

import (
	"fmt"
	"os"
	"path/filepath"
)

// Snippet returns the shell-specific integration script for shellName, or
// ("", false) if shellName is not one of dela's supported shells.
func Snippet(shellName, binary string) (string, bool) {
	switch shellName {
	case "zsh":
		return fmt.Sprintf(zshTemplate, binary, binary, binary), true
	case "bash":
		return fmt.Sprintf(bashTemplate, binary, binary, binary), true
	case "fish":
		return fmt.Sprintf(fishTemplate, binary, binary, binary), true
	case "pwsh":
		return fmt.Sprintf(pwshTemplate, binary, binary, binary), true
	default:
		return "", false
	}
}

// RcFilePath returns the rc file `init` appends its integration line to for
// shellName, or ("", false) if shellName is not supported.
func RcFilePath(shellName, home string) (string, bool) {
	switch shellName {
	case "zsh":
		return filepath.Join(home, ".zshrc"), true
	case "bash":
		return filepath.Join(home, ".bashrc"), true
	case "fish":
		return filepath.Join(home, ".config", "fish", "config.fish"), true
	case "pwsh":
		profile := os.Getenv("PROFILE")
		if profile == "" {
			profile = filepath.Join(home, ".config", "powershell", "Microsoft.PowerShell_profile.ps1")
		}
		return profile, true
	default:
		return "", false
	}
}

// IntegrationLine is the single line `init` ensures is present in the rc
// file, which sources configure-shell's output into the running shell.
func IntegrationLine(binary string) string {
	return fmt.Sprintf(`eval "$(%s configure-shell)"`, binary)
}

const zshTemplate = `dr() {
  eval "$(%s get-command -- "$@")"
}

command_not_found_handler() {
  %s allow-command "$1" || { echo "zsh: command not found: $1" >&2; return 127; }
  local __dela_cmd
  __dela_cmd="$(%s get-command "$@")" || { echo "zsh: command not found: $1" >&2; return 127; }
  DELA_TASK_RUNNING=1 eval "$__dela_cmd"
}
`

const bashTemplate = `dr() {
  eval "$(%s get-command -- "$@")"
}

command_not_found_handle() {
  %s allow-command "$1" || { echo "bash: command not found: $1" >&2; return 127; }
  local __dela_cmd
  __dela_cmd="$(%s get-command "$@")" || { echo "bash: command not found: $1" >&2; return 127; }
  DELA_TASK_RUNNING=1 eval "$__dela_cmd"
}
`

const fishTemplate = `function dr
    eval ( %s get-command -- $argv )
end

function fish_command_not_found --on-event fish_command_not_found
    %s allow-command $argv[1]
    if test $status -ne 0
        echo "fish: Unknown command: $argv[1]" >&2
        return 127
    end
    set -l __dela_cmd ( %s get-command $argv )
    if test $status -ne 0
        echo "fish: Unknown command: $argv[1]" >&2
        return 127
    end
    set -lx DELA_TASK_RUNNING 1
    eval $__dela_cmd
end
`

const pwshTemplate = `function dr {
    param([Parameter(ValueFromRemainingArguments=$true)]$Args)
    Invoke-Expression (& %s get-command -- @Args)
}

$ExecutionContext.InvokeCommand.CommandNotFoundAction = {
    param($CommandName, $CommandLookupEventArgs)
    $CommandLookupEventArgs.CommandScriptBlock = {
        & %s allow-command $CommandName
        if ($LASTEXITCODE -ne 0) {
            Write-Error "command not found: $CommandName"
            return
        }
        $cmd = & %s get-command $CommandName @args
        if ($LASTEXITCODE -ne 0) {
            Write-Error "command not found: $CommandName"
            return
        }
        $env:DELA_TASK_RUNNING = "1"
        try {
            Invoke-Expression $cmd
        } finally {
            Remove-Item Env:\DELA_TASK_RUNNING -ErrorAction SilentlyContinue
        }
    }.GetNewClosure()
}
`
