package inference

import (
	"strings"
)

// knownCommands are the registered sub-command names. A bare first argument
// that matches none of them is treated as a search query.
var knownCommands = map[string]bool{
	"scan":       true,
	"list":       true,
	"search":     true,
	"info":       true,
	"launch":     true,
	"health":     true,
	"categories": true,
	"export":     true,
	"recommend":  true,
	"stats":      true,
	"help":       true,
	"completion": true,
}

// InferCommand maps a bare argument list to an explicit sub-command. It
// returns the command to prepend, or "" when the args already start with a
// known command or a flag.
func InferCommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}

	first := args[0]
	if strings.HasPrefix(first, "-") || knownCommands[first] {
		return "", args
	}

	return "search", args
}
