package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode is the --ui setting for directory runs.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch mode := uiMode(strings.TrimSpace(strings.ToLower(value))); mode {
	case "":
		return uiModeAuto, nil
	case uiModeAuto, uiModeOn, uiModeOff:
		return mode, nil
	}
	return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// shouldUseTUI resolves auto to on only for an interactive stdout that
// is not a dumb terminal or a CI log.
func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	return !plainEnvironment(os.Getenv) && isTerminal(os.Stdout)
}

func plainEnvironment(getenv func(string) string) bool {
	return getenv("TERM") == "dumb" || getenv("CI") != ""
}
