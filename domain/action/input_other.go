//go:build !windows

package action

import (
	"strings"

	"github.com/go-vgo/robotgo"
	"github.com/shirou/gopsutil/v4/process"
)

// ListWindows returns the titles robotgo reports for running processes.
func ListWindows() ([]string, error) {
	pids, err := process.Pids()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var titles []string
	for _, pid := range pids {
		t := strings.TrimSpace(robotgo.GetTitle(int(pid)))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		titles = append(titles, t)
	}
	return titles, nil
}

// ForegroundWindowTitle returns the title of the active window.
func ForegroundWindowTitle() (string, error) {
	return strings.TrimSpace(robotgo.GetTitle()), nil
}
