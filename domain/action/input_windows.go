//go:build windows

package action

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	mouseEventLeftDown = 0x0002
	mouseEventLeftUp   = 0x0004
	maxTitleChars      = 256
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSetCursorPos        = user32.NewProc("SetCursorPos")
	procMouseEvent          = user32.NewProc("mouse_event")
	procEnumWindows         = user32.NewProc("EnumWindows")
	procGetWindowTextW      = user32.NewProc("GetWindowTextW")
	procIsWindowVisible     = user32.NewProc("IsWindowVisible")
	procGetForegroundWindow = user32.NewProc("GetForegroundWindow")
)

// win32Injector moves the OS cursor and sends a left press and release.
type win32Injector struct{}

func (win32Injector) Name() string { return BackendWin32 }

func (win32Injector) LeftClick(p image.Point) error {
	if r, _, err := procSetCursorPos.Call(uintptr(p.X), uintptr(p.Y)); r == 0 {
		return fmt.Errorf("action: SetCursorPos %v: %w", p, err)
	}
	_, _, _ = procMouseEvent.Call(mouseEventLeftDown, 0, 0, 0, 0)
	time.Sleep(30 * time.Millisecond)
	_, _, _ = procMouseEvent.Call(mouseEventLeftUp, 0, 0, 0, 0)
	return nil
}

func windowText(hwnd uintptr) string {
	buf := make([]uint16, maxTitleChars)
	n, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return strings.TrimSpace(windows.UTF16ToString(buf[:n]))
}

// ListWindows returns titles of visible top-level windows, skipping
// untitled ones.
func ListWindows() ([]string, error) {
	var titles []string
	cb := syscall.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
		if vis, _, _ := procIsWindowVisible.Call(hwnd); vis == 0 {
			return 1
		}
		if t := windowText(hwnd); t != "" {
			titles = append(titles, t)
		}
		return 1
	})
	if r, _, err := procEnumWindows.Call(cb, 0); r == 0 {
		return nil, fmt.Errorf("action: EnumWindows: %w", err)
	}
	return titles, nil
}

// ForegroundWindowTitle returns the title of the current foreground window.
func ForegroundWindowTitle() (string, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return "", errors.New("action: no foreground window")
	}
	return windowText(hwnd), nil
}

func init() {
	platformInjectors[BackendWin32] = func() Injector { return win32Injector{} }
}
