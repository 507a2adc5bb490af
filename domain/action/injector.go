package action

import (
	"fmt"
	"image"
	"sort"

	"github.com/go-vgo/robotgo"
)

// Input backend names accepted in the config.
const (
	BackendWin32   = "win32"
	BackendRobotgo = "robotgo"
)

// Injector delivers a left click at a screen coordinate.
type Injector interface {
	Name() string
	LeftClick(p image.Point) error
}

var platformInjectors = map[string]func() Injector{
	BackendRobotgo: func() Injector { return robotgoInjector{} },
}

// NewInjector returns the named backend. An empty name picks win32 where
// available, else robotgo.
func NewInjector(name string) (Injector, error) {
	if name == "" {
		name = BackendRobotgo
		if _, ok := platformInjectors[BackendWin32]; ok {
			name = BackendWin32
		}
	}
	ctor, ok := platformInjectors[name]
	if !ok {
		return nil, fmt.Errorf("action: input backend %q not available (have %v)", name, Backends())
	}
	return ctor(), nil
}

// Backends lists the input backends usable on this platform.
func Backends() []string {
	out := make([]string, 0, len(platformInjectors))
	for k := range platformInjectors {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type robotgoInjector struct{}

func (robotgoInjector) Name() string { return BackendRobotgo }

func (robotgoInjector) LeftClick(p image.Point) error {
	robotgo.Move(p.X, p.Y)
	robotgo.MilliSleep(20)
	robotgo.Click("left", false)
	return nil
}
