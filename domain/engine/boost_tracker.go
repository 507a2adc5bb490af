package engine

import (
	"fmt"
	"strings"

	"github.com/soocke/colo-bot-go/domain/detect"
)

// BoostUpkeep is how many ticks a sighted boost stays in effect.
const BoostUpkeep = 50

// BoostTracker remembers which (element, weapon class) pairs carried a boost
// marker recently and derives whether the boost is element- or class-wide.
// Index 0 of both axes is Unknown and never counts.
type BoostTracker struct {
	upkeep [detect.ElementCount][detect.WeaponClassCount]int
	elem   [detect.ElementCount]int
	class  [detect.WeaponClassCount]int
	active bool
}

func NewBoostTracker() *BoostTracker { return &BoostTracker{} }

// Tick ages every cell by one tick.
func (t *BoostTracker) Tick() {
	for e := 1; e < detect.ElementCount; e++ {
		for c := 1; c < detect.WeaponClassCount; c++ {
			if t.upkeep[e][c] > 0 {
				t.upkeep[e][c]--
			}
		}
	}
	t.update()
}

// UpdateActions refreshes the cells of every slot showing a boost marker.
func (t *BoostTracker) UpdateActions(slots []detect.ActionSlot) {
	for _, a := range slots {
		if a.HasBoost {
			t.upkeep[a.Element][a.Weapon] = BoostUpkeep
		}
	}
	t.update()
}

// IsBoosted reports whether a slot should be preferred.
func (t *BoostTracker) IsBoosted(a detect.ActionSlot) bool {
	return a.HasBoost || t.elem[a.Element] > 0 || t.class[a.Weapon] > 0
}

// Active reports whether any boost is being tracked.
func (t *BoostTracker) Active() bool { return t.active }

// Elements returns the elements currently carrying an element-wide boost.
func (t *BoostTracker) Elements() []detect.Element {
	var out []detect.Element
	for e, v := range t.elem {
		if v > 0 {
			out = append(out, detect.Element(e))
		}
	}
	return out
}

// Classes returns the weapon classes currently carrying a class-wide boost.
func (t *BoostTracker) Classes() []detect.WeaponClass {
	var out []detect.WeaponClass
	for c, v := range t.class {
		if v > 0 {
			out = append(out, detect.WeaponClass(c))
		}
	}
	return out
}

// update derives the boost scope. One element across several classes is an
// element boost; otherwise several entries resolve to a class boost, which
// includes the case of several elements and several classes at once. A
// single cell counts as an element boost.
func (t *BoostTracker) update() {
	var maxElem [detect.ElementCount]int
	var maxClass [detect.WeaponClassCount]int
	numElem, numClass := 0, 0
	for e := 1; e < detect.ElementCount; e++ {
		for c := 1; c < detect.WeaponClassCount; c++ {
			v := t.upkeep[e][c]
			if v <= 0 {
				continue
			}
			if maxElem[e] == 0 {
				maxElem[e] = v
				numElem++
			}
			if maxClass[c] == 0 {
				maxClass[c] = v
				numClass++
			}
		}
	}

	t.elem = [detect.ElementCount]int{}
	t.class = [detect.WeaponClassCount]int{}
	t.active = numElem > 0 || numClass > 0
	if !t.active {
		return
	}
	if numElem+numClass > 1 && numElem != 1 {
		t.class = maxClass
		return
	}
	t.elem = maxElem
}

func (t *BoostTracker) String() string {
	if !t.active {
		return "Boost: n/a"
	}
	var parts []string
	for e, v := range t.elem {
		if v > 0 {
			parts = append(parts, fmt.Sprintf("%s (%d)", detect.Element(e), v))
		}
	}
	for c, v := range t.class {
		if v > 0 {
			parts = append(parts, fmt.Sprintf("%s (%d)", detect.WeaponClass(c), v))
		}
	}
	return "Boost: " + strings.Join(parts, ", ")
}
