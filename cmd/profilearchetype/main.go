// Command profilearchetype exercises archetype emplace/view/swap-erase
// under a memory-allocation profile, mirroring the source repo's
// profile/query tool but pointed at the archetype instead of the ECS
// world query path.
package main

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/tavros-go/genpool"
)

type position struct{ x, y float32 }
type velocity struct{ dx, dy float32 }

func main() {
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	defer p.Stop()

	a := genpool.NewArchetype2[position, velocity](genpool.ArchetypeOptions{InitialCapacity: 100000})
	for i := 0; i < 100000; i++ {
		pos := position{x: float32(i)}
		vel := velocity{dx: 1}
		a.EmplaceBack(&pos, &vel)
	}

	view := a.ViewC1C2()
	var sumX float32
	view.Iter(func(pos *position, vel *velocity) {
		pos.x += vel.dx
		sumX += pos.x
	})

	for i := a.Size() - 1; i >= 0; i -= 2 {
		a.SwapErase(i)
	}

	fmt.Println("sumX:", sumX, "remaining rows:", a.Size())
}
