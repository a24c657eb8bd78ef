// Command profilepool exercises Pool's add/erase/growth path under a
// CPU profile, for the same kind of ad hoc hot-path inspection the
// profile/entities tool in the source repo was built for.
package main

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/tavros-go/genpool"
)

type transform struct {
	x, y, z float32
}

func main() {
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	defer p.Stop()

	pool := genpool.NewPool[transform]()
	handles := make([]genpool.Handle[transform], 0, 100000)

	for i := 0; i < 100000; i++ {
		h := pool.Add(transform{x: float32(i)})
		handles = append(handles, h)
	}
	for i := 0; i < len(handles); i += 2 {
		pool.Erase(handles[i])
	}
	for i := 0; i < 50000; i++ {
		pool.Add(transform{x: float32(i)})
	}

	fmt.Println("final size:", pool.Size(), "capacity:", pool.Capacity())
}
