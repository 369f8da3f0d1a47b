package verify_test

import (
	"fmt"

	"github.com/katalvlaran/kstable/market"
	"github.com/katalvlaran/kstable/verify"
)

// ExampleCheck verifies the identity assignment of a three-agent rotation:
// every agent prefers the next agent's good, so all three can improve at once.
func ExampleCheck() {
	inst, _ := market.NewHouseAllocation([][]int{{1, 2, 0}, {2, 0, 1}, {0, 1, 2}})
	id, _ := market.FromPairs(inst, []int{0, 1, 2})

	r, _ := verify.Check(id, inst, 3)
	fmt.Println(r.Stable, r.MaxCoalition, r.Coalition, r.Alternative)
	// Output:
	// false 3 [0 1 2] HouseAllocation{0:1 1:2 2:0}
}
