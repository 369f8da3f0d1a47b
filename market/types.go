package market

import (
	"fmt"

	"github.com/katalvlaran/kstable/prefs"
)

// MaxAgents bounds the size of an instance.
const MaxAgents = 1000

// Unmatched is the partner value of an agent with no assignment.
const Unmatched = prefs.Unmatched

// Model selects the matching market.
type Model int

const (
	// HouseAllocation assigns agents to distinct goods, one each (strict preferences).
	HouseAllocation Model = iota
	// Marriage pairs men with women.
	Marriage
	// Roommates pairs agents of a single set.
	Roommates
	// PartialHouseAllocation is HouseAllocation over acceptable subsets with ties.
	PartialHouseAllocation
)

// String returns the model name.
func (m Model) String() string {
	switch m {
	case HouseAllocation:
		return "HouseAllocation"
	case Marriage:
		return "Marriage"
	case Roommates:
		return "Roommates"
	case PartialHouseAllocation:
		return "PartialHouseAllocation"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// Valid reports whether m is one of the declared models.
func (m Model) Valid() bool { return m >= HouseAllocation && m <= PartialHouseAllocation }

// Bilateral reports whether both sides of a pair are agents with preferences.
func (m Model) Bilateral() bool { return m == Marriage || m == Roommates }

// HouseLike reports whether agents are assigned goods.
func (m Model) HouseLike() bool { return m == HouseAllocation || m == PartialHouseAllocation }

// AllowsUnmatched reports whether a valid matching of m may leave agents
// unassigned. Marriage matchings must be complete.
func (m Model) AllowsUnmatched() bool { return m != Marriage }

// Agent is one participant of an instance.
type Agent struct {
	// ID is the dense index of the agent, 0..n-1.
	ID int

	// Prefs ranks acceptable partners (bilateral models) or goods (house models).
	Prefs *prefs.List
}
