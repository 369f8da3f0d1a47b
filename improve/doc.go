// Package improve builds the improvement graph of a matching: the options an
// alternative matching could use to leave agents strictly better off.
//
// For HouseAllocation and PartialHouseAllocation the graph is bipartite
// (agents × goods) and every edge improves exactly its agent. For Marriage
// (men × women) and Roommates (general) an edge is a mutually acceptable pair
// and improves one or both endpoints; its Weight counts the improving
// endpoints.
//
// Ties never improve: an edge exists only for targets strictly preferred to
// the current assignment, and being unmatched is worse than any acceptable
// target.
//
// BuildPartial restricts the counting to a set of decided agents. Their
// improvements depend only on their own (already fixed) assignments, so the
// best coalition of the partial graph is a lower bound for every completion.
package improve
