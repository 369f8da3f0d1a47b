package market

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns a 64-bit xxh3 hash of the assignment and model.
// Equal matchings have equal fingerprints.
func (m *Matching) Fingerprint() uint64 {
	buf := make([]byte, 0, 8*(len(m.pairs)+1))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(m.model))
	for _, p := range m.pairs {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(p)))
	}

	return xxh3.Hash(buf)
}

// groupSep separates indifference groups; agentSep separates agents.
const (
	groupSep = ^uint64(0)
	agentSep = ^uint64(0) - 1
)

// Fingerprint returns a 64-bit xxh3 hash of the canonical encoding of the
// instance: model, sizes and every agent's grouped preference list.
// Instances built from the same inputs have equal fingerprints.
func (in *Instance) Fingerprint() uint64 {
	buf := make([]byte, 0, 64)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(in.model))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(in.agents)))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(in.numMen))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(in.numGoods))
	for i := range in.agents {
		l := in.agents[i].Prefs
		for g := 0; g < l.Groups(); g++ {
			for _, t := range l.Group(g) {
				buf = binary.LittleEndian.AppendUint64(buf, uint64(t))
			}
			buf = binary.LittleEndian.AppendUint64(buf, groupSep)
		}
		buf = binary.LittleEndian.AppendUint64(buf, agentSep)
	}

	return xxh3.Hash(buf)
}
