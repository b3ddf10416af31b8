package m68k

import (
	"slices"

	"github.com/retroenv/retrogolib/set"
)

// CollectBranchTargets decodes data sequentially and returns the sorted,
// deduplicated branch and jump targets that fall inside the buffer
// address range. Words that fail to decode are skipped.
func CollectBranchTargets(data []byte, base uint32, cpu CPU) []uint32 {
	end := uint64(base) + uint64(len(data))
	targets := set.New[uint32]()

	for offset := 0; offset+2 <= len(data); {
		ins, err := Decode(data, offset, base, cpu)
		if err != nil {
			offset += 2
			continue
		}
		offset += ins.Size

		target, ok := ins.BranchTarget()
		if ok && target >= base && uint64(target) < end {
			targets.Add(target)
		}
	}

	sorted := make([]uint32, 0, len(targets))
	for target := range targets {
		sorted = append(sorted, target)
	}
	slices.Sort(sorted)
	return sorted
}
