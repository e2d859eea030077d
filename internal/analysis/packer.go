package analysis

import (
	"fmt"
	"sort"

	"github.com/thomas-vilte/gitguard/internal/models"
)

// Packer selects groups into the final diff text under a hard length budget.
type Packer struct {
	maxLength int
}

func NewPacker(maxLength int) *Packer {
	return &Packer{maxLength: maxLength}
}

// Pack appends group members, highest-scored group first, while they fit.
// The bound is soft in one direction only: a member may land exactly on
// maxLength, never past it. When the best remaining group's top member does
// not fit, packing stops entirely instead of fragmenting the budget across
// smaller groups, and the omitted-group count goes into the truncation note.
// Within a group, members stop at the first misfit too; skipping ahead to
// smaller members would let a larger budget pack fewer files.
func (p *Packer) Pack(groups []models.DiffGroup) models.PackedDiff {
	ordered := make([]models.DiffGroup, len(groups))
	copy(ordered, groups)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})

	result := models.PackedDiff{TotalGroups: len(groups)}

	var diff string
	for _, group := range ordered {
		members := make([]models.FileSignificance, len(group.Files))
		copy(members, group.Files)
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Score > members[j].Score
		})

		top := members[0]
		if len(diff)+len(top.DiffSection) > p.maxLength {
			break
		}

		diff += top.DiffSection
		result.IncludedFiles++

		for _, member := range members[1:] {
			if len(diff)+len(member.DiffSection) > p.maxLength {
				break
			}
			diff += member.DiffSection
			result.IncludedFiles++
		}

		result.GroupsIncluded++
	}

	result.Diff = diff
	result.EstimatedTokens = estimateTokens(diff)

	if omitted := result.TotalGroups - result.GroupsIncluded; omitted > 0 {
		result.TruncationNote = fmt.Sprintf("%d related group(s) omitted to fit the diff budget", omitted)
	}

	return result
}

// estimateTokens is the provider-free fallback: one token per four
// characters, rounded up.
func estimateTokens(content string) int {
	return (len(content) + 3) / 4
}
