package analysis

import (
	"path"
	"strings"

	"github.com/thomas-vilte/gitguard/internal/models"
)

// GroupRelated clusters scored files so related files are included or
// excluded from the packed diff together. The pass is greedy and one-hop:
// each unprocessed file seeds a group and pulls in every other unprocessed
// file in the same directory or with an overlapping basename; files found by
// the substring match do not recruit further files themselves. Every file
// lands in exactly one group.
func GroupRelated(files []models.FileSignificance) []models.DiffGroup {
	groups := make([]models.DiffGroup, 0)
	processed := make([]bool, len(files))

	for i, seed := range files {
		if processed[i] {
			continue
		}
		processed[i] = true

		group := models.DiffGroup{
			Files: []models.FileSignificance{seed},
			Score: seed.Score,
		}

		seedDir := path.Dir(seed.Path)
		seedStem := stem(seed.Path)

		for j, candidate := range files {
			if processed[j] {
				continue
			}

			candStem := stem(candidate.Path)
			related := path.Dir(candidate.Path) == seedDir ||
				strings.Contains(candStem, seedStem) ||
				strings.Contains(seedStem, candStem)

			if related {
				processed[j] = true
				group.Files = append(group.Files, candidate)
				if candidate.Score > group.Score {
					group.Score = candidate.Score
				}
			}
		}

		groups = append(groups, group)
	}

	return groups
}

// stem is the basename with its last extension stripped, so "a.test.ts"
// keeps the ".test" marker and still matches "a.ts".
func stem(filePath string) string {
	base := path.Base(filePath)
	return strings.TrimSuffix(base, path.Ext(base))
}
