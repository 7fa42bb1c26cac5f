package util

import "sort"

// LevenshteinDistance calculates the Levenshtein distance between two strings
func LevenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	dp := make([][]int, len(s1)+1)
	for i := range dp {
		dp[i] = make([]int, len(s2)+1)
	}

	for i := 0; i <= len(s1); i++ {
		dp[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		dp[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			if s1[i-1] == s2[j-1] {
				dp[i][j] = dp[i-1][j-1]
			} else {
				dp[i][j] = min(dp[i-1][j], dp[i][j-1], dp[i-1][j-1]) + 1
			}
		}
	}

	return dp[len(s1)][len(s2)]
}

// FindSimilar returns the candidates within maxDistance edits of target, closest first,
// ties broken alphabetically. Duplicates and exact matches are skipped.
func FindSimilar(target string, candidates []string, maxDistance int) []string {
	if target == "" || maxDistance <= 0 {
		return nil
	}

	type scored struct {
		name     string
		distance int
	}

	seen := make(map[string]struct{}, len(candidates))
	matches := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate == "" || candidate == target {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}

		if d := LevenshteinDistance(target, candidate); d <= maxDistance {
			matches = append(matches, scored{name: candidate, distance: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance == matches[j].distance {
			return matches[i].name < matches[j].name
		}
		return matches[i].distance < matches[j].distance
	})

	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = m.name
	}

	return result
}

// SplitNonEmpty splits value on sep and drops empty segments, so "a,,b," yields [a b]
func SplitNonEmpty(value string, sep byte) []string {
	var segments []string
	for i := 0; i < len(value); {
		for i < len(value) && value[i] == sep {
			i++
		}

		first := i
		for i < len(value) && value[i] != sep {
			i++
		}

		if i > first {
			segments = append(segments, value[first:i])
		}
	}

	return segments
}
