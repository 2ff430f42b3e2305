package ranking

import (
	"fmt"
	"strings"
)

// describeMatch creates a brief explanation of a score
func describeMatch(score float64, matchedSkills []string) string {
	var strength string
	switch {
	case score >= 70:
		strength = "Strong match"
	case score >= 40:
		strength = "Moderate match"
	case score > 0:
		strength = "Weak match"
	default:
		return "No meaningful overlap"
	}

	if len(matchedSkills) == 0 {
		return strength + " by overall profile similarity"
	}
	return fmt.Sprintf("%s (%s)", strength, strings.Join(matchedSkills, ", "))
}
