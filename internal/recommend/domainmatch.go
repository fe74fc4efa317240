package recommend

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultDomainThreshold is the minimum partial-ratio score (0-100) for a
// domain match to be accepted.
const DefaultDomainThreshold = 75

// MatchDomain fuzzy-matches a user-entered interest string against the
// canonical domain names and returns the best match, or "" when nothing
// clears the threshold. The partial-ratio metric is substring-tolerant, so
// "web dev" matches "Web Development". Candidates are scanned in input order
// and a later candidate must score strictly higher to displace an earlier
// one, so the first-encountered candidate wins ties.
func MatchDomain(userDomain string, domainNames []string, threshold int) string {
	userDomain = strings.ToLower(strings.TrimSpace(userDomain))
	if userDomain == "" {
		return ""
	}

	best := ""
	bestScore := 0
	for _, name := range domainNames {
		score := fuzzy.PartialRatio(userDomain, strings.ToLower(name))
		if score > bestScore && score >= threshold {
			best = name
			bestScore = score
		}
	}
	return best
}
