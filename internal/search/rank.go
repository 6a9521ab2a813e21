package search

import (
	"net/url"
	"sort"
	"strings"

	"github.com/storycave669-rgb/Project-DEVI/internal/models"
)

// Domain authority tiers. Higher scores sort earlier; ties keep the
// provider's original order (stable sort).
var domainScores = map[string]int{
	"ncbi.nlm.nih.gov":        100,
	"pubmed.ncbi.nlm.nih.gov": 100,
	"who.int":                 95,
	"cdc.gov":                 95,
	"nice.org.uk":             90,
	"acr.org":                 85,
	"east.org":                85,
	"radiopaedia.org":         80,
	"orthobullets.com":        75,
	"aafp.org":                70,
}

// suffixScores cover whole TLD/suffix classes not listed individually.
// Checked in order so the more specific suffix wins.
var suffixScores = []struct {
	suffix string
	score  int
}{
	{".gov", 60},
	{".int", 55},
	{".edu", 50},
	{".org.uk", 45},
	{".org", 30},
}

// RankByAuthority reorders sources in place so recognized high-authority
// domains come first. Scoring is by exact host match, then by suffix class;
// unknown hosts score zero and retain their relative order.
func RankByAuthority(sources []models.Source) {
	sort.SliceStable(sources, func(i, j int) bool {
		return authorityScore(sources[i].URL) > authorityScore(sources[j].URL)
	})
}

func authorityScore(raw string) int {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return 0
	}
	host := strings.ToLower(strings.TrimPrefix(u.Host, "www."))

	if score, ok := domainScores[host]; ok {
		return score
	}
	for _, s := range suffixScores {
		if strings.HasSuffix(host, s.suffix) {
			return s.score
		}
	}
	return 0
}
