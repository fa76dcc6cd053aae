package resume

import (
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/jonathan/resume-matcher/internal/parsing"
)

// dateRangePattern matches employment date ranges like "2019 - 2023",
// "2020 to Present" or "Jan 2018 – Mar 2021" (month names are ignored; the
// aggregation works at year granularity).
var dateRangePattern = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*(?:-|–|—|to|until)\s*(?:[a-z]{3,9}\.?\s+)?((?:19|20)\d{2}|present|current|now)\b`)

// AggregateYears computes total experience from explicit date ranges in the
// text, merging overlapping spans so concurrent roles are not double-counted.
// When no range is present it falls back to the largest "N years" phrase.
// The second return is false when neither signal exists; a 0.0 result must
// then be treated as unverifiable, not as zero experience.
func AggregateYears(text string, now time.Time) (float64, bool) {
	type span struct{ start, end int }
	var spans []span
	for _, m := range dateRangePattern.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := now.Year()
		if m[2] != "" && m[2][0] >= '0' && m[2][0] <= '9' {
			end, err = strconv.Atoi(m[2])
			if err != nil {
				continue
			}
		}
		if end < start {
			continue
		}
		spans = append(spans, span{start: start, end: end})
	}

	if len(spans) > 0 {
		sort.Slice(spans, func(i, j int) bool {
			if spans[i].start != spans[j].start {
				return spans[i].start < spans[j].start
			}
			return spans[i].end < spans[j].end
		})
		total := 0
		cur := spans[0]
		for _, s := range spans[1:] {
			if s.start <= cur.end {
				if s.end > cur.end {
					cur.end = s.end
				}
				continue
			}
			total += cur.end - cur.start
			cur = s
		}
		total += cur.end - cur.start
		return float64(total), true
	}

	if years, ok := parsing.MaxStatedYears(text); ok {
		return years, true
	}
	return 0, false
}
