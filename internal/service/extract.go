package service

import (
	"regexp"
	"strconv"
	"strings"
)

var dayPattern = regexp.MustCompile(`(\d+)\s*-?\s*day`)

// ExtractDays finds trip lengths like "3 days", "2-day" or "5 day trip"
// in the text. Only the first match counts; spelled-out numbers do not
// match. Defaults to 1.
func ExtractDays(text string) int {
	match := dayPattern.FindStringSubmatch(strings.ToLower(text))
	if match == nil {
		return 1
	}
	days, err := strconv.Atoi(match[1])
	if err != nil {
		return 1
	}
	return days
}

// interestKeywords maps trigger words to interest tags. Scanned in
// declaration order, so the result order follows this table rather than
// the order keywords appear in the text.
var interestKeywords = []struct {
	Keyword string
	Tag     string
}{
	{"nature", "Nature"},
	{"scenic", "Nature"},
	{"waterfall", "Nature"},
	{"hill", "Nature"},
	{"photography", "Nature"},
	{"photo", "Nature"},
	{"camera", "Nature"},
	{"relax", "Nature"},
	{"chill", "Nature"},
	{"history", "History"},
	{"historical", "History"},
	{"ancient", "History"},
	{"ruins", "History"},
	{"culture", "Culture"},
	{"mask", "Culture"},
	{"dance", "Culture"},
	{"art", "Culture"},
	{"adventure", "Adventure"},
	{"trek", "Adventure"},
	{"hiking", "Adventure"},
}

// defaultInterests is used when the text mentions no known keyword
func defaultInterests() []string {
	return []string{"Nature", "History"}
}

// ExtractInterests scans the text for interest keywords and returns the
// matched tags, deduplicated, in keyword-table order. Matching is plain
// substring search without word boundaries, so "chilly" triggers
// "chill". Returns the default interests when nothing matches.
func ExtractInterests(text string) []string {
	lower := strings.ToLower(text)

	var interests []string
	for _, entry := range interestKeywords {
		if !strings.Contains(lower, entry.Keyword) {
			continue
		}
		found := false
		for _, tag := range interests {
			if tag == entry.Tag {
				found = true
				break
			}
		}
		if !found {
			interests = append(interests, entry.Tag)
		}
	}

	if len(interests) == 0 {
		return defaultInterests()
	}
	return interests
}
