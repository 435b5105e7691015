package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// FormatDay renders the grouping key for a timestamp, e.g. "2024-1-9".
// Components are unpadded, matching the billing service's date shorthand, so
// ordering the keys requires numeric comparison rather than a lexical sort.
func FormatDay(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

func sortDayKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		return dayKeyOrdinal(keys[i]) < dayKeyOrdinal(keys[j])
	})
}

func dayKeyOrdinal(key string) int {
	parts := strings.SplitN(key, "-", 3)
	if len(parts) != 3 {
		return 0
	}
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])
	return year*10000 + month*100 + day
}
