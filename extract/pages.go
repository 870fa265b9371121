package extract

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParsePageRange expands a 1-based page selection such as "1-3,5,10" into a
// sorted list of unique zero-based page indices. The string "all" (any
// case) selects every page. Selections outside 1..pageCount are dropped
// silently; malformed numbers are an error.
func ParsePageRange(spec string, pageCount int) ([]int, error) {
	if strings.EqualFold(strings.TrimSpace(spec), "all") || strings.TrimSpace(spec) == "" {
		pages := make([]int, pageCount)
		for i := range pages {
			pages[i] = i
		}
		return pages, nil
	}

	seen := make(map[int]struct{})
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if start, end, ok := strings.Cut(part, "-"); ok {
			first, err := strconv.Atoi(strings.TrimSpace(start))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q: %w", part, err)
			}
			last, err := strconv.Atoi(strings.TrimSpace(end))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q: %w", part, err)
			}
			for i := first; i <= last; i++ {
				if i > 0 && i <= pageCount {
					seen[i-1] = struct{}{}
				}
			}
			continue
		}

		page, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid page number %q: %w", part, err)
		}
		if page > 0 && page <= pageCount {
			seen[page-1] = struct{}{}
		}
	}

	pages := make([]int, 0, len(seen))
	for page := range seen {
		pages = append(pages, page)
	}
	sort.Ints(pages)
	return pages, nil
}
