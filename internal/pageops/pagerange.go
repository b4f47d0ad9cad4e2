package pageops

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRange parses a 1-based page range expression ("1-3,5,2") against a
// document's page count and returns 0-based page indices in token order,
// neither deduplicated nor sorted.
//
// The policy is deliberately lenient, matching long-standing behavior: a
// span reaching past the last page is clamped, and a single page number
// beyond the last page is dropped. Neither is an error; each produces a
// warning so callers can surface a diagnostic if they want one. Tokens that
// are not numbers at all are errors.
func ParseRange(expr string, totalPages int) (indices []int, warnings []string, err error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil, fmt.Errorf("empty page range expression")
	}

	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, nil, fmt.Errorf("empty token in page range %q", expr)
		}

		if before, after, isSpan := strings.Cut(token, "-"); isSpan {
			start, err := parsePageNumber(before, token)
			if err != nil {
				return nil, nil, err
			}
			end, err := parsePageNumber(after, token)
			if err != nil {
				return nil, nil, err
			}
			if end > totalPages {
				warnings = append(warnings,
					fmt.Sprintf("span %q clamped to last page %d", token, totalPages))
				end = totalPages
			}
			for page := start; page <= end; page++ {
				if page >= 1 {
					indices = append(indices, page-1)
				}
			}
			continue
		}

		page, err := parsePageNumber(token, token)
		if err != nil {
			return nil, nil, err
		}
		if page < 1 || page > totalPages {
			warnings = append(warnings,
				fmt.Sprintf("page %d dropped, document has %d page(s)", page, totalPages))
			continue
		}
		indices = append(indices, page-1)
	}

	return indices, warnings, nil
}

func parsePageNumber(s, token string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid page token %q: %w", token, err)
	}
	return n, nil
}
