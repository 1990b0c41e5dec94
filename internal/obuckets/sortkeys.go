package obuckets

import (
	"sort"
	"strings"

	"github.com/poma-odoo/odoo-sort-go/internal/pyparse"
)

const unranked = int(^uint(0) >> 1)

// SortKeyFromEnding ranks a method binding by which field name (if any)
// it ends with, so that e.g. _compute_state sorts next to the `state`
// field it computes. Bindings matching no field rank last.
func SortKeyFromEnding(fields []string) func(binding string) int {
	return func(binding string) int {
		best, bestLen := -1, -1
		for i, f := range fields {
			if f != "" && strings.HasSuffix(binding, f) && len(f) > bestLen {
				best, bestLen = i, len(f)
			}
		}
		if best == -1 {
			return unranked
		}
		return best
	}
}

// SortByBindingRank stable-sorts statements by the minimum rank (from
// rankFn) across their bindings, falling back to alphabetical order on
// their first binding when ranks tie or are all unranked.
func SortByBindingRank(statements []*pyparse.Statement, rankFn func(string) int) []*pyparse.Statement {
	out := append([]*pyparse.Statement(nil), statements...)
	key := func(stmt *pyparse.Statement) (int, string) {
		bindings := stmt.Bindings()
		best := unranked
		for _, b := range bindings {
			if r := rankFn(b); r < best {
				best = r
			}
		}
		first := ""
		if len(bindings) > 0 {
			first = bindings[0]
		}
		return best, first
	}
	sort.SliceStable(out, func(i, j int) bool {
		ki, si := key(out[i])
		kj, sj := key(out[j])
		if ki != kj {
			return ki < kj
		}
		return si < sj
	})
	return out
}
