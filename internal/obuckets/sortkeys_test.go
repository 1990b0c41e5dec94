package obuckets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poma-odoo/odoo-sort-go/internal/pyparse"
)

func TestSortKeyFromEnding_MatchesLongestSuffix(t *testing.T) {
	rank := SortKeyFromEnding([]string{"state", "partner_id"})

	assert.Equal(t, 0, rank("_compute_state"))
	assert.Equal(t, 1, rank("_compute_partner_id"))
	assert.NotEqual(t, 0, rank("_compute_unrelated"))
}

func TestSortByBindingRank_OrdersBySuffixThenAlphabetical(t *testing.T) {
	stmts, perr := pyparse.Parse(
		"def _compute_other(self):\n    pass\n\n"+
			"def _compute_state(self):\n    pass\n\n"+
			"def _compute_amount(self):\n    pass\n",
		"t.py",
	)
	require.Nil(t, perr)
	require.Len(t, stmts, 3)

	rank := SortKeyFromEnding([]string{"state", "amount"})
	ordered := SortByBindingRank(stmts, rank)

	var names []string
	for _, s := range ordered {
		names = append(names, s.Bindings()[0])
	}
	// state (rank 0), amount (rank 1), other (unranked, sorts last
	// alphabetically among ties - here it's the only unranked one).
	assert.Equal(t, []string{"_compute_state", "_compute_amount", "_compute_other"}, names)
}
