package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountIDValidate(t *testing.T) {
	valid := []AccountID{"ab", "alice.near", "ft.zomland.near", "a-b_c.d1", AccountID(strings.Repeat("a", 64))}
	for _, a := range valid {
		assert.NoError(t, a.Validate(), "account %q", a)
	}

	invalid := []AccountID{"", "a", "Alice.near", ".near", "near.", "a..b", "a b", AccountID(strings.Repeat("a", 65))}
	for _, a := range invalid {
		assert.ErrorIs(t, a.Validate(), ErrInvalidAccount, "account %q", a)
	}
}

func TestParentOf(t *testing.T) {
	parent, ok := ParentOf("ft.zomland.near")
	assert.True(t, ok)
	assert.Equal(t, AccountID("zomland.near"), parent)

	_, ok = ParentOf("near")
	assert.False(t, ok)
	_, ok = ParentOf("trailing.")
	assert.False(t, ok)
}

func TestBurnAccount(t *testing.T) {
	assert.Equal(t, AccountID("burn.zomland.near"), BurnAccount("zomland.near"))
}
