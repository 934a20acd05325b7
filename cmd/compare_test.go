package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Book dates are the default comparison mode; effective dates are opt-in.
// A true default would also make the bare --effective switch a no-op.
func TestCompareFlags_BookDateModeIsDefault(t *testing.T) {
	flag := compareCmd.Flags().Lookup("effective")
	assert.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestCompareFlags_TransactionDaysDefault(t *testing.T) {
	flag := compareCmd.Flags().Lookup("transaction-days")
	assert.NotNil(t, flag)
	assert.Equal(t, "60", flag.DefValue)
}
