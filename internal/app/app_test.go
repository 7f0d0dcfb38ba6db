package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigestCronSpec(t *testing.T) {
	spec, err := digestCronSpec("20:00")
	require.NoError(t, err)
	require.Equal(t, "0 20 * * *", spec)

	spec, err = digestCronSpec("07:30")
	require.NoError(t, err)
	require.Equal(t, "30 7 * * *", spec)

	_, err = digestCronSpec("8pm")
	require.Error(t, err)
}
