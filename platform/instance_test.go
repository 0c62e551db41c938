package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecondAcquireFails(t *testing.T) {
	name := "pomotimer-test-" + t.Name()
	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	defer guard.Release()

	_, err = AcquireSingleInstance(name)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.Equal(t, guard.Address(), again.Address())
	require.NoError(t, again.Release())
}

func TestPortFromNameIsStable(t *testing.T) {
	p := portFromName("pomotimer")
	assert.Equal(t, p, portFromName("pomotimer"))
	assert.GreaterOrEqual(t, p, 20000)
	assert.LessOrEqual(t, p, 39999)
}

func TestNilGuard(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
	assert.Equal(t, "", guard.Address())
}
