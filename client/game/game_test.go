package game

import (
	"math/rand"
	"testing"

	"github.com/simonolander/laniakea/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingGuard struct {
	started int
	stopped int
}

var _ session.Guard = &recordingGuard{}

func (g *recordingGuard) Start() { g.started++ }
func (g *recordingGuard) Stop()  { g.stopped++ }

func TestGame_TeardownSessionReleasesManagerAndGuards(t *testing.T) {
	guard := &recordingGuard{}
	g := &Game{
		rng:        rand.New(rand.NewSource(1)),
		closeGuard: session.NewCloseGuard(),
		guards:     []session.Guard{guard},
	}

	require.NoError(t, g.loadPlay(4))
	require.NotNil(t, g.manager)
	assert.Equal(t, 1, guard.started)

	g.teardownSession()
	assert.Nil(t, g.manager)
	assert.Equal(t, 1, guard.stopped)

	// Teardown without a running session does nothing.
	assert.NotPanics(t, func() { g.teardownSession() })
	assert.Equal(t, 1, guard.stopped)
}
