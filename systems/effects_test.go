package systems

import (
	"testing"

	"github.com/automoto/quietwood/components"
	cfg "github.com/automoto/quietwood/config"
	"github.com/automoto/quietwood/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJumpDustRemovesItself(t *testing.T) {
	e, _ := newTestWorld(t, 100)
	dust := factory.SpawnJumpDust(e, 100, groundY)
	require.NotNil(t, dust)
	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	space := components.Space.Get(spaceEntry)
	before := len(space.Objects())

	UpdateEffects(e)
	assert.True(t, dust.Valid())

	for i := 0; i < 100 && dust.Valid(); i++ {
		UpdateEffects(e)
	}
	assert.False(t, dust.Valid())
	assert.Len(t, space.Objects(), before-1, "collision object left the space")
	assert.Zero(t, countEffects(e))
}

func TestSpawnVFXUnknownEffect(t *testing.T) {
	e := newTestECS(t)
	assert.Nil(t, factory.SpawnVFX(e, 0, 0, cfg.Idle))
}

func TestFrameCountedEffect(t *testing.T) {
	e := newTestECS(t)
	dust := factory.SpawnJumpDust(e, 0, 0)
	ad := components.AutoDestroy.Get(dust)
	ad.DestroyOnAnimLoop = false
	ad.FramesRemaining = 3

	UpdateEffects(e)
	UpdateEffects(e)
	assert.True(t, dust.Valid())
	UpdateEffects(e)
	assert.False(t, dust.Valid())
}
