package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedger_AddAndCount(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	assert.Equal(t, 0, l.Count(Choked))

	l.Add(Choked)
	l.Add(Choked)
	l.Add(Poison)

	assert.Equal(t, 2, l.Count(Choked))
	assert.Equal(t, 1, l.Count(Poison))
}

func TestLedger_TotalDamage(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	// choked and crippled deal 1 per stack, the rest deal 0
	l.Add(Choked)
	l.Add(Choked)
	l.Add(Crippled)
	l.Add(Poison)
	l.Add(Parasite)

	assert.Equal(t, 3, l.TotalDamage())
}

func TestLedger_Clear(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	l.Add(Choked)
	l.Add(Blocked)
	l.Add(Poison)

	l.Clear(CureList...)

	assert.Equal(t, 0, l.Count(Choked))
	assert.Equal(t, 0, l.Count(Blocked))
	// poison is not curable
	assert.Equal(t, 1, l.Count(Poison))
}

func TestLedger_ExtendAll(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	l.Add(Choked)
	l.Add(Parasite)

	l.ExtendAll(1)

	assert.Equal(t, 2, l.Count(Choked))
	assert.Equal(t, 2, l.Count(Parasite))
	// kinds with zero stacks stay inert
	assert.Equal(t, 0, l.Count(Poison))
}

func TestLedger_Active(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	l.Add(Choked)
	l.Clear(Choked)
	l.Add(Crippled)

	active := l.Active()
	assert.Len(t, active, 1)
	assert.Equal(t, 1, active[Crippled])
}

func TestKind_Damage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Choked.Damage())
	assert.Equal(t, 1, Crippled.Damage())
	assert.Equal(t, 0, Poison.Damage())
	assert.Equal(t, 0, SkinDisease.Damage())
}
