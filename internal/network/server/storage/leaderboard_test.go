package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestLeaderboardManager(t *testing.T) (*LeaderboardManager, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	lm := NewLeaderboardManager(client)
	return lm, mr
}

func TestLeaderboard_RecordRun_NewPlayer(t *testing.T) {
	t.Parallel()

	lm, mr := newTestLeaderboardManager(t)
	defer mr.Close()
	ctx := context.Background()

	err := lm.RecordRun(ctx, "p1", "Player1", 7, "hunger")
	assert.NoError(t, err)

	stats, err := lm.GetPlayerStats(ctx, "p1")
	assert.NoError(t, err)
	assert.NotNil(t, stats)

	assert.Equal(t, "p1", stats.PlayerID)
	assert.Equal(t, 1, stats.TotalRuns)
	assert.Equal(t, 7, stats.BestRounds)
	assert.Equal(t, 7, stats.TotalRounds)
	assert.Equal(t, 1, stats.DeathsByHunger)
	assert.Equal(t, 0, stats.DeathsByFood)
}

func TestLeaderboard_RecordRun_KeepsBestRounds(t *testing.T) {
	t.Parallel()

	lm, mr := newTestLeaderboardManager(t)
	defer mr.Close()
	ctx := context.Background()

	err := lm.RecordRun(ctx, "p1", "Player1", 10, "hunger")
	assert.NoError(t, err)

	// A worse run must not lower the best
	err = lm.RecordRun(ctx, "p1", "Player1", 3, "food")
	assert.NoError(t, err)

	stats, err := lm.GetPlayerStats(ctx, "p1")
	assert.NoError(t, err)

	assert.Equal(t, 2, stats.TotalRuns)
	assert.Equal(t, 10, stats.BestRounds)
	assert.Equal(t, 13, stats.TotalRounds)
	assert.Equal(t, 1, stats.DeathsByHunger)
	assert.Equal(t, 1, stats.DeathsByFood)
}

func TestLeaderboard_GetLeaderboard(t *testing.T) {
	t.Parallel()

	lm, mr := newTestLeaderboardManager(t)
	defer mr.Close()
	ctx := context.Background()

	assert.NoError(t, lm.RecordRun(ctx, "p1", "Player1", 5, "hunger"))
	assert.NoError(t, lm.RecordRun(ctx, "p2", "Player2", 12, "food"))
	assert.NoError(t, lm.RecordRun(ctx, "p3", "Player3", 8, "hunger"))

	entries, err := lm.GetLeaderboard(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)

	assert.Equal(t, "p2", entries[0].PlayerID)
	assert.Equal(t, 12, entries[0].BestRounds)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "p3", entries[1].PlayerID)
	assert.Equal(t, "p1", entries[2].PlayerID)
}

func TestLeaderboard_GetLeaderboard_Limit(t *testing.T) {
	t.Parallel()

	lm, mr := newTestLeaderboardManager(t)
	defer mr.Close()
	ctx := context.Background()

	assert.NoError(t, lm.RecordRun(ctx, "p1", "Player1", 5, "hunger"))
	assert.NoError(t, lm.RecordRun(ctx, "p2", "Player2", 12, "hunger"))

	entries, err := lm.GetLeaderboard(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "p2", entries[0].PlayerID)
}

func TestLeaderboard_GetPlayerRank(t *testing.T) {
	t.Parallel()

	lm, mr := newTestLeaderboardManager(t)
	defer mr.Close()
	ctx := context.Background()

	assert.NoError(t, lm.RecordRun(ctx, "p1", "Player1", 5, "hunger"))
	assert.NoError(t, lm.RecordRun(ctx, "p2", "Player2", 12, "hunger"))

	rank, err := lm.GetPlayerRank(ctx, "p1")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), rank)

	rank, err = lm.GetPlayerRank(ctx, "nobody")
	assert.NoError(t, err)
	assert.Equal(t, int64(-1), rank)
}
