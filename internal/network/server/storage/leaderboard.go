package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key
	playerStatsKey = "survivor:stats:"
	leaderboardKey = "leaderboard:rounds"
)

// SurvivalStats 玩家生存统计数据
type SurvivalStats struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`

	TotalRuns   int `json:"total_runs"`   // 总局数
	BestRounds  int `json:"best_rounds"`  // 单局最多存活回合
	TotalRounds int `json:"total_rounds"` // 累计存活回合

	// 按死因分开统计
	DeathsByHunger int `json:"deaths_by_hunger"` // 饿死/状态致死
	DeathsByFood   int `json:"deaths_by_food"`   // 食物致死

	LastPlayedAt int64 `json:"last_played_at"` // 最后游戏时间
	CreatedAt    int64 `json:"created_at"`     // 首次游戏时间
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	BestRounds int    `json:"best_rounds"`
	TotalRuns  int    `json:"total_runs"`
}

// LeaderboardManager 排行榜管理器
type LeaderboardManager struct {
	redis *redis.Client
}

// NewLeaderboardManager 创建排行榜管理器
func NewLeaderboardManager(client *redis.Client) *LeaderboardManager {
	return &LeaderboardManager{redis: client}
}

// GetPlayerStats 获取玩家统计，玩家不存在时返回 (nil, nil)
func (lm *LeaderboardManager) GetPlayerStats(ctx context.Context, playerID string) (*SurvivalStats, error) {
	key := playerStatsKey + playerID
	data, err := lm.redis.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats SurvivalStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SavePlayerStats 保存玩家统计
func (lm *LeaderboardManager) SavePlayerStats(ctx context.Context, stats *SurvivalStats) error {
	key := playerStatsKey + stats.PlayerID
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return lm.redis.Set(ctx, key, data, 0).Err()
}

// getOrCreateStats 获取或创建玩家统计
func (lm *LeaderboardManager) getOrCreateStats(ctx context.Context, playerID, playerName string) (*SurvivalStats, error) {
	stats, err := lm.GetPlayerStats(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return &SurvivalStats{
			PlayerID:   playerID,
			PlayerName: playerName,
			CreatedAt:  time.Now().Unix(),
		}, nil
	}
	return stats, nil
}

// RecordRun 记录一局结果。rounds 为存活回合数，cause 为死亡原因标识。
func (lm *LeaderboardManager) RecordRun(ctx context.Context, playerID, playerName string, rounds int, cause string) error {
	stats, err := lm.getOrCreateStats(ctx, playerID, playerName)
	if err != nil {
		return err
	}

	stats.PlayerName = playerName
	stats.TotalRuns++
	stats.TotalRounds += rounds
	stats.LastPlayedAt = time.Now().Unix()

	if rounds > stats.BestRounds {
		stats.BestRounds = rounds
	}

	switch cause {
	case "food":
		stats.DeathsByFood++
	default:
		stats.DeathsByHunger++
	}

	if err := lm.SavePlayerStats(ctx, stats); err != nil {
		return err
	}
	return lm.updateLeaderboard(ctx, stats)
}

// updateLeaderboard 以单局最佳回合数更新排行榜
func (lm *LeaderboardManager) updateLeaderboard(ctx context.Context, stats *SurvivalStats) error {
	return lm.redis.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(stats.BestRounds),
		Member: stats.PlayerID,
	}).Err()
}

// GetLeaderboard 获取排行榜（按最佳回合数从高到低）
func (lm *LeaderboardManager) GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	results, err := lm.redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for i, result := range results {
		playerID, ok := result.Member.(string)
		if !ok {
			continue
		}

		stats, err := lm.GetPlayerStats(ctx, playerID)
		if err != nil || stats == nil {
			continue
		}

		entries = append(entries, LeaderboardEntry{
			Rank:       i + 1,
			PlayerID:   playerID,
			PlayerName: stats.PlayerName,
			BestRounds: int(result.Score),
			TotalRuns:  stats.TotalRuns,
		})
	}

	return entries, nil
}

// GetPlayerRank 获取玩家排名，未上榜返回 -1
func (lm *LeaderboardManager) GetPlayerRank(ctx context.Context, playerID string) (int64, error) {
	rank, err := lm.redis.ZRevRank(ctx, leaderboardKey, playerID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return -1, nil
		}
		return -1, err
	}
	return rank + 1, nil // Redis 排名从 0 开始
}
