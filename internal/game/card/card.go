// Package card 定义食物卡与事件卡的静态卡池数据。
package card

import (
	"github.com/straypaws/stray-survival/internal/game/status"
)

// Faction 阵营
type Faction string

const (
	Dog Faction = "dog" // 狗
	Cat Faction = "cat" // 猫
	Rat Faction = "rat" // 鼠
)

// Factions 所有阵营
var Factions = []Faction{Dog, Cat, Rat}

// Stats 阵营基础属性
type Stats struct {
	MaxHP     int
	InitialHP int
	Emoji     string
}

// baseStats 各阵营的初始属性表，只作为开局基准，不随对局变化
var baseStats = map[Faction]Stats{
	Dog: {MaxHP: 14, InitialHP: 6, Emoji: "🐶"},
	Cat: {MaxHP: 12, InitialHP: 6, Emoji: "🐱"},
	Rat: {MaxHP: 10, InitialHP: 2, Emoji: "🐀"},
}

// Valid 判断是否为已知阵营
func (f Faction) Valid() bool {
	_, ok := baseStats[f]
	return ok
}

// Stats 返回阵营的基础属性
func (f Faction) Stats() Stats {
	return baseStats[f]
}

// Emoji 返回阵营图标
func (f Faction) Emoji() string {
	return baseStats[f].Emoji
}

// Rivals 返回除自己以外的其他阵营
func (f Faction) Rivals() []Faction {
	rivals := make([]Faction, 0, len(Factions)-1)
	for _, other := range Factions {
		if other != f {
			rivals = append(rivals, other)
		}
	}
	return rivals
}

// 食物卡效果的特殊 status 取值
const (
	statusCure = "cure" // 净化：清除可恢复的负面状态
	statusDead = "dead" // 致命陷阱：直接死亡
)

// Effect 食物卡对某个阵营的效果
type Effect struct {
	HP     int    `yaml:"hp" json:"hp"`
	Status string `yaml:"status,omitempty" json:"status,omitempty"`
}

// IsCure 是否为净化效果
func (e Effect) IsCure() bool { return e.Status == statusCure }

// IsDead 是否为致死效果
func (e Effect) IsDead() bool { return e.Status == statusDead }

// HazardStatus 返回需要掷硬币判定的负面状态，没有则返回空
func (e Effect) HazardStatus() (status.Kind, bool) {
	if e.Status == "" || e.IsCure() || e.IsDead() {
		return "", false
	}
	return status.Kind(e.Status), true
}

// FoodCard 食物卡
type FoodCard struct {
	ID      int                `yaml:"id" json:"id"`
	Name    string             `yaml:"name" json:"name"`
	Desc    string             `yaml:"desc" json:"desc"`
	Image   string             `yaml:"image" json:"image,omitempty"`
	Effects map[Faction]Effect `yaml:"effects" json:"effects"`
}

// EffectType 事件卡效果类型（封闭枚举）
type EffectType string

const (
	DrawBonus              EffectType = "draw_bonus"               // 下回合多抽卡
	StatusClear            EffectType = "status_clear"             // 清除指定状态
	TurnDelay              EffectType = "turn_delay"               // 延迟下次事件
	TurnAdvance            EffectType = "turn_advance"             // 提前下次事件
	HungerIncrease         EffectType = "hunger_increase"          // 永久增加饥饿扣血
	HealAll                EffectType = "heal_all"                 // 全体回血
	StatusDurationIncrease EffectType = "status_duration_increase" // 状态层数延长
	DamageAll              EffectType = "damage_all"               // 全体伤害
	CardSwap               EffectType = "card_swap"                // 下回合卡池替换
)

// effectTypes 已知的事件效果类型
var effectTypes = map[EffectType]bool{
	DrawBonus:              true,
	StatusClear:            true,
	TurnDelay:              true,
	TurnAdvance:            true,
	HungerIncrease:         true,
	HealAll:                true,
	StatusDurationIncrease: true,
	DamageAll:              true,
	CardSwap:               true,
}

// Valid 判断是否为已知效果类型
func (t EffectType) Valid() bool {
	return effectTypes[t]
}

// EventCard 事件卡
type EventCard struct {
	ID             int           `yaml:"id" json:"id"`
	Name           string        `yaml:"name" json:"name"`
	Desc           string        `yaml:"desc" json:"desc"`
	Image          string        `yaml:"image" json:"image,omitempty"`
	EffectType     EffectType    `yaml:"effect_type" json:"effect_type"`
	Value          int           `yaml:"value,omitempty" json:"value,omitempty"`
	TargetStatuses []status.Kind `yaml:"target_statuses,omitempty" json:"target_statuses,omitempty"`
	TargetCardID   int           `yaml:"target_card_id,omitempty" json:"target_card_id,omitempty"` // 0 表示无目标
}
