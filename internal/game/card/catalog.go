package card

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/straypaws/stray-survival/internal/game/status"
)

//go:embed data/foods.yaml
var foodsYAML []byte

//go:embed data/events.yaml
var eventsYAML []byte

// Catalog 静态卡池，加载后不可变
type Catalog struct {
	Foods  []FoodCard
	Events []EventCard

	foodByID  map[int]*FoodCard
	eventByID map[int]*EventCard
}

// Load 解析内嵌卡池数据并做完整性校验
func Load() (*Catalog, error) {
	var foods []FoodCard
	if err := yaml.Unmarshal(foodsYAML, &foods); err != nil {
		return nil, fmt.Errorf("解析食物卡数据失败: %w", err)
	}

	var events []EventCard
	if err := yaml.Unmarshal(eventsYAML, &events); err != nil {
		return nil, fmt.Errorf("解析事件卡数据失败: %w", err)
	}

	c := &Catalog{
		Foods:     foods,
		Events:    events,
		foodByID:  make(map[int]*FoodCard, len(foods)),
		eventByID: make(map[int]*EventCard, len(events)),
	}
	for i := range c.Foods {
		c.foodByID[c.Foods[i].ID] = &c.Foods[i]
	}
	for i := range c.Events {
		c.eventByID[c.Events[i].ID] = &c.Events[i]
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate 卡池数据完整性校验，数据问题在加载期直接失败
func (c *Catalog) validate() error {
	var errs []string

	seen := make(map[int]bool)
	for _, f := range c.Foods {
		if seen[f.ID] {
			errs = append(errs, fmt.Sprintf("食物卡 ID %d 重复", f.ID))
		}
		seen[f.ID] = true

		// 每个阵营都必须有效果条目
		for _, faction := range Factions {
			effect, ok := f.Effects[faction]
			if !ok {
				errs = append(errs, fmt.Sprintf("食物卡 %d 缺少 %s 阵营效果", f.ID, faction))
				continue
			}
			if effect.Status == "" || effect.IsCure() || effect.IsDead() {
				continue
			}
			if !status.Valid(status.Kind(effect.Status)) {
				errs = append(errs, fmt.Sprintf("食物卡 %d 的 %s 效果包含未知状态 %q", f.ID, faction, effect.Status))
			}
		}
	}

	seenEvent := make(map[int]bool)
	for _, e := range c.Events {
		if seenEvent[e.ID] {
			errs = append(errs, fmt.Sprintf("事件卡 ID %d 重复", e.ID))
		}
		seenEvent[e.ID] = true

		if !e.EffectType.Valid() {
			errs = append(errs, fmt.Sprintf("事件卡 %d 的效果类型 %q 无法识别", e.ID, e.EffectType))
			continue
		}
		switch e.EffectType {
		case CardSwap:
			if _, ok := c.foodByID[e.TargetCardID]; !ok {
				errs = append(errs, fmt.Sprintf("事件卡 %d 的替换目标 %d 不在食物卡池中", e.ID, e.TargetCardID))
			}
		case StatusClear:
			for _, k := range e.TargetStatuses {
				if !status.Valid(k) {
					errs = append(errs, fmt.Sprintf("事件卡 %d 清除目标包含未知状态 %q", e.ID, k))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("卡池数据校验失败: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Food 按 ID 查找食物卡
func (c *Catalog) Food(id int) (*FoodCard, bool) {
	f, ok := c.foodByID[id]
	return f, ok
}

// Event 按 ID 查找事件卡
func (c *Catalog) Event(id int) (*EventCard, bool) {
	e, ok := c.eventByID[id]
	return e, ok
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default 返回内嵌卡池，数据损坏时 panic（加载期快速失败）
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load()
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
