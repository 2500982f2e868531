// Package status 维护负面状态的层数计数与每回合伤害贡献。
package status

// Kind 负面状态种类
type Kind string

const (
	Choked      Kind = "choked"       // 窒息/勒颈
	Poison      Kind = "poison"       // 中毒
	Crippled    Kind = "crippled"     // 残废/重伤
	Blocked     Kind = "blocked"      // 无法进食
	SkinDisease Kind = "skin_disease" // 皮肤病
	Parasite    Kind = "parasite"     // 寄生虫
)

// Kinds 所有状态种类
var Kinds = []Kind{Choked, Poison, Crippled, Blocked, SkinDisease, Parasite}

// damagePerStack 每层状态的每回合额外伤害
var damagePerStack = map[Kind]int{
	Choked:      1,
	Crippled:    1,
	Poison:      0,
	Blocked:     0,
	SkinDisease: 0,
	Parasite:    0,
}

// names 状态中文名称对照表
var names = map[Kind]string{
	Choked:      "窒息/勒颈",
	Poison:      "中毒",
	Crippled:    "残废/重伤",
	Blocked:     "无法进食",
	SkinDisease: "皮肤病",
	Parasite:    "寄生虫",
}

// icons 状态图标对照表
var icons = map[Kind]string{
	Choked:      "🧵",
	Poison:      "☠️",
	Crippled:    "♿",
	Blocked:     "🚫",
	SkinDisease: "🦠",
	Parasite:    "🪱",
}

// CureList 净化类食物可以清除的状态
// 注意：中毒与残废不在净化列表内
var CureList = []Kind{Choked, Blocked, SkinDisease, Parasite}

// Valid 判断是否为已知状态种类
func Valid(k Kind) bool {
	_, ok := damagePerStack[k]
	return ok
}

// Name 返回状态的中文名称
func (k Kind) Name() string {
	if name, ok := names[k]; ok {
		return name
	}
	return string(k)
}

// Icon 返回状态图标
func (k Kind) Icon() string {
	if icon, ok := icons[k]; ok {
		return icon
	}
	return "❓"
}

// Damage 返回该状态每层的每回合伤害
func (k Kind) Damage() int {
	return damagePerStack[k]
}

// Ledger 状态层数计数器，层数恒为非负
type Ledger map[Kind]int

// NewLedger 创建空的状态计数器
func NewLedger() Ledger {
	return make(Ledger)
}

// Count 返回某状态的当前层数
func (l Ledger) Count(k Kind) int {
	return l[k]
}

// Add 增加一层状态
func (l Ledger) Add(k Kind) {
	l[k]++
}

// Clear 清除指定的状态
func (l Ledger) Clear(kinds ...Kind) {
	for _, k := range kinds {
		delete(l, k)
	}
}

// ExtendAll 所有层数大于 0 的状态增加 delta 层
// 状态的持久量是层数而非回合数，因此"持续时间增加"表现为加层
func (l Ledger) ExtendAll(delta int) {
	for k, count := range l {
		if count > 0 {
			l[k] = count + delta
		}
	}
}

// TotalDamage 计算所有状态的每回合伤害总和
func (l Ledger) TotalDamage() int {
	total := 0
	for k, count := range l {
		if count > 0 {
			total += k.Damage() * count
		}
	}
	return total
}

// Active 返回层数大于 0 的状态（快照用）
func (l Ledger) Active() map[Kind]int {
	active := make(map[Kind]int)
	for k, count := range l {
		if count > 0 {
			active[k] = count
		}
	}
	return active
}

// Clone 复制计数器
func (l Ledger) Clone() Ledger {
	clone := make(Ledger, len(l))
	for k, count := range l {
		clone[k] = count
	}
	return clone
}
