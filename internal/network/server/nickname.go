package server

import (
	"math/rand"
)

// 昵称词库
var (
	adjectives = []string{
		"勇敢的", "机警的", "快乐的", "神秘的", "邋遢的",
		"优雅的", "可爱的", "凶悍的", "沉稳的", "活泼的",
		"机智的", "潇洒的", "温柔的", "霸道的", "淡定的",
		"瘦小的", "圆滚的", "傲娇的", "呆萌的", "高冷的",
	}

	nouns = []string{
		"流浪狗", "流浪猫", "小老鼠", "大黄", "狸花",
		"三花", "奶牛猫", "土狗", "田园犬", "橘猫",
		"黑猫", "白猫", "灰鼠", "仓库鼠", "下水道鼠",
		"翻垃圾的", "守车库的", "蹲墙头的", "捡剩饭的", "夜游的",
	}
)

// GenerateNickname 生成随机昵称
func GenerateNickname() string {
	adj := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]
	return adj + noun
}
