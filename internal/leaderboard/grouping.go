package leaderboard

import (
	"bytes"
	"cmp"
	"encoding/json"
	"slices"
	"strconv"

	"leaderboard/internal/model"
)

// ScoreGroup 是同分使用者的統計
type ScoreGroup struct {
	Score      int      `json:"-"`
	Names      []string `json:"names"`
	AverageAge int      `json:"average_age"`
}

// ScoreGroups 依分數由高到低排列，序列化為以分數為 key 的 JSON object
type ScoreGroups []ScoreGroup

// GroupByScore 以分數分組，組內名字保留輸入順序
func GroupByScore(users []model.User) ScoreGroups {
	index := make(map[int]int)
	groups := ScoreGroups{}
	ageSums := []int{}

	for _, u := range users {
		i, ok := index[u.Points]
		if !ok {
			i = len(groups)
			index[u.Points] = i
			groups = append(groups, ScoreGroup{Score: u.Points, Names: []string{}})
			ageSums = append(ageSums, 0)
		}
		groups[i].Names = append(groups[i].Names, u.Name)
		ageSums[i] += u.Age
	}

	for i := range groups {
		groups[i].AverageAge = floorDiv(ageSums[i], len(groups[i].Names))
	}

	slices.SortFunc(groups, func(a, b ScoreGroup) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return groups
}

// floorDiv 向下取整，Go 的 / 是向零取整
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (g ScoreGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(strconv.Itoa(group.Score))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(group)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
