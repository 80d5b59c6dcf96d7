package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rushteam/simkit/core"
)

// ParseRatings 解析 MovieLens u.data 格式的评分数据：
// 每行 "userId\tmovieId\trating\ttimestamp"，timestamp 被忽略。
// 非法行返回 MALFORMED_INPUT，整个解析中止（不做部分恢复）。
func ParseRatings(r io.Reader) ([]core.Rating, error) {
	var out []core.Rating

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 3 {
			return nil, malformed(line, "expected at least 3 fields")
		}

		userID, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, malformed(line, "bad user id "+fields[0])
		}
		itemID, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, malformed(line, "bad item id "+fields[1])
		}
		value, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, malformed(line, "bad rating "+fields[2])
		}

		out = append(out, core.Rating{UserID: userID, ItemID: itemID, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ratings: %w", err)
	}
	return out, nil
}

// ParseItemNames 解析 MovieLens u.item 格式的名称表：
// 每行 "movieId|movieName|..."，第二个字段之后的内容被忽略。
func ParseItemNames(r io.Reader) (MapNames, error) {
	names := make(MapNames)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.SplitN(text, "|", 3)
		if len(fields) < 2 {
			return nil, malformed(line, "expected 'id|name'")
		}

		itemID, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, malformed(line, "bad item id "+fields[0])
		}
		names[itemID] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read item names: %w", err)
	}
	return names, nil
}

func malformed(line int, detail string) error {
	return core.NewDomainError(
		core.ModuleIngest,
		core.ErrorCodeMalformedInput,
		fmt.Sprintf("ingest: line %d: %s", line, detail),
	)
}
