package utils

import "time"

// DateLayout 考勤与档案中业务日期的统一格式
const DateLayout = "2006-01-02"

// ParseDate 解析 YYYY-MM-DD 格式的日期字符串。
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate 以 YYYY-MM-DD 格式输出日期。
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
