package analysis

import (
	"regexp"
	"strings"

	"steady-compass/internal/domain"
)

// Tiered keyword lists, checked in severity order: the first tier with a hit
// decides the level.
var highStressKeywords = []string{
	"截止",
	"ddl",
	"DDL",
	"deadline",
	"最后期限",
	"紧急",
	"urgent",
	"必须完成",
	"不能再拖",
	"生死攸关",
	"汇报",
	"演示",
	"演讲",
	"presentation",
	"答辩",
	"面试",
	"interview",
	"考试",
	"exam",
	"上线",
	"发布",
	"launch",
	"里程碑",
	"milestone",
}

var mediumStressKeywords = []string{
	"会议",
	"开会",
	"meeting",
	"讨论",
	"review",
	"评审",
	"复盘",
	"周报",
	"月报",
	"总结",
	"计划",
	"目标",
	"任务",
	"安排",
	"预约",
	" deadline",
	"到期",
	"交付",
	"提交",
}

var timePressureKeywords = []string{
	"今天",
	"明天",
	"本周",
	"下周",
	"尽快",
	"asap",
	"抓紧",
	"赶紧",
	"马上",
	"立即",
	"只有",
	"还剩",
	"还有",
}

// Report-style tasks escalate from medium to high when combined with time
// pressure.
var reportKeywords = []string{"周报", "月报", "总结", "汇报"}

const (
	reasonHighStress = "high-stress keywords detected"
	reasonMedium     = "medium-stress keywords detected"
	reasonTime       = "time-pressure keywords detected"
	reasonNone       = "no notable stress signal"
)

// StressEventClassifier assigns a coarse stress tier to event text. Patterns
// are compiled once; instances are safe for concurrent use.
type StressEventClassifier struct {
	highPattern   *regexp.Regexp
	mediumPattern *regexp.Regexp
	timePattern   *regexp.Regexp
}

func NewStressEventClassifier() *StressEventClassifier {
	return &StressEventClassifier{
		highPattern:   compileKeywordPattern(highStressKeywords),
		mediumPattern: compileKeywordPattern(mediumStressKeywords),
		timePattern:   compileKeywordPattern(timePressureKeywords),
	}
}

// Classify is total: empty or unrecognized text is low stress.
func (c *StressEventClassifier) Classify(text string) domain.StressLevel {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.StressLow
	}

	if c.highPattern.MatchString(text) {
		return domain.StressHigh
	}

	if c.mediumPattern.MatchString(text) {
		if containsReportKeyword(text) && c.timePattern.MatchString(text) {
			return domain.StressHigh
		}
		return domain.StressMedium
	}

	return domain.StressLow
}

// ClassifyWithDetails returns the level together with the matched keywords
// (deduplicated, first occurrence order) and a short reason.
func (c *StressEventClassifier) ClassifyWithDetails(text string) domain.StressDetails {
	level := c.Classify(text)

	var matched []string
	reason := ""

	if c.highPattern.MatchString(text) {
		matched = append(matched, c.highPattern.FindAllString(text, -1)...)
		reason = reasonHighStress
	}
	if c.mediumPattern.MatchString(text) {
		matched = append(matched, c.mediumPattern.FindAllString(text, -1)...)
		if reason == "" {
			reason = reasonMedium
		}
	}
	if c.timePattern.MatchString(text) {
		matched = append(matched, c.timePattern.FindAllString(text, -1)...)
		if level == domain.StressHigh {
			reason = reasonTime
		}
	}

	if reason == "" {
		reason = reasonNone
	}

	return domain.StressDetails{
		Level:           level,
		Emoji:           level.Emoji(),
		MatchedKeywords: dedupeKeywords(matched),
		Reason:          reason,
	}
}

func containsReportKeyword(text string) bool {
	for _, kw := range reportKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func dedupeKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}

func containsKeyword(list []string, keyword string) bool {
	for _, kw := range list {
		if kw == keyword {
			return true
		}
	}
	return false
}
