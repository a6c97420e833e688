package analysis

import (
	"regexp"
	"strings"
	"time"

	"steady-compass/internal/domain"
)

// Fixed bilingual lexicons. Detection is a keyword-count vote; order of the
// emotion table is the tie-break order.
var emotionKeywords = []struct {
	emotion  domain.EmotionType
	keywords []string
}{
	{domain.EmotionJoy, []string{
		"开心", "高兴", "快乐", "愉快", "欣喜", "满足",
		"不错", "很好", "太棒了", "顺利", "成功", "完成",
		"happy", "good", "great", "awesome", "joy",
	}},
	{domain.EmotionAnxiety, []string{
		"焦虑", "担心", "紧张", "不安", "害怕", "恐慌",
		"忧虑", "忐忑", "着急", "担忧", "worry", "anxious",
		"nervous", "stress",
	}},
	{domain.EmotionFatigue, []string{
		"疲惫", "累", "疲劳", "困", "乏力", "精神不振",
		"精疲力尽", "累坏了", "tired", "exhausted", "fatigue",
	}},
	{domain.EmotionAnger, []string{
		"生气", "愤怒", "恼火", "不爽", "烦躁", "气死",
		"angry", "mad", "annoyed", "frustrated",
	}},
	{domain.EmotionSadness, []string{
		"难过", "伤心", "失落", "沮丧", "郁闷", "失望",
		"sad", "upset", "disappointed", "depressed",
	}},
	{domain.EmotionCalm, []string{
		"平静", "放松", "轻松", "宁静", "安心", "舒适",
		"calm", "relaxed", "peaceful", "comfortable",
	}},
	{domain.EmotionExcitement, []string{
		"兴奋", "激动", "期待", "充满期待", "振奋", "热情",
		"excited", "thrilled", "looking forward",
	}},
	{domain.EmotionStress, []string{
		"压力", "压力大", "紧张", "压力山大", "喘不过气",
		"stress", "pressure", "overwhelmed",
	}},
}

// Intensity modifiers: the leftmost modifier found in the text wins, and its
// weight multiplies the 0.5 base intensity.
var intensityModifiers = []struct {
	word   string
	weight float64
}{
	{"非常", 1.5},
	{"特别", 1.4},
	{"超级", 1.6},
	{"极其", 1.8},
	{"太", 1.5},
	{"很", 1.3},
	{"挺", 1.2},
	{"有点", 0.7},
	{"稍微", 0.6},
	{"有点儿", 0.7},
	{"一些", 0.6},
}

var dimensionKeywords = []struct {
	dimension string
	keywords  []string
}{
	{domain.DimensionWork, []string{"工作", "项目", "任务", "会议", "报告", "汇报", "同事", "老板", "公司", "team", "project", "work"}},
	{domain.DimensionHealth, []string{"身体", "健康", "生病", "感冒", "头痛", "睡眠", "休息", "锻炼", "health", "sick", "sleep"}},
	{domain.DimensionSocial, []string{"朋友", "聚会", "约会", "家庭", "家人", "同事", "社交", "friend", "party", "family"}},
	{domain.DimensionLearning, []string{"学习", "考试", "复习", "课程", "作业", "论文", "study", "exam", "course", "homework"}},
}

type emotionPattern struct {
	emotion domain.EmotionType
	re      *regexp.Regexp
}

type dimensionPattern struct {
	dimension string
	re        *regexp.Regexp
}

// EmotionAnalyzer classifies free text into an emotion type with intensity,
// confidence, and a life dimension. All patterns are compiled at
// construction; instances hold no further mutable state and are safe to
// share across goroutines.
type EmotionAnalyzer struct {
	emotionPatterns   []emotionPattern
	intensityPattern  *regexp.Regexp
	dimensionPatterns []dimensionPattern
	now               func() time.Time
}

func NewEmotionAnalyzer(now func() time.Time) *EmotionAnalyzer {
	if now == nil {
		now = time.Now
	}

	a := &EmotionAnalyzer{now: now}
	for _, entry := range emotionKeywords {
		a.emotionPatterns = append(a.emotionPatterns, emotionPattern{
			emotion: entry.emotion,
			re:      compileKeywordPattern(entry.keywords),
		})
	}

	words := make([]string, 0, len(intensityModifiers))
	for _, m := range intensityModifiers {
		words = append(words, m.word)
	}
	a.intensityPattern = compileKeywordPattern(words)

	for _, entry := range dimensionKeywords {
		a.dimensionPatterns = append(a.dimensionPatterns, dimensionPattern{
			dimension: entry.dimension,
			re:        compileKeywordPattern(entry.keywords),
		})
	}
	return a
}

func compileKeywordPattern(keywords []string) *regexp.Regexp {
	quoted := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		quoted = append(quoted, regexp.QuoteMeta(kw))
	}
	return regexp.MustCompile("(?i)" + strings.Join(quoted, "|"))
}

// Analyze is a total function: it never fails, and blank input yields the
// calm zero result with dimension "unknown".
func (a *EmotionAnalyzer) Analyze(text string) domain.EmotionAnalysis {
	if strings.TrimSpace(text) == "" {
		return domain.EmotionAnalysis{
			EmotionType: domain.EmotionCalm,
			Intensity:   0,
			Confidence:  0,
			Dimension:   domain.DimensionUnknown,
			Timestamp:   a.now(),
		}
	}

	emotion := a.detectEmotion(text)

	return domain.EmotionAnalysis{
		EmotionType: emotion,
		Intensity:   a.calculateIntensity(text, emotion),
		Confidence:  a.calculateConfidence(text, emotion),
		Dimension:   a.detectDimension(text),
		Timestamp:   a.now(),
	}
}

func (a *EmotionAnalyzer) BatchAnalyze(texts []string) []domain.EmotionAnalysis {
	results := make([]domain.EmotionAnalysis, 0, len(texts))
	for _, text := range texts {
		results = append(results, a.Analyze(text))
	}
	return results
}

func (a *EmotionAnalyzer) detectEmotion(text string) domain.EmotionType {
	best := domain.EmotionCalm
	bestCount := 0
	for _, p := range a.emotionPatterns {
		count := len(p.re.FindAllString(text, -1))
		if count > bestCount {
			best = p.emotion
			bestCount = count
		}
	}
	return best
}

func (a *EmotionAnalyzer) calculateIntensity(text string, emotion domain.EmotionType) float64 {
	intensity := 0.5

	if word := a.intensityPattern.FindString(text); word != "" {
		intensity *= modifierWeight(word)
	}

	switch emotion {
	case domain.EmotionStress, domain.EmotionAnxiety, domain.EmotionAnger:
		intensity = min(intensity*1.2, 1.0)
	case domain.EmotionJoy, domain.EmotionExcitement:
		intensity = min(intensity*1.1, 1.0)
	case domain.EmotionCalm:
		intensity = max(intensity*0.5, 0.2)
	}

	return min(intensity, 1.0)
}

func (a *EmotionAnalyzer) calculateConfidence(text string, emotion domain.EmotionType) float64 {
	var re *regexp.Regexp
	for _, p := range a.emotionPatterns {
		if p.emotion == emotion {
			re = p.re
			break
		}
	}
	if re == nil {
		return 0
	}

	matches := len(re.FindAllString(text, -1))
	if matches == 0 {
		return 0
	}

	confidence := min(0.3+float64(matches)*0.2, 1.0)
	if a.intensityPattern.MatchString(text) {
		confidence = min(confidence+0.1, 1.0)
	}
	return confidence
}

func (a *EmotionAnalyzer) detectDimension(text string) string {
	best := domain.DimensionOther
	bestCount := 0
	for _, p := range a.dimensionPatterns {
		count := len(p.re.FindAllString(text, -1))
		if count > bestCount {
			best = p.dimension
			bestCount = count
		}
	}
	return best
}

func modifierWeight(word string) float64 {
	lowered := strings.ToLower(word)
	for _, m := range intensityModifiers {
		if m.word == lowered {
			return m.weight
		}
	}
	return 1.0
}
