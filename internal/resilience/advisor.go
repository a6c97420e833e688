package resilience

import "steady-compass/internal/domain"

const (
	categoryRelaxation = "relaxation"
	categoryExercise   = "exercise"
	categorySocial     = "social"
	categoryLearning   = "learning"
	categoryWork       = "work"
	categorySleep      = "sleep"
)

type suggestionCategory struct {
	title       string
	suggestions []string
}

var suggestionLibrary = map[string]suggestionCategory{
	categoryRelaxation: {
		title: "Relaxation Techniques",
		suggestions: []string{
			"Try a breathing exercise: inhale for 4 seconds, hold for 4, exhale for 6",
			"Do 5-10 minutes of mindfulness meditation",
			"Listen to calming music and let your body unwind",
			"Do some light stretching to release muscle tension",
			"Step away from your desk for a 10-minute walk outside",
		},
	},
	categoryExercise: {
		title: "Exercise",
		suggestions: []string{
			"Get 30 minutes of aerobic exercise (jogging, brisk walking, swimming)",
			"Try yoga or pilates to improve flexibility",
			"Do a few simple stretches at your desk",
			"Take a 20-30 minute walk after work",
			"Try high-intensity interval training to burn off stress",
		},
	},
	categorySocial: {
		title: "Social Support",
		suggestions: []string{
			"Talk about how you feel with a trusted friend or family member",
			"Join an interest group or community activity",
			"Reach out to a professional counselor",
			"Share work experiences with colleagues for support",
			"Avoid isolating yourself; keep your social ties active",
		},
	},
	categoryLearning: {
		title: "Learning & Growth",
		suggestions: []string{
			"Pick up a new skill or topic to build confidence",
			"Read positive psychology or self-help books",
			"Take a time-management or stress-management course",
			"Practice setting realistic goals and expectations",
			"Develop a new hobby to redirect your attention",
		},
	},
	categoryWork: {
		title: "Work Adjustments",
		suggestions: []string{
			"Use the pomodoro technique to stay focused",
			"Prioritize ruthlessly and finish the important tasks first",
			"Schedule real breaks and avoid overworking",
			"Talk to your manager about unreasonable workloads",
			"Learn to say no instead of taking on too much",
		},
	},
	categorySleep: {
		title: "Sleep Improvement",
		suggestions: []string{
			"Keep a regular sleep schedule",
			"Avoid screens in the hour before bed",
			"Keep the bedroom quiet, dark, and cool",
			"Skip caffeine and heavy meals close to bedtime",
			"Wind down with a warm bath or some reading",
		},
	},
}

// Advisor is a fixed in-memory lookup: (stress tier, dimension, emotion) to a
// ranked suggestion list. It holds no state and is safe to share.
type Advisor struct{}

func NewAdvisor() *Advisor {
	return &Advisor{}
}

// GetSuggestions picks up to three categories for the given inputs and
// returns their top three suggestions each. The prepend rules are applied
// independently and may repeat a category already in the base list.
func (a *Advisor) GetSuggestions(stressLevel, dimension, emotionType string) []domain.SuggestionItem {
	var categories []string
	switch stressLevel {
	case string(domain.StressHigh):
		categories = []string{categoryRelaxation, categoryExercise, categorySocial, categoryWork}
	case string(domain.StressMedium):
		categories = []string{categoryWork, categoryLearning, categoryExercise}
	default:
		categories = []string{categoryLearning, categorySocial}
	}

	if dimension == domain.DimensionWork && (stressLevel == string(domain.StressHigh) || stressLevel == string(domain.StressMedium)) {
		categories = prepend(categories, categoryWork)
	} else if dimension == domain.DimensionHealth && stressLevel == string(domain.StressHigh) {
		categories = prepend(categories, categoryExercise)
		categories = prepend(categories, categorySleep)
	}

	if emotionType == string(domain.EmotionFatigue) || emotionType == "exhausted" {
		categories = prepend(categories, categorySleep)
	} else if emotionType == string(domain.EmotionAnxiety) || emotionType == string(domain.EmotionStress) {
		categories = prepend(categories, categoryRelaxation)
	}

	if len(categories) > 3 {
		categories = categories[:3]
	}

	items := make([]domain.SuggestionItem, 0, len(categories)*3)
	for _, key := range categories {
		library, ok := suggestionLibrary[key]
		if !ok {
			continue
		}
		for _, suggestion := range library.suggestions[:3] {
			items = append(items, domain.SuggestionItem{
				Category:   library.title,
				Suggestion: suggestion,
			})
		}
	}
	return items
}

// GetActionPlan partitions the suggestion list positionally: the first two
// items are immediate, the next two short-term, the rest long-term.
func (a *Advisor) GetActionPlan(stressLevel, dimension, emotionType string) domain.ActionPlan {
	suggestions := a.GetSuggestions(stressLevel, dimension, emotionType)

	plan := domain.ActionPlan{
		Immediate:  []domain.SuggestionItem{},
		ShortTerm:  []domain.SuggestionItem{},
		LongTerm:   []domain.SuggestionItem{},
		TotalCount: len(suggestions),
	}
	for i, suggestion := range suggestions {
		switch {
		case i < 2:
			plan.Immediate = append(plan.Immediate, suggestion)
		case i < 4:
			plan.ShortTerm = append(plan.ShortTerm, suggestion)
		default:
			plan.LongTerm = append(plan.LongTerm, suggestion)
		}
	}
	return plan
}

func prepend(categories []string, category string) []string {
	return append([]string{category}, categories...)
}
