// Package assistant is a deterministic rule-based study helper: a keyword
// dispatch table over an embedded dataset. There is no model behind it and no
// network call in it.
package assistant

import (
	"fmt"
	"hash/fnv"
	"strings"
)

type Client struct {
	rules []rule
}

type rule struct {
	keywords []string
	respond  func(c *Client, question string) string
}

// NewClient builds the responder. The dispatch table is checked in order and
// the first keyword hit wins, so broader topics go last.
func NewClient() *Client {
	c := &Client{}
	c.rules = []rule{
		{[]string{"python", "coding", "programming"}, (*Client).answerPython},
		{[]string{"frontend", "web", "javascript", "html", "css"}, (*Client).answerFrontend},
		{[]string{"learn", "resource", "course", "tutorial", "book"}, (*Client).answerResources},
		{[]string{"salary", "pay", "wage", "income"}, (*Client).answerSalary},
		{[]string{"trend", "popular", "technology", "direction"}, (*Client).answerTrends},
	}
	return c
}

// Answer dispatches the question to the first rule whose keyword appears in
// it, falling back to a general study-advice reply. Same question, same
// answer: the fallback is picked by hashing the question, not by randomness.
func (c *Client) Answer(question string) string {
	lower := strings.ToLower(question)
	for _, r := range c.rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.respond(c, question)
			}
		}
	}
	return c.answerGeneral(question)
}

func (c *Client) answerPython(string) string {
	var b strings.Builder
	b.WriteString("Python study guide\n\nRecommended books (free online):\n")
	for i, bk := range booksByLanguage["Python"] {
		fmt.Fprintf(&b, "%d. %s by %s (%d)\n   Rating %.1f/5.0, %d pages, %s level\n   Read free: %s\n   %s\n",
			i+1, bk.Title, bk.Author, bk.Year, bk.Rating, bk.Pages, bk.Difficulty, bk.URL, bk.Blurb)
	}

	path := learningPaths["Python"]
	fmt.Fprintf(&b, "\nSuggested path (%s):\n", path.Timeline)
	fmt.Fprintf(&b, "1. Beginner: %s\n", strings.Join(path.Beginner[:3], ", "))
	fmt.Fprintf(&b, "2. Intermediate: %s\n", strings.Join(path.Intermediate[:3], ", "))
	fmt.Fprintf(&b, "3. Advanced: %s\n", strings.Join(path.Advanced[:3], ", "))
	fmt.Fprintf(&b, "\nProject ideas: %s\n", strings.Join(path.Projects[:3], ", "))

	fmt.Fprintf(&b, "\nJob market: demand growth %d%%, junior salaries around %s.\n",
		trendingLanguages[0].Growth, salaryBands[0].ByLang["Python"])
	fmt.Fprintf(&b, "\nPlan on 2-3 focused hours a day; %s of book work plus projects gets most people job-ready.\n", path.Timeline)
	return b.String()
}

func (c *Client) answerFrontend(string) string {
	var b strings.Builder
	b.WriteString("Frontend development guide\n\nFramework adoption:\n")
	for _, fw := range trendingFrameworks[:3] {
		fmt.Fprintf(&b, "- %s: %d%% usage, trend %s\n", fw.Name, fw.Usage, fw.Trend)
	}

	path := learningPaths["Frontend"]
	fmt.Fprintf(&b, "\nLearning path (%s):\n", path.Timeline)
	fmt.Fprintf(&b, "1. Basics: %s\n", strings.Join(path.Beginner[:3], ", "))
	fmt.Fprintf(&b, "2. Intermediate: %s\n", strings.Join(path.Intermediate[:3], ", "))
	fmt.Fprintf(&b, "3. Advanced: %s\n", strings.Join(path.Advanced[:3], ", "))

	fmt.Fprintf(&b, "\nSalary bands: junior %s, mid %s, senior %s.\n",
		salaryBands[0].ByLang["JavaScript"], salaryBands[1].ByLang["JavaScript"], salaryBands[2].ByLang["JavaScript"])
	b.WriteString("\nStart with MDN and the freeCodeCamp frontend track; both are free.\n")
	return b.String()
}

func (c *Client) answerResources(string) string {
	var b strings.Builder
	b.WriteString("Quality learning resources\n\nFree course platforms:\n")
	for _, platform := range coursesByPlatform {
		fmt.Fprintf(&b, "\n%s:\n", platform.Platform)
		for _, course := range platform.Courses {
			fmt.Fprintf(&b, "- %s (%s students, rated %.1f/5.0)\n", course.Title, course.Students, course.Rating)
		}
	}

	b.WriteString("\nFree books:\n")
	for _, lang := range []string{"Python", "JavaScript"} {
		fmt.Fprintf(&b, "\n%s:\n", lang)
		for _, bk := range booksByLanguage[lang][:2] {
			fmt.Fprintf(&b, "- %s by %s, free online\n", bk.Title, bk.Author)
		}
	}

	b.WriteString("\nHow to use them:\n1. Start from official docs for correct fundamentals\n" +
		"2. Follow a structured free course\n3. Go deeper with open books\n4. Build things, constantly\n")
	return b.String()
}

func (c *Client) answerSalary(string) string {
	var b strings.Builder
	b.WriteString("Engineering salary reference (public data)\n\nMonthly bands by language:\n")
	for _, band := range salaryBands {
		fmt.Fprintf(&b, "\n%s engineers:\n", band.Level)
		for _, lang := range []string{"Python", "Java", "JavaScript", "Go"} {
			fmt.Fprintf(&b, "- %s: %s\n", lang, band.ByLang[lang])
		}
	}
	b.WriteString("\nWhat moves the number:\n1. Stack demand (Python and Go run hot)\n" +
		"2. Cost of living in the hiring market\n3. Company size and sector\n4. Depth of project experience\n")
	return b.String()
}

func (c *Client) answerTrends(string) string {
	var b strings.Builder
	b.WriteString("Technology trend snapshot\n\nLanguages:\n")
	for _, lang := range trendingLanguages {
		fmt.Fprintf(&b, "- %s: demand growth %d%%, demand level %s\n", lang.Name, lang.Growth, lang.Demand)
	}
	b.WriteString("\nFrameworks and tools:\n")
	for _, fw := range trendingFrameworks {
		fmt.Fprintf(&b, "- %s: %d%% usage, %s\n", fw.Name, fw.Usage, fw.Trend)
	}
	b.WriteString("\nHot directions:\n1. AI and machine learning (Python-led)\n" +
		"2. Cloud native and microservices (Go, Java)\n3. Full-stack JavaScript\n4. Cross-platform mobile\n")
	return b.String()
}

func (c *Client) answerGeneral(question string) string {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(question))))
	return generalAnswers[int(h.Sum32())%len(generalAnswers)]
}

// Analysis is the completion-rate tiered study report shown on the
// assistant page.
type Analysis struct {
	Efficiency     string   `json:"efficiency"`
	Suggestions    []string `json:"suggestions"`
	PredictedScore int      `json:"predicted_score"`
	Encouragement  string   `json:"encouragement"`
}

// AnalyzeLearning tiers a task completion rate (0-100) into an efficiency
// verdict with matching suggestions.
func (c *Client) AnalyzeLearning(completionRate float64) Analysis {
	switch {
	case completionRate >= 80:
		return Analysis{
			Efficiency:     "excellent",
			Suggestions:    []string{"keep the current pace", "raise the difficulty", "contribute to open source"},
			PredictedScore: 90,
			Encouragement:  "Keep it up, a little progress every day adds up.",
		}
	case completionRate >= 60:
		return Analysis{
			Efficiency:     "good",
			Suggestions:    []string{"tighten your schedule", "add project practice", "review systematically"},
			PredictedScore: 75,
			Encouragement:  "Keep it up, a little progress every day adds up.",
		}
	case completionRate >= 40:
		return Analysis{
			Efficiency:     "fair",
			Suggestions:    []string{"plan in detail", "cut distractions", "ask for help sooner"},
			PredictedScore: 60,
			Encouragement:  "Keep it up, a little progress every day adds up.",
		}
	default:
		return Analysis{
			Efficiency:     "needs work",
			Suggestions:    []string{"set small goals", "build a study habit", "find what motivates you"},
			PredictedScore: 45,
			Encouragement:  "Start small and build from there.",
		}
	}
}
