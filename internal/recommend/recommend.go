// Package recommend ranks learning resources against a user's task history.
// It is pure: both inputs are already-loaded slices and nothing here touches
// the database.
package recommend

import (
	"log"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"campuspulse-backend/internal/models"
)

const (
	DefaultLimit       = 6
	DefaultFallbackMin = 3

	titleTokenPoints = 2
	keywordPoints    = 3
	categoryPoints   = 4

	// Title tokens this short ("a", "the", "for") match too much of the
	// corpus to carry signal.
	minTitleTokenLen = 4
)

// Options carries the result cap and the fallback threshold. Both default to
// the historical values (6 and 3) when zero.
type Options struct {
	Limit       int
	FallbackMin int
}

func (o Options) withDefaults() Options {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.FallbackMin <= 0 {
		o.FallbackMin = DefaultFallbackMin
	}
	return o
}

// Recommend returns at most opts.Limit resources ranked by keyword overlap
// with the user's tasks.
//
// With no tasks (cold start) it falls back to the most-viewed resources. If
// scoring leaves fewer than opts.FallbackMin survivors, the result is topped
// up with most-viewed resources not already selected. Any internal panic is
// recovered and degrades to the popularity ranking; the caller never sees an
// error from this function.
func Recommend(tasks []models.Task, catalogue []models.LearningResource, opts Options) (result []models.LearningResource) {
	opts = opts.withDefaults()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("recommend: recovered from %v, serving popularity fallback", r)
			result = mostViewed(catalogue, opts.Limit, nil)
		}
	}()

	if len(catalogue) == 0 {
		return []models.LearningResource{}
	}

	if len(tasks) == 0 {
		return mostViewed(catalogue, opts.Limit, nil)
	}

	corpus := buildCorpus(tasks)

	type scoredResource struct {
		score    int
		resource models.LearningResource
	}

	var survivors []scoredResource
	for _, res := range catalogue {
		if score := Score(res, corpus); score > 0 {
			survivors = append(survivors, scoredResource{score: score, resource: res})
		}
	}

	// Stable keeps catalogue order for equal scores.
	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].score > survivors[j].score
	})
	if len(survivors) > opts.Limit {
		survivors = survivors[:opts.Limit]
	}

	result = make([]models.LearningResource, 0, opts.Limit)
	for _, s := range survivors {
		result = append(result, s.resource)
	}

	if len(result) < opts.FallbackMin {
		selected := make(map[uuid.UUID]bool, len(result))
		for _, r := range result {
			selected[r.ID] = true
		}
		for _, r := range mostViewed(catalogue, opts.Limit, selected) {
			if len(result) >= opts.Limit {
				break
			}
			result = append(result, r)
		}
	}

	if len(result) > opts.Limit {
		result = result[:opts.Limit]
	}
	return result
}

// BuildCorpus is exported for callers that want to show or cache the match
// target; Recommend builds it internally.
func BuildCorpus(tasks []models.Task) string {
	return buildCorpus(tasks)
}

func buildCorpus(tasks []models.Task) string {
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(t.Title)
		b.WriteByte(' ')
		b.WriteString(t.Description)
		b.WriteByte(' ')
	}
	return strings.ToLower(b.String())
}

// Score computes the keyword-overlap score of one resource against a
// lowercase task corpus: 2 per title token longer than three characters found
// in the corpus, 3 per matched comma-separated keyword, 4 if the category
// label appears verbatim.
func Score(res models.LearningResource, corpus string) int {
	score := 0

	for _, token := range strings.Fields(strings.ToLower(res.Title)) {
		if utf8.RuneCountInString(token) >= minTitleTokenLen && strings.Contains(corpus, token) {
			score += titleTokenPoints
		}
	}

	for _, keyword := range strings.Split(res.Keywords, ",") {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" && strings.Contains(corpus, keyword) {
			score += keywordPoints
		}
	}

	if category := strings.ToLower(res.Category); category != "" && strings.Contains(corpus, category) {
		score += categoryPoints
	}

	return score
}

func mostViewed(catalogue []models.LearningResource, n int, exclude map[uuid.UUID]bool) []models.LearningResource {
	byViews := make([]models.LearningResource, len(catalogue))
	copy(byViews, catalogue)
	sort.SliceStable(byViews, func(i, j int) bool {
		return byViews[i].Views > byViews[j].Views
	})

	result := make([]models.LearningResource, 0, n)
	for _, r := range byViews {
		if len(result) >= n {
			break
		}
		if exclude[r.ID] {
			continue
		}
		result = append(result, r)
	}
	return result
}
