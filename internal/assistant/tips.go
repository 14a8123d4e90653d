package assistant

import "math/rand"

// Wellness tips keyed by mood score (1 worst, 5 best).
var tipsByMood = map[int][]string{
	1: {"breathe deeply for five minutes", "put on some calming music", "talk it out with a friend", "do ten minutes of light exercise"},
	2: {"drink a glass of warm water", "take a five-minute break", "write down how you feel", "look out the window for a while"},
	3: {"keep doing what you're doing", "sketch your next goal", "reward yourself for a small win", "get a full night's sleep"},
	4: {"share the good mood", "help a classmate with a problem", "try something new", "write down what worked"},
	5: {"spread the energy", "set a more ambitious goal", "celebrate the achievement", "lift someone else up"},
}

// HealthTips returns two tips for the given mood score. Unknown scores fall
// back to the neutral bucket.
func HealthTips(moodScore int) []string {
	tips, ok := tipsByMood[moodScore]
	if !ok {
		tips = tipsByMood[3]
	}

	i := rand.Intn(len(tips))
	j := rand.Intn(len(tips) - 1)
	if j >= i {
		j++
	}
	return []string{tips[i], tips[j]}
}
