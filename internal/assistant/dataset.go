package assistant

// Embedded knowledge base the responder answers from. Static by design:
// replies are assembled from these records, never fetched from a model API.

type book struct {
	Title      string
	Author     string
	Year       int
	Pages      int
	URL        string
	Difficulty string
	Rating     float64
	Blurb      string
}

type course struct {
	Title    string
	Platform string
	Duration string
	Students string
	URL      string
	Rating   float64
}

type learningPath struct {
	Beginner     []string
	Intermediate []string
	Advanced     []string
	Timeline     string
	Projects     []string
}

type languageTrend struct {
	Name   string
	Growth int // year-over-year demand growth, percent
	Demand string
}

type frameworkTrend struct {
	Name  string
	Usage int // percent of surveyed teams
	Trend string
}

var booksByLanguage = map[string][]book{
	"Python": {
		{
			Title:      "Python Crash Course, 3rd Edition",
			Author:     "Eric Matthes",
			Year:       2023,
			Pages:      544,
			URL:        "https://ehmatthes.github.io/pcc_3e/",
			Difficulty: "Beginner",
			Rating:     4.8,
			Blurb:      "No Starch Press bestseller, over a million copies sold",
		},
		{
			Title:      "Automate the Boring Stuff with Python, 2nd Edition",
			Author:     "Al Sweigart",
			Year:       2019,
			Pages:      592,
			URL:        "https://automatetheboringstuff.com/",
			Difficulty: "Beginner",
			Rating:     4.7,
			Blurb:      "Pragmatic Python, great for automation tasks",
		},
		{
			Title:      "Fluent Python, 2nd Edition",
			Author:     "Luciano Ramalho",
			Year:       2022,
			Pages:      1016,
			URL:        "https://www.oreilly.com/library/view/fluent-python-2nd/9781492056348/",
			Difficulty: "Advanced",
			Rating:     4.9,
			Blurb:      "Deep dive into Python's advanced features",
		},
	},
	"JavaScript": {
		{
			Title:      "Eloquent JavaScript, 4th Edition",
			Author:     "Marijn Haverbeke",
			Year:       2024,
			Pages:      472,
			URL:        "https://eloquentjavascript.net/",
			Difficulty: "Intermediate",
			Rating:     4.8,
			Blurb:      "The most popular free JavaScript book",
		},
		{
			Title:      "You Don't Know JS Yet",
			Author:     "Kyle Simpson",
			Year:       2020,
			Pages:      280,
			URL:        "https://github.com/getify/You-Dont-Know-JS",
			Difficulty: "Advanced",
			Rating:     4.9,
			Blurb:      "Core JavaScript concepts in depth",
		},
	},
}

var coursesByPlatform = []struct {
	Platform string
	Courses  []course
}{
	{
		Platform: "freeCodeCamp",
		Courses: []course{
			{
				Title:    "Scientific Computing with Python",
				Duration: "300 hours",
				Students: "2,500,000+",
				URL:      "https://www.freecodecamp.org/learn/scientific-computing-with-python/",
				Rating:   4.9,
			},
			{
				Title:    "Front End Development Libraries",
				Duration: "300 hours",
				Students: "1,800,000+",
				URL:      "https://www.freecodecamp.org/learn/front-end-development-libraries/",
				Rating:   4.8,
			},
		},
	},
	{
		Platform: "Coursera",
		Courses: []course{
			{
				Title:    "Python for Everybody",
				Duration: "8 months",
				Students: "2,800,000+",
				URL:      "https://www.coursera.org/specializations/python",
				Rating:   4.8,
			},
			{
				Title:    "Machine Learning",
				Duration: "11 months",
				Students: "4,500,000+",
				URL:      "https://www.coursera.org/learn/machine-learning",
				Rating:   4.9,
			},
		},
	},
}

var learningPaths = map[string]learningPath{
	"Python": {
		Beginner:     []string{"syntax basics", "data types", "control flow", "functions", "file handling"},
		Intermediate: []string{"object-oriented programming", "error handling", "modules and packages", "testing", "calling APIs"},
		Advanced:     []string{"concurrency", "metaprogramming", "performance tuning", "framework internals", "system design"},
		Timeline:     "3-6 months",
		Projects:     []string{"web scraper", "web application", "data analysis", "automation scripts", "API service"},
	},
	"Frontend": {
		Beginner:     []string{"HTML5", "CSS3", "JavaScript basics", "responsive design", "Git"},
		Intermediate: []string{"ES6+", "TypeScript", "React or Vue", "state management", "build tooling"},
		Advanced:     []string{"performance optimization", "security best practices", "SSR and SSG", "PWA", "micro frontends"},
		Timeline:     "4-8 months",
		Projects:     []string{"personal blog", "storefront", "admin dashboard", "mobile app", "component library"},
	},
}

var trendingLanguages = []languageTrend{
	{Name: "Python", Growth: 25, Demand: "high"},
	{Name: "JavaScript", Growth: 18, Demand: "high"},
	{Name: "TypeScript", Growth: 45, Demand: "medium-high"},
	{Name: "Go", Growth: 32, Demand: "medium"},
	{Name: "Rust", Growth: 28, Demand: "medium"},
}

var trendingFrameworks = []frameworkTrend{
	{Name: "React", Usage: 42, Trend: "steady"},
	{Name: "Vue.js", Usage: 33, Trend: "rising"},
	{Name: "Next.js", Usage: 28, Trend: "rising fast"},
	{Name: "Spring Boot", Usage: 35, Trend: "steady"},
	{Name: "Django", Usage: 22, Trend: "rising"},
}

var salaryBands = []struct {
	Level  string
	ByLang map[string]string
}{
	{Level: "Junior", ByLang: map[string]string{
		"Python": "$55k-75k", "Java": "$58k-78k", "JavaScript": "$55k-75k", "Go": "$65k-90k",
	}},
	{Level: "Mid", ByLang: map[string]string{
		"Python": "$75k-110k", "Java": "$78k-115k", "JavaScript": "$75k-110k", "Go": "$90k-130k",
	}},
	{Level: "Senior", ByLang: map[string]string{
		"Python": "$110k-160k+", "Java": "$115k-160k+", "JavaScript": "$110k-160k+", "Go": "$130k-180k+",
	}},
}

var generalAnswers = []string{
	"Good question! One thing the data is clear on: consistency beats intensity. " +
		"Most learners who study two hours a day reach working proficiency in a new " +
		"language within six months. Python or JavaScript are the friendliest starting " +
		"points because their communities are the largest.",
	"A few things separate effective studying from busywork:\n" +
		"1. A concrete goal\n2. A structured path\n3. Enough hands-on practice\n" +
		"4. Getting unstuck quickly\n5. Tracking progress\n\n" +
		"Try the pomodoro pattern: 25 minutes focused, 5 minutes off.",
	"On choosing resources:\n\n" +
		"Starting out: official docs and free tutorials.\n" +
		"Leveling up: authoritative books and open-source projects.\n" +
		"Job hunting: complete portfolio projects and interview prep.\n\n" +
		"Mixing several resource types works measurably better than relying on one.",
}
