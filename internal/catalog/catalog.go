// Package catalog holds the built-in learning resource catalogue and the
// startup loader that seeds it into the store.
package catalog

import "campuspulse-backend/internal/models"

type entry struct {
	title       string
	url         string
	description string
	category    string
	keywords    string
}

// Seed returns the built-in catalogue as resource records. IDs are left zero;
// the store assigns them on insert.
func Seed() []models.LearningResource {
	resources := make([]models.LearningResource, 0, len(entries))
	for _, e := range entries {
		resources = append(resources, models.LearningResource{
			Title:       e.title,
			URL:         e.url,
			Description: e.description,
			Category:    e.category,
			Keywords:    e.keywords,
		})
	}
	return resources
}

var entries = []entry{
	// Programming
	{"Python Official Documentation", "https://docs.python.org/3/", "The official Python language docs", "programming", "python,programming,reference"},
	{"The Java Tutorials", "https://docs.oracle.com/javase/tutorial/", "Oracle's official Java tutorial series", "programming", "java,programming,tutorial"},
	{"The Modern JavaScript Tutorial", "https://javascript.info/", "A complete modern JavaScript course", "frontend", "javascript,frontend,tutorial"},
	{"A Tour of Go", "https://go.dev/tour/", "Interactive introduction to the Go language", "programming", "go,golang,programming"},
	{"The Rust Programming Language", "https://doc.rust-lang.org/book/", "The official Rust book", "programming", "rust,systems,programming"},
	{"MDN Web Docs", "https://developer.mozilla.org/", "The authoritative web development reference", "web development", "web,html,css,javascript"},
	{"React Documentation", "https://react.dev/", "Official docs for the React framework", "frontend", "react,frontend,javascript"},
	{"Vue.js Guide", "https://vuejs.org/guide/", "The progressive JavaScript framework", "frontend", "vue,frontend,javascript"},
	{"Node.js Documentation", "https://nodejs.org/en/docs/", "Server-side JavaScript runtime docs", "backend", "node,backend,javascript"},
	{"Kaggle Learn", "https://www.kaggle.com/learn", "Free hands-on data science courses", "data science", "data,machine learning,python"},
	{"fast.ai", "https://www.fast.ai/", "Practical deep learning courses", "machine learning", "deep learning,ai,python"},
	{"Pro Git", "https://git-scm.com/doc", "The Git version control reference", "developer tools", "git,version control,tools"},
	{"Docker Getting Started", "https://docs.docker.com/get-started/", "Container basics from the source", "developer tools", "docker,containers,devops"},
	{"VS Code Docs", "https://code.visualstudio.com/docs", "Editor setup, tips and extensions", "developer tools", "editor,tools,productivity"},

	// Academics
	{"Coursera", "https://www.coursera.org/", "University courses from around the world", "online education", "courses,university,mooc"},
	{"edX", "https://www.edx.org/", "Courses from Harvard, MIT and others", "online education", "courses,university,mooc"},
	{"Khan Academy", "https://www.khanacademy.org/", "Free lessons in math, science and more", "online education", "math,science,lessons"},
	{"MIT OpenCourseWare", "https://ocw.mit.edu/", "Full MIT course materials, free", "online education", "university,lectures,courses"},
	{"Google Scholar", "https://scholar.google.com/", "Search engine for academic literature", "academic research", "papers,research,citations"},
	{"arXiv", "https://arxiv.org/", "Preprints across science and math", "academic research", "papers,research,preprints"},
	{"Anki", "https://apps.ankiweb.net/", "Spaced-repetition flashcards", "study tools", "flashcards,memory,revision"},
	{"Notion", "https://www.notion.so/", "All-in-one workspace for notes and plans", "study tools", "notes,organization,productivity"},
	{"Zotero", "https://www.zotero.org/", "Open-source reference management", "academic research", "citations,research,papers"},
	{"IELTS Official", "https://ielts.org/", "Official IELTS preparation resources", "language exams", "ielts,english,exam"},
	{"TOEFL Resources", "https://www.ets.org/toefl", "Official TOEFL test preparation", "language exams", "toefl,english,exam"},

	// Creative
	{"Figma", "https://www.figma.com/", "Collaborative interface design tool", "ui design", "design,ui,prototyping"},
	{"Canva", "https://www.canva.com/", "Quick graphic design in the browser", "graphic design", "design,graphics,templates"},
	{"Unsplash", "https://unsplash.com/", "Free high-quality photography", "photography", "photos,images,free"},
	{"Pexels Videos", "https://www.pexels.com/videos/", "Free stock video footage", "video production", "video,footage,free"},
	{"Blender Manual", "https://docs.blender.org/manual/", "Open-source 3D creation suite docs", "3d graphics", "3d,modeling,animation"},
	{"Procreate Learn", "https://procreate.art/learn", "Digital painting tutorials", "digital art", "drawing,painting,ipad"},

	// Life skills
	{"Serious Eats", "https://www.seriouseats.com/", "Technique-driven cooking guides", "cooking", "cooking,recipes,food"},
	{"BBC Good Food", "https://www.bbcgoodfood.com/", "Tested recipes and kitchen skills", "cooking", "cooking,recipes,food"},
	{"IKEA Ideas", "https://www.ikea.com/us/en/ideas/", "Home organization and small-space ideas", "home living", "home,organization,decor"},
	{"iFixit", "https://www.ifixit.com/", "Repair guides for almost everything", "repair", "repair,diy,guides"},
	{"RHS Gardening", "https://www.rhs.org.uk/advice", "Plant care and gardening advice", "gardening", "plants,gardening,care"},

	// Health
	{"Nike Training Club", "https://www.nike.com/ntc-app", "Guided workouts for any level", "fitness", "fitness,workout,training"},
	{"Yoga with Adriene", "https://yogawithadriene.com/", "Free yoga practice for all levels", "fitness", "yoga,fitness,wellness"},
	{"Headspace", "https://www.headspace.com/", "Guided meditation and mindfulness", "mental health", "meditation,mindfulness,stress"},
	{"Sleep Foundation", "https://www.sleepfoundation.org/", "Evidence-based sleep guidance", "health", "sleep,health,rest"},
	{"NHS Live Well", "https://www.nhs.uk/live-well/", "Practical everyday health advice", "health", "health,nutrition,habits"},

	// Finance
	{"Investopedia", "https://www.investopedia.com/", "Clear explanations of finance concepts", "personal finance", "investing,finance,money"},
	{"Khan Academy Finance", "https://www.khanacademy.org/economics-finance-domain", "Free personal finance lessons", "personal finance", "finance,economics,money"},
	{"Morningstar", "https://www.morningstar.com/", "Fund and stock research", "investing", "investing,funds,stocks"},
	{"IRS Tax Information", "https://www.irs.gov/", "Official tax rules and tools", "taxes", "taxes,filing,rules"},

	// Leisure
	{"Goodreads", "https://www.goodreads.com/", "Book reviews and reading lists", "reading", "books,reading,reviews"},
	{"Letterboxd", "https://letterboxd.com/", "Film logging and reviews", "film", "movies,film,reviews"},
	{"Steam", "https://store.steampowered.com/", "PC game platform", "gaming", "games,gaming,pc"},
	{"Atlas Obscura", "https://www.atlasobscura.com/", "Unusual places worth traveling to", "travel", "travel,places,exploration"},
	{"Project Gutenberg", "https://www.gutenberg.org/", "Seventy thousand free ebooks", "reading", "books,ebooks,free"},

	// Languages
	{"Duolingo", "https://www.duolingo.com/", "Gamified language lessons", "language learning", "language,vocabulary,practice"},
	{"Tandem", "https://tandem.net/", "Practice with native speakers", "language learning", "language,speaking,exchange"},
	{"Forvo", "https://forvo.com/", "Pronunciation by native speakers", "language learning", "pronunciation,language,audio"},

	// Productivity
	{"Todoist Guide", "https://todoist.com/productivity-methods", "Productivity methods explained", "productivity", "productivity,planning,methods"},
	{"Pomofocus", "https://pomofocus.io/", "Simple pomodoro timer", "productivity", "pomodoro,timer,focus"},
	{"Obsidian", "https://obsidian.md/", "Linked note-taking on local files", "study tools", "notes,knowledge,writing"},
	{"Cal Newport's Blog", "https://calnewport.com/blog/", "Essays on deep work and focus", "productivity", "focus,deep work,habits"},
}
