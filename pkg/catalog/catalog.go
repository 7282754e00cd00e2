// Package catalog is the site's fixed, read-only content: the project
// showcase and the profile shown on the home and about pages.
package catalog

type Category string

const (
	CategoryBlockchain Category = "blockchain"
	CategoryMobile     Category = "mobile"
	CategoryAI         Category = "ai"
	CategoryWeb        Category = "web"
)

func AllCategories() []Category {
	return []Category{CategoryBlockchain, CategoryMobile, CategoryAI, CategoryWeb}
}

func (c Category) Valid() bool {
	for _, k := range AllCategories() {
		if c == k {
			return true
		}
	}
	return false
}

type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Category        Category `json:"category"`
	Technologies    []string `json:"technologies"`
	ImageURL        string   `json:"imageUrl"`
	GitHubURL       string   `json:"githubUrl,omitempty"`
	LiveURL         string   `json:"liveUrl,omitempty"`
	Featured        bool     `json:"featured"`
	LiveDashboard   bool     `json:"liveDashboard"` // detail page embeds the token dashboard
}

var projects = []Project{
	{
		ID:          "defi-swap",
		Title:       "DeFi Token Sniper",
		Description: "Real-time bot that monitors Uniswap V2 for new token pairs and runs on-chain security checks to detect honeypots, high taxes, and rug pulls.",
		LongDescription: "A cryptocurrency sniping bot that monitors Ethereum mainnet for new Uniswap V2 trading pairs in real-time. " +
			"When a new WETH pair is created, the bot runs parallel on-chain security checks including liquidity verification, " +
			"LP burn status, owner/deployer token holdings, and buy/sell tax simulation to detect honeypots. All checks complete " +
			"in under 300ms with no external API dependencies.",
		Category:      CategoryBlockchain,
		Technologies:  []string{"Node.js", "ethers.js", "WebSocket", "Uniswap V2", "TypeScript"},
		ImageURL:      "/placeholder-blockchain.jpg",
		GitHubURL:     "https://github.com/jnworth/sniperbot",
		Featured:      true,
		LiveDashboard: true,
	},
	{
		ID:          "fitness-tracker",
		Title:       "Stache Bookmarking App",
		Description: "Cross-platform fitness tracking app with AI-powered workout recommendations.",
		LongDescription: "A React Native fitness application that syncs with wearable devices to track workouts, " +
			"nutrition, and sleep patterns. Features an AI coach that provides personalized workout plans based on " +
			"user goals and historical performance data.",
		Category:     CategoryMobile,
		Technologies: []string{"React Native", "TypeScript", "Firebase", "TensorFlow Lite"},
		ImageURL:     "/placeholder-mobile.jpg",
		GitHubURL:    "https://github.com",
		Featured:     true,
	},
	{
		ID:          "code-assistant",
		Title:       "AI Code Review Assistant",
		Description: "LLM-powered code review tool that integrates with GitHub PRs.",
		LongDescription: "An AI-powered development tool that automatically reviews pull requests, suggesting improvements " +
			"for code quality, security vulnerabilities, and performance optimizations. Built with a custom fine-tuned model " +
			"and integrates seamlessly into existing CI/CD pipelines.",
		Category:     CategoryAI,
		Technologies: []string{"Python", "FastAPI", "LangChain", "OpenAI API", "GitHub API"},
		ImageURL:     "/placeholder-ai.jpg",
		GitHubURL:    "https://github.com",
		LiveURL:      "https://example.com",
		Featured:     true,
	},
}

// All returns every project in showcase order. Callers get their own copy.
func All() []Project {
	out := make([]Project, len(projects))
	copy(out, projects)
	return out
}

func ByID(id string) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

func Featured() []Project {
	return filter(func(p Project) bool { return p.Featured })
}

func ByCategory(c Category) []Project {
	return filter(func(p Project) bool { return p.Category == c })
}

func filter(keep func(Project) bool) []Project {
	out := []Project{}
	for _, p := range projects {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
