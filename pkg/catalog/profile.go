package catalog

type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type WorkflowStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Profile struct {
	Name     string         `json:"name"`
	Role     string         `json:"role"`
	Tagline  string         `json:"tagline"`
	Summary  string         `json:"summary"`
	Bio      []string       `json:"bio"`
	Skills   []SkillGroup   `json:"skills"`
	Workflow []WorkflowStep `json:"workflow"`
}

var profile = Profile{
	Name:    "James Worth",
	Role:    "Senior Full Stack Developer",
	Tagline: "I develop scalable web applications using modern AI-assisted workflows, with a passion for blockchain technology.",
	Summary: "I'm a senior full-stack developer with over 8 years of experience building scalable web applications, mobile apps, and blockchain solutions.",
	Bio: []string{
		"My journey in software development started with a curiosity about how things work. Today, I specialize in building full-stack applications that leverage cutting-edge technologies to solve real-world problems.",
		"I'm particularly passionate about the intersection of blockchain technology and traditional software development, as well as integrating AI capabilities to create more intelligent and user-friendly applications.",
		"When I'm not coding, you can find me contributing to open-source projects, exploring new technologies, or sharing knowledge with the developer community.",
	},
	Skills: []SkillGroup{
		{Category: "Frontend", Items: []string{"React", "TypeScript", "Next.js", "Tailwind CSS", "React Native"}},
		{Category: "Backend", Items: []string{"Node.js", "Python", "PostgreSQL", "MongoDB", "GraphQL"}},
		{Category: "Blockchain", Items: []string{"Solidity", "Hardhat", "ethers.js", "The Graph", "IPFS"}},
		{Category: "AI/ML", Items: []string{"LangChain", "OpenAI API", "TensorFlow", "RAG", "Prompt Engineering"}},
		{Category: "DevOps", Items: []string{"Docker", "AWS", "Vercel", "GitHub Actions", "Terraform"}},
	},
	Workflow: []WorkflowStep{
		{Title: "Code Generation", Description: "Using AI assistants for boilerplate, repetitive patterns, and exploring solutions"},
		{Title: "Code Review", Description: "AI-powered analysis for security vulnerabilities and optimization opportunities"},
		{Title: "Documentation", Description: "Generating and maintaining comprehensive documentation with AI assistance"},
		{Title: "Testing", Description: "AI-assisted test generation and edge case identification"},
	},
}

// Me returns the site owner's profile.
func Me() Profile {
	return profile
}
