package db

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// SeedCounts reports how many documents each collection received.
type SeedCounts struct {
	Content     int `json:"contentCount"`
	Projects    int `json:"projectsCount"`
	Skills      int `json:"skillsCount"`
	Experiences int `json:"experiencesCount"`
}

// Seed destructively replaces all four collections with the sample dataset.
// The collections are independent, so they are reset concurrently; there is
// no cross-collection transaction.
func Seed(ctx context.Context, s Store) (SeedCounts, error) {
	content := SeedContent()
	projects := SeedProjects()
	skills := SeedSkills()
	experiences := SeedExperiences()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.ResetContent(ctx, content) })
	g.Go(func() error { return s.ResetProjects(ctx, projects) })
	g.Go(func() error { return s.ResetSkills(ctx, skills) })
	g.Go(func() error { return s.ResetExperiences(ctx, experiences) })
	if err := g.Wait(); err != nil {
		return SeedCounts{}, fmt.Errorf("failed to seed database: %w", err)
	}

	return SeedCounts{
		Content:     len(content),
		Projects:    len(projects),
		Skills:      len(skills),
		Experiences: len(experiences),
	}, nil
}

// SeedContent returns the sample content rows.
func SeedContent() []ContentItem {
	return []ContentItem{
		// Hero section
		{Section: SectionHero, Key: "name", Value: "Siraphop Sangkrit", Type: TypeText},
		{Section: SectionHero, Key: "title", Value: "Full Stack Developer", Type: TypeText},
		{Section: SectionHero, Key: "subtitle", Value: "& UI/UX Designer", Type: TypeText},
		{Section: SectionHero, Key: "description", Value: "I create beautiful, functional, and user-centered digital experiences. Passionate about clean code and innovative solutions.", Type: TypeText},

		// About section
		{Section: SectionAbout, Key: "title", Value: "About Me", Type: TypeText},
		{Section: SectionAbout, Key: "subtitle", Value: "I'm a passionate developer with expertise in modern web technologies and a keen eye for design.", Type: TypeText},
		{Section: SectionAbout, Key: "story", Value: "With over 3 years of experience in web development, I specialize in creating responsive, user-friendly applications using modern frameworks and technologies. I believe in writing clean, maintainable code and creating intuitive user experiences that solve real-world problems.", Type: TypeText},
		{Section: SectionAbout, Key: "technologies", Value: []string{"React", "Next.js", "TypeScript", "Node.js", "Python", "Docker"}, Type: TypeArray},
		{Section: SectionAbout, Key: "facts", Value: []string{"3+ years of experience", "20+ projects completed", "Always learning new technologies", "Open source contributor"}, Type: TypeArray},

		// Contact section
		{Section: SectionContact, Key: "title", Value: "Get In Touch", Type: TypeText},
		{Section: SectionContact, Key: "subtitle", Value: "I'm always open to discussing new opportunities and interesting projects.", Type: TypeText},
		{Section: SectionContact, Key: "email", Value: "your.email@example.com", Type: TypeText},
		{Section: SectionContact, Key: "linkedin", Value: "linkedin.com/in/yourprofile", Type: TypeText},
		{Section: SectionContact, Key: "github", Value: "github.com/yourusername", Type: TypeText},
		{Section: SectionContact, Key: "location", Value: "Bangkok, Thailand", Type: TypeText},
	}
}

// SeedProjects returns the sample projects.
func SeedProjects() []Project {
	return []Project{
		{
			Title:        "E-commerce Platform",
			Description:  "A full-stack e-commerce solution with React, Node.js, and PostgreSQL. Features include user authentication, product catalog, shopping cart, and payment integration.",
			Technologies: []string{"React", "Node.js", "PostgreSQL", "Stripe", "Docker"},
			Featured:     true,
			Order:        1,
			DemoURL:      "#",
			CodeURL:      "#",
		},
		{
			Title:        "Task Management App",
			Description:  "A collaborative task management application with real-time updates using Socket.io. Users can create projects, assign tasks, and track progress.",
			Technologies: []string{"Next.js", "Socket.io", "MongoDB", "TypeScript"},
			Featured:     true,
			Order:        2,
			DemoURL:      "#",
			CodeURL:      "#",
		},
		{
			Title:        "Portfolio Website",
			Description:  "A responsive portfolio website with dark mode, smooth animations, and content management system. Built with modern web technologies.",
			Technologies: []string{"Next.js", "TypeScript", "Tailwind CSS", "MongoDB"},
			Featured:     true,
			Order:        3,
			DemoURL:      "#",
			CodeURL:      "#",
		},
	}
}

// SeedSkills returns the sample skills: 10 frontend, 10 backend, 9 tools.
func SeedSkills() []Skill {
	return []Skill{
		// Frontend
		{Name: "React", Category: CategoryFrontend, Level: 9, Order: 1},
		{Name: "Next.js", Category: CategoryFrontend, Level: 8, Order: 2},
		{Name: "Vue.js", Category: CategoryFrontend, Level: 7, Order: 3},
		{Name: "TypeScript", Category: CategoryFrontend, Level: 8, Order: 4},
		{Name: "JavaScript", Category: CategoryFrontend, Level: 9, Order: 5},
		{Name: "HTML5", Category: CategoryFrontend, Level: 10, Order: 6},
		{Name: "CSS3", Category: CategoryFrontend, Level: 9, Order: 7},
		{Name: "Tailwind CSS", Category: CategoryFrontend, Level: 8, Order: 8},
		{Name: "Sass/SCSS", Category: CategoryFrontend, Level: 7, Order: 9},
		{Name: "Framer Motion", Category: CategoryFrontend, Level: 7, Order: 10},

		// Backend
		{Name: "Node.js", Category: CategoryBackend, Level: 8, Order: 1},
		{Name: "Express.js", Category: CategoryBackend, Level: 8, Order: 2},
		{Name: "PHP", Category: CategoryBackend, Level: 7, Order: 3},
		{Name: "Laravel", Category: CategoryBackend, Level: 6, Order: 4},
		{Name: "Python", Category: CategoryBackend, Level: 6, Order: 5},
		{Name: "MongoDB", Category: CategoryBackend, Level: 7, Order: 6},
		{Name: "PostgreSQL", Category: CategoryBackend, Level: 7, Order: 7},
		{Name: "MySQL", Category: CategoryBackend, Level: 8, Order: 8},
		{Name: "Redis", Category: CategoryBackend, Level: 6, Order: 9},
		{Name: "GraphQL", Category: CategoryBackend, Level: 6, Order: 10},

		// Tools & DevOps
		{Name: "Git", Category: CategoryTools, Level: 9, Order: 1},
		{Name: "GitHub", Category: CategoryTools, Level: 9, Order: 2},
		{Name: "VS Code", Category: CategoryTools, Level: 10, Order: 3},
		{Name: "Docker", Category: CategoryTools, Level: 7, Order: 4},
		{Name: "AWS", Category: CategoryTools, Level: 6, Order: 5},
		{Name: "Vercel", Category: CategoryTools, Level: 8, Order: 6},
		{Name: "Netlify", Category: CategoryTools, Level: 7, Order: 7},
		{Name: "Figma", Category: CategoryTools, Level: 8, Order: 8},
		{Name: "Postman", Category: CategoryTools, Level: 8, Order: 9},
	}
}

// SeedExperiences returns the sample work history.
func SeedExperiences() []Experience {
	end2022 := time.Date(2022, 5, 31, 0, 0, 0, 0, time.UTC)
	end2020 := time.Date(2020, 2, 28, 0, 0, 0, 0, time.UTC)

	return []Experience{
		{
			Company:      "Tech Solutions Inc.",
			Position:     "Senior Full Stack Developer",
			Description:  "Led development of scalable web applications using React, Node.js, and PostgreSQL. Mentored junior developers and implemented CI/CD pipelines.",
			StartDate:    time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
			Current:      true,
			Location:     "Bangkok, Thailand",
			Technologies: []string{"React", "Node.js", "PostgreSQL", "Docker", "AWS"},
			Achievements: []string{
				"Increased application performance by 40%",
				"Led team of 5 developers",
				"Implemented automated testing reducing bugs by 60%",
			},
			Order: 1,
		},
		{
			Company:      "Digital Agency Co.",
			Position:     "Full Stack Developer",
			Description:  "Developed responsive web applications and e-commerce platforms for various clients. Collaborated with design teams to implement pixel-perfect UIs.",
			StartDate:    time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      &end2022,
			Location:     "Bangkok, Thailand",
			Technologies: []string{"Vue.js", "Laravel", "MySQL", "Git"},
			Achievements: []string{
				"Delivered 15+ client projects on time",
				"Improved code quality standards",
				"Reduced development time by 30%",
			},
			Order: 2,
		},
		{
			Company:      "StartUp Innovations",
			Position:     "Junior Developer",
			Description:  "Built web applications from concept to deployment. Learned modern development practices and agile methodologies.",
			StartDate:    time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      &end2020,
			Location:     "Bangkok, Thailand",
			Technologies: []string{"JavaScript", "PHP", "HTML", "CSS", "Bootstrap"},
			Achievements: []string{
				"Successfully completed first commercial project",
				"Learned full development lifecycle",
				"Contributed to 10+ features",
			},
			Order: 3,
		},
	}
}
