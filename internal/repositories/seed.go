package repositories

import (
	"github.com/maxaizer/talenthub/internal/entities"
)

func mustDate(s string) entities.Date {
	date, err := entities.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return date
}

func deadline(s string) *entities.Date {
	date := mustDate(s)
	return &date
}

// DefaultUsers is the roster used when no roster has been stored yet.
func DefaultUsers() []entities.User {
	return []entities.User{
		{
			ID:           "c1",
			Name:         "John Doe",
			Email:        "john@example.com",
			Role:         entities.RoleCandidate,
			ResumeText:   "Experienced React developer with 5 years in TypeScript and UI design.",
			Location:     "Pune, MH",
			Phone:        "+91 9876543210",
			Education:    []entities.Education{{School: "IIT Bombay", Degree: "B.Tech CS", Year: "2018"}},
			Experience:   []entities.Experience{{Company: "TCS", Role: "Software Engineer", Duration: "2018-2022"}},
			Certificates: []string{"AWS Developer Associate", "React Specialist"},
			Bio:          "Passionate about building scalable frontend architectures and user-centric designs.",
			Socials: &entities.SocialLinks{
				LinkedIn: "https://linkedin.com/in/johndoe",
				GitHub:   "https://github.com/johndoe",
			},
		},
		{
			ID:          "r1",
			Name:        "Jane Recruiter",
			Email:       "jane@techflow.com",
			Role:        entities.RoleRecruiter,
			CompanyName: "TechFlow",
		},
	}
}

// DefaultJobs is the job board used when no jobs have been stored yet.
func DefaultJobs() []entities.Job {
	return []entities.Job{
		{
			ID: "mnc-1", Title: "Senior Software Engineer (L5)", Company: "Google India",
			Location: "Bangalore, KA", Field: "Software Engineering", ExperienceLevel: entities.LevelSenior,
			Description:  "Work on Google Cloud Platform (GCP) or Search infrastructure. Build scalable systems that power millions of users.",
			Requirements: []string{"Java", "Distributed Systems", "Go", "Kubernetes"},
			RecruiterID:  "r1", PostedAt: mustDate("2024-03-01"), Deadline: deadline("2025-12-31"), Salary: "₹45L - ₹75L",
		},
		{
			ID: "mnc-2", Title: "Cloud Support Architect", Company: "Amazon Web Services (AWS)",
			Location: "Hyderabad, TS", Field: "Cloud Computing", ExperienceLevel: entities.LevelMid,
			Description:  "Help enterprise customers migrate to the cloud. Architect highly available and fault-tolerant solutions.",
			Requirements: []string{"AWS", "Networking", "Python", "Linux Administration"},
			RecruiterID:  "r2", PostedAt: mustDate("2024-03-05"), Salary: "₹25L - ₹40L",
		},
		{
			ID: "mnc-3", Title: "Research Scientist - AI/ML", Company: "Microsoft Research",
			Location: "Noida, UP", Field: "Artificial Intelligence", ExperienceLevel: entities.LevelSenior,
			Description:  "Contributing to state-of-the-art research in Natural Language Processing and Generative AI.",
			Requirements: []string{"PyTorch", "PhD in CS/Math", "LLMs", "Research Publications"},
			RecruiterID:  "r1", PostedAt: mustDate("2024-02-15"), Salary: "₹55L - ₹90L",
		},
		{
			ID: "mnc-4", Title: "React Frontend Developer", Company: "TCS (Tata Consultancy Services)",
			Location: "Pune, MH", Field: "Software Engineering", ExperienceLevel: entities.LevelEntry,
			Description:  "Develop responsive web applications for international banking clients using modern React patterns.",
			Requirements: []string{"React", "JavaScript", "HTML5/CSS3", "Agile"},
			RecruiterID:  "r3", PostedAt: mustDate("2024-03-10"), Salary: "₹6L - ₹12L",
		},
		{
			ID: "mnc-5", Title: "Full Stack Engineer", Company: "Infosys",
			Location: "Mysore, KA", Field: "Software Engineering", ExperienceLevel: entities.LevelMid,
			Description:  "Join our digital transformation team working on global e-commerce platforms.",
			Requirements: []string{"Spring Boot", "Angular", "PostgreSQL", "Microservices"},
			RecruiterID:  "r3", PostedAt: mustDate("2024-03-12"), Salary: "₹12L - ₹22L",
		},
		{
			ID: "mnc-6", Title: "Data Engineer", Company: "Walmart Global Tech",
			Location: "Chennai, TN", Field: "Data Science", ExperienceLevel: entities.LevelMid,
			Description:  "Optimize the world's largest retail supply chain using Spark and Hadoop ecosystems.",
			Requirements: []string{"Apache Spark", "Scala", "Hadoop", "SQL"},
			RecruiterID:  "r2", PostedAt: mustDate("2024-03-08"), Salary: "₹28L - ₹45L",
		},
		{
			ID: "st-1", Title: "Mobile Engineer (iOS/Android)", Company: "Zomato",
			Location: "Gurgaon, HR", Field: "Mobile Development", ExperienceLevel: entities.LevelMid,
			Description:  "Craft the perfect food delivery experience. Optimize app performance for millions of daily active users.",
			Requirements: []string{"React Native", "Swift", "Kotlin", "Redux"},
			RecruiterID:  "r4", PostedAt: mustDate("2024-03-15"), Deadline: deadline("2025-05-01"), Salary: "₹30L - ₹50L",
		},
		{
			ID: "st-2", Title: "Backend Platform Engineer", Company: "Swiggy",
			Location: "Bangalore, KA", Field: "Software Engineering", ExperienceLevel: entities.LevelSenior,
			Description:  "Solve complex logistics and real-time tracking problems at scale.",
			Requirements: []string{"Java", "Golang", "Redis", "Kafka"},
			RecruiterID:  "r4", PostedAt: mustDate("2024-03-14"), Salary: "₹40L - ₹65L",
		},
		{
			ID: "st-3", Title: "Product Designer (UX/UI)", Company: "Zerodha",
			Location: "Bangalore, KA", Field: "Design", ExperienceLevel: entities.LevelSenior,
			Description:  "Design the future of retail trading in India. Focus on simplicity and lightning-fast interfaces.",
			Requirements: []string{"Figma", "User Research", "Typography", "Prototyping"},
			RecruiterID:  "r5", PostedAt: mustDate("2024-03-11"), Salary: "₹35L - ₹55L",
		},
		{
			ID: "st-4", Title: "Security Engineer", Company: "Razorpay",
			Location: "Bangalore, KA", Field: "Software Engineering", ExperienceLevel: entities.LevelMid,
			Description:  "Ensure the safety of millions of transactions. Perform audits, penetration testing, and build secure systems.",
			Requirements: []string{"Pentesting", "OAuth", "Network Security", "Python"},
			RecruiterID:  "r5", PostedAt: mustDate("2024-03-09"), Salary: "₹32L - ₹48L",
		},
		{
			ID: "st-5", Title: "Machine Learning Engineer", Company: "Ola Electric",
			Location: "Bangalore, KA", Field: "Artificial Intelligence", ExperienceLevel: entities.LevelMid,
			Description:  "Develop autonomous driving features and battery optimization algorithms for our EVs.",
			Requirements: []string{"Computer Vision", "PyTorch", "C++", "Control Systems"},
			RecruiterID:  "r6", PostedAt: mustDate("2024-02-28"), Salary: "₹25L - ₹45L",
		},
		{
			ID: "st-6", Title: "Frontend Lead", Company: "CRED",
			Location: "Bangalore, KA", Field: "Software Engineering", ExperienceLevel: entities.LevelLead,
			Description:  "Lead the frontend team to build high-fidelity, aesthetic financial management tools.",
			Requirements: []string{"Next.js", "Framer Motion", "Tailwind", "Performance Optimization"},
			RecruiterID:  "r6", PostedAt: mustDate("2024-03-16"), Salary: "₹50L - ₹80L",
		},
		{
			ID: "st-7", Title: "Software Development Engineer", Company: "Flipkart",
			Location: "Bangalore, KA", Field: "Software Engineering", ExperienceLevel: entities.LevelEntry,
			Description:  "Perfect role for top university graduates. Build features for Big Billion Days.",
			Requirements: []string{"Data Structures", "Algorithms", "Java", "Python"},
			RecruiterID:  "r7", PostedAt: mustDate("2024-03-02"), Salary: "₹18L - ₹24L",
		},
		{
			ID: "st-8", Title: "Growth Marketing Manager", Company: "Paytm",
			Location: "Noida, UP", Field: "Marketing", ExperienceLevel: entities.LevelMid,
			Description:  "Drive user acquisition and retention for our digital payments and lending products.",
			Requirements: []string{"Digital Marketing", "Retention Metrics", "A/B Testing", "SQL"},
			RecruiterID:  "r7", PostedAt: mustDate("2024-03-18"), Salary: "₹20L - ₹35L",
		},
		{
			ID: "st-9", Title: "Product Developer", Company: "Zoho Corporation",
			Location: "Chennai, TN", Field: "Software Engineering", ExperienceLevel: entities.LevelMid,
			Description:  "Build SaaS products that compete on a global scale. We value coding craftsmanship.",
			Requirements: []string{"Java", "Object Oriented Design", "C", "Problem Solving"},
			RecruiterID:  "r8", PostedAt: mustDate("2024-02-20"), Salary: "₹15L - ₹30L",
		},
		{
			ID: "st-10", Title: "QA Automation Engineer", Company: "Groww",
			Location: "Bangalore, KA", Field: "Software Engineering", ExperienceLevel: entities.LevelMid,
			Description:  "Build automated test suites for our investment platform. Zero-tolerance for bugs.",
			Requirements: []string{"Selenium", "Cypress", "Appium", "Java"},
			RecruiterID:  "r8", PostedAt: mustDate("2024-03-20"), Salary: "₹18L - ₹28L",
		},
	}
}
