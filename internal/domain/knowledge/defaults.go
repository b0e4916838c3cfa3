package knowledge

import "time"

// Default returns the document materialized when no knowledge file exists.
func Default() Document {
	return Document{
		Profile: Profile{
			Name:      "Onkar Arjun Mundhe",
			Title:     "Data and DevOps Intern",
			Education: "Pursuing Master's in Computer Science at Northeastern University",
			Location:  "Boston, MA",
			About:     "Passionate about data engineering, cloud technologies, and building scalable applications.",
		},
		Skills: []SkillCategory{
			{Category: "Programming", Items: []SkillItem{
				{ID: 1, Name: "Python", Proficiency: 5, Icon: "fab fa-python", Description: "Data processing, APIs, and automation"},
				{ID: 2, Name: "JavaScript", Proficiency: 4, Icon: "fab fa-js", Description: "Web development, frontend and Node.js"},
				{ID: 3, Name: "Java", Proficiency: 3, Icon: "fab fa-java"},
				{ID: 4, Name: "SQL", Proficiency: 4, Icon: "fas fa-database", Description: "Database design and complex queries"},
				{ID: 5, Name: "C++", Proficiency: 3, Icon: "fas fa-code", Description: "System programming and embedded applications"},
			}},
			{Category: "Web Development", Items: []SkillItem{
				{ID: 6, Name: "React", Proficiency: 4, Icon: "fab fa-react", Description: "Building interactive user interfaces"},
				{ID: 7, Name: "Node.js", Proficiency: 4, Icon: "fab fa-node-js", Description: "Server-side JavaScript applications"},
				{ID: 8, Name: "FastAPI", Proficiency: 4, Icon: "fas fa-bolt"},
				{ID: 9, Name: "HTML/CSS", Proficiency: 4, Icon: "fab fa-html5", Description: "Responsive and accessible web interfaces"},
			}},
			{Category: "Data Engineering", Items: []SkillItem{
				{ID: 10, Name: "Pandas", Proficiency: 4},
				{ID: 11, Name: "NumPy", Proficiency: 4},
				{ID: 12, Name: "Spark", Proficiency: 3},
				{ID: 13, Name: "Hadoop", Proficiency: 2},
			}},
			{Category: "DevOps", Items: []SkillItem{
				{ID: 14, Name: "Docker", Proficiency: 4, Icon: "fab fa-docker", Description: "Container creation and orchestration"},
				{ID: 15, Name: "Kubernetes", Proficiency: 3},
				{ID: 16, Name: "CI/CD", Proficiency: 4, Icon: "fas fa-sync-alt", Description: "Automated testing and deployment pipelines"},
				{ID: 17, Name: "AWS", Proficiency: 3, Icon: "fab fa-aws"},
				{ID: 18, Name: "Azure", Proficiency: 3},
			}},
		},
		Projects: []Project{
			{
				ID:           1,
				Title:        "Portfolio Website",
				Description:  "A personal portfolio website built with React and FastAPI",
				Technologies: []string{"React", "FastAPI", "Docker", "PostgreSQL"},
				StartDate:    NewDate(2024, time.January, 15),
				IsFeatured:   true,
			},
			{
				ID:           2,
				Title:        "Data Pipeline Automation",
				Description:  "Automated ETL pipeline for processing large datasets",
				Technologies: []string{"Python", "Apache Airflow", "AWS S3", "Redshift"},
				StartDate:    NewDate(2023, time.June, 1),
				EndDate:      NewDate(2023, time.December, 31),
				IsFeatured:   true,
			},
			{
				ID:           3,
				Title:        "Cloud-Native Application",
				Description:  "Microservices-based application deployed on Kubernetes",
				Technologies: []string{"Docker", "Kubernetes", "Go", "MongoDB"},
			},
		},
		FAQs: []FAQ{
			{
				Question: "What are your main skills?",
				Answer:   "My main skills include Python, JavaScript, React, FastAPI, Docker, and cloud technologies like AWS and Azure.",
			},
			{
				Question: "What is your educational background?",
				Answer:   "I'm pursuing a Master's degree in Computer Science at Northeastern University.",
			},
			{
				Question: "What kind of projects have you worked on?",
				Answer:   "I've worked on web applications, data engineering projects, and cloud-native applications using technologies like React, FastAPI, Docker, and various cloud services.",
			},
			{
				Question: "Are you available for hire?",
				Answer:   "I'm currently working as a Data and DevOps Intern, but I'm open to discussing new opportunities. Feel free to contact me through the contact form.",
			},
		},
	}
}
