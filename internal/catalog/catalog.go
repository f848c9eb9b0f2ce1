package catalog

import "github.com/eduniti/ai-engine/internal/models"

// Catalog holds the static reference data the recommenders score against.
// It is built once at startup and shared read-only across all requests, so
// no locking is needed.
type Catalog struct {
	careerPathways []models.CareerPathway
	colleges       []models.College
}

// New builds the catalog with the seed data set.
func New() *Catalog {
	return &Catalog{
		careerPathways: careerPathways,
		colleges:       colleges,
	}
}

// CareerPathways returns a copy of the pathway list so callers cannot
// reorder or mutate the canonical data.
func (c *Catalog) CareerPathways() []models.CareerPathway {
	out := make([]models.CareerPathway, len(c.careerPathways))
	copy(out, c.careerPathways)
	return out
}

// Colleges returns a copy of the college list.
func (c *Catalog) Colleges() []models.College {
	out := make([]models.College, len(c.colleges))
	copy(out, c.colleges)
	return out
}

var careerPathways = []models.CareerPathway{
	{
		ID:                    "1",
		Title:                 "Software Engineer",
		Stream:                "engineering",
		EducationRequirements: []string{"B.Tech Computer Science", "M.Tech (Optional)"},
		SkillsRequired:        []string{"Programming", "Problem Solving", "Mathematics"},
		JobOpportunities:      []string{"Software Developer", "System Analyst", "Tech Lead"},
		SalaryRange:           models.SalaryRange{Min: 400000, Max: 2000000, Currency: "INR"},
		GrowthProspects:       "High demand in IT sector with excellent growth opportunities",
		RelatedExams:          []string{"GATE", "JEE Advanced", "Company-specific tests"},
	},
	{
		ID:                    "2",
		Title:                 "Doctor",
		Stream:                "medical",
		EducationRequirements: []string{"MBBS", "MD/MS (Specialization)"},
		SkillsRequired:        []string{"Medical Knowledge", "Empathy", "Problem Solving"},
		JobOpportunities:      []string{"General Practitioner", "Specialist", "Surgeon"},
		SalaryRange:           models.SalaryRange{Min: 600000, Max: 3000000, Currency: "INR"},
		GrowthProspects:       "Stable career with high social respect and good earning potential",
		RelatedExams:          []string{"NEET", "AIIMS", "JIPMER"},
	},
	{
		ID:                    "3",
		Title:                 "Data Scientist",
		Stream:                "science",
		EducationRequirements: []string{"B.Sc Mathematics/Statistics", "M.Sc/M.Tech Data Science"},
		SkillsRequired:        []string{"Statistics", "Programming", "Machine Learning"},
		JobOpportunities:      []string{"Data Analyst", "ML Engineer", "Research Scientist"},
		SalaryRange:           models.SalaryRange{Min: 500000, Max: 2500000, Currency: "INR"},
		GrowthProspects:       "High demand in AI/ML field with excellent career prospects",
		RelatedExams:          []string{"GATE", "GRE", "Company-specific tests"},
	},
	{
		ID:                    "4",
		Title:                 "Civil Engineer",
		Stream:                "engineering",
		EducationRequirements: []string{"B.Tech Civil Engineering", "M.Tech (Optional)"},
		SkillsRequired:        []string{"Mathematics", "Physics", "Design Skills"},
		JobOpportunities:      []string{"Site Engineer", "Project Manager", "Consultant"},
		SalaryRange:           models.SalaryRange{Min: 300000, Max: 1500000, Currency: "INR"},
		GrowthProspects:       "Good opportunities in infrastructure development",
		RelatedExams:          []string{"GATE", "JEE Advanced", "State Engineering Exams"},
	},
	{
		ID:                    "5",
		Title:                 "Teacher/Professor",
		Stream:                "arts",
		EducationRequirements: []string{"B.Ed", "M.A/M.Sc", "Ph.D (For Professor)"},
		SkillsRequired:        []string{"Subject Knowledge", "Communication", "Patience"},
		JobOpportunities:      []string{"School Teacher", "College Professor", "Educational Consultant"},
		SalaryRange:           models.SalaryRange{Min: 200000, Max: 1200000, Currency: "INR"},
		GrowthProspects:       "Stable career with good work-life balance",
		RelatedExams:          []string{"CTET", "NET", "State Teacher Exams"},
	},
}

var colleges = []models.College{
	{
		ID:         "1",
		Name:       "Delhi University",
		Type:       "government",
		Location:   models.Location{State: "Delhi", City: "New Delhi"},
		Programs:   []string{"Arts", "Science", "Commerce"},
		CutOffData: map[string]int{"arts": 85, "science": 90, "commerce": 88},
		Fees:       models.Fees{Annual: 15000, Currency: "INR"},
		Facilities: []string{"Hostel", "Library", "Sports", "Labs"},
	},
	{
		ID:         "2",
		Name:       "IIT Delhi",
		Type:       "government",
		Location:   models.Location{State: "Delhi", City: "New Delhi"},
		Programs:   []string{"Engineering", "Technology"},
		CutOffData: map[string]int{"engineering": 95},
		Fees:       models.Fees{Annual: 200000, Currency: "INR"},
		Facilities: []string{"Hostel", "Library", "Sports", "Labs", "Research Centers"},
	},
}
