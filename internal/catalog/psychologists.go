package catalog

import "github.com/readle-app/readle/internal/services"

var psychologists = []*services.Psychologist{
	{
		ID:           "1",
		Name:         "Dr. Sarah Johnson",
		Specialties:  []string{"Child Development", "Anxiety", "Family Therapy"},
		Availability: "Mon-Wed, 9AM-5PM",
		Rating:       4.9,
		Reviews:      127,
		Languages:    []string{"English", "Spanish"},
		Bio:          "Dr. Johnson specializes in child development and family therapy with over 15 years of experience. She uses evidence-based approaches to help families navigate challenges and build stronger relationships.",
		ImageURL:     "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?q=80&w=300&auto=format&fit=crop",
	},
	{
		ID:           "2",
		Name:         "Dr. Michael Chen",
		Specialties:  []string{"Early Childhood", "Behavioral Issues", "Parenting Support"},
		Availability: "Tues-Fri, 10AM-6PM",
		Rating:       4.8,
		Reviews:      98,
		Languages:    []string{"English", "Mandarin"},
		Bio:          "Dr. Chen is passionate about early childhood development and helping parents understand their child's unique needs. He specializes in behavioral strategies that foster positive growth.",
		ImageURL:     "https://images.unsplash.com/photo-1560250097-0b93528c311a?q=80&w=300&auto=format&fit=crop",
	},
	{
		ID:           "3",
		Name:         "Dr. Amira Patel",
		Specialties:  []string{"Learning Disabilities", "ADHD", "School Adjustment"},
		Availability: "Mon-Thurs, 8AM-4PM",
		Rating:       4.7,
		Reviews:      83,
		Languages:    []string{"English", "Hindi", "Gujarati"},
		Bio:          "With expertise in learning disabilities and ADHD, Dr. Patel works with families to develop personalized strategies for academic success and emotional well-being.",
		ImageURL:     "https://images.unsplash.com/photo-1573497019418-b400bb3ab074?q=80&w=300&auto=format&fit=crop",
	},
	{
		ID:           "4",
		Name:         "Dr. James Wilson",
		Specialties:  []string{"Emotional Regulation", "Social Skills", "Teen Counseling"},
		Availability: "Wed-Sat, 11AM-7PM",
		Rating:       4.6,
		Reviews:      74,
		Languages:    []string{"English", "French"},
		Bio:          "Dr. Wilson focuses on helping children and teens develop emotional intelligence and social skills. His approach combines cognitive behavioral techniques with compassionate support.",
		ImageURL:     "https://images.unsplash.com/photo-1568602471122-7832951cc4c5?q=80&w=300&auto=format&fit=crop",
	},
	{
		ID:           "5",
		Name:         "Dr. Elena Rodriguez",
		Specialties:  []string{"Trauma", "Family Transitions", "Grief Counseling"},
		Availability: "Mon-Fri, 9AM-3PM",
		Rating:       4.9,
		Reviews:      115,
		Languages:    []string{"English", "Spanish", "Portuguese"},
		Bio:          "Dr. Rodriguez specializes in helping families navigate difficult transitions, trauma, and loss. She creates a safe space for healing and provides tools for resilience.",
		ImageURL:     "https://images.unsplash.com/photo-1551836022-d5d88e9218df?q=80&w=300&auto=format&fit=crop",
	},
	{
		ID:           "6",
		Name:         "Dr. David Kim",
		Specialties:  []string{"Autism Spectrum", "Developmental Milestones", "Parent Coaching"},
		Availability: "Tues-Sat, 8AM-6PM",
		Rating:       4.8,
		Reviews:      91,
		Languages:    []string{"English", "Korean"},
		Bio:          "Dr. Kim has extensive experience working with children on the autism spectrum and their families. He offers practical strategies and compassionate guidance.",
		ImageURL:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=300&auto=format&fit=crop",
	},
	{
		ID:           "7",
		Name:         "Dr. Olivia Thompson",
		Specialties:  []string{"Play Therapy", "Attachment", "Adoption Support"},
		Availability: "Mon-Wed, 10AM-8PM",
		Rating:       4.7,
		Reviews:      86,
		Languages:    []string{"English"},
		Bio:          "Dr. Thompson uses play therapy and attachment-based approaches to support children through various challenges. She has special expertise in adoption-related issues.",
		ImageURL:     "https://images.unsplash.com/photo-1544717305-2782549b5136?q=80&w=300&auto=format&fit=crop",
	},
	{
		ID:           "8",
		Name:         "Dr. Marcus Williams",
		Specialties:  []string{"School Psychology", "Testing & Assessment", "Academic Planning"},
		Availability: "Wed-Fri, 9AM-5PM",
		Rating:       4.8,
		Reviews:      79,
		Languages:    []string{"English"},
		Bio:          "Dr. Williams provides comprehensive assessments and practical guidance for educational planning. He collaborates with schools to create supportive learning environments.",
		ImageURL:     "https://images.unsplash.com/photo-1563807894768-f28bee0d37b6?q=80&w=300&auto=format&fit=crop",
	},
}

// PsychologistDirectory implements services.PsychologistDirectory over the
// bundled dataset.
type PsychologistDirectory struct{}

func NewPsychologistDirectory() *PsychologistDirectory { return &PsychologistDirectory{} }

func (d *PsychologistDirectory) ListPsychologists() []*services.Psychologist {
	return append([]*services.Psychologist(nil), psychologists...)
}

func (d *PsychologistDirectory) GetPsychologist(id string) *services.Psychologist {
	for _, p := range psychologists {
		if p.ID == id {
			return p
		}
	}
	return nil
}

var _ services.PsychologistDirectory = (*PsychologistDirectory)(nil)
