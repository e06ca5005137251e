package catalog

import "github.com/readle-app/readle/internal/services"

var activities = []*services.Activity{
	{
		ID:              "act-001",
		Title:           "Letter Sounds Adventure",
		Type:            "phonics",
		Difficulty:      "beginner",
		Description:     "Learn to recognize and pronounce basic letter sounds through interactive games.",
		ThumbnailURL:    "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=400&h=250&fit=crop",
		DurationMinutes: 15,
		Questions: []services.ActivityQuestion{
			{Question: "What sound does 'ball' start with?", Options: []string{"B", "P", "D", "T"}, CorrectAnswer: "B"},
			{Question: "What sound does 'cat' start with?", Options: []string{"K", "C", "S", "T"}, CorrectAnswer: "C"},
		},
	},
	{
		ID:              "act-002",
		Title:           "Word Builder Challenge",
		Type:            "spelling",
		Difficulty:      "intermediate",
		Description:     "Construct words from phonetic components using visual and audio cues.",
		ThumbnailURL:    "https://images.unsplash.com/photo-1455390582262-044cdead277a?w=400&h=250&fit=crop",
		DurationMinutes: 20,
		Questions: []services.ActivityQuestion{
			{Question: "Spell the word: CAT", Options: []string{"CAT", "KAT", "CET", "KET"}, CorrectAnswer: "CAT"},
			{Question: "Spell the word: DOG", Options: []string{"DOG", "DAG", "DUG", "DOK"}, CorrectAnswer: "DOG"},
		},
	},
	{
		ID:              "act-003",
		Title:           "Story Time Explorer",
		Type:            "reading",
		Difficulty:      "beginner",
		Description:     "Read along with highlighted text and audio support in engaging short stories.",
		ThumbnailURL:    "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400&h=250&fit=crop",
		DurationMinutes: 25,
	},
	{
		ID:              "act-004",
		Title:           "Rhyme Time",
		Type:            "phonics",
		Difficulty:      "beginner",
		Description:     "Match rhyming words to improve phonological awareness and sound recognition.",
		ThumbnailURL:    "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=400&h=250&fit=crop",
		DurationMinutes: 10,
		Questions: []services.ActivityQuestion{
			{Question: "Which word rhymes with 'cake'?", Options: []string{"Lake", "Cook", "Kite", "Coat"}, CorrectAnswer: "Lake"},
		},
	},
	{
		ID:              "act-005",
		Title:           "Sight Words Sprint",
		Type:            "reading",
		Difficulty:      "intermediate",
		Description:     "Practice recognizing common sight words with timed challenges and rewards.",
		ThumbnailURL:    "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400&h=250&fit=crop",
		DurationMinutes: 15,
	},
	{
		ID:              "act-006",
		Title:           "Sentence Scramble",
		Type:            "spelling",
		Difficulty:      "advanced",
		Description:     "Rearrange words to form correct sentences, focusing on grammar and context clues.",
		ThumbnailURL:    "https://images.unsplash.com/photo-1455390582262-044cdead277a?w=400&h=250&fit=crop",
		DurationMinutes: 20,
	},
	{
		ID:              "act-007",
		Title:           "Reading Comprehension Quest",
		Type:            "comprehension",
		Difficulty:      "advanced",
		Description:     "Answer questions about short passages to improve understanding and recall.",
		ThumbnailURL:    "https://images.unsplash.com/photo-1606092195730-5d7b9af1efc5?w=400&h=250&fit=crop",
		DurationMinutes: 30,
	},
	{
		ID:              "act-008",
		Title:           "Sound Blending Blocks",
		Type:            "phonics",
		Difficulty:      "intermediate",
		Description:     "Combine phonetic sounds to create words using interactive building blocks.",
		ThumbnailURL:    "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=400&h=250&fit=crop",
		DurationMinutes: 15,
	},
}

func Activities() []*services.Activity {
	return append([]*services.Activity(nil), activities...)
}

func GetActivity(id string) *services.Activity {
	for _, a := range activities {
		if a.ID == id {
			return a
		}
	}
	return nil
}
