package catalog

import (
	"time"

	"github.com/readle-app/readle/internal/services"
)

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

var badges = []*services.Badge{
	{ID: "bdg-001", Title: "Phonics Phenom", Category: "phonics", Icon: "🔤", EarnedOn: day("2025-05-10"), Description: "Completed 5 phonics activities with high accuracy", Level: 1},
	{ID: "bdg-002", Title: "Word Wizard", Category: "spelling", Icon: "✨", EarnedOn: day("2025-05-15"), Description: "Spelled 20 challenging words correctly in a row", Level: 2},
	{ID: "bdg-003", Title: "Reading Rocket", Category: "reading", Icon: "🚀", EarnedOn: day("2025-05-18"), Description: "Read 5 stories with excellent comprehension", Level: 1},
	{ID: "bdg-004", Title: "Super Speller", Category: "spelling", Icon: "🏆", EarnedOn: day("2025-05-22"), Description: "Achieved perfect score in advanced spelling challenge", Level: 3},
	{ID: "bdg-005", Title: "Rhyme Master", Category: "phonics", Icon: "🎵", EarnedOn: day("2025-05-25"), Description: "Found all rhyming pairs in record time", Level: 2},
	{ID: "bdg-006", Title: "Bookworm", Category: "reading", Icon: "📚", EarnedOn: day("2025-06-01"), Description: "Completed 10 reading sessions", Level: 2},
	{ID: "bdg-007", Title: "Sight Word Star", Category: "reading", Icon: "⭐", EarnedOn: day("2025-06-05"), Description: "Mastered 50 sight words", Level: 3},
	{ID: "bdg-008", Title: "Reading Rally Champion", Category: "achievement", Icon: "🏅", EarnedOn: day("2025-06-10"), Description: "Completed activities for 7 days in a row", Level: 1},
	{ID: "bdg-009", Title: "Dictionary Detective", Category: "vocabulary", Icon: "🔍", EarnedOn: day("2025-06-15"), Description: "Learned and used 25 new vocabulary words", Level: 2},
	{ID: "bdg-010", Title: "Story Explorer", Category: "comprehension", Icon: "🗺️", EarnedOn: day("2025-06-20"), Description: "Answered all comprehension questions correctly in 3 consecutive stories", Level: 2},
}

func Badges() []*services.Badge {
	return append([]*services.Badge(nil), badges...)
}

func BadgesByCategory(category string) []*services.Badge {
	out := []*services.Badge{}
	for _, b := range badges {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out
}
