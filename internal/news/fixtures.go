package news

// Fixtures returns the built-in headline data. Each call returns fresh
// slices so callers cannot alter each other's copy.
func Fixtures() Source {
	return Source{
		News: []Item{
			{
				ID:        "1",
				Headline:  "Louvre Museum Got Robbed",
				Category:  "Global",
				Snippet:   "On 19 October 2025, thieves disguised as construction workers stole eight pieces of the French Crown Jewels valued at approximately €88 million from the Galerie d'Apollon...",
				Timestamp: "Tue, 02.34",
			},
			{
				ID:        "2",
				Headline:  "Fall of Curry's UA Partnership",
				Category:  "Global",
				Snippet:   "Stephen Curry and Under Armour made their breakup official on Nov. 13, announcing that a decade-plus partnership had ended. Fans of the Golden State Warriors superstar...",
				Timestamp: "Tue, 00.12",
			},
			{
				ID:        "3",
				Headline:  "City Council Approves New Transit Plan",
				Category:  "Global",
				Snippet:   "After months of debate, the city council voted to fund an expanded network of bus rapid transit lines, promising shorter commutes across the metro area...",
				Timestamp: "Mon, 23.05",
			},
			{
				ID:        "4",
				Headline:  "Record Crowds at Autumn Book Fair",
				Category:  "Global",
				Snippet:   "Organisers reported the highest attendance in the fair's history, with independent publishers drawing long queues throughout the weekend...",
				Timestamp: "Tue, 03.10",
			},
			{
				ID:        "5",
				Headline:  "Central Bank Holds Rates Steady",
				Category:  "Global",
				Snippet:   "Policy makers left interest rates unchanged for a third consecutive meeting, citing easing inflation and a cooling labour market...",
				Timestamp: "Mon, 22.00",
			},
			{
				ID:        "6",
				Headline:  "Tech Giants Announce New AI Initiative",
				Category:  "Science & Tech",
				Snippet:   "Major technology companies have joined forces to launch a groundbreaking artificial intelligence initiative aimed at advancing research and development...",
				Timestamp: "Mon, 21.45",
			},
			{
				ID:        "7",
				Headline:  "Climate Summit Reaches Historic Agreement",
				Category:  "Global",
				Snippet:   "World leaders have reached a historic agreement on climate action, committing to ambitious targets for reducing carbon emissions over the next decade...",
				Timestamp: "Mon, 20.30",
			},
			{
				ID:        "8",
				Headline:  "New Breakthrough in Medical Research",
				Category:  "Science & Tech",
				Snippet:   "Scientists have announced a major breakthrough in medical research that could revolutionize treatment for chronic diseases, offering new hope to millions...",
				Timestamp: "Mon, 19.15",
			},
		},
		Saved: []SavedItem{
			saved("saved-1", "Louvre Museum Got Robbed", "Global", "On 19 October 2025, thieves disguised as construction workers stole eight pieces of the French Crown Jewels...", "Tue, 02.34", "Saved 2 days ago"),
			saved("saved-2", "Fall of Curry's UA Partnership", "Global", "Stephen Curry and Under Armour made their breakup official on Nov. 13, announcing that a decade-plus partnership had ended...", "Tue, 00.12", "Saved 3 days ago"),
			saved("saved-3", "Tech Giants Announce New AI Initiative", "Science & Tech", "Major technology companies have joined forces to launch a groundbreaking artificial intelligence initiative...", "Mon, 21.45", "Saved 5 days ago"),
			saved("saved-4", "Climate Summit Reaches Historic Agreement", "Global", "World leaders have reached a historic agreement on climate action, committing to ambitious targets...", "Mon, 20.30", "Saved 1 week ago"),
			saved("saved-5", "New Breakthrough in Medical Research", "Science & Tech", "Scientists have announced a major breakthrough in medical research that could revolutionize treatment...", "Mon, 19.15", "Saved 1 week ago"),
			saved("saved-6", "Revolutionary Space Mission Launched", "Science & Tech", "A new mission has lifted off carrying instruments designed to study the atmosphere of a distant moon...", "Sun, 18.20", "Saved 2 weeks ago"),
			saved("saved-7", "Global Economic Forum Concludes", "Global", "Delegates wrapped up a week of talks on trade, energy and debt relief with a joint statement on cooperation...", "Sun, 16.05", "Saved 2 weeks ago"),
			saved("saved-8", "Major Sports League Announces Expansion", "Global", "The league confirmed two new franchises will join for the upcoming season, the first expansion in over a decade...", "Sat, 14.40", "Saved 3 weeks ago"),
		},
	}
}

func saved(id, headline, category, snippet, timestamp, savedDate string) SavedItem {
	return SavedItem{
		Item: Item{
			ID:        id,
			Headline:  headline,
			Category:  category,
			Snippet:   snippet,
			Timestamp: timestamp,
		},
		SavedDate: savedDate,
	}
}
