package catalog

// English placeholder template and authored entries. Authored content for
// days 1-5 carries over from the original dashboard; the remaining days
// are synthesized from the template.

var englishTemplate = template{
	Title:   "Lunar Day {day}",
	Summary: "General guidance for lunar day {day}. Observe the moon's rhythm and pace yourself accordingly.",
	BulletPoints: []string{
		"Align plans with the energy of day {day}.",
		"Favor steady routines over abrupt changes.",
		"Note how mood and rest shift through the day.",
	},
	Notes: []string{
		"Lunar day {day} has no dedicated commentary yet. The themes below follow the general arc of the cycle.",
		"Treat guidance as a lens, not a rule. Daily circumstances outweigh the calendar.",
	},
	Sections: map[string]string{
		"health":             "Keep meals light and regular on day {day}; hydration matters more than intensity.",
		"business":           "Routine work proceeds well on day {day}; defer signings you can defer.",
		"relationships":      "Listen more than you speak; day {day} rewards patience.",
		"sleep":              "Dreams on the night of day {day} reflect unfinished business of the cycle.",
		"practice":           "Short meditation or breathwork suits day {day}.",
		"symbol":             "No classical symbol is assigned to day {day} in this catalog.",
		"stone":              "Clear quartz is the neutral companion for day {day}.",
		"color":              "Soft white and silver tones suit day {day}.",
		"zodiac":             "Influence follows the moon's current sign rather than day {day} itself.",
		"astrologerOpinions": "Commentators differ on day {day}; most advise moderation.",
	},
}

var englishAuthored = map[int]Entry{
	1: {
		Day:     1,
		Title:   "Day 1 · Plant the Seed",
		Summary: "A fresh start. Keep actions light, focus on intentions.",
		BulletPoints: []string{
			"Set gentle goals, avoid intense physical exertion.",
			"Meditation and planning flourish.",
			"Stay hydrated; nervous system is sensitive.",
		},
		Notes: []string{
			"The first lunar day prizes purity of thought. Keep the environment calm and uncluttered.",
			"Avoid binding commitments. Instead, sketch plans you can revisit as the cycle unfolds.",
			"Foods that are light and raw support the body's reset.",
		},
		Sections: map[string]string{
			"symbol": "A lamp or a lantern: the first spark of the cycle.",
			"stone":  "Diamond and rock crystal.",
			"color":  "White.",
		},
	},
	2: {
		Day:     2,
		Title:   "Day 2 · Moon in Scorpio",
		Summary: "Research, introspection, and strategic planning thrive.",
		BulletPoints: []string{
			"Excellent for analysis, scientific work, deep reading.",
			"Conversations benefit from honesty and emotional nuance.",
			"Anger and resentment surface easily—practice deliberate calm.",
		},
		Notes: []string{
			"Channel the intensity into creative or spiritual practice. Journaling and shadow work are productive.",
			"Ideal time to refine financial plans or investment research; caution with impulsive moves.",
			"Eat nourishing soups, grains, and fermented foods to ground the watery energies.",
		},
		Sections: map[string]string{
			"symbol": "The cornucopia: gathering and absorbing.",
			"stone":  "Sapphire.",
		},
	},
	3: {
		Day:     3,
		Title:   "Day 3 · Activating Momentum",
		Summary: "Energy levels rise. Great for workouts and decisive moves.",
		BulletPoints: []string{
			"Complete errands; resolve lingering tasks.",
			"Collaborate on difficult conversations while staying diplomatic.",
			"Release tension with movement; stretching or martial arts shine.",
		},
		Notes: []string{
			"The third lunar day favors action paired with strategy—don't rush headlong without a plan.",
			"Channel assertiveness into constructive outlets to avoid conflicts.",
			"Support the body with protein-rich meals; stay well rested.",
		},
		Sections: map[string]string{
			"symbol": "The leopard: contained force ready to act.",
			"color":  "Red and copper.",
		},
	},
	4: {
		Day:     4,
		Title:   "Day 4 · The Mountain",
		Summary: "Stability and persistence. Build foundations.",
		BulletPoints: []string{
			"Focus on long-term projects and commitments.",
			"Avoid starting new ventures; strengthen existing ones.",
			"Physical exercise and grounding activities are beneficial.",
		},
		Notes: []string{
			"This day emphasizes structure and discipline. Good for administrative work and organizing.",
			"Be patient with obstacles; they are part of the process.",
			"Root vegetables and hearty meals support the day's energy.",
		},
		Sections: map[string]string{
			"symbol": "The tree of knowledge; the mountain.",
			"stone":  "Jade.",
		},
	},
	5: {
		Day:     5,
		Title:   "Day 5 · The Unicorn",
		Summary: "Creativity and inspiration flow freely.",
		BulletPoints: []string{
			"Excellent for artistic projects and creative expression.",
			"Social interactions are harmonious and uplifting.",
			"Avoid overindulgence; maintain balance.",
		},
		Notes: []string{
			"The fifth lunar day brings clarity and vision. Trust your intuition.",
			"Good time for networking and building relationships.",
			"Light, fresh foods align with the day's vibrant energy.",
		},
		Sections: map[string]string{
			"symbol": "The unicorn: rare clarity and devotion.",
			"color":  "Blue and turquoise.",
		},
	},
}
