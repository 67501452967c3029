package inventory

// Default returns the canonical questionnaire: twenty forced-choice
// personality items (no Neuroticism items by design) and three prompts per
// chakra. Callers must not mutate the returned slices.
func Default() *Inventory {
	return &Inventory{
		Personality: defaultPersonalityItems,
		Chakras:     defaultChakraCategories,
	}
}

var defaultPersonalityItems = []PersonalityItem{
	{Left: "I am often disorganized", Right: "I keep myself organized", Trait: Conscientiousness},
	{Left: "I decide with my head", Right: "I decide with my heart", Trait: Agreeableness, Reverse: true},
	{Left: "I prefer trusted methods", Right: "I like to innovate", Trait: Openness, Reverse: true},
	{Left: "I keep thoughts to myself", Right: "I speak up", Trait: Extraversion},
	{Left: "I avoid attention", Right: "I enjoy attention", Trait: Extraversion},
	{Left: "I pursue my own goals", Right: "I look for ways to help others", Trait: Agreeableness, Reverse: true},
	{Left: "I let others start conversations", Right: "I start conversations", Trait: Extraversion},
	{Left: "I like ideas that are easy", Right: "I like ideas that are complex", Trait: Openness},
	{Left: "I can be careless", Right: "I follow through on tasks", Trait: Conscientiousness},
	{Left: "I distrust people easily", Right: "I trust people easily", Trait: Agreeableness},
	{Left: "I like routine", Right: "I like to explore the new", Trait: Openness},
	{Left: "I tire around people", Right: "I feel energized with people", Trait: Extraversion},
	{Left: "I can be blunt", Right: "I am considerate", Trait: Agreeableness},
	{Left: "I act on impulse", Right: "I think before I act", Trait: Conscientiousness},
	{Left: "I stick to what I know", Right: "I am curious and imaginative", Trait: Openness},
	{Left: "I keep to myself", Right: "I am outgoing and sociable", Trait: Extraversion},
	{Left: "I can be skeptical", Right: "I am cooperative", Trait: Agreeableness},
	{Left: "I miss small details", Right: "I notice small details", Trait: Conscientiousness},
	{Left: "I prefer facts only", Right: "I enjoy ideas and metaphors", Trait: Openness},
	{Left: "I speak my mind sharply", Right: "I soften my words with care", Trait: Agreeableness},
}

var defaultChakraCategories = []Category{
	{Name: Root, Prompts: []string{
		"I feel safe and grounded in daily life.",
		"I keep consistent routines (sleep, food, movement).",
		"I manage money and basic needs calmly.",
	}},
	{Name: Sacral, Prompts: []string{
		"I allow myself pleasure and creativity.",
		"My relationships feel warm and emotionally alive.",
		"I express feelings without guilt or shame.",
	}},
	{Name: SolarPlexus, Prompts: []string{
		"I take decisive action toward goals.",
		"I keep healthy boundaries and say no when needed.",
		"I trust my capability to handle challenges.",
	}},
	{Name: Heart, Prompts: []string{
		"I forgive myself and others with ease.",
		"I feel connected to people and life.",
		"I practice gratitude and compassion daily.",
	}},
	{Name: Throat, Prompts: []string{
		"I speak my truth calmly and clearly.",
		"I listen well and communicate honestly.",
		"I express my needs without fear.",
	}},
	{Name: ThirdEye, Prompts: []string{
		"I reflect and learn from patterns in my life.",
		"I visualize outcomes before I act.",
		"I trust my intuition when logic is equal.",
	}},
	{Name: Crown, Prompts: []string{
		"I feel guided by a higher purpose.",
		"I spend time in silence or meditation.",
		"I experience moments of awe or connection.",
	}},
}
