package domain

// Theme is a named prompt fragment describing one visual scenario.
type Theme struct {
	Name   string
	Prompt string
}

// ThemeAt selects the theme for a zero-based item index by round robin.
func ThemeAt(themes []Theme, index int) (Theme, error) {
	if len(themes) == 0 {
		return Theme{}, ErrNoThemes
	}
	i := index % len(themes)
	if i < 0 {
		i += len(themes)
	}
	return themes[i], nil
}

var vol1Themes = []Theme{
	{"Late Night Study", "cozy college dorm room at night, student studying under desk lamp, laptop, notebooks, warm lighting, realistic, emotional"},
	{"Dorm Hangout", "college students hanging out in dorm room, laughing, snacks, string lights, warm friendly atmosphere"},
	{"Homesickness", "college student alone in dorm bed holding family photo, emotional, soft lamp light"},
	{"Rainy Dorm Day", "rain on dorm window, student inside reading, cozy mood, lo-fi aesthetic"},
	{"Creative Escape", "college student painting or playing guitar in dorm room, expressive, inspiring"},
}

var vol2Themes = []Theme{
	{"Burnout", "college student alone in dorm room at night, exhausted expression, laptop glow lighting face, emotional burnout, cinematic lighting"},
	{"Loneliness", "lonely college student sitting on dorm bed holding phone, soft lamp light, emotional, homesick"},
	{"Identity", "college student standing in dorm room looking into mirror, self reflection, emotional realism"},
	{"Quiet Victory", "college student relieved after studying, morning sunlight through dorm window, peaceful emotional moment"},
	{"Anxiety", "anxious college student preparing for exam in dorm room, tense posture, cinematic lighting"},
	{"Creative Escape", "college student writing or playing music in dorm room at night, emotional, calm atmosphere"},
}
