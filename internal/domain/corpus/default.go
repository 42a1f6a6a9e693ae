package corpus

// defaultTable is the built-in corpus in display order.
var defaultTable = []struct {
	source string
	tags   []string
	text   string
}{
	{
		source: "Bhagavad Gita 2.47",
		tags:   []string{"krishna", "duty", "karma", "action", "work", "detachment"},
		text: "You have a right to perform your prescribed actions, but you are not entitled to the fruits of " +
			"action. Never consider yourself the cause of the results, and never be attached to inaction.",
	},
	{
		source: "Dhammapada 1.1",
		tags:   []string{"buddha", "mind", "thought", "suffering"},
		text: "Mind precedes all things; mind is their chief, mind is their maker. Speak or act with an impure " +
			"mind, and suffering follows as the wheel follows the ox that draws the cart.",
	},
	{
		source: "Tao Te Ching 8",
		tags:   []string{"laozi", "water", "humility", "nature", "yielding"},
		text: "The highest good is like water. Water gives life to the ten thousand things and does not strive. " +
			"It flows to the low places that people disdain, and so it is close to the Way.",
	},
	{
		source: "Analects 2.17",
		tags:   []string{"confucius", "knowledge", "learning", "wisdom", "honesty"},
		text: "When you know a thing, to hold that you know it; and when you do not know a thing, to allow " +
			"that you do not know it: this is knowledge.",
	},
	{
		source: "Meditations 4.3",
		tags:   []string{"marcus", "stoic", "peace", "calm", "retreat", "soul"},
		text: "Nowhere can a man find a quieter or more untroubled retreat than in his own soul. Constantly " +
			"give yourself this retreat, and renew yourself.",
	},
	{
		source: "Isha Upanishad 1",
		tags:   []string{"upanishad", "renunciation", "wealth", "greed", "brahman"},
		text: "All this, whatever moves in this moving world, is enveloped by the Lord. Find joy by " +
			"renouncing; do not covet the wealth of anyone.",
	},
	{
		source: "Proverbs 16:18",
		tags:   []string{"pride", "humility", "arrogance", "downfall"},
		text:   "Pride goes before destruction, and a haughty spirit before a fall.",
	},
	{
		source: "Matthew 7:12",
		tags:   []string{"jesus", "golden rule", "compassion", "kindness", "neighbor"},
		text:   "So in everything, do to others what you would have them do to you.",
	},
	{
		source: "Enchiridion 5",
		tags:   []string{"epictetus", "stoic", "fear", "anxiety", "judgment"},
		text: "Men are disturbed not by things, but by the views which they take of things. When we are " +
			"troubled, let us never blame others, but ourselves, that is, our own views.",
	},
	{
		source: "Guru Granth Sahib, Japji 1",
		tags:   []string{"nanak", "truth", "oneness", "devotion"},
		text: "There is but one Creator, whose name is Truth, the maker of all, without fear and without " +
			"enmity, timeless in form, beyond birth, self-existent.",
	},
}

var defaultCorpus = mustBuildDefault()

// Default returns the built-in corpus, constructed once at process start.
func Default() Corpus {
	return defaultCorpus
}

func mustBuildDefault() Corpus {
	entries := make([]Entry, 0, len(defaultTable))
	for _, row := range defaultTable {
		e, err := NewEntry(row.source, row.text, row.tags...)
		if err != nil {
			panic("corpus: invalid built-in entry: " + err.Error())
		}
		entries = append(entries, e)
	}
	c, err := New(entries...)
	if err != nil {
		panic("corpus: invalid built-in table: " + err.Error())
	}
	return c
}
