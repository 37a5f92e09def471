package metadata

// APILevel describes one Android platform release.
type APILevel struct {
	Level   int
	Name    string
	Version string
}

// apiLevels is ordered by ascending Level.
var apiLevels = []APILevel{
	{21, "Lollipop", "5.0"},
	{22, "Lollipop", "5.1"},
	{23, "Marshmallow", "6.0"},
	{24, "Nougat", "7.0"},
	{25, "Nougat", "7.1"},
	{26, "Oreo", "8.0"},
	{27, "Oreo", "8.1"},
	{28, "Pie", "9"},
	{29, "Q", "10"},
	{30, "R", "11"},
	{31, "S", "12"},
	{32, "S_V2", "12L"},
	{33, "Tiramisu", "13"},
	{34, "UpsideDownCake", "14"},
}

// APILevels returns the API levels the reports cover, ascending.
// The returned slice is a copy and may be modified by the caller.
func APILevels() []APILevel {
	out := make([]APILevel, len(apiLevels))
	copy(out, apiLevels)
	return out
}
