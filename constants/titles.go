package constants

// TitleDenylist rejects ALL-CAPS candidates that are author credits,
// copyright lines, instructions, or measurements rather than titles.
// Matched as case-sensitive substrings of the uppercase candidate.
var TitleDenylist = []string{
	"BY ", "DESIGNED", "CREATED", "AUTHOR", "COPYRIGHT", "CROCHETS",
	"FIND", "INSPIRATION", "WWW", ".COM", "ROW", "MATERIALS", "GAUGE",
	"CH ", " DC ", "FINISHED", "SUPPLIES", "PATTERN",
}

// TitleAllowlist are craft nouns; an ALL-CAPS candidate must contain at
// least one of them (case-insensitive) to be accepted as a title.
var TitleAllowlist = []string{
	"hat", "scarf", "blanket", "sweater", "cardigan", "shawl", "cowl",
	"mittens", "gloves", "socks", "afghan", "throw", "pillow", "bag",
	"tote", "pouch", "baby", "child", "adult", "flower", "leaf", "top",
	"dress", "tank", "vest", "wrap", "poncho",
}

// KnownTitles is the exact-phrase fallback tried after the ALL-CAPS pass.
// TODO: replace with a lookup fed from previously catalogued patterns.
var KnownTitles = []string{
	"BUTTERFLY TOP",
}

// CraftItemNouns feed the `<WORD> <noun>` title regex fallback.
var CraftItemNouns = []string{
	"TOP", "HAT", "SCARF", "SWEATER", "CARDIGAN", "BLANKET", "SHAWL",
	"COWL", "MITTENS", "GLOVES", "SOCKS", "BAG", "DRESS", "TANK", "VEST",
	"WRAP", "PONCHO",
}

// TitleLineSkipMarkers disqualify a line in the line-scan fallback: author
// and metadata markers first, instruction markers second. Compared against
// the lowercased line as substrings.
var TitleLineSkipMarkers = []string{
	"by ", "designed", "created", "copyright", "©", "author", "crochets",
	"inspiration", "www.", ".com", "tutorial", "video", "sizing",
	"ch ", " dc", " st", "materials", "gauge",
}

// TitleLineSkipPrefixes disqualify a line when it begins with one of these.
var TitleLineSkipPrefixes = []string{"find ", "row"}
