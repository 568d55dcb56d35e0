package constants

// BrandVariant pairs a spelling seen in the wild with the canonical brand
// name it resolves to. Variants are matched as case-insensitive substrings,
// so mixed-case duplicates of the same spelling are not repeated here.
type BrandVariant struct {
	Variant   string
	Canonical string
}

// BrandVariants covers the big-box and indie yarn brands a North American
// pattern is likely to name, plus the spellings patterns actually use.
// Order matters only for deterministic output; dedup is by canonical name.
var BrandVariants = []BrandVariant{
	{"Red Heart", "Red Heart"},
	{"RedHeart", "Red Heart"},
	{"Lion Brand", "Lion Brand"},
	{"LionBrand", "Lion Brand"},
	{"Bernat", "Bernat"},
	{"Simply Soft", "Caron"},
	{"Caron", "Caron"},
	{"Patons", "Patons"},
	{"Lily Sugar 'n Cream", "Lily Sugar 'n Cream"},
	{"Lily Sugar n Cream", "Lily Sugar 'n Cream"},
	{"Sugar 'n Cream", "Lily Sugar 'n Cream"},
	{"Sugar and Cream", "Lily Sugar 'n Cream"},
	{"Sugar & Cream", "Lily Sugar 'n Cream"},
	{"Sugar n Cream", "Lily Sugar 'n Cream"},
	{"Sugar N' Cream", "Lily Sugar 'n Cream"},
	{"Vanna's Choice", "Vanna's Choice"},
	{"Vannas Choice", "Vanna's Choice"},
	{"I Love This Yarn", "I Love This Yarn"},
	{"ILTY", "I Love This Yarn"},
	{"Hometown USA", "Hometown USA"},
	{"Hometown", "Hometown USA"},
	{"Baby Bee", "Baby Bee"},
	{"BabyBee", "Baby Bee"},
	{"Heartland", "Heartland"},
	{"Mandala", "Mandala"},
	{"Shawl in a Ball", "Shawl in a Ball"},
	{"Shawl-in-a-Ball", "Shawl in a Ball"},
	{"Wool-Ease", "Wool-Ease"},
	{"WoolEase", "Wool-Ease"},
	{"Wool Ease", "Wool-Ease"},
	{"Big Twist", "Big Twist"},
	{"BigTwist", "Big Twist"},
	{"Loops & Threads", "Loops & Threads"},
	{"Loops and Threads", "Loops & Threads"},
	{"Loops&Threads", "Loops & Threads"},
	{"Impeccable", "Impeccable"},
	{"Cascade", "Cascade"},
	{"Rowan", "Rowan"},
	{"Debbie Bliss", "Debbie Bliss"},
	{"Plymouth", "Plymouth"},
	{"Berroco", "Berroco"},
	{"Malabrigo", "Malabrigo"},
	{"Noro", "Noro"},
	{"Drops", "Drops"},
	{"Paintbox", "Paintbox"},
	{"King Cole", "King Cole"},
	{"Stylecraft", "Stylecraft"},
	{"Sirdar", "Sirdar"},
	{"Wendy", "Wendy"},
	{"Aran Crafts", "Aran Crafts"},
	{"Universal Yarn", "Universal Yarn"},
	{"Premier Yarns", "Premier Yarns"},
	{"Premier", "Premier Yarns"},
	{"Madelinetosh", "Madelinetosh"},
	{"Brooklyn Tweed", "Brooklyn Tweed"},
	{"Quince & Co", "Quince & Co"},
	{"Shibui", "Shibui"},
	{"Manos del Uruguay", "Manos del Uruguay"},
	{"Anzula", "Anzula"},
	{"Hedgehog Fibres", "Hedgehog Fibres"},
	{"The Fibre Company", "The Fibre Company"},
	{"Lorna's Laces", "Lorna's Laces"},
	{"Koigu", "Koigu"},
}

// MaterialsSectionHeaders mark the start of a materials block; a window of
// lines following the first hit is searched for brands before the whole
// text is.
var MaterialsSectionHeaders = []string{
	"materials", "supplies", "yarn", "what you need", "you will need",
}

// MaterialsSectionLines is the window length in lines.
const MaterialsSectionLines = 25
