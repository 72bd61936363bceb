package checker

// TLDs is the suffix table used by ShortenChecker. Order matters: the first
// suffix a target ends with is the one used.
var TLDs = []string{
	"ac", "ad", "ae", "aero", "af", "ag", "ai", "al", "am", "an", "ao", "aq",
	"ar", "arpa", "as", "asia", "at", "au", "aw", "ax", "az", "ba", "bb", "bd",
	"be", "bf", "bg", "bh", "bi", "biz", "bj", "bl", "bm", "bn", "bo", "bq",
	"br", "bs", "bt", "bv", "bw", "by", "bz", "ca", "cat", "cc", "cd", "cf",
	"cg", "ch", "ci", "ck", "cl", "cm", "cn", "co", "com", "coop", "cr", "cs",
	"cu", "cv", "cw", "cx", "cy", "cz", "dd", "de", "dj", "dk", "dm", "do",
	"dz", "ec", "edu", "ee", "eg", "eh", "er", "es", "et", "eu", "fi", "fj",
	"fk", "fm", "fo", "fr", "ga", "gb", "gd", "ge", "gf", "gg", "gh", "gi",
	"gl", "gm", "gn", "gov", "gp", "gq", "gr", "gs", "gt", "gu", "gw", "gy",
	"hk", "hm", "hn", "hr", "ht", "hu", "id", "ie", "il", "im", "in", "info",
	"int", "io", "iq", "ir", "is", "it", "je", "jm", "jo", "jobs", "jp", "ke",
	"kg", "kh", "ki", "km", "kn", "kp", "kr", "kw", "ky", "kz", "la", "lb",
	"lc", "li", "lk", "local", "lr", "ls", "lt", "lu", "lv", "ly", "ma", "mc",
	"md", "me", "mf", "mg", "mh", "mil", "mk", "ml", "mm", "mn", "mo", "mobi",
	"mp", "mq", "mr", "ms", "mt", "mu", "museum", "mv", "mw", "mx", "my", "mz",
	"na", "name", "nato", "nc", "ne", "net", "nf", "ng", "ni", "nl", "no", "np",
	"nr", "nu", "nz", "om", "onion", "org", "pa", "pe", "pf", "pg", "ph", "pk",
	"pl", "pm", "pn", "pr", "pro", "ps", "pt", "pw", "py", "qa", "re", "ro",
	"rs", "ru", "rw", "sa", "sb", "sc", "sd", "se", "sg", "sh", "si", "sj",
	"sk", "sl", "sm", "sn", "so", "sr", "ss", "st", "su", "sv", "sx", "sy",
	"sz", "tc", "td", "tel", "tf", "tg", "th", "tj", "tk", "tl", "tm", "tn",
	"to", "tp", "tr", "travel", "tt", "tv", "tw", "tz", "ua", "ug", "uk", "um",
	"us", "uy", "uz", "va", "vc", "ve", "vg", "vi", "vn", "vu", "wf", "ws",
	"xxx", "ye", "yt", "yu", "za", "zm", "zr", "zw",
}
