package tld

// asciiTLDSource lists ASCII top-level domains, sorted so Encode can
// collapse shared prefixes. This is a representative subset of the ~1,500
// TLDs IANA delegates (generic TLDs, the common new-gTLD batch, and the
// widely-seen country codes) rather than a full mirror of the root zone —
// see DESIGN.md for why the complete list is out of scope for this module.
var asciiTLDSource = []string{
	"ac", "academy", "accountant", "accountants", "actor", "ad", "ae", "aero",
	"af", "ag", "agency", "ai", "airforce", "al", "am", "amsterdam", "app",
	"ar", "archi", "army", "art", "as", "asia", "associates", "at", "attorney",
	"au", "auction", "audio", "auto", "aw", "ax", "az",
	"ba", "bar", "bargains", "bayern", "bb", "bd", "be", "beer", "berlin",
	"best", "bet", "bf", "bg", "bh", "bi", "bible", "bid", "bike", "bio",
	"biz", "bj", "black", "blackfriday", "blog", "blue", "bm", "bn", "bo",
	"boutique", "br", "bs", "bt", "build", "builders", "business", "buzz",
	"bw", "by", "bz",
	"ca", "cab", "cafe", "camera", "camp", "capital", "car", "cards", "care",
	"careers", "cars", "casa", "cash", "casino", "cat", "catering", "cc",
	"center", "ceo", "cf", "cfd", "ch", "charity", "chat", "cheap",
	"christmas", "church", "ci", "city", "ck", "cl", "claims", "cleaning",
	"click", "clinic", "clothing", "cloud", "club", "cm", "cn", "co",
	"coach", "codes", "coffee", "college", "cologne", "com", "community",
	"company", "computer", "condos", "construction", "consulting",
	"contact", "contractors", "cooking", "cool", "coop", "country",
	"coupons", "courses", "cr", "credit", "creditcard", "cricket", "cruises",
	"cu", "cv", "cw", "cx", "cy", "cymru", "cz",
	"dance", "date", "dating", "de", "deals", "degree", "delivery",
	"democrat", "dental", "dentist", "design", "dev", "diamonds", "diet",
	"digital", "direct", "directory", "discount", "dj", "dk", "dm",
	"doctor", "dog", "domains", "download", "dz",
	"ec", "eco", "edu", "education", "ee", "eg", "email", "energy",
	"engineer", "engineering", "enterprises", "equipment", "er", "es",
	"estate", "et", "eu", "events", "exchange", "expert", "exposed",
	"express",
	"fail", "faith", "family", "fans", "farm", "fashion", "fi", "finance",
	"financial", "fish", "fishing", "fit", "fitness", "fj", "fk", "flights",
	"florist", "flowers", "fm", "fo", "football", "forsale", "foundation",
	"fr", "fun", "fund", "furniture", "futbol",
	"ga", "gallery", "game", "games", "garden", "gd", "ge", "gf", "gg",
	"gh", "gi", "gift", "gifts", "gives", "gl", "glass", "global", "gm",
	"gmbh", "gn", "gold", "golf", "gov", "gp", "gq", "gr", "graphics",
	"gratis", "green", "gripe", "group", "gs", "gt", "gu", "guide",
	"guitars", "guru", "gw", "gy",
	"hair", "haus", "healthcare", "help", "hk", "hm", "hn", "hockey",
	"holdings", "holiday", "homes", "horse", "hospital", "host", "hosting",
	"house", "hr", "ht", "hu",
	"id", "ie", "il", "im", "immo", "immobilien", "in", "industries",
	"info", "ink", "institute", "insure", "int", "international",
	"investments", "io", "iq", "ir", "is", "it",
	"je", "jewelry", "jm", "jo", "jobs", "joburg", "jp",
	"ke", "kg", "kh", "ki", "kim", "kitchen", "kiwi", "km", "kn", "kp",
	"kr", "kred", "kw", "ky", "kz",
	"la", "land", "lat", "law", "lawyer", "lb", "lc", "lease", "legal",
	"lgbt", "li", "life", "lighting", "limited", "limo", "link", "live",
	"lk", "loan", "loans", "lol", "lotto", "love", "lr", "ls", "lt", "ltd",
	"lu", "luxury", "lv", "ly",
	"ma", "maison", "management", "market", "marketing", "markets",
	"mba", "mc", "md", "me", "media", "meet", "menu", "mg", "mh", "miami",
	"mil", "mk", "ml", "mm", "mn", "mo", "mobi", "moda", "money",
	"monster", "mortgage", "moscow", "motorcycles", "mov", "mp", "mq",
	"mr", "ms", "mt", "mu", "museum", "mv", "mw", "mx", "my", "mz",
	"na", "name", "navy", "nc", "ne", "net", "network", "new", "news",
	"nexus", "nf", "ng", "ngo", "ni", "ninja", "nl", "no", "np", "nr",
	"nu", "nyc", "nz",
	"observer", "om", "one", "ong", "onl", "online", "ooo", "org",
	"organic", "osaka",
	"pa", "page", "paris", "partners", "parts", "party", "pe", "pf",
	"pg", "ph", "photo", "photography", "photos", "pics", "pictures",
	"pink", "pizza", "pk", "pl", "place", "plumbing", "plus", "pm", "pn",
	"poker", "porn", "post", "pr", "press", "pro", "productions",
	"properties", "property", "protection", "ps", "pt", "pub", "pw",
	"py",
	"qa", "qpon", "quebec",
	"racing", "re", "realtor", "realty", "recipes", "red", "rehab",
	"reise", "reisen", "rent", "rentals", "repair", "report",
	"republican", "rest", "restaurant", "review", "reviews", "rich",
	"rio", "rip", "ro", "rocks", "rodeo", "rs", "ru", "run", "rw",
	"sa", "sale", "salon", "sarl", "sb", "sc", "school", "schule",
	"science", "scot", "sd", "se", "services", "sex", "sexy", "sg",
	"sh", "shiksha", "shoes", "shop", "shopping", "show", "si", "singles",
	"site", "sj", "sk", "sl", "sm", "sn", "so", "soccer", "social",
	"software", "solar", "solutions", "soy", "space", "sr", "srl", "st",
	"stream", "studio", "study", "style", "su", "support", "surf",
	"surgery", "sv", "sx", "sy", "systems", "sz",
	"taipei", "talk", "tattoo", "tax", "taxi", "tc", "td", "team",
	"tech", "technology", "tel", "temasek", "tennis", "tf", "tg", "th",
	"theater", "tienda", "tips", "tires", "tj", "tk", "tl", "tm", "tn",
	"to", "today", "tokyo", "tools", "top", "tours", "town", "toys",
	"trade", "training", "travel", "tt", "tube", "tv", "tw", "tz",
	"ua", "ug", "uk", "university", "uno", "us", "uy", "uz",
	"va", "vacations", "vc", "ve", "vegas", "ventures", "vet", "vg",
	"vi", "video", "villas", "vin", "vip", "vision", "vn", "vodka",
	"vote", "voting", "voto", "voyage", "vu",
	"wales", "wang", "watch", "webcam", "website", "wedding", "wf",
	"wien", "wiki", "win", "wine", "work", "works", "world", "ws",
	"wtf",
	"xxx", "xyz",
	"ye", "yoga", "yokohama", "yt",
	"za", "zip", "zm", "zone", "zw",
}

// utldSource lists a handful of internationalized TLDs used as Unicode IDN
// suffixes. Each is represented here in its Unicode (non-Punycode) form,
// matching how it appears in rendered text.
var utldSource = []string{
	"рф",       // .рф — Russian Federation
	"中国",       // .中国 — China
	"中國",       // .中國 — China (traditional)
	"公司",       // .公司 — company
	"网络",       // .网络 — network
	"香港",       // .香港 — Hong Kong
	"台湾",       // .台湾 — Taiwan
	"台灣",       // .台灣 — Taiwan (traditional)
	"日本",       // .日本 — Japan
	"한국",       // .한국 — Korea
	"الجزائر",  // .الجزائر — Algeria
	"مصر",      // .مصر — Egypt
	"இலங்கை",   // .இலங்கை — Sri Lanka (Tamil)
	"ভারত",     // .ভারত — India (Bengali)
	"भारत",     // .भारत — India (Devanagari)
}
