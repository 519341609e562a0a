package rulebased

// Log prefixes
const (
	LogPrefixRespond = "internal.resolver.rulebased.Respond"
)

// Resolution paths, for logging only.
const (
	viaRule     = "rule"
	viaOverlap  = "overlap"
	viaFallback = "fallback"
)

// DefaultRules is the keyword table evaluated before overlap scoring, in
// priority order.
var DefaultRules = []Rule{
	{Tag: "goodbye", Keywords: []string{"bye", "goodbye", "see you", "see ya", "i have to go", "talk to you later", "exit"}},
	{Tag: "admission", Keywords: []string{"admission", "apply", "apply for", "eligib", "admission process", "how to apply"}},
	{Tag: "courses", Keywords: []string{"course", "courses", "program", "programs", "degree", "degrees", "which course", "which courses", "what courses", "available courses", "list of courses"}},
	{Tag: "location", Keywords: []string{"where", "location", "address", "located", "campus", "how to reach", "how to get to", "find", "direction"}},
	{Tag: "contact", Keywords: []string{"contact", "phone", "email", "call", "phone number", "contact details", "reach out"}},
	{Tag: "facilities", Keywords: []string{"facility", "facilities", "library", "hostel", "lab", "labs", "classroom", "canteen", "sports"}},
	{Tag: "greeting", Keywords: []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening", "greetings", "is anyone there", "what's up", "how are you"}},
}
