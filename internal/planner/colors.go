package planner

// Fixed subject palette. Unknown subjects fall back to the first palette
// color. The color chosen at task creation is persisted on the task, so a
// later change to this table never restyles existing tasks.
var subjectColors = map[string]string{
	"Mathematics":      "blue",
	"Science":          "green",
	"English":          "purple",
	"History":          "orange",
	"Geography":        "teal",
	"Physics":          "indigo",
	"Chemistry":        "pink",
	"Biology":          "emerald",
	"Computer Science": "cyan",
	"Economics":        "amber",
	"Literature":       "violet",
	"Social Studies":   "rose",
	"Urdu":             "lime",
}

const defaultColor = "blue"

var badgeClasses = map[string]string{
	"blue":    "bg-blue-100 text-blue-700 dark:bg-blue-900/30 dark:text-blue-400",
	"green":   "bg-green-100 text-green-700 dark:bg-green-900/30 dark:text-green-400",
	"purple":  "bg-purple-100 text-purple-700 dark:bg-purple-900/30 dark:text-purple-400",
	"orange":  "bg-orange-100 text-orange-700 dark:bg-orange-900/30 dark:text-orange-400",
	"teal":    "bg-teal-100 text-teal-700 dark:bg-teal-900/30 dark:text-teal-400",
	"indigo":  "bg-indigo-100 text-indigo-700 dark:bg-indigo-900/30 dark:text-indigo-400",
	"pink":    "bg-pink-100 text-pink-700 dark:bg-pink-900/30 dark:text-pink-400",
	"emerald": "bg-emerald-100 text-emerald-700 dark:bg-emerald-900/30 dark:text-emerald-400",
	"cyan":    "bg-cyan-100 text-cyan-700 dark:bg-cyan-900/30 dark:text-cyan-400",
	"amber":   "bg-amber-100 text-amber-700 dark:bg-amber-900/30 dark:text-amber-400",
	"violet":  "bg-violet-100 text-violet-700 dark:bg-violet-900/30 dark:text-violet-400",
	"rose":    "bg-rose-100 text-rose-700 dark:bg-rose-900/30 dark:text-rose-400",
	"lime":    "bg-lime-100 text-lime-700 dark:bg-lime-900/30 dark:text-lime-400",
}

var indicatorClasses = map[string]string{
	"blue":    "bg-blue-500",
	"green":   "bg-green-500",
	"purple":  "bg-purple-500",
	"orange":  "bg-orange-500",
	"teal":    "bg-teal-500",
	"indigo":  "bg-indigo-500",
	"pink":    "bg-pink-500",
	"emerald": "bg-emerald-500",
	"cyan":    "bg-cyan-500",
	"amber":   "bg-amber-500",
	"violet":  "bg-violet-500",
	"rose":    "bg-rose-500",
	"lime":    "bg-lime-500",
}

func subjectColorName(subject string) string {
	if color, ok := subjectColors[subject]; ok {
		return color
	}
	return defaultColor
}

// PersistedSubjectColor resolves the color to store on a task at creation
// time.
func PersistedSubjectColor(subject string) string {
	return subjectColorName(subject)
}

// BadgeClass returns the subject badge style. A persisted color on the task
// wins over the live registry lookup; tasks created before color persistence
// existed carry no color and derive one from the subject name.
func BadgeClass(subject, persistedColor string) string {
	name := persistedColor
	if name == "" {
		name = subjectColorName(subject)
	}
	if class, ok := badgeClasses[name]; ok {
		return class
	}
	return badgeClasses[defaultColor]
}

// IndicatorClass returns the indicator bar style with the same persisted
// color precedence as BadgeClass.
func IndicatorClass(subject, persistedColor string) string {
	name := persistedColor
	if name == "" {
		name = subjectColorName(subject)
	}
	if class, ok := indicatorClasses[name]; ok {
		return class
	}
	return indicatorClasses[defaultColor]
}
