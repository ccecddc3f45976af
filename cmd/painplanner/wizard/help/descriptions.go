package help

import "strings"

// HelpText explains a question
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Lookup returns the help for a question key. Keys of nested questions
// ("specificLifeDomains.sleep") fall back to their parent's help.
func Lookup(key string) (HelpText, bool) {
	if t, ok := Texts[key]; ok {
		return t, true
	}
	if i := strings.IndexByte(key, '.'); i > 0 {
		t, ok := Texts[key[:i]]
		return t, ok
	}
	return HelpText{}, false
}

// Texts contains help information for every question, keyed by field
var Texts = map[string]HelpText{
	"currentPainIntensity": {
		Title:       "CURRENT PAIN INTENSITY",
		Description: "How strong your pain is right now.",
		Details:     "0 means no pain, 10 means the worst pain you can imagine. Leave it as Not specified to skip.",
	},
	"primaryPainLocation": {
		Title:       "PAIN LOCATION",
		Description: "The body regions where you feel pain most.",
		Details:     "Pick every region that applies. Use the body map to mark exact spots.",
	},
	"pinLocations": {
		Title:       "BODY MAP",
		Description: "Mark exact spots on the body diagram.",
		Details: `Ctrl+B: open the map
Arrows: move the cursor | a: add a pin
[ ]: select a pin | d: drag, Enter to drop
e: label | x: remove | Esc: back to the questions`,
	},
	"painDescriptors": {
		Title:       "PAIN DESCRIPTION",
		Description: "Words that describe how your pain feels.",
		Details:     "Choose Other to add your own words.",
	},
	"otherPainDescriptor": {
		Title:       "OTHER DESCRIPTION",
		Description: "Your own words for the pain.",
	},
	"avgPainLast7Days": {
		Title:       "AVERAGE PAIN",
		Description: "Your typical pain level over the past 7 days.",
		Details:     "0 = no pain, 10 = worst imaginable.",
	},
	"worstPainLast7Days": {
		Title:       "WORST PAIN",
		Description: "The highest your pain reached in the past 7 days.",
	},
	"leastPainLast7Days": {
		Title:       "LEAST PAIN",
		Description: "The lowest your pain got in the past 7 days.",
	},
	"painWorstTime": {
		Title:       "WORST TIME OF DAY",
		Description: "When your pain tends to be at its worst.",
		Details:     "Patterns help your care team plan treatment and activities.",
	},
	"activitiesWorstPain": {
		Title:       "ACTIVITIES THAT WORSEN PAIN",
		Description: "Whether specific activities or situations make the pain worse.",
		Details:     "Answer Yes to describe them.",
	},
	"activitiesWorstPainDesc": {
		Title:       "WHAT MAKES IT WORSE",
		Description: "Describe the activities or situations.",
	},
	"activitiesBetterPain": {
		Title:       "ACTIVITIES THAT EASE PAIN",
		Description: "Whether anything makes the pain better.",
		Details:     "Answer Yes to describe it.",
	},
	"activitiesBetterPainDesc": {
		Title:       "WHAT MAKES IT BETTER",
		Description: "Describe what helps.",
	},
	"generalInterference": {
		Title:       "GENERAL INTERFERENCE",
		Description: "How much pain has interfered with your daily life overall.",
		Details:     "0 = does not interfere, 10 = completely interferes.",
	},
	"specificLifeDomains": {
		Title:       "LIFE AREAS",
		Description: "How much pain interferes with each area of life.",
		Details:     "0 = does not interfere, 10 = completely interferes.",
	},
	"emotionalResponse": {
		Title:       "FEELINGS ABOUT PAIN",
		Description: "How often you have felt this way because of your pain.",
		Details:     "Think about the past 7 days.",
	},
	"positiveOutlook": {
		Title:       "POSITIVE OUTLOOK",
		Description: "How often you felt able to stay positive despite the pain.",
	},
	"currentStrategies": {
		Title:       "CURRENT STRATEGIES",
		Description: "What you currently do to manage your pain.",
		Details:     "Removing a strategy also removes its helpfulness rating.",
	},
	"otherStrategy": {
		Title:       "OTHER STRATEGY",
		Description: "A strategy not in the list.",
	},
	"mainStrategiesToRate": {
		Title:       "STRATEGIES TO RATE",
		Description: "Choose up to 3 of your strategies to rate.",
		Details:     "Only strategies you selected above can be rated.",
	},
	"mainStrategiesHelpfulness": {
		Title:       "HELPFULNESS",
		Description: "How helpful this strategy is for you.",
		Details:     "0 = not at all helpful, 10 = extremely helpful.",
	},
	"confidenceInManagement": {
		Title:       "CONFIDENCE",
		Description: "How confident you feel managing your pain day to day.",
		Details:     "0 = not at all confident, 10 = completely confident.",
	},
	"mostImpactfulLimitation": {
		Title:       "MOST IMPACTFUL LIMITATION",
		Description: "The area of life where pain limits you most.",
		Details:     "This is a good place to focus a first goal.",
	},
	"smallAchievableGoal": {
		Title:       "SMALL ACHIEVABLE GOAL",
		Description: "One small step you could take in the next week or two.",
		Details:     "Keep it specific, e.g. walk for 10 minutes three times this week.",
	},
	"supportNeeded": {
		Title:       "SUPPORT NEEDED",
		Description: "What would help you reach your goal.",
		Details:     "Choose Other to describe something else.",
	},
	"otherSupportNeeded": {
		Title:       "OTHER SUPPORT",
		Description: "Support not in the list.",
	},
	"action": {
		Title:       "SUMMARY ACTIONS",
		Description: "Save or share your summary.",
		Details: `Download PDF: writes a printable summary with your body map
Copy for email: puts a ready-to-send message on the clipboard
Export DICOM: wraps the PDF for clinic archives`,
	},
}
