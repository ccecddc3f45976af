package labels

// OtherOption is the multi-select value that reveals a free-text field.
const OtherOption = "Other"

// GeneralInterference is the limitation key for overall interference with
// daily life, offered next to the individual life domains.
const GeneralInterference = "generalInterference"

// BodyRegions lists the selectable pain locations.
var BodyRegions = NewTable(
	Option{"head", "Head"},
	Option{"neck", "Neck"},
	Option{"torso", "Torso/Chest/Abdomen"},
	Option{"left-arm", "Left Arm"},
	Option{"right-arm", "Right Arm"},
	Option{"left-hand", "Left Hand"},
	Option{"right-hand", "Right Hand"},
	Option{"left-leg", "Left Leg"},
	Option{"right-leg", "Right Leg"},
	Option{"left-foot", "Left Foot"},
	Option{"right-foot", "Right Foot"},
)

var TimeOfDay = NewTable(Plain(
	"Morning",
	"Afternoon",
	"Evening",
	"Night",
	"No specific pattern",
	"Varies greatly",
)...)

var Likert = NewTable(Plain(
	"Never",
	"Rarely",
	"Sometimes",
	"Often",
	"Very Often",
)...)

// LifeDomains labels the impact domains of section 3.
var LifeDomains = NewTable(
	Option{"physicalTasks", "Ability to perform physical tasks (e.g., lifting, bending, walking far)"},
	Option{"sleep", "Sleep (e.g., falling asleep, staying asleep, restful sleep)"},
	Option{"mood", "Mood (e.g., feeling down, irritable, anxious due to pain)"},
	Option{"concentration", "Concentration and thinking clearly"},
	Option{"socialActivities", "Social activities and relationships with others"},
	Option{"hobbies", "Enjoyment of hobbies and leisure activities"},
	Option{"workResponsibilities", "Work or regular responsibilities (including housework)"},
)

// Limitations is the life-domain table extended with general interference.
var Limitations = NewTable(append(
	[]Option{{GeneralInterference, "General Interference with Daily Life"}},
	LifeDomains.Options()...,
)...)

// Emotions labels the emotional response questions of section 4.
var Emotions = NewTable(
	Option{"frustrated", "Felt Frustrated"},
	Option{"anxious", "Felt Anxious/Worried"},
	Option{"hopeless", "Felt Hopeless/Helpless"},
	Option{"angry", "Felt Angry"},
)

var PainDescriptors = NewTable(Plain(
	"Aching",
	"Sharp",
	"Burning",
	"Throbbing",
	"Stabbing",
	"Tingling",
	"Numbness",
	"Cramping",
	"Radiating",
	OtherOption,
)...)

var CopingStrategies = NewTable(Plain(
	"Pain medication (prescribed)",
	"Pain medication (over-the-counter)",
	"Physical therapy/exercises",
	"Heat/cold application",
	"Rest",
	"Pacing activities",
	"Mindfulness/meditation",
	"Distraction (e.g., hobbies)",
	"Social support",
	OtherOption,
)...)

var SupportNeeds = NewTable(Plain(
	"More information",
	"Medical advice",
	"Support from family/friends",
	"New strategies",
	OtherOption,
)...)
