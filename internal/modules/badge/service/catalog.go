package badge

// Badge ids granted by the evaluator. EarlyAdopter is the one stateful
// exception: it is granted once at registration and only carried forward here.
const (
	EarlyAdopter    = "early-adopter"
	ProfilePerfect  = "profile-perfect"
	ConnectorSocial = "connector-social"
	SocialGitHub    = "social-github"
	SocialLinkedIn  = "social-linkedin"
	SocialInstagram = "social-instagram"
	Storyteller     = "storyteller"
	FaceOfCommunity = "face-of-community"
	LocalHero       = "local-hero"
	Builder1        = "builder-1"
	Builder3        = "builder-3"
	Builder5        = "builder-5"
	Builder10       = "builder-10"
	Streak7         = "streak-7"
)

// Info describes a badge for the HTTP surface.
type Info struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var Catalog = map[string]Info{
	EarlyAdopter:    {ID: EarlyAdopter, Name: "Early Adopter", Description: "Joined while the community was still small", Icon: "🌱"},
	ProfilePerfect:  {ID: ProfilePerfect, Name: "Profile Perfect", Description: "Name, bio, photo and role all filled in", Icon: "✨"},
	ConnectorSocial: {ID: ConnectorSocial, Name: "Connector", Description: "GitHub, LinkedIn and Instagram all linked", Icon: "🔗"},
	SocialGitHub:    {ID: SocialGitHub, Name: "GitHub Linked", Description: "GitHub profile linked", Icon: "🐙"},
	SocialLinkedIn:  {ID: SocialLinkedIn, Name: "LinkedIn Linked", Description: "LinkedIn profile linked", Icon: "💼"},
	SocialInstagram: {ID: SocialInstagram, Name: "Instagram Linked", Description: "Instagram profile linked", Icon: "📸"},
	Storyteller:     {ID: Storyteller, Name: "Storyteller", Description: "A bio with something to say", Icon: "📖"},
	FaceOfCommunity: {ID: FaceOfCommunity, Name: "Face of the Community", Description: "Profile photo uploaded", Icon: "🙂"},
	LocalHero:       {ID: LocalHero, Name: "Local Hero", Description: "City or state shared", Icon: "📍"},
	Builder1:        {ID: Builder1, Name: "Builder I", Description: "First project published", Icon: "🔨"},
	Builder3:        {ID: Builder3, Name: "Builder III", Description: "Three projects published", Icon: "🏗️"},
	Builder5:        {ID: Builder5, Name: "Builder V", Description: "Five projects published", Icon: "🏛️"},
	Builder10:       {ID: Builder10, Name: "Builder X", Description: "Ten projects published", Icon: "🚀"},
	Streak7:         {ID: Streak7, Name: "Week Streak", Description: "Seven days of activity in a row", Icon: "🔥"},
}

// SocialBadges are the badges that score at the higher social weight.
var SocialBadges = map[string]struct{}{
	SocialGitHub:    {},
	SocialLinkedIn:  {},
	SocialInstagram: {},
}
