package models

// Group is the fixed relationship category assigned to every card.
type Group string

const (
	GroupWork   Group = "WORK"
	GroupFriend Group = "FRIEND"
	GroupFamily Group = "FAMILY"
	GroupOther  Group = "OTHER"
)

// Groups returns all groups in display order.
func Groups() []Group {
	return []Group{GroupWork, GroupFriend, GroupFamily, GroupOther}
}

// Label returns the Korean display label for the group.
func (g Group) Label() string {
	switch g {
	case GroupWork:
		return "직장"
	case GroupFriend:
		return "친구"
	case GroupFamily:
		return "가족"
	default:
		return "기타"
	}
}

// Valid reports whether g is one of the defined groups.
func (g Group) Valid() bool {
	switch g {
	case GroupWork, GroupFriend, GroupFamily, GroupOther:
		return true
	}
	return false
}

// ParseGroup resolves user input to a Group. Both the enum name
// ("WORK") and the Korean label ("직장") are accepted.
func ParseGroup(s string) (Group, bool) {
	for _, g := range Groups() {
		if s == string(g) || s == g.Label() {
			return g, true
		}
	}
	return GroupOther, false
}

// Card represents one scanned or manually entered contact.
// ID and CreatedAt are assigned at creation and never change.
type Card struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Company   string `json:"company"`
	Title     string `json:"title"`
	Mobile    string `json:"mobile"`
	Tel       string `json:"tel"`
	Email     string `json:"email"`
	Website   string `json:"website"`
	Address   string `json:"address"`
	Group     Group  `json:"group"`
	ImageURL  string `json:"imageUrl,omitempty"` // ImageURL data URL of the captured image, scanned cards only
	CreatedAt int64  `json:"createdAt"`          // CreatedAt milliseconds since epoch
}
