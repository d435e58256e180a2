package fantasy

// Name carries the player's display name variants used for search.
type Name struct {
	Full  string
	First string
	Last  string
}

type Stat struct {
	ID    int
	Value string
}

// Player is the canonical flat record mapped out of the upstream envelope.
// Key uniqueness is assumed, not enforced; duplicates from upstream pass
// through unchanged.
type Player struct {
	Key       string
	ID        string
	Name      Name
	Team      string
	TeamFull  string
	Positions string
	Number    string
	Status    string
	Stats     []Stat

	statByID map[int]string
}

// Stat returns the value for a stat id, if the upstream reported one.
func (p Player) Stat(id int) (string, bool) {
	value, found := p.statByID[id]

	return value, found
}
