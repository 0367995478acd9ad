package session

// Reason tags every render with the transition that produced it.
type Reason int

const (
	ReasonStart Reason = iota
	ReasonReveal
	ReasonNextCard
	ReasonSectionComplete
	ReasonNextSection
	ReasonDirectionChanged
	ReasonRestart
)

func (r Reason) String() string {
	switch r {
	case ReasonStart:
		return "start"
	case ReasonReveal:
		return "reveal"
	case ReasonNextCard:
		return "next_card"
	case ReasonSectionComplete:
		return "section_complete"
	case ReasonNextSection:
		return "next_section"
	case ReasonDirectionChanged:
		return "direction_changed"
	case ReasonRestart:
		return "restart"
	}
	return "unknown"
}

// Transitional reports whether the previous card leaves the screen with a fade-out.
func (r Reason) Transitional() bool {
	return r == ReasonNextCard || r == ReasonSectionComplete
}

// Phrase is one side of a card. Missing is set when the card has no phrase for Lang.
type Phrase struct {
	Lang    string
	Text    string
	Missing bool
	Options []string
}

// CardView is the visible part of the current card. Answer is nil until revealed.
type CardView struct {
	Prompt Phrase
	Answer *Phrase
}

// View is a snapshot of the session derived after a transition.
type View struct {
	Reason Reason

	SectionKey   string
	SectionIndex int
	SectionCount int
	SectionSize  int
	CardIndex    int

	Direction Direction
	Revealed  bool

	// Card is nil once the section is complete.
	Card *CardView

	SectionComplete    bool
	AllComplete        bool
	ContinueDisabled   bool
	RestartOffered     bool
	NextSectionOffered bool
}

// Progress returns the 1-based position of the current card. ok is false once the section is complete.
func (v View) Progress() (current, total int, ok bool) {
	if v.SectionComplete {
		return 0, v.SectionSize, false
	}
	return v.CardIndex + 1, v.SectionSize, true
}
