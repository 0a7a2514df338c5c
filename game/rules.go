package game

type Rules interface {
	// ExactExit reports whether a roll must end exactly on End. When false, a
	// walk that reaches End with steps to spare simply stays there.
	ExactExit() bool
}
