package game

// StandardRules lets a token bear off with any roll that reaches End.
type StandardRules struct{}

func (StandardRules) ExactExit() bool { return false }

// StrictRules only lets a token bear off with the exact roll.
type StrictRules struct{}

func (StrictRules) ExactExit() bool { return true }
