package gamemaster

// Dice supplies already-rolled values, one per turn.
type Dice interface {
	Roll() (int, error)
}

// ScriptedDice hands out a fixed sequence of rolls.
type ScriptedDice struct {
	rolls []int
	next  int
}

func NewScriptedDice(rolls ...int) *ScriptedDice {
	return &ScriptedDice{rolls: rolls}
}

func (d *ScriptedDice) Roll() (int, error) {
	if d.next >= len(d.rolls) {
		return 0, ErrNoRolls
	}
	roll := d.rolls[d.next]
	d.next++
	return roll, nil
}
