// meta/meta.go
package meta

// MAX_TURNS caps the number of rolls in one game.
const MAX_TURNS = 2000

// DEFAULT_SEED seeds the random agents when none is given.
const DEFAULT_SEED = 1

// PLAYER_NAMES replace blank player names in a transcript header.
var PLAYER_NAMES = [2]string{"Player0", "Player1"}
