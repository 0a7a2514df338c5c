package transcript

import (
	"bufio"
	"fmt"
	"io"
	"royalur/game"
	"royalur/gamemaster"
	"strings"
)

// Writer records a game as a transcript. It is a gamemaster.Observer.
type Writer struct {
	w *bufio.Writer
}

// NewWriter writes the header right away.
func NewWriter(w io.Writer, names [game.NumPlayers]string) (*Writer, error) {
	tw := &Writer{w: bufio.NewWriter(w)}
	for _, name := range names {
		if name == "" || strings.ContainsAny(name, "\r\n") {
			return nil, fmt.Errorf("%w: bad player name %q", ErrMalformed, name)
		}
		fmt.Fprintln(tw.w, name)
	}
	return tw, tw.w.Flush()
}

func (tw *Writer) Observe(e gamemaster.Event) error {
	fmt.Fprintln(tw.w, FormatRoll(e.Roll))
	switch e.Kind {
	case gamemaster.Moved:
		fmt.Fprintln(tw.w, e.Token)
	case gamemaster.Retired:
		fmt.Fprintln(tw.w, Retire)
	}
	return tw.w.Flush()
}
