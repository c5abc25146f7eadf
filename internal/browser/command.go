package browser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storekeeper/internal/common"
)

// CommandKind enumerates navigation commands.
type CommandKind int

const (
	Next CommandKind = iota + 1
	Prev
	Select
	Quit
)

func (k CommandKind) String() string {
	switch k {
	case Next:
		return "next"
	case Prev:
		return "prev"
	case Select:
		return "select"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Command is one navigation request. Entry is only meaningful for Select.
type Command struct {
	Kind  CommandKind
	Entry int
}

func (c Command) String() string {
	if c.Kind == Select {
		return fmt.Sprintf("select(%d)", c.Entry)
	}
	return c.Kind.String()
}

// NextPage, PrevPage and QuitBrowsing are the argument-less commands.
var (
	NextPage     = Command{Kind: Next}
	PrevPage     = Command{Kind: Prev}
	QuitBrowsing = Command{Kind: Quit}
)

// SelectEntry selects the n-th entry (1-based) of the current page.
func SelectEntry(n int) Command { return Command{Kind: Select, Entry: n} }

// ParseCommand reads a user reply: "0" or "n" moves to the next page,
// "-1" or "p" to the previous one, "q" quits and a positive integer selects
// that entry. Other integers are returned as a Select so that Navigate
// reports them as out of range.
func ParseCommand(input string) (Command, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "0", "n", "next":
		return NextPage, nil
	case "-1", "p", "prev":
		return PrevPage, nil
	case "q", "quit":
		return QuitBrowsing, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", common.ErrInvalidCommand, input)
	}
	return SelectEntry(n), nil
}
