// Package console runs a game in a plain terminal: the board is printed as text and
// moves are typed as two letters, row then column.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"termothello/engine"
	"termothello/types"
)

const invalidMoveMsg = "Invalid move. Try again."

type CommandType int

const (
	CmdNone CommandType = iota
	CmdMove
	CmdHints
	CmdScore
	CmdHistory
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Arg  string
}

// parseCommand drops the line terminator only; moves are exactly two characters.
func parseCommand(input string) Command {
	input = strings.TrimRight(input, "\r\n")
	switch input {
	case "":
		return Command{Type: CmdNone}
	case "hints":
		return Command{Type: CmdHints}
	case "score":
		return Command{Type: CmdScore}
	case "history":
		return Command{Type: CmdHistory}
	case "help", "?":
		return Command{Type: CmdHelp}
	case "quit", "exit":
		return Command{Type: CmdQuit}
	}
	// Anything else is treated as a move
	return Command{Type: CmdMove, Arg: input}
}

// Driver plays one game on a line-oriented terminal.
type Driver struct {
	eng     engine.GameEngine
	in      Prompter
	out     io.Writer
	log     *slog.Logger
	hints   bool
	session string
}

// New creates a driver for eng. showMoves turns on legal-move markers.
func New(eng engine.GameEngine, in Prompter, out io.Writer, logger *slog.Logger, showMoves bool) *Driver {
	session := uuid.NewString()
	return &Driver{
		eng:     eng,
		in:      in,
		out:     out,
		log:     logger.With("session", session),
		hints:   showMoves,
		session: session,
	}
}

// Run loops until the game ends, input is exhausted, the player quits or ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	d.log.Info("session started")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.eng.Status() == types.Over {
			d.showResult()
			return nil
		}

		legal := d.eng.LegalMoves()
		if legal.Empty() {
			// Only reachable from a position where the side to move is already stuck.
			d.advance()
			continue
		}

		d.print(RenderBoard(d.eng, d.hints))
		d.in.SetPrompt(fmt.Sprintf("Enter move for colour %c (RowCol): ", d.eng.Turn().Symbol()))
		line, err := d.in.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				d.log.Info("session ended", "reason", "input closed")
				return nil
			}
			return fmt.Errorf("read move: %w", err)
		}

		cmd := parseCommand(line)
		switch cmd.Type {
		case CmdQuit:
			d.log.Info("session ended", "reason", "quit")
			return nil
		case CmdHints:
			d.hints = !d.hints
			d.println(fmt.Sprintf("Move hints: %t", d.hints))
		case CmdScore:
			d.showScore()
		case CmdHistory:
			d.showHistory()
		case CmdHelp:
			d.showHelp()
		case CmdMove:
			d.play(cmd.Arg)
		case CmdNone:
			d.println(invalidMoveMsg)
		}
	}
}

func (d *Driver) play(input string) {
	pos, err := types.ParseCoord(input)
	if err != nil {
		d.log.Debug("rejected input", "input", input, "error", err)
		d.println(invalidMoveMsg)
		return
	}

	res, err := d.eng.AttemptMove(pos)
	if err != nil {
		d.log.Debug("rejected move", "coord", pos.String(), "error", err)
		d.println(invalidMoveMsg)
		return
	}
	d.log.Info("move", "color", res.Color.String(), "coord", res.Coord.String(), "flipped", res.Flipped)

	d.advance()
}

// advance moves to the next turn and reports skipped sides. It returns false once
// the game is over.
func (d *Driver) advance() bool {
	turn, err := d.eng.AdvanceTurn()
	for _, side := range turn.Passed {
		d.log.Info("forced pass", "color", side.String())
		d.println(fmt.Sprintf("%s player has no valid move.", side))
	}
	if err != nil {
		d.log.Warn("advance turn", "error", err)
		return false
	}
	if !turn.Continues {
		d.println("No more moves possible.")
		return false
	}
	return true
}

func (d *Driver) showResult() {
	d.print(RenderBoard(d.eng, false))
	verdict, err := d.eng.Result()
	if err != nil {
		d.println("Game isn't over.")
		return
	}
	black, white := d.eng.Score()
	d.log.Info("game over", "black", black, "white", white, "verdict", verdict.String())
	d.println(verdict.String())
}

func (d *Driver) showScore() {
	black, white := d.eng.Score()
	d.println(fmt.Sprintf("Score: Black %d, White %d", black, white))
}

func (d *Driver) showHistory() {
	history := d.eng.History()
	if len(history) == 0 {
		d.println("No moves yet.")
		return
	}
	var sb strings.Builder
	for _, m := range history {
		if m.Pass {
			fmt.Fprintf(&sb, "%3d. %s pass\n", m.Number, m.Color)
		} else {
			fmt.Fprintf(&sb, "%3d. %s %s (+%d)\n", m.Number, m.Color, m.Coord, m.Flipped)
		}
	}
	d.print(sb.String())
}

func (d *Driver) showHelp() {
	help := `Commands:
  <row><col>  - Place a disc, e.g. cd (row c, column d)
  hints       - Toggle legal move markers (*)
  score       - Show disc counts
  history     - List moves and passes so far
  quit/exit   - Leave the game
  help/?      - Show this help message`
	d.println(help)
}

func (d *Driver) print(s string) {
	fmt.Fprint(d.out, s)
}

func (d *Driver) println(s string) {
	fmt.Fprintln(d.out, s)
}

// Session returns the id attached to this driver's log records.
func (d *Driver) Session() string {
	return d.session
}
