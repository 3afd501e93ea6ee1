// termothello is a terminal Othello game for two players sharing one keyboard.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/rivo/tview"

	"termothello/config"
	"termothello/console"
	"termothello/engine"
	"termothello/logging"
	"termothello/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagTUI      = flag.Bool("tui", false, "Play in the full-screen board instead of the line prompt")
	flagHints    = flag.Bool("hints", false, "Mark legal moves on the board")
	flagLogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error)")
	flagFocus    = flag.Bool("focus", false, "Start the full-screen board in focus mode")
	flagVersion  = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config
var logger *slog.Logger

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termothello %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "termothello: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		return err
	}
	if *flagLogLevel != "" {
		cfg.LogLevel = *flagLogLevel
	}
	if *flagHints {
		cfg.ShowMoves = true
	}

	var closer io.Closer
	logger, closer, err = logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	if *flagTUI || *flagFocus {
		return runTUI()
	}
	return runConsole()
}

// runConsole plays one game on the line prompt.
func runConsole() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prompter, closePrompt, err := console.NewPrompter(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer closePrompt()

	driver := console.New(engine.NewGame(), prompter, os.Stdout, logger, cfg.ShowMoves)
	if err := driver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// runTUI runs the tview application until the player quits.
func runTUI() error {
	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● termothello ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoard(cfg, gameHint, logger)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil && !gameBoard.IsFinished() {
				gameBoard.ResetSelection()
			} else {
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyDown:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyRight:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyEnter:
			selTile := gameBoard.SelectedTile()
			if selTile == nil {
				gameBoard.MoveSelection(0, 0)
				return nil
			}
			gameBoard.PlayMove(*selTile)
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(0, -1)
			case 'j':
				gameBoard.MoveSelection(1, 0)
			case 'k':
				gameBoard.MoveSelection(-1, 0)
			case 'l':
				gameBoard.MoveSelection(0, 1)
			case 'm':
				gameBoard.ToggleMoveMarkers()
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	setupUI := ui.NewGameSetup(
		cfg.ShowMoves,
		func(showMoves bool) {
			startGame(showMoves)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	colorConfig := ui.NewColorConfig(cfg, logger, func() {
		// Refresh the game board with new colors
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	quickStart := *flagFocus
	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 50), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(cfg.ShowMoves)
		gameBoard.SetFocusMode(true)
		ui.BuildFocusLayout(gameFrame, gameBoard)
	}

	return app.SetRoot(rootPage, true).Run()
}

// startGame puts a fresh game on the board.
func startGame(showMoves bool) {
	session := uuid.NewString()
	cfg.ShowMoves = showMoves
	gameBoard.SetConfig(cfg)
	gameBoard.SetLogger(logger.With("session", session))
	gameBoard.SetMoveMarkers(showMoves)
	gameBoard.ConnectEngine(engine.NewGame())
	logger.Info("session started", "session", session, "mode", "tui")
	rootPage.SwitchToPage("gameview")
}
