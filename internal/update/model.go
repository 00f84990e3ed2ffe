package update

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/dayboard/internal/daybook"
	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/scheduler"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Today     string
	Templates string
	History   string
	Help      string
	Quit      string
}

type TodayState struct {
	Cursor        int
	Capturing     bool
	CaptureBucket model.Bucket
}

type TemplatesState struct {
	Bucket    model.Bucket
	Cursor    int
	Capturing bool
}

type HistoryState struct {
	Cursor int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type Model struct {
	Board          *daybook.Board
	Poller         *scheduler.Poller
	Today          TodayState
	Templates      TemplatesState
	History        HistoryState
	Palette        CommandPaletteState
	HelpVisible    bool
	Notifications  []Notification
	DesktopEnabled bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error

	ctx             context.Context
	notifier        DesktopNotifier
	logger          *log.Logger
	captureInput    textinput.Model
	commandInput    textinput.Model
	progressBar     progress.Model
	helpModel       help.Model
	historyViewport viewport.Model
}

type Options struct {
	Poller         *scheduler.Poller
	DesktopEnabled bool
	Notifier       DesktopNotifier
	Logger         *log.Logger
}

type SwitchTabMsg struct {
	Tab daybook.Tab
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type RolloverPollMsg struct {
	Event scheduler.PollEvent
}

func NewModel(ctx context.Context, board *daybook.Board, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		Board:          board,
		Poller:         opts.Poller,
		Today:          TodayState{CaptureBucket: model.BucketMorning},
		Templates:      TemplatesState{Bucket: model.BucketMorning},
		DesktopEnabled: opts.DesktopEnabled,
		Keys: GlobalKeyMap{
			Today:     "1",
			Templates: "2",
			History:   "3",
			Help:      "?",
			Quit:      "q",
		},
		ctx:      ctx,
		notifier: opts.Notifier,
		logger:   opts.Logger,
	}
	if m.notifier == nil {
		m.notifier = NoopDesktopNotifier{}
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard, "", 0)
	}
	m.initBubbleComponents()
	m.refreshHistoryView()
	return m
}

func (m *Model) initBubbleComponents() {
	m.captureInput = textinput.New()
	m.captureInput.Placeholder = "what needs doing?"
	m.captureInput.CharLimit = 200

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.Placeholder = "add morning drink water"

	m.progressBar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(20), progress.WithoutPercentage())
	m.helpModel = help.New()
	m.historyViewport = viewport.New(44, 12)
}
