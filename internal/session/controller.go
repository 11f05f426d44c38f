// Package session implements the arcade's game session controller: the
// main menu, the minigame picker, the settings screen and the routing of
// ticks into the active minigame.
package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pou-arcade/internal/audio"
	"github.com/vovakirdan/pou-arcade/internal/core"
	"github.com/vovakirdan/pou-arcade/internal/registry"
)

// State is the screen the session is on.
type State int

const (
	StateMainMenu State = iota
	StateMinigameSelect
	StateSettings
	StatePlaying
)

// String returns the state's name.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateMinigameSelect:
		return "minigame_select"
	case StateSettings:
		return "settings"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// SettingsStore persists settings changes.
type SettingsStore interface {
	SaveSettings(s core.Settings) error
}

// Options configures a Controller.
type Options struct {
	Settings core.Settings
	Audio    core.Sound    // Ungated audio service; nil plays nothing
	Store    SettingsStore // Optional
	Logger   *log.Logger   // Optional
	// Single makes leaving a minigame end the session instead of
	// returning to the picker.
	Single bool
}

// Result is returned by Step.
type Result struct {
	Quit bool
}

// Controller owns the minigame instances and routes each tick to the
// current screen.
type Controller struct {
	state    State
	games    []registry.Game
	active   int
	wasOver  bool // Active game's game-over flag after the last tick
	main     menu
	picker   menu // Games plus Back
	settings menu
	prefs    core.Settings
	audio    core.Sound
	store    SettingsStore
	logger   *log.Logger
	single   bool
}

// New creates a controller on the main menu. The games are shown in the
// given order.
func New(games []registry.Game, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	snd := opts.Audio
	if snd == nil {
		snd = core.Silent{}
	}
	return &Controller{
		state:    StateMainMenu,
		games:    games,
		main:     menu{size: 3},
		picker:   menu{size: len(games) + 1},
		settings: menu{size: 3},
		prefs:    opts.Settings,
		audio:    snd,
		store:    opts.Store,
		logger:   logger,
		single:   opts.Single,
	}
}

// Start jumps straight into the minigame with the given ID.
func (c *Controller) Start(id string) error {
	for i, g := range c.games {
		if g.ID() == id {
			c.picker.cursor = i
			c.play(i)
			return nil
		}
	}
	return fmt.Errorf("session: unknown game %q", id)
}

// Step advances the session by one tick.
func (c *Controller) Step(in core.InputFrame) Result {
	if in.JustPressed(core.ActionQuit) {
		return Result{Quit: true}
	}

	switch c.state {
	case StateMainMenu:
		return c.stepMain(in)
	case StateMinigameSelect:
		c.stepPicker(in)
	case StateSettings:
		c.stepSettings(in)
	case StatePlaying:
		return c.stepPlaying(in)
	}
	return Result{}
}

func (c *Controller) stepMain(in core.InputFrame) Result {
	c.main.navigate(in)
	if !selected(in) {
		return Result{}
	}

	switch c.main.cursor {
	case mainMinigames:
		c.picker.cursor = 0
		c.setState(StateMinigameSelect)
	case mainSettings:
		c.settings.cursor = 0
		c.setState(StateSettings)
	case mainExit:
		return Result{Quit: true}
	}
	return Result{}
}

func (c *Controller) stepPicker(in core.InputFrame) {
	if in.JustPressed(core.ActionBack) {
		c.toMain()
		return
	}

	c.picker.navigate(in)
	if !selected(in) {
		return
	}
	if c.picker.cursor == len(c.games) {
		c.toMain()
		return
	}
	c.play(c.picker.cursor)
}

func (c *Controller) stepSettings(in core.InputFrame) {
	if in.JustPressed(core.ActionBack) {
		c.toMain()
		return
	}

	c.settings.navigate(in)
	prev := c.prefs

	switch c.settings.cursor {
	case settingsSkin:
		switch {
		case selected(in), in.JustPressed(core.ActionLeft):
			c.prefs.Skin = c.prefs.Skin.Prev()
		case in.JustPressed(core.ActionRight):
			c.prefs.Skin = c.prefs.Skin.Next()
		}
	case settingsAudio:
		if selected(in) || in.JustPressed(core.ActionLeft) || in.JustPressed(core.ActionRight) {
			c.prefs.AudioEnabled = !c.prefs.AudioEnabled
		}
	case settingsBack:
		if selected(in) {
			c.toMain()
		}
	}

	if c.prefs != prev {
		c.save()
	}
}

func (c *Controller) stepPlaying(in core.InputFrame) Result {
	g := c.games[c.active]
	res := g.Step(in, core.TickContext{
		Skin:  c.prefs.Skin,
		Audio: audio.Gate(c.audio, c.prefs.AudioEnabled),
	})

	if res.State.GameOver && !c.wasOver {
		c.logger.Info("round over", "game", g.ID(), "score", res.State.Score)
	}
	c.wasOver = res.State.GameOver

	if res.Outcome == core.OutcomeReturnToMenu {
		if c.single {
			return Result{Quit: true}
		}
		c.setState(StateMinigameSelect)
	}
	return Result{}
}

// play resets game i and routes ticks to it.
func (c *Controller) play(i int) {
	c.active = i
	c.wasOver = false
	c.games[i].Reset()
	c.setState(StatePlaying)
	c.logger.Debug("game started", "game", c.games[i].ID())
}

func (c *Controller) toMain() {
	c.main.cursor = 0
	c.setState(StateMainMenu)
}

func (c *Controller) setState(s State) {
	if s != c.state {
		c.logger.Debug("state", "from", c.state, "to", s)
	}
	c.state = s
}

func (c *Controller) save() {
	c.logger.Debug("settings changed", "skin", c.prefs.Skin, "audio", c.prefs.AudioEnabled)
	if c.store == nil {
		return
	}
	if err := c.store.SaveSettings(c.prefs); err != nil {
		c.logger.Warn("settings not saved", "error", err)
	}
}

// Render draws the current screen.
func (c *Controller) Render(dst core.Surface) {
	switch c.state {
	case StateMainMenu:
		drawMenu(dst, []string{"Minigames", "Settings", "Exit"}, mainRows, c.main.cursor)
	case StateMinigameSelect:
		labels := make([]string, 0, len(c.games)+1)
		for _, g := range c.games {
			labels = append(labels, g.Title())
		}
		labels = append(labels, "Back")
		drawMenu(dst, labels, minigameRows, c.picker.cursor)
	case StateSettings:
		labels := []string{"Skin: " + c.prefs.Skin.String(), audioLabel(c.prefs.AudioEnabled), "Back"}
		drawMenu(dst, labels, settingsRows, c.settings.cursor)
	case StatePlaying:
		c.games[c.active].Render(dst, c.prefs.Skin)
	}
}

// State returns the current screen.
func (c *Controller) State() State {
	return c.state
}

// Settings returns the current settings.
func (c *Controller) Settings() core.Settings {
	return c.prefs
}

// Active returns the minigame being played, or nil on a menu.
func (c *Controller) Active() registry.Game {
	if c.state != StatePlaying {
		return nil
	}
	return c.games[c.active]
}
