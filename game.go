package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs/components"
	"github.com/milk9111/overworld/inspect"
	"github.com/milk9111/overworld/level"
	"github.com/milk9111/overworld/levels"
	"github.com/milk9111/overworld/logger"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/save"
)

const (
	screenWidth    = 1280
	screenHeight   = 720
	ticksPerSecond = 60

	// inspectEvery publishes a snapshot six times a second.
	inspectEvery = 10
)

type Config struct {
	LevelName string
	SavePath  string
	Debug     bool
	Inspect   bool
}

type Game struct {
	cfg     Config
	input   *Input
	level   *level.Level
	watcher *prefabs.Watcher
	hub     *inspect.Hub

	paused    bool
	pauseUI   *ebitenui.UI
	statsText *widget.Text
	status    string

	elapsed time.Duration
	camera  cp.Vector
}

func NewGame(cfg Config) (*Game, error) {
	cat, err := prefabs.LoadCatalog()
	if err != nil {
		return nil, err
	}
	lvl, err := levels.Load(cfg.LevelName)
	if err != nil {
		return nil, err
	}

	var st *save.State
	if cfg.SavePath != "" {
		st, err = save.Read(cfg.SavePath)
		if err != nil {
			logger.Log.WithError(err).Warn("ignoring unreadable save")
			st = nil
		}
	}

	l, err := level.New(cat, lvl, level.Options{State: st})
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:   cfg,
		input: NewInput(),
		level: l,
	}
	g.pauseUI = NewPauseUI(g)

	if cfg.Debug {
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.DefaultDebounce)
		if err != nil {
			logger.Log.WithError(err).Warn("prefab hot reload disabled")
		} else {
			g.watcher = w
		}
	}
	if cfg.Inspect {
		g.hub = inspect.NewHub(inspectEvery)
	}
	return g, nil
}

func (g *Game) Update() error {
	g.input.Update()
	if g.input.MenuPressed() {
		g.paused = !g.paused
		g.refreshPauseUI()
	}
	if g.input.SavePressed() {
		g.save()
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.pollWatcher()

	g.elapsed += time.Second / ticksPerSecond
	g.level.Step(g.elapsed, 1.0/ticksPerSecond, g.input.State())
	if sounds := g.level.DrainSounds(); len(sounds) > 0 {
		logger.Log.WithField("sounds", sounds).Debug("play")
	}
	if g.hub != nil {
		if err := g.hub.Publish(g.level.Frame(), g.level.Snapshot()); err != nil {
			logger.Log.WithError(err).Warn("inspector publish failed")
		}
	}
	return nil
}

// pollWatcher applies pending prefab edits without blocking the frame.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change := <-g.watcher.Changes:
			g.reload(change)
		case err := <-g.watcher.Errors:
			logger.Log.WithError(err).Warn("prefab watcher")
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	log := logger.Log.WithField("file", change.Name)
	switch {
	case change.Script():
		script, err := prefabs.LoadUpgradeScript(g.level.Catalog.Player.UpgradeScript)
		if err != nil {
			log.WithError(err).Warn("upgrade script reload failed")
			return
		}
		g.level.Catalog.Upgrade = script
		log.Info("upgrade script reloaded")
	case change.Name == "monsters.yaml":
		specs, err := prefabs.LoadMonsterSpecs()
		if err != nil {
			log.WithError(err).Warn("monster reload failed")
			return
		}
		n := g.level.Retune(specs)
		log.WithField("monsters", n).Info("monsters retuned")
	default:
		log.Info("change takes effect on next start")
	}
}

func (g *Game) save() {
	if g.cfg.SavePath == "" {
		return
	}
	st, err := g.level.State()
	if err != nil {
		logger.Log.WithError(err).Warn("nothing to save")
		return
	}
	if err := save.Write(g.cfg.SavePath, st); err != nil {
		logger.Log.WithError(err).Error("save failed")
		g.status = "save failed"
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"path":     g.cfg.SavePath,
		"defeated": len(st.DefeatedMonsters),
		"cut":      len(st.DestroyedGrass),
	}).Info("game saved")
	g.status = "saved"
}

// Close saves and stops background work.
func (g *Game) Close() {
	g.save()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.hub != nil {
		g.hub.Close()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkolivegreen)
	p := g.level.Player()
	if p != nil {
		g.camera = p.Center().Sub(cp.Vector{X: screenWidth / 2, Y: screenHeight / 2})
	}
	w := g.level.World

	for _, e := range w.ObstacleSet().Entities() {
		if o := w.GetObstacle(e); o != nil {
			g.fillRect(screen, o.Hitbox, colornames.Slategray)
		}
	}
	for _, e := range w.PropSet().Entities() {
		if pr := w.GetProp(e); pr != nil {
			g.fillRect(screen, pr.Rect, grassColor(pr.Variant))
		}
	}
	for _, e := range w.MonsterSet().Entities() {
		m := w.GetMonster(e)
		if m == nil {
			continue
		}
		clr := behaviorColor(m.Behavior)
		if !m.Vitals.Vulnerable() {
			clr = colornames.White
		}
		g.fillRect(screen, m.Rect, clr)
		if g.cfg.Debug {
			g.drawPath(screen, m)
		}
	}
	if p != nil {
		clr := color.Color(colornames.Royalblue)
		if !p.Vitals.Vulnerable() {
			clr = colornames.Lightskyblue
		}
		g.fillRect(screen, p.Rect, clr)
	}
	for _, e := range w.AttackSet().Entities() {
		if a := w.GetAttack(e); a != nil {
			g.fillRect(screen, a.Rect, colornames.Orange)
		}
	}
	for _, e := range w.EffectSet().Entities() {
		if fx := w.GetEffect(e); fx != nil {
			x, y := g.toScreen(fx.Pos)
			vector.FillRect(screen, x-3, y-3, 6, 6, effectColor(fx.Kind), false)
		}
	}

	if g.cfg.Debug {
		g.drawHitboxes(screen)
	}
	g.drawHUD(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	p := g.level.Player()
	if p == nil {
		return
	}
	msg := fmt.Sprintf("HP %.0f/%.0f  EN %.0f/%.0f  EXP %.0f  %s / %s  FPS %.0f",
		p.Vitals.Current, p.Stats[components.StatHealth],
		p.Energy, p.Stats[components.StatEnergy],
		p.Exp, p.Weapon().Name, p.Spell().Name, ebiten.ActualFPS())
	if g.status != "" {
		msg += "\n" + g.status
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) drawHitboxes(screen *ebiten.Image) {
	w := g.level.World
	for _, m := range w.Movers() {
		g.strokeRect(screen, m.Kinematics().Hitbox, colornames.Red)
	}
	for _, e := range w.PropSet().Entities() {
		if pr := w.GetProp(e); pr != nil {
			g.strokeRect(screen, pr.Hitbox, colornames.Yellow)
		}
	}
}

func (g *Game) drawPath(screen *ebiten.Image, m *components.Monster) {
	grid := g.level.World.Grid()
	if grid == nil || len(m.Path.Nodes) == 0 {
		return
	}
	prevX, prevY := g.toScreen(m.Center())
	for _, cell := range m.Path.Nodes {
		x, y := g.toScreen(grid.CellCenter(cell))
		vector.StrokeLine(screen, prevX, prevY, x, y, 2, colornames.Gold, true)
		prevX, prevY = x, y
	}
}

func (g *Game) toScreen(v cp.Vector) (float32, float32) {
	return float32(v.X - g.camera.X), float32(v.Y - g.camera.Y)
}

func (g *Game) fillRect(screen *ebiten.Image, r common.Rect, clr color.Color) {
	x, y := g.toScreen(cp.Vector{X: float64(r.X), Y: float64(r.Y)})
	vector.FillRect(screen, x, y, float32(r.W), float32(r.H), clr, false)
}

func (g *Game) strokeRect(screen *ebiten.Image, r common.Rect, clr color.Color) {
	x, y := g.toScreen(cp.Vector{X: float64(r.X), Y: float64(r.Y)})
	vector.StrokeRect(screen, x, y, float32(r.W), float32(r.H), 1.0, clr, false)
}

func behaviorColor(b components.Behavior) color.Color {
	switch b {
	case components.BehaviorMove:
		return colornames.Darkorange
	case components.BehaviorAttack:
		return colornames.Crimson
	}
	return colornames.Indianred
}

func grassColor(variant int) color.Color {
	switch variant {
	case 1:
		return colornames.Forestgreen
	case 2:
		return colornames.Seagreen
	}
	return colornames.Green
}

func effectColor(kind string) color.Color {
	switch kind {
	case level.EffectLeaf:
		return colornames.Lawngreen
	case level.EffectExp:
		return colornames.Gold
	case level.EffectHeal, level.EffectAura:
		return colornames.Palegreen
	case level.EffectFlame:
		return colornames.Orangered
	}
	return colornames.Whitesmoke
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
