package main

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/overworld/ecs/components"
	"github.com/milk9111/overworld/level"
)

var textColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// NewPauseUI builds the pause menu: one upgrade button per stat, the current
// stat table and a Resume button.
func NewPauseUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: textColor}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, textColor),
		widget.TextOpts.WidgetOpts(centered),
	)
	g.statsText = widget.NewText(
		widget.TextOpts.Text("", &face, textColor),
		widget.TextOpts.WidgetOpts(centered),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(screenWidth/2, screenHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(g.statsText)

	for _, stat := range components.StatOrder {
		stat := stat
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressed}),
			widget.ButtonOpts.Text("Upgrade "+string(stat), &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				g.upgrade(stat)
			}),
		))
	}

	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressed}),
		widget.ButtonOpts.Text("Resume", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.paused = false
		}),
	))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func (g *Game) upgrade(stat components.Stat) {
	err := g.level.Upgrade(stat)
	switch {
	case err == nil:
		g.status = string(stat) + " upgraded"
	case errors.Is(err, level.ErrNotEnoughExp):
		g.status = "not enough experience"
	case errors.Is(err, level.ErrStatMaxed):
		g.status = string(stat) + " is maxed"
	default:
		g.status = err.Error()
	}
	g.refreshPauseUI()
}

// refreshPauseUI rewrites the stat table shown in the menu.
func (g *Game) refreshPauseUI() {
	p := g.level.Player()
	if p == nil || g.statsText == nil {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "EXP %.0f\n", p.Exp)
	for _, stat := range components.StatOrder {
		fmt.Fprintf(&b, "%-7s %6.1f / %-6.1f cost %.0f\n", stat, p.Stats[stat], p.MaxStats[stat], p.UpgradeCost[stat])
	}
	if g.status != "" {
		b.WriteString(g.status)
	}
	g.statsText.Label = b.String()
}
