package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/mtraindog/Geist/ecs"
	"github.com/mtraindog/Geist/ecs/component"
)

var backgroundColor = color.NRGBA{R: 0x14, G: 0x16, B: 0x1c, A: 0xff}

// DebugUI is a small always-on overlay showing live world stats and a
// pause toggle.
type DebugUI struct {
	game   *Game
	ui     *ebitenui.UI
	status *widget.Text
	pause  *widget.Button
}

// NewDebugUI builds the overlay from colored nine-slices and the built-in
// basic font, so no theme assets need to be loaded.
func NewDebugUI(g *Game) *DebugUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	d := &DebugUI{game: g}

	d.status = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
	)

	d.pause = widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Pause", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.paused = !g.paused
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(d.status)
	panel.AddChild(d.pause)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	d.ui = &ebitenui.UI{Container: root}
	return d
}

func (d *DebugUI) Update() {
	w := d.game.world
	c := w.Components()
	d.status.Label = fmt.Sprintf(
		"fps %.0f\nentities %d  contacts %d\nbodies %d  scripts %d  sprites %d",
		ebiten.ActualFPS(),
		w.Entities().Count(),
		d.game.proximity.Contacts(),
		ecs.Count[component.Body](c),
		ecs.Count[component.Script](c),
		ecs.Count[component.Sprite](c),
	)
	label := "Pause"
	if d.game.paused {
		label = "Resume"
	}
	if text := d.pause.Text(); text != nil {
		text.Label = label
	}
	d.ui.Update()
}

func (d *DebugUI) Draw(screen *ebiten.Image) {
	d.ui.Draw(screen)
}
