// Package ui builds the ebitenui overlays drawn on top of the game world.
package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseUI is the pause overlay. It edits Settings in place and reports
// every change through OnChange.
type PauseUI struct {
	UI       *ebitenui.UI
	Pause    *components.PauseData
	Settings *components.SettingsData

	// Callbacks
	OnChange func(components.SettingsData)
	OnQuit   func()

	volumeButton     *widget.Button
	gizmosButton     *widget.Button
	fullscreenButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

// NewPauseUI creates the pause overlay for the given singletons.
func NewPauseUI(pause *components.PauseData, settings *components.SettingsData, onChange func(components.SettingsData), onQuit func()) *PauseUI {
	pui := &PauseUI{
		Pause:    pause,
		Settings: settings,
		OnChange: onChange,
		OnQuit:   onQuit,
	}

	pui.loadFonts()
	pui.buildUI()
	pui.refresh()

	return pui
}

func (pui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	pui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	pui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (pui *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &pui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))

	contentContainer.AddChild(pui.button("Resume", func() {
		pui.Pause.IsPaused = false
	}))
	pui.volumeButton = pui.button("", func() {
		systems.CycleVolume(pui.Settings)
		pui.changed()
	})
	contentContainer.AddChild(pui.volumeButton)
	pui.gizmosButton = pui.button("", func() {
		pui.Settings.Gizmos = !pui.Settings.Gizmos
		pui.changed()
	})
	contentContainer.AddChild(pui.gizmosButton)
	pui.fullscreenButton = pui.button("", func() {
		pui.Settings.Fullscreen = !pui.Settings.Fullscreen
		pui.changed()
	})
	contentContainer.AddChild(pui.fullscreenButton)
	contentContainer.AddChild(pui.button("Quit", func() {
		if pui.OnQuit != nil {
			pui.OnQuit()
		}
	}))

	rootContainer.AddChild(contentContainer)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (pui *PauseUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 22),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &pui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (pui *PauseUI) changed() {
	pui.refresh()
	if pui.OnChange != nil {
		pui.OnChange(*pui.Settings)
	}
}

// refresh updates button labels to match the settings.
func (pui *PauseUI) refresh() {
	setLabel(pui.volumeButton, fmt.Sprintf("Volume: %d%%", int(systems.Volume(pui.Settings)*100+0.5)))
	setLabel(pui.gizmosButton, "Gizmos: "+onOff(pui.Settings.Gizmos))
	setLabel(pui.fullscreenButton, "Fullscreen: "+onOff(pui.Settings.Fullscreen))
}

func setLabel(b *widget.Button, label string) {
	if b == nil {
		return
	}
	if textWidget := b.Text(); textWidget != nil {
		textWidget.Label = label
	}
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

// Update runs the widgets while paused. Gizmo toggles made with the
// keyboard are picked up here too.
func (pui *PauseUI) Update() {
	if !pui.Pause.IsPaused {
		return
	}
	pui.refresh()
	pui.UI.Update()
}

func (pui *PauseUI) Draw(screen *ebiten.Image) {
	if !pui.Pause.IsPaused {
		return
	}
	pui.UI.Draw(screen)
}
