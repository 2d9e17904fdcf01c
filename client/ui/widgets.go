package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/image/font"
)

// Shared palette for the ebitenui widgets.
var (
	TextIdleColor     = color.NRGBA{R: 254, G: 255, B: 255, A: 255}
	TextDisabledColor = color.NRGBA{R: 140, G: 140, B: 140, A: 255}
	BackgroundColor   = color.NRGBA{R: 24, G: 24, B: 34, A: 255}
)

// ButtonImage returns the nine-slice set used for every button.
func ButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.NRGBA{R: 70, G: 70, B: 95, A: 255}),
		Hover:    image.NewNineSliceColor(color.NRGBA{R: 90, G: 90, B: 120, A: 255}),
		Pressed:  image.NewNineSliceColor(color.NRGBA{R: 50, G: 50, B: 75, A: 255}),
		Disabled: image.NewNineSliceColor(color.NRGBA{R: 45, G: 45, B: 55, A: 255}),
	}
}

type ButtonOptions struct {
	Label    string
	FontFace font.Face
	Disabled bool
	OnClick  func()
	Padding  widget.Insets
	// LayoutData, when set, is passed through to the widget.
	LayoutData interface{}
}

// NewButton creates a button with the shared look. The click handler is not
// invoked while the button is disabled.
func NewButton(opts ButtonOptions) *widget.Button {
	buttonOpts := []widget.ButtonOpt{
		widget.ButtonOpts.Image(ButtonImage()),
		widget.ButtonOpts.Text(opts.Label, opts.FontFace, &widget.ButtonTextColor{
			Idle:     TextIdleColor,
			Disabled: TextDisabledColor,
		}),
		widget.ButtonOpts.TextPadding(opts.Padding),
	}
	if opts.LayoutData != nil {
		buttonOpts = append(buttonOpts, widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(opts.LayoutData),
		))
	}

	button := widget.NewButton(buttonOpts...)
	button.GetWidget().Disabled = opts.Disabled
	button.ClickedEvent.AddHandler(func(args interface{}) {
		if !button.GetWidget().Disabled {
			opts.OnClick()
		}
	})
	return button
}
