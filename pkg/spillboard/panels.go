package spillboard

import (
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/constants"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/internal"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/internal/icons"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

type buttonStyle int

var (
	cardPad  = internal.UniformPadding(cardPadding)
	badgePad = internal.SymmetricPadding(badgePadX, badgePadY)
)

const (
	buttonPrimary buttonStyle = iota
	buttonSecondary
)

func (d *drawer) font(role internal.FontRole) (*ttf.Font, internal.TypeScale, error) {
	f, scale, err := d.canvas.Fonts.ForRole(d.theme, role)
	if err != nil {
		return nil, scale, NewInfrastructureError("load_font", err)
	}
	return f, scale, nil
}

// bottomPadding is the space under a bottom panel's content.
func (d *drawer) bottomPadding() int32 {
	return panelInset + int32(d.theme.Insets.Bottom)
}

func (d *drawer) button(rect sdl.Rect, label string, role internal.FontRole, style buttonStyle, opacity float64) error {
	fill, text := d.theme.Colors.Background.Accent, d.theme.Colors.Text.Contrast
	if style == buttonSecondary {
		fill, text = d.theme.Colors.Background.Label, d.theme.Colors.Text.Primary
	}
	d.canvas.FillRoundedRect(rect, buttonRadius, fill, opacity)

	if label == "" {
		return nil
	}
	font, scale, err := d.font(role)
	if err != nil {
		return err
	}
	y := rect.Y + (rect.H-scale.LineHeight)/2
	d.canvas.DrawLines(font, []string{label}, rect.X, y, rect.W, scale.LineHeight, constants.TextAlignCenter, text, opacity)
	return nil
}

// stackHeight sums the non-empty blocks with gap between neighbours.
func stackHeight(gap int32, blocks ...int32) int32 {
	var h int32
	var n int
	for _, b := range blocks {
		if b <= 0 {
			continue
		}
		if n > 0 {
			h += gap
		}
		h += b
		n++
	}
	return h
}

// introHeight is the intro sheet's height for the given block heights. The
// title gap is only kept when there is headline text.
func introHeight(imageH, textH, bottomPadding int32) int32 {
	h := introMarginTop + imageH
	if textH > 0 {
		h += introTitleGap + textH
	}
	return h + introTextGap + buttonHeight + bottomPadding
}

// stepCardHeight is a default step card's height. Without a label the badge
// and its gap are dropped.
func stepCardHeight(badgeH, titleH, descH int32) int32 {
	return stackHeight(textGap, badgeH, titleH, descH) + cardGap + buttonHeight + cardPad.Vertical()
}

// defaultIntro draws the intro bottom sheet and returns its height:
// optional image, an optional two-line headline and a full-width start
// button.
func (d *drawer) defaultIntro(p IntroProps, active bool, start func()) (int32, error) {
	innerW := d.bounds.W - 2*panelInset

	titleFont, titleScale, err := d.font(internal.FontIntroTitle)
	if err != nil {
		return 0, err
	}
	subtitleFont, subtitleScale, err := d.font(internal.FontIntroSubtitle)
	if err != nil {
		return 0, err
	}

	titleLines := d.canvas.Wrap(titleFont, p.Title, innerW)
	subtitleLines := d.canvas.Wrap(subtitleFont, p.Subtitle, innerW)

	var image internal.CachedTexture
	var imageW, imageH int32
	if p.Image != "" {
		tex, err := d.canvas.Image(p.Image)
		if err != nil {
			d.warn("intro image "+p.Image, err)
		} else {
			image = tex
			imageW, imageH = internal.Fit(tex.W, tex.H, innerW)
		}
	}

	titleH := int32(len(titleLines)) * titleScale.LineHeight
	subtitleH := int32(len(subtitleLines)) * subtitleScale.LineHeight
	height := introHeight(imageH, titleH+subtitleH, d.bottomPadding())

	y := d.bounds.H - height + introMarginTop
	if imageH > 0 {
		d.canvas.DrawTexture(image, sdl.Rect{X: (d.bounds.W - imageW) / 2, Y: y, W: imageW, H: imageH}, 1)
		y += imageH
	}

	if titleH+subtitleH > 0 {
		y += introTitleGap
	}
	y += d.canvas.DrawLines(titleFont, titleLines, panelInset, y, innerW, titleScale.LineHeight,
		constants.TextAlignCenter, d.theme.Colors.Text.Primary, 1)
	y += d.canvas.DrawLines(subtitleFont, subtitleLines, panelInset, y, innerW, subtitleScale.LineHeight,
		constants.TextAlignCenter, d.theme.Colors.Background.Primary, 1)
	y += introTextGap

	buttonRect := sdl.Rect{X: panelInset, Y: y, W: innerW, H: buttonHeight}
	if err := d.button(buttonRect, p.Button, internal.FontIntroButton, buttonPrimary, 1); err != nil {
		return 0, err
	}
	if active {
		d.hits.add(buttonRect, start)
	}

	return height, nil
}

// defaultStep draws a step card: label badge, title, description, then a
// button row with an optional back button. The last step's next button is
// primary. opacity and offset come from the container's enter/exit
// animation; exiting cards take no taps.
func (d *drawer) defaultStep(s DefaultStep, opacity float64, offset int32, active bool, nav StepNav, showBack bool) (int32, error) {
	cardW := d.bounds.W - 2*panelInset
	innerW := cardW - cardPad.Horizontal()

	labelFont, labelScale, err := d.font(internal.FontStepLabel)
	if err != nil {
		return 0, err
	}
	titleFont, titleScale, err := d.font(internal.FontStepTitle)
	if err != nil {
		return 0, err
	}
	descFont, descScale, err := d.font(internal.FontStepDescription)
	if err != nil {
		return 0, err
	}

	titleLines := d.canvas.Wrap(titleFont, s.Title, innerW)
	descLines := d.canvas.Wrap(descFont, s.Description, innerW)

	var badgeW, badgeH int32
	if s.Label != "" {
		badgeW = min(internal.Measure(labelFont, s.Label)+badgePad.Horizontal(), innerW)
		badgeH = labelScale.LineHeight + badgePad.Vertical()
	}
	titleH := int32(len(titleLines)) * titleScale.LineHeight
	descH := int32(len(descLines)) * descScale.LineHeight

	cardH := stepCardHeight(badgeH, titleH, descH)
	height := cardH + d.bottomPadding()

	cardY := d.bounds.H - height + offset
	d.canvas.FillRoundedRect(sdl.Rect{X: panelInset, Y: cardY, W: cardW, H: cardH}, cardRadius,
		d.theme.Colors.Background.Secondary, opacity)

	x := panelInset + cardPad.Left
	y := cardY + cardPad.Top

	if badgeH > 0 {
		badge := sdl.Rect{X: x + (innerW-badgeW)/2, Y: y, W: badgeW, H: badgeH}
		d.canvas.FillRoundedRect(badge, badgeH/2, d.theme.Colors.Background.Label, opacity)
		d.canvas.DrawLines(labelFont, []string{s.Label}, badge.X, badge.Y+badgePad.Top, badge.W, labelScale.LineHeight,
			constants.TextAlignCenter, d.theme.Colors.Text.Primary, opacity)
		y += badgeH + textGap
	}

	y += d.canvas.DrawLines(titleFont, titleLines, x, y, innerW, titleScale.LineHeight,
		constants.TextAlignCenter, d.theme.Colors.Text.Primary, opacity)
	y += textGap
	y += d.canvas.DrawLines(descFont, descLines, x, y, innerW, descScale.LineHeight,
		constants.TextAlignCenter, d.theme.Colors.Text.Secondary, opacity)
	y += cardGap

	nextRect := sdl.Rect{X: x, Y: y, W: innerW, H: buttonHeight}
	if showBack {
		backRect := sdl.Rect{X: x, Y: y, W: backButtonWidth, H: buttonHeight}
		if err := d.button(backRect, "", internal.FontSecondaryButton, buttonSecondary, opacity); err != nil {
			return 0, err
		}
		icon, err := d.canvas.Icon(icons.ArrowLeft, arrowIconSize, d.theme.Colors.Text.Primary)
		if err != nil {
			d.warn("back icon", err)
		} else {
			d.canvas.DrawTexture(icon, centred(backRect, icon.W, icon.H), opacity)
		}
		if active {
			d.hits.add(backRect, nav.Back)
		}

		nextRect.X += backButtonWidth + buttonGap
		nextRect.W -= backButtonWidth + buttonGap
	}

	style, role := buttonSecondary, internal.FontStepButton
	if nav.IsLast {
		style, role = buttonPrimary, internal.FontPrimaryButton
	}
	if err := d.button(nextRect, s.ButtonLabel, role, style, opacity); err != nil {
		return 0, err
	}
	if active {
		d.hits.add(nextRect, nav.Next)
	}

	return height, nil
}
