package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// createInputEntry creates the multi-line entry for the input text.
func createInputEntry() *widget.Entry {
	input := widget.NewMultiLineEntry()
	input.Wrapping = fyne.TextWrapWord
	input.SetPlaceHolder("Enter the text you want to convert to speech...")
	return input
}

// createSuggestEntry creates a free-form entry that also offers the given
// options, used for both voice and model.
func createSuggestEntry(options []string, value, placeholder string) *widget.SelectEntry {
	entry := widget.NewSelectEntry(options)
	entry.SetPlaceHolder(placeholder)
	entry.SetText(value)
	return entry
}

// createSubmitButton creates the main generate button.
func createSubmitButton(onTapped func()) *widget.Button {
	submitBtn := widget.NewButton("Generate Speech", onTapped)
	submitBtn.Importance = widget.HighImportance
	return submitBtn
}

// createStatusText creates a hidden status line drawn in the theme color c.
func createStatusText(c fyne.ThemeColorName, align fyne.TextAlign, bold bool) *canvas.Text {
	text := canvas.NewText("", theme.Color(c))
	text.Alignment = align
	text.TextStyle = fyne.TextStyle{Bold: bold}
	text.Hide()
	return text
}

// createHeading creates a bold section heading.
func createHeading(text string) *canvas.Text {
	heading := canvas.NewText(text, theme.Color(theme.ColorNameForeground))
	heading.TextSize = theme.TextSubHeadingSize()
	heading.TextStyle = fyne.TextStyle{Bold: true}
	return heading
}
