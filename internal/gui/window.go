package gui

import (
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"tts-generator/internal/tts"
	"tts-generator/internal/util"
)

// GenerateFunc runs one blocking generation. It is called off the UI thread.
type GenerateFunc func(text, voice, model string) tts.Result

// Options configures the form.
type Options struct {
	Provider     string
	Voices       []tts.VoiceDescriptor
	Models       []string
	DefaultVoice string
	DefaultModel string
}

// UI holds all the UI elements and state.
type UI struct {
	Window      fyne.Window
	Input       *widget.Entry
	Voice       *widget.SelectEntry
	VoiceStyle  *widget.Label
	Model       *widget.SelectEntry
	SubmitBtn   *widget.Button
	PlayBtn     *widget.Button
	SaveBtn     *widget.Button
	Busy        *widget.ProgressBarInfinite
	SuccessText *canvas.Text
	ErrorText   *canvas.Text

	generate GenerateFunc
	styles   map[string]string

	// audioFile and audioText are only touched on the UI thread.
	audioFile string
	audioText string
}

// NewUI creates and lays out the main application window and its widgets.
func NewUI(app fyne.App, opts Options, generate GenerateFunc) *UI {
	w := app.NewWindow(fmt.Sprintf("TTS Generator - %s", opts.Provider))
	w.Resize(fyne.NewSize(800, 560))

	ui := &UI{Window: w, generate: generate, styles: make(map[string]string)}

	voiceNames := make([]string, 0, len(opts.Voices))
	for _, v := range opts.Voices {
		voiceNames = append(voiceNames, v.Name)
		ui.styles[v.Name] = v.Style
	}

	ui.Input = createInputEntry()
	ui.Voice = createSuggestEntry(voiceNames, opts.DefaultVoice, "e.g., Kore, Puck")
	ui.VoiceStyle = widget.NewLabel("")
	ui.Voice.OnChanged = ui.showVoiceStyle
	ui.showVoiceStyle(opts.DefaultVoice)
	ui.Model = createSuggestEntry(opts.Models, opts.DefaultModel, "e.g., gemini-2.5-flash-preview-tts")
	ui.SubmitBtn = createSubmitButton(ui.submit)
	ui.PlayBtn = widget.NewButtonWithIcon("Play", theme.MediaPlayIcon(), ui.play)
	ui.SaveBtn = widget.NewButtonWithIcon("Download Audio", theme.DownloadIcon(), ui.save)
	ui.PlayBtn.Disable()
	ui.SaveBtn.Disable()
	ui.Busy = widget.NewProgressBarInfinite()
	ui.Busy.Hide()
	ui.SuccessText = createStatusText(theme.ColorNameSuccess, fyne.TextAlignCenter, true)
	ui.ErrorText = createStatusText(theme.ColorNameError, fyne.TextAlignLeading, false)

	settingsRow := container.NewGridWithColumns(2,
		container.NewBorder(createHeading("Voice:"), ui.VoiceStyle, nil, nil, ui.Voice),
		container.NewBorder(createHeading("Model:"), nil, nil, nil, ui.Model),
	)
	btnRow := container.NewGridWithColumns(3,
		layout.NewSpacer(),
		container.NewCenter(ui.SubmitBtn),
		layout.NewSpacer(),
	)
	audioRow := container.NewHBox(layout.NewSpacer(), ui.PlayBtn, ui.SaveBtn, layout.NewSpacer())

	inputGroup := container.NewBorder(createHeading("Text to Convert:"), nil, nil, nil, container.NewScroll(ui.Input))
	bottomSection := container.NewVBox(
		settingsRow,
		btnRow,
		ui.Busy,
		ui.SuccessText,
		ui.ErrorText,
		audioRow,
	)

	w.SetContent(container.NewBorder(nil, bottomSection, nil, nil, inputGroup))
	return ui
}

func (ui *UI) showVoiceStyle(voice string) {
	if style := ui.styles[voice]; style != "" {
		ui.VoiceStyle.SetText("Style: " + style)
		return
	}
	ui.VoiceStyle.SetText("")
}

// submit runs a generation in the background while the form shows a busy
// indicator. Only one generation runs at a time.
func (ui *UI) submit() {
	text, voice, model := ui.Input.Text, ui.Voice.Text, ui.Model.Text

	ui.SetBusy(true)
	ui.clearAudio()

	go func() {
		res := ui.generate(text, voice, model)
		fyne.Do(func() {
			ui.SetBusy(false)
			if !res.Success {
				ui.ShowError(res.Message)
				return
			}
			ui.audioFile = res.FilePath
			ui.audioText = text
			ui.PlayBtn.Enable()
			ui.SaveBtn.Enable()
			ui.ShowSuccess(res.Message)
		})
	}()
}

func (ui *UI) clearAudio() {
	ui.audioFile = ""
	ui.audioText = ""
	ui.PlayBtn.Disable()
	ui.SaveBtn.Disable()
}

// play opens the current audio file in the system's default player.
func (ui *UI) play() {
	if ui.audioFile == "" {
		return
	}
	if err := fyne.CurrentApp().OpenURL(&url.URL{Scheme: "file", Path: ui.audioFile}); err != nil {
		ui.ShowError(fmt.Sprintf("Failed to open audio: %v", err))
	}
}

// save copies the current audio file to a location picked by the user.
func (ui *UI) save() {
	src := ui.audioFile
	if src == "" {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			ui.ShowError(fmt.Sprintf("Failed to save file: %v", err))
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()
		if _, err := util.CopyFile(writer, src); err != nil {
			ui.ShowError(fmt.Sprintf("Failed to save file: %v", err))
			return
		}
		ui.ShowSuccess(fmt.Sprintf("Audio saved to %s", writer.URI().Path()))
	}, ui.Window)
	d.SetFileName(util.GenerateFilename(ui.audioText))
	d.Show()
}

// ShowError displays an error message in the UI.
func (ui *UI) ShowError(msg string) {
	ui.ErrorText.Text = msg
	ui.ErrorText.Show()
	ui.SuccessText.Hide()
	ui.ErrorText.Refresh()
}

// ShowSuccess displays a success message in the UI.
func (ui *UI) ShowSuccess(msg string) {
	ui.SuccessText.Text = msg
	ui.SuccessText.Show()
	ui.ErrorText.Hide()
	ui.SuccessText.Refresh()
}

// SetBusy toggles the busy indicator and the generate button.
func (ui *UI) SetBusy(busy bool) {
	if busy {
		ui.SubmitBtn.Disable()
		ui.SuccessText.Hide()
		ui.ErrorText.Hide()
		ui.Busy.Show()
		ui.Busy.Start()
		return
	}
	ui.Busy.Stop()
	ui.Busy.Hide()
	ui.SubmitBtn.Enable()
}
