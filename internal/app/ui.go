package app

import (
	"errors"
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"yashubustudio/sentencematcher/matcher"
)

const windowTitle = "Sentence Matcher"

// medium sea green, translucent so the check label stays readable
var highlightColor = color.NRGBA{R: 60, G: 179, B: 113, A: 110}

type uiState struct {
	session *matcher.Session
	quit    func()

	w          fyne.Window
	status     *widget.Label
	position   *widget.Label
	sentence   *widget.Label
	selected   *widget.Label
	keywordBox *fyne.Container
	candBox    *fyne.Container
	log        *widget.Entry
	saveBtn    *widget.Button
	exitBtn    *widget.Button

	keywordBtns []*widget.Button
	candChecks  []*widget.Check
	candTexts   []string
}

// buildUI creates the window and subscribes it to the session. The session
// is the only source of truth; every widget is rebuilt from its View.
func buildUI(a fyne.App, session *matcher.Session, logBind binding.String, quit func()) *uiState {
	u := &uiState{session: session, quit: quit}
	u.w = a.NewWindow(windowTitle)

	u.status = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	u.position = widget.NewLabel("")
	u.sentence = widget.NewLabel("")
	u.sentence.Wrapping = fyne.TextWrapWord
	u.selected = widget.NewLabel("")
	u.keywordBox = container.NewHBox()
	u.candBox = container.NewVBox()

	u.log = widget.NewEntryWithData(logBind)
	u.log.MultiLine = true
	u.log.Wrapping = fyne.TextWrapWord
	u.log.SetPlaceHolder("Log")
	u.log.Disable()

	u.saveBtn = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), u.onSave)
	u.saveBtn.Importance = widget.HighImportance
	u.exitBtn = widget.NewButtonWithIcon("Exit", theme.CancelIcon(), u.onExit)

	top := container.NewVBox(
		u.status,
		u.sentence,
		container.NewBorder(nil, nil, u.position, nil, container.NewHScroll(u.keywordBox)),
		u.selected,
		widget.NewSeparator(),
	)
	controls := container.NewHBox(layout.NewSpacer(), u.saveBtn, u.exitBtn, layout.NewSpacer())
	logScroll := container.NewVScroll(u.log)
	logScroll.SetMinSize(fyne.NewSize(200, 110))
	bottom := container.NewVBox(widget.NewSeparator(), controls, widget.NewSeparator(), logScroll)

	u.w.SetContent(container.NewBorder(top, bottom, nil, nil, container.NewVScroll(u.candBox)))
	u.w.Resize(fyne.NewSize(960, 680))
	u.w.Canvas().SetOnTypedKey(u.onTypedKey)
	u.w.SetCloseIntercept(u.onExit)

	session.Subscribe(u.render)
	u.render(session.View())
	return u
}

func (u *uiState) render(v matcher.View) {
	u.status.SetText(v.Status)
	if v.Exhausted || !v.CanSave {
		u.position.SetText("")
		u.sentence.SetText("")
		u.selected.SetText("")
		u.saveBtn.Disable()
	} else {
		u.position.SetText(fmt.Sprintf("%d/%d", v.Position, v.Total))
		u.sentence.SetText(v.Sentence)
		u.selected.SetText(v.SelectedLabel())
		u.saveBtn.Enable()
	}
	u.renderKeywords(v.Keywords)
	u.renderCandidates(v.Candidates)
}

func (u *uiState) renderKeywords(items []matcher.KeywordItem) {
	u.keywordBtns = u.keywordBtns[:0]
	objects := make([]fyne.CanvasObject, 0, len(items))
	for _, kw := range items {
		text := kw.Text
		btn := widget.NewButton(text, func() { u.onToggleKeyword(text) })
		if kw.Selected {
			btn.Importance = widget.SuccessImportance
		}
		u.keywordBtns = append(u.keywordBtns, btn)
		objects = append(objects, btn)
	}
	u.keywordBox.Objects = objects
	u.keywordBox.Refresh()
}

// renderCandidates rebuilds the checks when the order changed and otherwise
// updates them in place.
func (u *uiState) renderCandidates(items []matcher.CandidateItem) {
	if sameOrder(u.candTexts, items) {
		for i, it := range items {
			chk := u.candChecks[i]
			if chk.Checked != it.Checked {
				onChanged := chk.OnChanged
				chk.OnChanged = nil
				chk.SetChecked(it.Checked)
				chk.OnChanged = onChanged
			}
			u.setHighlight(i, it.Highlighted)
		}
		u.candBox.Refresh()
		return
	}

	u.candChecks = u.candChecks[:0]
	u.candTexts = u.candTexts[:0]
	objects := make([]fyne.CanvasObject, 0, len(items))
	for _, it := range items {
		text := it.Text
		chk := widget.NewCheck(text, nil)
		chk.SetChecked(it.Checked)
		chk.OnChanged = func(bool) { u.onToggleMatch(text) }
		bg := canvas.NewRectangle(color.Transparent)
		if it.Highlighted {
			bg.FillColor = highlightColor
		}
		u.candChecks = append(u.candChecks, chk)
		u.candTexts = append(u.candTexts, text)
		objects = append(objects, container.NewStack(bg, chk))
	}
	u.candBox.Objects = objects
	u.candBox.Refresh()
}

func (u *uiState) setHighlight(i int, on bool) {
	stack, ok := u.candBox.Objects[i].(*fyne.Container)
	if !ok || len(stack.Objects) == 0 {
		return
	}
	bg, ok := stack.Objects[0].(*canvas.Rectangle)
	if !ok {
		return
	}
	bg.FillColor = color.Transparent
	if on {
		bg.FillColor = highlightColor
	}
	bg.Refresh()
}

func sameOrder(texts []string, items []matcher.CandidateItem) bool {
	if len(texts) != len(items) || len(texts) == 0 {
		return false
	}
	for i, it := range items {
		if texts[i] != it.Text {
			return false
		}
	}
	return true
}

func (u *uiState) onToggleKeyword(keyword string) {
	u.showError(u.session.ToggleKeyword(keyword))
}

func (u *uiState) onToggleMatch(candidate string) {
	u.showError(u.session.ToggleMatch(candidate))
}

func (u *uiState) onSave() {
	u.showError(u.session.Save())
}

func (u *uiState) onExit() {
	if u.quit != nil {
		u.quit()
	}
}

// onTypedKey maps Escape to Exit and Return to the button that has the
// default action: Save while a sentence is shown, Exit afterwards.
func (u *uiState) onTypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyEscape:
		u.onExit()
	case fyne.KeyReturn, fyne.KeyEnter:
		if u.session.Exhausted() {
			u.onExit()
			return
		}
		u.onSave()
	}
}

func (u *uiState) showError(err error) {
	if err == nil || errors.Is(err, matcher.ErrExhausted) {
		return
	}
	dialog.ShowError(err, u.w)
}
