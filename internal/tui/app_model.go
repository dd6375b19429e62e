package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mood-journal/internal/app"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/richtext"
	"github.com/MKhiriev/go-mood-journal/internal/service"
	"github.com/MKhiriev/go-mood-journal/models"
)

type screen int

const (
	screenUnlock screen = iota
	screenList
	screenDetail
	screenEditor
	screenExport
	screenImport
	screenHint
)

type pendingAction int

const (
	actionNone pendingAction = iota
	actionDelete
	actionImport
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	buildInfo     models.AppBuildInfo
	currentScreen screen
	width         int

	unlock   unlockModel
	list     listModel
	detail   detailModel
	editor   editorModel
	export   exportModel
	importer importModel
	hint     hintModel

	overlay       overlay
	pending       pendingAction
	pendingTarget string
	showBuildInfo bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		currentScreen: screenUnlock,
		unlock:        newUnlockModel(),
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoadHint())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		switch m.overlay.kind {
		case overlayError:
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.overlay = overlay{}
			}
			return m, nil
		case overlayConfirm:
			if key.Matches(msg, keys.yes) {
				m.overlay = overlay{}
				return m, m.runPending()
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.overlay = overlay{}
				m.pending = actionNone
				m.pendingTarget = ""
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor.setWidth(msg.Width)
		return m, nil
	case hintLoadedMsg:
		if msg.err != nil {
			logger.FromContext(m.ctx).Err(msg.err).Str("func", "appModel.Update").Msg("error loading hint")
		}
		m.unlock.hint = msg.hint
		return m, nil
	case unlockedMsg:
		m.unlock.submitting = false
		m.unlock.input.Reset()
		if msg.err != nil {
			m.showError(humanizeError(msg.err))
			return m, nil
		}
		m.unlock.showHint = false
		m.list = newListModel()
		m.currentScreen = screenList
		return m, m.cmdLoadEntries()
	case lockedMsg:
		if msg.err != nil {
			m.showError(humanizeError(msg.err))
			return m, nil
		}
		m.list = newListModel()
		m.detail = detailModel{}
		m.editor = editorModel{}
		m.unlock = newUnlockModel()
		m.currentScreen = screenUnlock
		return m, m.cmdLoadHint()
	case entriesLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showError(humanizeError(msg.err))
			return m, nil
		}
		m.list.setItems(msg.items)
		m.list.tags = msg.tags
		m.list.saveErr = msg.saveErr
		m.list.unsaved = msg.savePending
		if m.list.tagFilter >= len(m.list.tags) {
			m.list.tagFilter = -1
		}
		return m, nil
	case entryCreatedMsg:
		if msg.err != nil {
			m.showError(humanizeError(msg.err))
			return m, nil
		}
		m.editor = newEditorModel(msg.entry, m.services.Analyzer, m.width)
		m.currentScreen = screenEditor
		return m, nil
	case entrySavedMsg:
		m.editor.submitting = false
		if msg.err != nil {
			m.showError(humanizeError(msg.err))
			return m, nil
		}
		m.editor.entry = msg.entry
		m.editor.dirty = false
		if msg.leave {
			m.currentScreen = screenList
			return m, m.cmdLoadEntries()
		}
		return m, nil
	case entryDeletedMsg:
		if msg.err != nil {
			m.showError(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.status = "Entry deleted"
		return m, tea.Batch(m.cmdLoadEntries(), cmdClearStatus())
	case exportedMsg:
		m.export.submitting = false
		if msg.err != nil {
			m.showError(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.status = fmt.Sprintf("Exported %d entries to %s", msg.count, msg.path)
		return m, cmdClearStatus()
	case importedMsg:
		m.importer.submitting = false
		if msg.err != nil {
			m.showError(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.clearFilters()
		m.list.status = fmt.Sprintf("Imported %d entries", msg.count)
		return m, tea.Batch(m.cmdLoadEntries(), cmdClearStatus())
	case hintSavedMsg:
		if msg.err != nil {
			m.showError(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.status = "Hint saved"
		return m, tea.Batch(m.cmdLoadHint(), cmdClearStatus())
	case errMsg:
		m.showError(humanizeError(msg.err))
		return m, nil
	case copiedMsg:
		if m.currentScreen == screenDetail {
			m.detail.status = "Copied!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.unlock.submitting {
			var cmd tea.Cmd
			m.unlock.spinner, cmd = m.unlock.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenUnlock:
		return m.updateUnlock(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenEditor:
		return m.updateEditor(msg)
	case screenExport:
		return m.updateExport(msg)
	case screenImport:
		return m.updateImport(msg)
	case screenHint:
		return m.updateHint(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenUnlock:
		body = m.unlock.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenEditor:
		body = m.editor.View()
	case screenExport:
		body = m.export.View()
	case screenImport:
		body = m.importer.View()
	case screenHint:
		body = m.hint.View()
	}

	if m.overlay.kind != overlayNone {
		body += "\n\n" + m.overlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showError(message string) {
	m.overlay = overlay{kind: overlayError, message: message}
}

func (m *appModel) ask(action pendingAction, target, question string) {
	m.overlay = overlay{kind: overlayConfirm, message: question}
	m.pending = action
	m.pendingTarget = target
}

func (m *appModel) runPending() tea.Cmd {
	action, target := m.pending, m.pendingTarget
	m.pending = actionNone
	m.pendingTarget = ""

	switch action {
	case actionDelete:
		return m.cmdDelete(target)
	case actionImport:
		m.importer.submitting = true
		return m.cmdImport(target)
	}
	return nil
}

func (m appModel) updateUnlock(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.unlock.submitting {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			m.unlock.showHint = !m.unlock.showHint
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			pass := m.unlock.input.Value()
			if pass == "" {
				m.showError(app.MsgEmptyPassphrase)
				return m, nil
			}
			m.unlock.submitting = true
			return m, tea.Batch(m.unlock.spinner.Tick, m.cmdUnlock(pass))
		}
	}

	var cmd tea.Cmd
	m.unlock.input, cmd = m.unlock.input.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)

	if m.list.searching {
		if ok {
			switch {
			case key.Matches(keyMsg, keys.esc):
				m.list.searching = false
				m.list.search.Blur()
				m.list.search.SetValue("")
				return m, m.cmdLoadEntries()
			case key.Matches(keyMsg, keys.enter):
				m.list.searching = false
				m.list.search.Blur()
				return m, nil
			}
		}
		before := m.list.search.Value()
		var cmd tea.Cmd
		m.list.search, cmd = m.list.search.Update(msg)
		if m.list.search.Value() != before {
			return m, tea.Batch(cmd, m.cmdLoadEntries())
		}
		return m, cmd
	}

	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m.openDetail(item), nil
	case key.Matches(keyMsg, keys.newItem):
		return m, m.cmdCreate()
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		return m, m.list.search.Focus()
	case key.Matches(keyMsg, keys.moodFilter):
		m.list.cycleMood()
		return m, m.cmdLoadEntries()
	case key.Matches(keyMsg, keys.tagFilter):
		m.list.cycleTag()
		return m, m.cmdLoadEntries()
	case key.Matches(keyMsg, keys.esc):
		if m.list.filtered() {
			m.list.clearFilters()
			return m, m.cmdLoadEntries()
		}
	case key.Matches(keyMsg, keys.export):
		m.export = newExportModel(defaultExportPath(time.Now()))
		m.currentScreen = screenExport
	case key.Matches(keyMsg, keys.importFile):
		m.importer = newImportModel()
		m.currentScreen = screenImport
	case key.Matches(keyMsg, keys.hint):
		m.hint = newHintModel(m.unlock.hint)
		m.currentScreen = screenHint
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.lock):
		return m, m.cmdLock()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) openDetail(item models.JournalEntry) appModel {
	log := logger.FromContext(m.ctx)

	if err := m.services.Entries.Select(item.ID); err != nil {
		log.Err(err).Str("func", "appModel.openDetail").Msg("error selecting entry")
	}
	stats, err := m.services.Entries.Stats(item.ID)
	if err != nil {
		stats = richtext.Stats(item.Content)
	}

	m.detail = newDetailModel(item, stats, m.services.Analyzer)
	m.currentScreen = screenDetail
	return m
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, m.cmdLoadEntries()
	case key.Matches(keyMsg, keys.edit):
		m.editor = newEditorModel(m.detail.entry, m.services.Analyzer, m.width)
		m.currentScreen = screenEditor
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		m.ask(actionDelete, m.detail.entry.ID, fmt.Sprintf("Delete %q?", fitText(entryTitle(m.detail.entry), 30)))
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		text := m.detail.plainText()
		if text == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(text)
	case key.Matches(keyMsg, keys.copyReframe):
		text, ok := m.detail.reframe()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(text)
	}

	return m, nil
}

func (m appModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editor.submitting {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if !m.editor.dirty {
				m.currentScreen = screenList
				return m, m.cmdLoadEntries()
			}
			m.editor.submitting = true
			return m, m.cmdSave(m.editor.entry.ID, m.editor.patch(), true)
		case key.Matches(keyMsg, keys.save):
			if !m.editor.dirty {
				return m, nil
			}
			m.editor.submitting = true
			return m, m.cmdSave(m.editor.entry.ID, m.editor.patch(), false)
		case key.Matches(keyMsg, keys.tab):
			m.editor.setFocus(m.editor.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.editor.setFocus(m.editor.focus - 1)
			return m, nil
		case m.editor.focus == focusMood && key.Matches(keyMsg, keys.left):
			m.editor.shiftMood(-1)
			return m, nil
		case m.editor.focus == focusMood && key.Matches(keyMsg, keys.right):
			m.editor.shiftMood(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.update(msg)
	return m, cmd
}

func (m appModel) updateExport(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.export.submitting {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.export.inputs[m.export.focus].Blur()
			m.export.focus = (m.export.focus + 1) % len(m.export.inputs)
			return m, m.export.inputs[m.export.focus].Focus()
		case key.Matches(keyMsg, keys.enter):
			if m.export.path() == "" {
				m.showError("File path is required")
				return m, nil
			}
			if m.export.passphrase() == "" {
				m.showError(app.MsgEmptyPassphrase)
				return m, nil
			}
			m.export.submitting = true
			return m, m.cmdExport(m.export.path(), m.export.passphrase())
		}
	}

	var cmd tea.Cmd
	m.export.inputs[m.export.focus], cmd = m.export.inputs[m.export.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateImport(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.importer.submitting {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			path := m.importer.path()
			if path == "" {
				m.showError("File path is required")
				return m, nil
			}
			m.ask(actionImport, path, fmt.Sprintf("Replace the whole journal with %s?", path))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.importer.input, cmd = m.importer.input.Update(msg)
	return m, cmd
}

func (m appModel) updateHint(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m, m.cmdSetHint(m.hint.input.Value())
		}
	}

	var cmd tea.Cmd
	m.hint.input, cmd = m.hint.input.Update(msg)
	return m, cmd
}

func (m appModel) cmdLoadHint() tea.Cmd {
	ctx := m.ctx
	lock := m.services.Lock
	return func() tea.Msg {
		hint, err := lock.Hint(ctx)
		return hintLoadedMsg{hint: hint, err: err}
	}
}

// cmdUnlock derives the key off the update loop.
func (m appModel) cmdUnlock(passphrase string) tea.Cmd {
	ctx := m.ctx
	lock := m.services.Lock
	return func() tea.Msg {
		return unlockedMsg{err: lock.Unlock(ctx, passphrase)}
	}
}

func (m appModel) cmdLock() tea.Cmd {
	ctx := m.ctx
	lock := m.services.Lock
	return func() tea.Msg {
		return lockedMsg{err: lock.Lock(ctx)}
	}
}

func (m appModel) cmdLoadEntries() tea.Cmd {
	repo := m.services.Entries
	query := m.list.query()
	return func() tea.Msg {
		items, err := repo.Search(query)
		if err != nil {
			return entriesLoadedMsg{err: err}
		}
		tags, err := repo.Tags()
		return entriesLoadedMsg{
			items:       items,
			tags:        tags,
			saveErr:     repo.SaveErr(),
			savePending: repo.SavePending(),
			err:         err,
		}
	}
}

func (m appModel) cmdCreate() tea.Cmd {
	ctx := m.ctx
	repo := m.services.Entries
	return func() tea.Msg {
		e, err := repo.Create(ctx)
		return entryCreatedMsg{entry: e, err: err}
	}
}

func (m appModel) cmdSave(id string, patch models.EntryPatch, leave bool) tea.Cmd {
	ctx := m.ctx
	repo := m.services.Entries
	return func() tea.Msg {
		e, err := repo.Update(ctx, id, patch)
		return entrySavedMsg{entry: e, leave: leave, err: err}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	repo := m.services.Entries
	return func() tea.Msg {
		return entryDeletedMsg{err: repo.Delete(ctx, id)}
	}
}

func (m appModel) cmdSetHint(hint string) tea.Cmd {
	ctx := m.ctx
	lock := m.services.Lock
	return func() tea.Msg {
		return hintSavedMsg{err: lock.SetHint(ctx, hint)}
	}
}

func (m appModel) cmdExport(path, passphrase string) tea.Cmd {
	ctx := m.ctx
	transfer := m.services.Transfer
	return func() tea.Msg {
		n, err := service.ExportToFile(ctx, transfer, path, passphrase, models.FormatFromPath(path))
		return exportedMsg{count: n, path: path, err: err}
	}
}

func (m appModel) cmdImport(path string) tea.Cmd {
	ctx := m.ctx
	transfer := m.services.Transfer
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importedMsg{err: err}
		}
		defer f.Close()

		n, err := transfer.Import(ctx, f, models.FormatFromPath(path))
		return importedMsg{count: n, err: err}
	}
}

func defaultExportPath(now time.Time) string {
	return "journal-export-" + now.Format("2006-01-02") + ".json"
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return errMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
