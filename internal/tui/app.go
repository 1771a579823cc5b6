package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gfmartins/postdeck/internal/article"
	"github.com/gfmartins/postdeck/internal/browser"
	"github.com/gfmartins/postdeck/internal/config"
	"github.com/gfmartins/postdeck/internal/contentful"
	"github.com/gfmartins/postdeck/internal/filter"
)

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeLoading mode = iota
	modeBrowse
	modeSearch
	modeFilter
	modeDetail
	modeHelp
	modeError
	modeNotConfigured
)

type App struct {
	cfg    *config.Config
	client *contentful.Client // nil when not configured

	// articles is the full normalized collection, replaced wholesale on
	// every fetch. visible and categories are derived from it.
	articles   []article.Article
	visible    []article.Article
	cursor     int
	focus      focusPane
	mode       mode
	returnMode mode // where help/detail go back to

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	spinner     spinner.Model
	filterBar   filterBar

	// State
	fetching      bool
	fetchGen      int
	err           error
	previewScroll int
	detailScroll  int
	currentDate   string
}

// RunOpts holds all parameters for launching the TUI. A nil Client starts
// the app in the permanent not-configured state.
type RunOpts struct {
	Cfg    *config.Config
	Client *contentful.Client
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search posts..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	startMode := modeLoading
	if opts.Client == nil {
		startMode = modeNotConfigured
	}

	return &App{
		cfg:         opts.Cfg,
		client:      opts.Client,
		filterBar:   newFilterBar(),
		searchInput: ti,
		spinner:     sp,
		currentDate: time.Now().Format("Jan 2"),
		mode:        startMode,
	}
}

func (a *App) Init() tea.Cmd {
	if a.client == nil {
		return nil
	}
	return tea.Batch(a.fetchCmd(), a.spinner.Tick)
}

// fetchCmd starts a fetch under a fresh generation. Only the newest
// generation's result is accepted, so a slow earlier fetch can never clobber
// the collection after a retry.
func (a *App) fetchCmd() tea.Cmd {
	a.fetching = true
	a.fetchGen++
	gen := a.fetchGen
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		articles, err := client.FetchArticles(ctx)
		if err != nil {
			return fetchErrMsg{gen: gen, err: err}
		}
		return articlesLoadedMsg{gen: gen, articles: articles}
	}
}

// applyFilter recomputes the visible subset from current query and category
// state. Never touches a.articles.
func (a *App) applyFilter() {
	a.visible = filter.Visible(a.articles, a.searchInput.Value(), a.filterBar.selected)
	if a.cursor >= len(a.visible) {
		a.cursor = max(0, len(a.visible)-1)
	}
	a.previewScroll = 0
}

func (a *App) selected() *article.Article {
	if len(a.visible) == 0 || a.cursor >= len(a.visible) {
		return nil
	}
	return &a.visible[a.cursor]
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case articlesLoadedMsg:
		if msg.gen != a.fetchGen {
			return a, nil // stale fetch, discard
		}
		a.fetching = false
		a.articles = msg.articles
		a.filterBar.setCategories(filter.Categories(a.articles))
		a.applyFilter()
		if a.mode == modeLoading || a.mode == modeError {
			a.mode = modeBrowse
		}
		return a, nil

	case fetchErrMsg:
		if msg.gen != a.fetchGen {
			return a, nil
		}
		a.fetching = false
		a.err = msg.err
		a.mode = modeError
		return a, nil

	case spinner.TickMsg:
		if a.fetching {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeLoading, modeNotConfigured:
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a, nil
	case modeError:
		return a.handleErrorKey(msg)
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeDetail:
		return a.handleDetailKey(msg)
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = a.returnMode
		}
		return a, nil
	}

	return a.handleBrowseKey(msg)
}

func (a *App) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.focus == focusList && a.cursor < len(a.visible)-1 {
			a.cursor++
			a.previewScroll = 0
		} else if a.focus == focusPreview {
			a.previewScroll++
		}
		return a, nil
	case "k", "up":
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
			a.previewScroll = 0
		} else if a.focus == focusPreview && a.previewScroll > 0 {
			a.previewScroll--
		}
		return a, nil
	case "g":
		a.cursor = 0
		a.previewScroll = 0
		return a, nil
	case "G":
		a.cursor = max(0, len(a.visible)-1)
		a.previewScroll = 0
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusPreview
		} else {
			a.focus = focusList
		}
		return a, nil
	case "enter", "l":
		if a.selected() != nil {
			a.returnMode = modeBrowse
			a.detailScroll = 0
			a.mode = modeDetail
		}
		return a, nil
	case "o":
		return a, a.openSelectedCmd()
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "f":
		a.mode = modeFilter
		a.filterBar.filterMode = true
		return a, nil
	case "r":
		if !a.fetching {
			return a, tea.Batch(a.fetchCmd(), a.spinner.Tick)
		}
		return a, nil
	case "?":
		a.returnMode = modeBrowse
		a.mode = modeHelp
		return a, nil
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeBrowse
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.applyFilter()
		return a, nil
	case "enter":
		a.mode = modeBrowse
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	before := a.searchInput.Value()
	a.searchInput, cmd = a.searchInput.Update(msg)
	if a.searchInput.Value() != before {
		a.applyFilter()
	}
	return a, cmd
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		a.mode = modeBrowse
		a.filterBar.filterMode = false
		return a, nil
	case "left", "h":
		a.filterBar.moveLeft()
		return a, nil
	case "right", "l":
		a.filterBar.moveRight()
		return a, nil
	case " ", "enter":
		a.filterBar.selectCursor()
		a.cursor = 0
		a.applyFilter()
		return a, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx <= len(a.filterBar.categories) {
			a.filterBar.cursor = idx
			a.filterBar.selectCursor()
			a.cursor = 0
			a.applyFilter()
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "backspace":
		a.mode = a.returnMode
		return a, nil
	case "j", "down":
		a.detailScroll++
		return a, nil
	case "k", "up":
		if a.detailScroll > 0 {
			a.detailScroll--
		}
		return a, nil
	case "g":
		a.detailScroll = 0
		return a, nil
	case "o":
		return a, a.openSelectedCmd()
	case "?":
		a.returnMode = modeDetail
		a.mode = modeHelp
		return a, nil
	}
	return a, nil
}

func (a *App) handleErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return a, tea.Quit
	case "r":
		if !a.fetching {
			return a, tea.Batch(a.fetchCmd(), a.spinner.Tick)
		}
	}
	return a, nil
}

func (a *App) openSelectedCmd() tea.Cmd {
	sel := a.selected()
	if sel == nil {
		return nil
	}
	url := a.cfg.PostURL(sel.Slug)
	if url == "" {
		return nil
	}
	return func() tea.Msg {
		// Fire and forget; a launch failure is not worth a mode switch.
		_ = browser.Open(url)
		return nil
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  postdeck")
	}

	switch a.mode {
	case modeNotConfigured:
		return a.renderNotConfigured()
	case modeLoading:
		return a.renderLoading()
	case modeError:
		return a.renderError()
	case modeHelp:
		return a.renderHelp()
	case modeDetail:
		if sel := a.selected(); sel != nil {
			return renderDetail(*sel, a.cfg.PostURL(sel.Slug), a.width, a.height-1, a.detailScroll) +
				"\n" + statusBarStyle.Width(a.width).Render(" esc back  j/k scroll  o open  ? help ")
		}
	}

	return a.renderBrowse()
}

func (a *App) renderBrowse() string {
	headerHeight := 1
	filterHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - filterHeight - statusHeight - 4 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}

	listWidth := int(float64(a.width) * 0.4)
	previewWidth := a.width - listWidth - 1 // gap

	// Header
	headerLeft := headerStyle.Render("postdeck")
	headerRight := headerDateStyle.Render(a.currentDate)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	// Category chips, replaced by the search input while searching
	bar := a.filterBar.render(a.width)
	if a.mode == modeSearch {
		bar = a.searchInput.View()
	}

	// List pane
	innerListW := listWidth - 4
	listContent := renderList(a.visible, a.cursor, contentHeight, innerListW)

	var listPane string
	if a.focus == focusList {
		listPane = listPaneActiveStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	} else {
		listPane = listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	}

	// Preview pane
	innerPreviewW := previewWidth - 4
	previewContent := renderPreview(a.selected(), innerPreviewW, contentHeight, a.previewScroll)

	var previewPane string
	if a.focus == focusPreview {
		previewPane = previewPaneActiveStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	} else {
		previewPane = previewPaneStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)

	status := renderStatusBar(
		len(a.visible),
		len(a.articles),
		a.filterBar.activeLabel(),
		a.searchInput.Value(),
		a.width,
		a.mode == modeSearch,
		a.fetching,
	)
	if a.fetching {
		status = a.spinner.View() + " " + status
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, bar, content, status)
}

func (a *App) renderLoading() string {
	msg := a.spinner.View() + " Loading posts..."
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, msg)
}

func (a *App) renderNotConfigured() string {
	body := errTitleStyle.Render("Not configured") + "\n\n" +
		"postdeck needs Contentful delivery credentials:\n\n" +
		"  CONTENTFUL_SPACE_ID\n" +
		"  CONTENTFUL_ACCESS_TOKEN\n\n" +
		errHintStyle.Render("Export them (or put them in a .env file) and start again.\n"+
			"There is nothing to retry until then.") + "\n\n" +
		errHintStyle.Render("q quit")
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		helpCardStyle.Render(body))
}

func (a *App) renderError() string {
	title := "Could not load posts"
	hint := "r retry  q quit"
	detail := ""

	var apiErr *contentful.APIError
	if errors.As(a.err, &apiErr) {
		detail = apiErr.Message() + "\n" + errHintStyle.Render(apiErr.Hint())
	} else if a.err != nil {
		detail = a.err.Error()
	}

	body := errTitleStyle.Render(title) + "\n\n" + detail + "\n\n" + errHintStyle.Render(hint)
	if a.fetching {
		body = a.spinner.View() + " retrying...\n\n" + body
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		helpCardStyle.Render(body))
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("postdeck")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Move through the post list\n" +
		"  g/G           Jump to first/last post\n" +
		"  tab           Switch focus between list and preview\n" +
		"  enter, l      Open the full post\n\n" +
		dim.Render("Actions") + "\n" +
		"  /             Search title, excerpt and author\n" +
		"  f             Category filter mode\n" +
		"  r             Refetch posts\n" +
		"  o             Open post on the website\n\n" +
		dim.Render("Filter Mode") + "\n" +
		"  ←/→, h/l     Move between categories\n" +
		"  space/enter   Select category\n" +
		"  1-9           Select by number (1 = All)\n" +
		"  esc, f        Exit filter mode\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		helpCardStyle.Render(help))
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
