// Package tui is the terminal dashboard: a stock list with a filter and a
// detail screen backed by a usecase.DetailView.
package tui

import (
	"context"
	"fmt"
	"strings"

	"Nivesh/internal/domain/models"
	"Nivesh/internal/presenter"
	"Nivesh/internal/usecase"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

type stocksLoadedMsg struct {
	stocks []models.Stock
	err    error
}

// viewChangedMsg is sent after every change of the detail view.
type viewChangedMsg struct{}

type generateDoneMsg struct {
	err error
}

// Model is the root bubbletea model.
type Model struct {
	ctx    context.Context
	list   *usecase.StockList
	view   *usecase.DetailView
	sub    <-chan struct{}
	unsub  func()
	styles Styles

	width  int
	height int
	screen screen

	stocks      []models.Stock
	loadingList bool
	listErr     string
	cursor      int

	filter        textinput.Model
	filterFocused bool

	spinner spinner.Model
	notice  string
}

// New builds the model subscribed to view. Call Close when the program exits.
func New(ctx context.Context, list *usecase.StockList, view *usecase.DetailView) Model {
	fi := textinput.New()
	fi.Placeholder = "Filter by ticker or name..."
	fi.CharLimit = 64
	fi.Width = 40
	fi.Prompt = "/ "

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	sub, unsub := view.Subscribe()

	return Model{
		ctx:         ctx,
		list:        list,
		view:        view,
		sub:         sub,
		unsub:       unsub,
		styles:      DefaultStyles(),
		width:       100,
		height:      30,
		loadingList: true,
		filter:      fi,
		spinner:     sp,
	}
}

// Close ends the view subscription.
func (m Model) Close() {
	if m.unsub != nil {
		m.unsub()
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadStocks(), waitForChange(m.sub), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case stocksLoadedMsg:
		m.loadingList = false
		if msg.err != nil {
			m.listErr = msg.err.Error()
			return m, nil
		}
		m.listErr = ""
		m.stocks = msg.stocks
		m.cursor = 0
		return m, nil

	case viewChangedMsg:
		return m, waitForChange(m.sub)

	case generateDoneMsg:
		if msg.err != nil {
			m.notice = presenter.GenerateFailedText
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == screenDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterFocused {
		switch msg.String() {
		case "esc", "enter":
			m.filterFocused = false
			m.filter.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.cursor = 0
		return m, cmd
	}

	rows := m.visibleStocks()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.filterFocused = true
		cmd := m.filter.Focus()
		return m, cmd
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case "r":
		m.loadingList = true
		return m, m.loadStocks()
	case "enter":
		if m.cursor < len(rows) {
			m.view.Open(rows[m.cursor].Ticker)
			m.screen = screenDetail
			m.notice = ""
		}
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		if m.notice != "" {
			m.notice = ""
			return m, nil
		}
		m.view.Leave()
		m.screen = screenList
	case "r":
		m.notice = ""
		m.view.Reload()
	case "g":
		s := m.view.Snapshot()
		if s.Phase != models.PhaseReady || s.Generating {
			return m, nil
		}
		m.notice = ""
		return m, m.generate()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Nivesh · stock predictions"))
	b.WriteString("\n\n")
	if m.screen == screenDetail {
		b.WriteString(m.detailView())
	} else {
		b.WriteString(m.listView())
	}
	return b.String()
}

func (m Model) listView() string {
	var b strings.Builder
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	switch {
	case m.loadingList:
		b.WriteString(m.spinner.View() + " Loading stocks...")
	case m.listErr != "":
		b.WriteString(m.styles.Error.Render("Failed to load stocks: " + m.listErr))
	default:
		page := presenter.BuildListPage(m.stocks, m.filter.Value())
		if page.Total == 0 {
			b.WriteString(m.styles.Muted.Render("No stocks match."))
		}
		for i, row := range page.Rows {
			line := fmt.Sprintf("%-14s %s", row.Ticker, row.Name)
			if row.Sector != "" {
				line += m.styles.Muted.Render("  " + row.Sector)
			}
			if i == m.cursor {
				b.WriteString(m.styles.Selected.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}
	b.WriteString(m.styles.Footer.Render("/ filter · ↑/↓ move · enter open · r refresh · q quit"))
	return b.String()
}

func (m Model) detailView() string {
	page := presenter.BuildDetailPage(m.view.Snapshot())
	var b strings.Builder

	switch {
	case page.Loading:
		b.WriteString(m.spinner.View() + " Loading " + page.Ticker + "...")
	case page.Error != "":
		b.WriteString(m.styles.Error.Render(page.Error))
		b.WriteString("\n")
		if page.CanRetry {
			b.WriteString(m.styles.Muted.Render("Press r to retry."))
		}
	default:
		b.WriteString(m.readyView(page))
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Notice.Render(m.notice + "  (esc to dismiss)"))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("esc back · r reload · g generate · q quit"))
	return b.String()
}

func (m Model) readyView(page presenter.DetailPage) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(page.Ticker))
	b.WriteString("  " + m.styles.Muted.Render(page.Name))
	if page.Sector != "" {
		b.WriteString(m.styles.Muted.Render(" · " + page.Sector))
	}
	b.WriteString("\n\n")

	var blocks []string
	if page.Price != nil {
		blocks = append(blocks, m.styles.Panel.Render("Current Price\n"+m.styles.Title.Render(page.Price.Text)))
	}
	for _, c := range page.Changes {
		blocks = append(blocks, m.styles.Panel.Render(c.Label+"\n"+m.styles.trend(c.Trend).Render(c.Text)))
	}
	if len(blocks) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
		b.WriteString("\n\n")
	}

	switch {
	case len(page.Chart) > 0:
		b.WriteString(m.styles.Title.Render("Price History"))
		b.WriteString("\n")
		b.WriteString(renderChart(page.Chart, m.width))
		b.WriteString("\n\n")
	case page.ChartLoading:
		b.WriteString(m.spinner.View() + " Loading price history...\n\n")
	}

	switch {
	case page.Forecast != nil:
		b.WriteString(m.forecastView(page.Forecast))
	case page.ForecastLoading:
		b.WriteString(m.spinner.View() + " Loading predictions...")
	case page.CallToAction != nil:
		cta := page.CallToAction.Message + "\n"
		if page.CallToAction.Busy {
			cta += m.spinner.View() + " Generating..."
		} else {
			cta += "Press g: " + page.CallToAction.Action
		}
		b.WriteString(m.styles.Panel.Render(cta))
	}
	return b.String()
}

func (m Model) forecastView(f *presenter.ForecastPanel) string {
	var rows []string
	for _, r := range f.Rows {
		var b strings.Builder
		b.WriteString(m.styles.Title.Render(r.Label) + "\n")
		b.WriteString("Predicted " + r.PredictedPrice)
		if r.ExpectedChange != "" {
			b.WriteString("  " + m.styles.trend(r.Trend).Render(r.ExpectedChange))
		}
		b.WriteString("\nConfidence " + r.Confidence)
		if r.ModelAccuracy != "" {
			b.WriteString("\nAccuracy " + r.ModelAccuracy)
		}
		if r.TargetDate != "" {
			b.WriteString("\n" + m.styles.Muted.Render("Target "+r.TargetDate))
		}
		rows = append(rows, m.styles.Panel.Render(b.String()))
	}
	return m.styles.Title.Render("Predictions") + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, rows...)
}

func (m Model) visibleStocks() []models.Stock {
	return usecase.FilterStocks(m.stocks, m.filter.Value())
}

func (m Model) loadStocks() tea.Cmd {
	ctx, list := m.ctx, m.list
	return func() tea.Msg {
		stocks, err := list.Load(ctx)
		return stocksLoadedMsg{stocks: stocks, err: err}
	}
}

func (m Model) generate() tea.Cmd {
	ctx, view := m.ctx, m.view
	return func() tea.Msg {
		_, err := view.GenerateForecast(ctx)
		return generateDoneMsg{err: err}
	}
}

// waitForChange blocks until the detail view reports a change. A closed
// channel ends the loop.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return viewChangedMsg{}
	}
}
