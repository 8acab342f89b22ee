package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"countdown/internal/domain"
	"countdown/internal/ui/logic"
	"countdown/internal/ui/state"
)

// EmptyStateText is shown in place of the card grid when nothing is visible
const EmptyStateText = "No events yet. Press a to add one."

// Lines around the grid: title, stats and search each followed by a blank
// line; one scroll indicator above and below; a blank line before the
// notification and before the help line.
const (
	headerLines       = 6
	indicatorLines    = 2
	notificationLines = 2
	helpLineLines     = 2
)

// Dialog identifies the dialog drawn over the main view
type Dialog int

const (
	DialogNone Dialog = iota
	DialogAdd
	DialogEdit
	DialogDelete
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Stats        state.StatsView
	Events       []domain.Event // visible events
	Loaded       bool
	Cursor       int
	GridOffset   int // first grid row on screen
	StatusFilter domain.Status

	SearchInput   string // rendered search field
	SearchQuery   string
	SearchFocused bool

	Notification state.Notification

	Dialog       Dialog
	DialogTarget string
	DeletePrompt string
	AddName      string // rendered inputs
	AddDate      string
	AddFocus     int
	EditDate     string

	ShowHelp         bool
	ShowHelpLine     bool
	HelpScrollOffset int
	HelpModel        help.Model
	Keys             help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	cardRender  *CardRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(dateLayout string) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		cardRender:  NewCardRenderer(styles, dateLayout),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	// Dialogs take the whole screen, topmost first
	switch vs.Dialog {
	case DialogDelete:
		prompt := logic.SanitizeTerminal(vs.DeletePrompt)
		return r.popupRender.RenderPopupOverlay(r.popupRender.DeleteDialog(prompt), vs.Height, vs.Width, r.styles.DialogBox)
	case DialogEdit:
		name := logic.SanitizeTerminal(vs.DialogTarget)
		return r.popupRender.RenderPopupOverlay(r.popupRender.EditDialog(name, vs.EditDate), vs.Height, vs.Width, r.styles.DialogBox)
	case DialogAdd:
		return r.popupRender.RenderPopupOverlay(r.popupRender.AddDialog(vs.AddName, vs.AddDate, vs.AddFocus), vs.Height, vs.Width, r.styles.DialogBox)
	}

	if vs.ShowHelp && vs.Keys != nil {
		content := r.RenderHelpContent(vs.Keys.FullHelp(), vs.Height, vs.HelpScrollOffset)
		return r.popupRender.RenderPopupOverlay(content, vs.Height, vs.Width, r.styles.InfoBox)
	}

	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(vs))
	content.WriteString("\n\n")
	content.WriteString(r.RenderStats(vs.Stats))
	content.WriteString("\n\n")
	content.WriteString(r.renderSearchLine(vs))
	content.WriteString("\n\n")

	switch {
	case !vs.Loaded:
		content.WriteString(r.styles.Dim.Render("Loading events..."))
	case len(vs.Events) == 0:
		content.WriteString(r.styles.Dim.Render(EmptyStateText))
	default:
		content.WriteString(r.renderGridWindow(vs))
	}

	if vs.Notification.Visible && vs.Notification.Message != "" {
		content.WriteString("\n\n")
		content.WriteString(r.RenderNotification(vs.Notification))
	}

	if vs.ShowHelpLine && vs.Keys != nil {
		content.WriteString("\n\n")
		content.WriteString(r.styles.Help.Render(vs.HelpModel.ShortHelpView(vs.Keys.ShortHelp())))
	}

	mainStyle := r.styles.Main
	if vs.Height > 0 {
		mainStyle = mainStyle.MaxHeight(vs.Height)
	}
	return mainStyle.Render(content.String())
}

// GridCapacity returns how many cards fit per row and how many grid rows fit
// on screen. rows is 0 when the height is unknown.
func (r *Renderer) GridCapacity(width, height int, helpLine bool) (perRow, rows int) {
	if width <= 0 {
		width = 80 // Default terminal width
	}
	perRow = r.cardRender.PerRow(width - r.styles.Main.GetHorizontalFrameSize())
	if height <= 0 {
		return perRow, 0
	}

	available := height - r.styles.Main.GetVerticalFrameSize() - headerLines - indicatorLines - notificationLines
	if helpLine {
		available -= helpLineLines
	}
	rows = available / r.cardRender.CardHeight()
	if rows < 1 {
		rows = 1
	}
	return perRow, rows
}

// GridOffset returns the first grid row to draw so the cursor row is on screen
func (r *Renderer) GridOffset(vs ViewState) int {
	perRow, rows := r.GridCapacity(vs.Width, vs.Height, vs.ShowHelpLine && vs.Keys != nil)
	if rows == 0 {
		return 0
	}
	total := logic.RowCount(len(vs.Events), perRow)
	return logic.EnsureVisible(logic.RowOf(vs.Cursor, perRow), vs.GridOffset, rows, total)
}

// renderGridWindow draws the grid rows that fit, with scroll indicators
func (r *Renderer) renderGridWindow(vs ViewState) string {
	perRow, rows := r.GridCapacity(vs.Width, vs.Height, vs.ShowHelpLine && vs.Keys != nil)
	offset := r.GridOffset(vs)

	var b strings.Builder
	above := offset * perRow
	if above > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", above)))
	}
	b.WriteString("\n")
	b.WriteString(r.cardRender.RenderGrid(vs.Events, vs.Cursor, perRow, offset, rows))
	b.WriteString("\n")

	if rows > 0 {
		below := len(vs.Events) - (offset+rows)*perRow
		if below > 0 {
			b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
		}
	}
	return b.String()
}

func (r *Renderer) renderTitleLine(vs ViewState) string {
	logo := r.styles.Title.Render("countdown")
	if vs.StatusFilter == "" {
		return logo
	}
	filterText := r.styles.Filter.Render(fmt.Sprintf("[Status: %s]", logic.StatusLabel(vs.StatusFilter)))

	termWidth := vs.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	// Account for main container padding
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(filterText)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + filterText
}

// RenderStats renders the aggregate counts header
func (r *Renderer) RenderStats(st state.StatsView) string {
	stat := func(label, value string) string {
		return r.styles.StatLabel.Render(label+": ") + r.styles.StatValue.Render(logic.SanitizeTerminal(value))
	}
	return strings.Join([]string{
		stat("Total", st.Total),
		stat("Active", st.Active),
		stat("Expired", st.Expired),
		stat("Next", st.Next),
	}, "   ")
}

func (r *Renderer) renderSearchLine(vs ViewState) string {
	label := r.styles.StatLabel.Render("Search: ")
	if vs.SearchFocused {
		return r.styles.FieldFocused.Render("/ ") + vs.SearchInput
	}
	if vs.SearchQuery == "" {
		return label + r.styles.Dim.Render("press / to search")
	}
	return label + logic.SanitizeTerminal(vs.SearchQuery)
}

// RenderNotification renders the transient message slot
func (r *Renderer) RenderNotification(n state.Notification) string {
	return r.styles.Notification(n.Level).Render(logic.SanitizeTerminal(n.Message))
}
