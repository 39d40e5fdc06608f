package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/dmarulanda/atraco/pkg/game"
)

const PlaceHolderText = "Escribe un comando..."

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	session      *game.Session
	sink         *captureSink
	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	notice       string

	// Quit confirmation state
	showQuitModal bool
}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	speakerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	endingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // yellow
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewConsoleUI(session *game.Session, sink *captureSink) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		session:      session,
		sink:         sink,
		textarea:     ta,
		chatViewport: chatVp,
		metaViewport: metaVp,
		ready:        false,
	}
}

// writeChatContent rebuilds the transcript for the current viewport
// width.
func (m *ConsoleUI) writeChatContent() {
	chatWidth := m.chatViewport.Width - 6 // Account for left(3) + right(3) padding

	var content strings.Builder
	content.WriteString(titleStyle.Render("ATRACO: BANCO DE CALI") + "\n\n")
	content.WriteString("Escribe comandos para jugar. 'ayuda' lista los comandos.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(chatWidth-6, 10))) + "\n\n")

	for _, e := range m.sink.entries {
		switch e.role {
		case "player":
			content.WriteString(userStyle.Render("Tú: ") + wordwrap.String(e.content, chatWidth-6) + "\n\n")
		default:
			content.WriteString(formatGameLine(e.content, chatWidth) + "\n\n")
		}
	}

	if m.notice != "" {
		content.WriteString(promptStyle.Render(m.notice) + "\n\n")
	}

	if !m.session.Running {
		content.WriteString(endingStyle.Render("La sesión terminó. Ctrl+C para salir.") + "\n")
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

func (m *ConsoleUI) writeMetadata() {
	s := m.session
	w := s.World

	var content strings.Builder
	content.WriteString(titleStyle.Render("ESTADO") + "\n\n")

	content.WriteString("Sesión:\n")
	content.WriteString(s.ID.String()[:8] + "...\n\n")

	room := w.Rooms[s.Player.Location]
	content.WriteString("Lugar:\n")
	content.WriteString(room.Name + "\n\n")

	cams := "ON"
	if w.CamerasDisabled {
		cams = "OFF"
	}
	content.WriteString(fmt.Sprintf("Alerta: %d/%d\n", w.AlertLevel, w.Settings.AlertThreshold))
	content.WriteString(fmt.Sprintf("Cámaras: %s\n", cams))
	if w.CamerasDisabled && w.CamsOffMovesLeft != nil {
		content.WriteString(fmt.Sprintf("Ceguera: %d mov.\n", *w.CamsOffMovesLeft))
	}
	if w.KeypadLockMoves > 0 {
		content.WriteString(fmt.Sprintf("Teclado bloq.: %d mov.\n", w.KeypadLockMoves))
	}
	if w.DisguiseMovesLeft > 0 {
		content.WriteString(fmt.Sprintf("Uniforme: %d mov.\n", w.DisguiseMovesLeft))
	}
	patrol := "LEJOS"
	if w.PatrolActive {
		patrol = "EN RUTA"
	}
	content.WriteString(fmt.Sprintf("Movimientos: %d\n", w.TotalMoves))
	content.WriteString(fmt.Sprintf("Patrulla: %s\n\n", patrol))

	content.WriteString("Inventario:\n")
	if len(s.Player.Inventory) == 0 {
		content.WriteString("(vacío)\n")
	} else {
		for _, it := range s.Player.Inventory {
			content.WriteString("• " + it + "\n")
		}
	}
	if s.Player.HasLoot {
		content.WriteString("• Botín\n")
	}
	if w.Evidence {
		content.WriteString("• Dossier\n")
	}

	if s.Ending != game.EndingNone {
		content.WriteString("\nFinal:\n")
		content.WriteString(string(s.Ending) + "\n")
	}

	content.WriteString("\n")
	content.WriteString("Atajos:\n")
	content.WriteString("• Ctrl+C: Salir\n")
	content.WriteString("• Enter: Enviar\n")
	content.WriteString("• /copiar: Copiar transcripción\n")

	m.metaViewport.SetContent(content.String())
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.chatViewport, vpCmd = m.chatViewport.Update(msg)
		m.textarea, tiCmd = m.textarea.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(tiCmd, vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chatWidth := int(float64(m.width)*0.75) - 4
		metaWidth := m.width - chatWidth - 6

		m.chatViewport.Width = chatWidth - 2
		m.chatViewport.Height = m.height - 7
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(chatWidth - 4)

		m.ready = true
		m.writeChatContent()
		m.writeMetadata()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()
			m.notice = ""

			if strings.HasPrefix(input, "/") {
				return m.handleCommand(input)
			}

			if !m.session.Running {
				return m, nil
			}

			m.sink.addPlayerLine(input)
			m.session.Execute(input)
			m.writeChatContent()
			m.writeMetadata()
			return m, nil
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

// formatGameLine wraps a narration line and highlights a leading
// speaker prefix such as "Bernal (radio):".
func formatGameLine(line string, width int) string {
	wrapped := wordwrap.String(line, max(width-6, 10))
	lines := strings.Split(wrapped, "\n")
	var formatted []string

	for i, l := range lines {
		trimmed := strings.TrimSpace(l)
		if i == 0 {
			if idx := strings.Index(trimmed, ":"); idx > 0 && idx <= 20 {
				speaker := trimmed[:idx]
				if len(strings.Fields(speaker)) <= 2 {
					formatted = append(formatted, speakerStyle.Render(speaker+":")+trimmed[idx+1:])
					continue
				}
			}
		}
		if strings.HasPrefix(trimmed, "FINAL") {
			formatted = append(formatted, endingStyle.Render(l))
			continue
		}
		formatted = append(formatted, gameStyle.Render(l))
	}

	return strings.Join(formatted, "\n")
}

func (m ConsoleUI) handleCommand(input string) (tea.Model, tea.Cmd) {
	cmd := strings.ToLower(strings.TrimSpace(input))

	switch cmd {
	case "/copiar", "/copy":
		if err := clipboard.WriteAll(m.sink.plainTranscript()); err != nil {
			m.notice = "No se pudo copiar la transcripción: " + err.Error()
		} else {
			m.notice = "Transcripción copiada al portapapeles."
		}
	default:
		m.notice = "Comando de consola desconocido. Prueba /copiar."
	}

	m.writeChatContent()
	return m, nil
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y", "s", "S":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("¿Abandonar la noche?"))
	content.WriteString("\n\n")
	content.WriteString("El banco seguirá ahí mañana. ¿Seguro que sales?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("S para salir, N para seguir, Ctrl+C para forzar"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - chatWidth - 6

	prompt := promptStyle.Render(strings.TrimSpace(m.session.Prompt()))

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(chatWidth-4, 10))),
			prompt,
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}
