// Package projection turns bots and conversations into terminal tables.
// It only reads domain state, never mutates it.
package projection

import (
	"chatbot/conversation"
	"chatbot/domain"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// Transcript is a read-only snapshot of a bot's chat records.
type Transcript struct {
	Owner   string
	Level   int
	Records []string
	Stats   domain.ChatStats
}

func NewTranscript(bot *domain.ChatBot) Transcript {
	return Transcript{
		Owner:   bot.Name(),
		Level:   bot.Level(),
		Records: bot.ChatRecords(),
		Stats:   bot.ChatStats(),
	}
}

// Render writes one row per record followed by the unique counts.
func (t Transcript) Render(w io.Writer, colours bool) {
	fmt.Fprintln(w, title(fmt.Sprintf("%s (level %d)", t.Owner, t.Level), colours))

	table := newTable(w, []string{"#", "Kind", "Chat"})
	for i, r := range t.Records {
		kind, chat, _ := strings.Cut(r, ":")
		table.Append([]string{strconv.Itoa(i + 1), kind, chat})
	}
	table.SetFooter([]string{"", "Unique", fmt.Sprintf("%d questions / %d answers",
		t.Stats.UniqueQuestions, t.Stats.UniqueAnswers)})
	table.Render()
}

// RenderSession writes the exchanges of a conversation in round order.
func RenderSession(w io.Writer, session conversation.Session, colours bool) {
	fmt.Fprintln(w, title("Session "+session.ID.String(), colours))

	table := newTable(w, []string{"Round", "Question", "Answer", "At"})
	for _, e := range session.Exchanges {
		table.Append([]string{
			strconv.Itoa(e.Round),
			e.Question,
			e.Answer,
			e.At.Format("15:04:05.000"),
		})
	}
	table.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func title(s string, colours bool) string {
	header := fmt.Sprintf("  ====== %s ======", s)
	if colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	return header
}
