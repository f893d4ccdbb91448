package browse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/itz-Amethyst/excel-term/pkg/inventory/chart"
	"github.com/itz-Amethyst/excel-term/pkg/inventory/models"
)

// Source is the read side of an inventory workbook.
type Source interface {
	ProductSheets() []string
	Sheet(name string) (models.ProductSheet, error)
	Reload() error
}

// Session is an interactive pager over product sheets driven by line commands.
type Session struct {
	src Source
	nav *Navigator
	in  *bufio.Scanner
	out io.Writer

	// showChart prints the price chart under each sheet's table.
	showChart bool
}

// NewSession creates a session reading commands from in and writing to out.
func NewSession(src Source, in io.Reader, out io.Writer) *Session {
	return &Session{
		src: src,
		nav: NewNavigator(src.ProductSheets()),
		in:  bufio.NewScanner(in),
		out: out,

		showChart: true,
	}
}

const help = "commands: n next, p previous, g <sheet> go to, c toggle chart, r reload, q quit"

// Run shows the first sheet and processes commands until q or end of input.
func (s *Session) Run() error {
	if err := s.show(); err != nil {
		return err
	}
	for {
		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(s.in.Text()), " ")
		switch strings.ToLower(cmd) {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case "n", "next":
			if !s.nav.Next() {
				fmt.Fprintln(s.out, "already at the last sheet")
				continue
			}
		case "p", "prev", "previous":
			if !s.nav.Prev() {
				fmt.Fprintln(s.out, "already at the first sheet")
				continue
			}
		case "g", "go", "goto":
			if !s.goTo(strings.TrimSpace(arg)) {
				fmt.Fprintf(s.out, "no product sheet %q\n", strings.TrimSpace(arg))
				continue
			}
		case "c", "chart":
			s.showChart = !s.showChart
		case "r", "reload":
			if err := s.src.Reload(); err != nil {
				return err
			}
			s.nav.Reset(s.src.ProductSheets())
		default:
			fmt.Fprintln(s.out, help)
			continue
		}
		if err := s.show(); err != nil {
			return err
		}
	}
}

func (s *Session) goTo(name string) bool {
	if name == "" {
		return false
	}
	sheet, err := s.src.Sheet(name)
	if err != nil {
		return false
	}
	return s.nav.Goto(sheet.Title)
}

func (s *Session) show() error {
	title, ok := s.nav.Current()
	if !ok {
		_, err := fmt.Fprintln(s.out, "no product sheets")
		return err
	}
	sheet, err := s.src.Sheet(title)
	if err != nil {
		return err
	}
	if err := WriteSheet(s.out, sheet); err != nil {
		return err
	}
	if s.showChart && len(sheet.Records) > 0 {
		fmt.Fprintf(s.out, "\n%s\n", chart.PriceTitle)
		if err := chart.WritePrices(s.out, chart.Prices(sheet.Title, sheet.Records, nil)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(s.out, "[%d/%d] %s\n", s.nav.Index()+1, s.nav.Len(), help)
	return err
}
