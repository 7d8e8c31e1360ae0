package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/goserg/fixturegen/internal/domain"
	"github.com/goserg/fixturegen/internal/schedule"
)

const (
	matchdayHeading = "Matchday "
	versus          = "  vs.  "
	byeSeparator    = ": "
)

// Text renders one block per matchday: a heading, the scored matches and
// then the resting competitors, followed by a blank line.
func Text(matchdays []domain.Matchday, byeLabel string) string {
	var buffer strings.Builder
	for _, day := range matchdays {
		writeMatchday(&buffer, day, byeLabel)
	}
	return buffer.String()
}

func WriteText(w io.Writer, matchdays []domain.Matchday, byeLabel string) error {
	_, err := io.WriteString(w, Text(matchdays, byeLabel))
	return err
}

func writeMatchday(buffer *strings.Builder, day domain.Matchday, byeLabel string) {
	buffer.WriteString(matchdayHeading)
	buffer.WriteString(strconv.Itoa(day.Number))
	buffer.WriteString("\n")
	for _, m := range day.Scored() {
		buffer.WriteString(m.Home.Name)
		buffer.WriteString(versus)
		buffer.WriteString(m.Away.Name)
		buffer.WriteString("\n")
	}
	for _, m := range day.Byes() {
		buffer.WriteString(byeLabel)
		buffer.WriteString(byeSeparator)
		buffer.WriteString(m.Home.Name)
		buffer.WriteString("\n")
	}
	buffer.WriteString("\n")
}

// Matrix prints the assignment matrix as aligned columns.
func Matrix(w io.Writer, mx schedule.Matrix) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, row := range mx.Rows() {
		for _, cell := range row {
			if _, err := fmt.Fprintf(tw, "%d\t", cell); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(tw); err != nil {
			return err
		}
	}
	return tw.Flush()
}
