package console

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"bookloom/internal/external"
	"bookloom/internal/library"
	"bookloom/internal/pipeline"
	"bookloom/internal/stages"
)

// Console writes operator output to a single stream.
type Console struct {
	out      io.Writer
	colorize bool
	printer  *message.Printer
}

// New returns a console writing to out, colourised when out is a terminal.
func New(out io.Writer) *Console {
	return &Console{out: out, colorize: ShouldColorize(out), printer: message.NewPrinter(language.English)}
}

// Status prints one status line.
func (c *Console) Status(label string, kind Kind, msg string) {
	c.line(RenderStatusLine(label, kind, msg, c.colorize))
}

// Section prints a header with an underline, preceded by a blank line.
func (c *Console) Section(title string) {
	c.line("")
	for _, l := range RenderSectionHeader(title, c.colorize) {
		c.line(l)
	}
}

// Table prints a rendered table.
func (c *Console) Table(headers []string, rows [][]string, aligns []Alignment) {
	if rendered := RenderTable(headers, rows, aligns); rendered != "" {
		c.line(rendered)
	}
}

// Println writes a line.
func (c *Console) Println(text string) {
	c.line(text)
}

// Number formats n with thousands separators.
func (c *Console) Number(n int) string {
	return c.printer.Sprintf("%d", n)
}

func (c *Console) line(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

// BookEntry is one row of the book selection table.
type BookEntry struct {
	Book     library.Book
	Chapters int
	Clean    int
}

// Books prints the numbered book table.
func (c *Console) Books(entries []BookEntry) {
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.Book.Title(),
			e.Book.Name,
			c.Number(e.Chapters),
			c.Number(e.Clean),
		})
	}
	c.Table(
		[]string{"#", "Title", "Directory", "Chapters", "Clean"},
		rows,
		[]Alignment{AlignRight, AlignLeft, AlignLeft, AlignRight, AlignRight},
	)
}

// StageStarted implements stages.Observer.
func (c *Console) StageStarted(stage stages.Name, book library.Book, files []string) {
	c.Section(fmt.Sprintf("%s: %s", stage.Label(), book.Title()))
	if len(files) > 0 {
		c.Status("Files", KindInfo, fmt.Sprintf("%d to process in %s", len(files), book.ChaptersDir))
	}
}

// NothingToProcess implements stages.Observer.
func (c *Console) NothingToProcess(stage stages.Name, book library.Book, hint string) {
	c.Status(stage.Label(), KindWarn, hint)
}

// FileStarted implements stages.Observer.
func (c *Console) FileStarted(_ stages.Name, index, total int, file string) {
	c.line(fmt.Sprintf("%s[%d/%d] %s", statusIndent, index, total, filepath.Base(file)))
}

// FileFinished implements stages.Observer.
func (c *Console) FileFinished(_ stages.Name, _, _ int, file string, res external.Result, err error) {
	name := filepath.Base(file)
	switch {
	case err != nil:
		c.Status(name, KindFail, err.Error())
	case res.Succeeded():
		c.Status(name, KindOK, "done in "+formatDuration(res.Duration))
	default:
		c.Status(name, KindFail, fmt.Sprintf("exit code %d", res.ExitCode))
	}
}

// StageFinished implements stages.Observer.
func (c *Console) StageFinished(res stages.Result) {
	if res.Empty() {
		return
	}
	kind := KindOK
	switch {
	case res.Processed == 0:
		kind = KindFail
	case !res.Complete():
		kind = KindWarn
	}
	msg := fmt.Sprintf("%d/%d processed", res.Processed, res.Total)
	if res.Failed > 0 {
		msg += fmt.Sprintf(", %d failed", res.Failed)
	}
	c.Status("Summary", kind, msg)
}

// PipelineStopped implements pipeline.Reporter.
func (c *Console) PipelineStopped(out pipeline.Outcome) {
	c.Section("Pipeline")
	detail := "no chapters were preprocessed; audio generation skipped"
	if out.Preprocess.Empty() {
		detail = "no chapter files found; audio generation skipped"
	}
	c.Status("Pipeline stopped", KindFail, detail)
}

// PipelineFinished implements pipeline.Reporter.
func (c *Console) PipelineFinished(out pipeline.Outcome) {
	c.Section("Pipeline summary: " + out.Book.Title())
	results := []stages.Result{out.Preprocess}
	if out.Synthesis != nil {
		results = append(results, *out.Synthesis)
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Stage.Label(),
			c.Number(r.Processed),
			c.Number(r.Failed),
			c.Number(r.Total),
		})
	}
	c.Table([]string{"Stage", "Processed", "Failed", "Total"}, rows,
		[]Alignment{AlignLeft, AlignRight, AlignRight, AlignRight})

	switch out.Verdict {
	case pipeline.VerdictSuccess:
		c.Status("Pipeline", KindOK, "all chapters converted to audio")
	default:
		c.Status("Pipeline", KindWarn, "completed with failures; see the file lines above")
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}

var (
	_ stages.Observer   = (*Console)(nil)
	_ pipeline.Reporter = (*Console)(nil)
)
