// Package markdown renders event descriptions for the terminal.
//
// Descriptions are short prose, so the renderer covers paragraphs, headings,
// emphasis, links, lists, quotes and code and leaves everything else as
// plain text. Soft line breaks become spaces and paragraphs are re-wrapped
// to the requested width.
package markdown

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// minWidth keeps wrapping sane inside deep list or quote nesting.
const minWidth = 10

// wrapBreakpoints are the extra characters ansi.Wrap may break after.
const wrapBreakpoints = " -"

var (
	parserOnce sync.Once
	parser     goldmark.Markdown
)

func markdownParser() goldmark.Markdown {
	parserOnce.Do(func() {
		parser = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return parser
}

// Palette holds the colors the renderer uses. Zero values render unstyled.
type Palette struct {
	Text    lipgloss.TerminalColor
	Heading lipgloss.TerminalColor
	Faint   lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
}

// Options configures a Renderer.
type Options struct {
	// Width is the wrap width in cells. Zero means 80.
	Width int
	// Profile is the color profile to emit. termenv.Ascii produces plain
	// text; the zero value (TrueColor) is usually too much for tests.
	Profile termenv.Profile
	// Palette colors the output.
	Palette Palette
	// Output is where the lipgloss renderer would detect terminal
	// capabilities. Nil means stdout.
	Output io.Writer
}

// Renderer turns markdown into styled terminal text. It is safe for
// concurrent use; each Render call keeps its own state.
type Renderer struct {
	width   int
	palette Palette
	lip     *lipgloss.Renderer
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	// An explicit profile bypasses environment detection, which would
	// otherwise strip colors whenever output is not a TTY
	lip := lipgloss.NewRenderer(out, termenv.WithProfile(opts.Profile))
	lip.SetColorProfile(opts.Profile)

	return &Renderer{width: width, palette: opts.Palette, lip: lip}
}

// Render converts src to terminal text with no trailing newline.
func (r *Renderer) Render(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	source := []byte(src)
	doc := markdownParser().Parser().Parse(text.NewReader(source))

	w := &walker{r: r, source: source}
	_ = ast.Walk(doc, w.walk)
	return strings.TrimRight(w.out.String(), "\n")
}

// Plain renders src without color at the given width.
func Plain(src string, width int) string {
	return New(Options{Width: width, Profile: termenv.Ascii}).Render(src)
}

// walker holds the state of one Render call.
type walker struct {
	r      *Renderer
	source []byte

	out    strings.Builder
	inline strings.Builder

	prefix      string
	prefixWidth int
	prefixes    []string
	bullet      string

	bold, italic, strike int
	lists                []list

	trailing int
}

type list struct {
	ordered bool
	next    int
	tight   bool
}

func (w *walker) style(c lipgloss.TerminalColor) lipgloss.Style {
	s := w.r.lip.NewStyle()
	if c != nil {
		s = s.Foreground(c)
	}
	return s
}

func (w *walker) write(s string) {
	if s == "" {
		return
	}
	w.out.WriteString(s)
	n := len(s) - len(strings.TrimRight(s, "\n"))
	if n == len(s) {
		w.trailing += n
	} else {
		w.trailing = n
	}
}

func (w *walker) newline() {
	if w.out.Len() > 0 && w.trailing < 1 {
		w.write("\n")
	}
}

func (w *walker) blankLine() {
	if w.out.Len() == 0 {
		return
	}
	for w.trailing < 2 {
		w.write("\n")
	}
}

func (w *walker) pushPrefix(p string) {
	w.prefixes = append(w.prefixes, p)
	w.prefix += p
	w.prefixWidth += ansi.StringWidth(p)
}

func (w *walker) popPrefix() {
	if len(w.prefixes) == 0 {
		return
	}
	top := w.prefixes[len(w.prefixes)-1]
	w.prefixes = w.prefixes[:len(w.prefixes)-1]
	w.prefix = w.prefix[:len(w.prefix)-len(top)]
	w.prefixWidth -= ansi.StringWidth(top)
}

func (w *walker) width() int {
	return max(w.r.width-w.prefixWidth, minWidth)
}

// emit writes a wrapped block with the current prefixes. A pending list
// bullet replaces the prefix on the first line.
func (w *walker) emit(block string) {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		p := w.prefix
		if i == 0 && w.bullet != "" {
			p, w.bullet = w.bullet, ""
		}
		w.write(p + line)
		if i < len(lines)-1 {
			w.write("\n")
		}
	}
}

func (w *walker) flush() string {
	content := w.inline.String()
	w.inline.Reset()
	if content == "" {
		return ""
	}
	return ansi.Wrap(content, w.width(), wrapBreakpoints)
}

func (w *walker) styled(s string) string {
	st := w.style(w.r.palette.Text)
	if w.bold > 0 {
		st = st.Bold(true)
	}
	if w.italic > 0 {
		st = st.Italic(true)
	}
	if w.strike > 0 {
		st = st.Strikethrough(true)
	}
	return st.Render(s)
}

func (w *walker) inTightList() bool {
	return len(w.lists) > 0 && w.lists[len(w.lists)-1].tight
}

func (w *walker) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		if entering {
			w.inline.Reset()
			return ast.WalkContinue, nil
		}
		if block := w.flush(); block != "" {
			w.emit(block)
			w.newline()
			if !w.inTightList() {
				w.blankLine()
			}
		}

	case *ast.Heading:
		if entering {
			w.inline.Reset()
			return ast.WalkContinue, nil
		}
		content := ansi.Strip(w.inline.String())
		w.inline.Reset()
		if content == "" {
			break
		}
		color := w.r.palette.Text
		if n.Level <= 2 {
			color = w.r.palette.Heading
		}
		w.blankLine()
		w.emit(ansi.Wrap(w.style(color).Bold(true).Render(content), w.width(), wrapBreakpoints))
		w.newline()
		w.blankLine()

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if !entering {
			break
		}
		var code strings.Builder
		lines := node.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			code.Write(seg.Value(w.source))
		}
		faint := w.style(w.r.palette.Faint)
		w.newline()
		for _, line := range strings.Split(strings.TrimRight(code.String(), "\n"), "\n") {
			w.emit("    " + faint.Render(line))
			w.write("\n")
		}
		w.blankLine()
		return ast.WalkSkipChildren, nil

	case *ast.Blockquote:
		if entering {
			w.pushPrefix(w.style(w.r.palette.Faint).Render("│") + " ")
		} else {
			w.popPrefix()
			w.blankLine()
		}

	case *ast.List:
		if entering {
			w.newline()
			w.lists = append(w.lists, list{ordered: n.IsOrdered(), next: n.Start, tight: n.IsTight})
		} else {
			w.lists = w.lists[:len(w.lists)-1]
			if len(w.lists) == 0 {
				w.blankLine()
			}
		}

	case *ast.ListItem:
		if entering {
			l := &w.lists[len(w.lists)-1]
			marker := "• "
			if l.ordered {
				marker = strconv.Itoa(l.next) + ". "
				l.next++
			}
			w.bullet = w.prefix + w.style(w.r.palette.Accent).Render(marker)
			w.pushPrefix(strings.Repeat(" ", ansi.StringWidth(marker)))
		} else {
			w.popPrefix()
			w.newline()
		}

	case *ast.ThematicBreak:
		if entering {
			w.blankLine()
			w.emit(w.style(w.r.palette.Faint).Render(strings.Repeat("─", w.width())))
			w.newline()
			w.blankLine()
		}

	case *ast.Text:
		if !entering {
			break
		}
		w.inline.WriteString(w.styled(string(n.Segment.Value(w.source))))
		if n.HardLineBreak() {
			w.inline.WriteString("\n")
		} else if n.SoftLineBreak() {
			w.inline.WriteString(" ")
		}

	case *ast.String:
		if entering {
			w.inline.WriteString(w.styled(string(n.Value)))
		}

	case *ast.Emphasis:
		delta := -1
		if entering {
			delta = 1
		}
		if n.Level >= 2 {
			w.bold += delta
		} else {
			w.italic += delta
		}

	case *extast.Strikethrough:
		if entering {
			w.strike++
		} else {
			w.strike--
		}

	case *ast.CodeSpan:
		if entering {
			var code strings.Builder
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					code.Write(t.Segment.Value(w.source))
				}
			}
			w.inline.WriteString(w.style(w.r.palette.Accent).Render(code.String()))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Link:
		if !entering {
			dest := string(n.Destination)
			if dest != "" {
				w.inline.WriteString(" " + w.style(w.r.palette.Faint).Render("("+dest+")"))
			}
		}

	case *ast.AutoLink:
		if entering {
			w.inline.WriteString(w.style(w.r.palette.Accent).Underline(true).Render(string(n.URL(w.source))))
		}

	case *ast.Image:
		if entering {
			alt := ansi.Strip(w.childText(n))
			w.inline.WriteString(w.style(w.r.palette.Faint).Render("[image: " + alt + "]"))
			return ast.WalkSkipChildren, nil
		}

	case *ast.RawHTML, *ast.HTMLBlock:
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}

// childText collects the plain text under n.
func (w *walker) childText(n ast.Node) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			sb.Write(t.Segment.Value(w.source))
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
