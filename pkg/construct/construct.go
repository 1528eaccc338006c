package construct

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "github.com/cholwell/construct"

// Construct provides simple view based routing for the terminal.
//
// Create one with New or NewBuilder and pass Views to Display. A Construct is
// not safe for concurrent use; one instance drives one terminal session.
type Construct struct {
	terminal   *Terminal
	logo       *string
	clearing   Clearing
	logoStyle  *lipgloss.Style
	titleStyle *lipgloss.Style
	logger     *slog.Logger
	tracer     trace.Tracer
}

// Ensure Construct implements Navigator.
var _ Navigator = (*Construct)(nil)

// New creates a Construct writing to stdout with no logo and exact clearing.
func New() *Construct {
	return NewBuilder().Build()
}

// Terminal returns the output target views are rendered to.
func (c *Construct) Terminal() *Terminal {
	return c.terminal
}

// Clearing returns the configured clearing strategy.
func (c *Construct) Clearing() Clearing {
	return c.clearing
}

// Display clears the previous output, writes the logo (if any) and the
// view's title, then renders the view's content. The first write failure is
// returned as *WriteError and nothing further is written.
func (c *Construct) Display(v View) error {
	return c.display(context.Background(), v)
}

func (c *Construct) display(ctx context.Context, v View) (err error) {
	title := v.Title()

	ctx, span := c.tracer.Start(ctx, "construct.display",
		trace.WithAttributes(
			attribute.String("construct.view.title", title),
			attribute.String("construct.clearing", c.clearing.String()),
		))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	c.logger.Debug("display",
		"title", title,
		"clearing", c.clearing.String(),
		"visible_lines", c.terminal.VisibleLines())

	if err := c.terminal.ClearWith(c.clearing); err != nil {
		return err
	}
	if c.logo != nil {
		if err := c.terminal.WriteLine(render(c.logoStyle, *c.logo)); err != nil {
			return err
		}
	}
	if err := c.terminal.WriteLine(render(c.titleStyle, title)); err != nil {
		return err
	}
	return v.Content(c.terminal, navigator{c: c, ctx: ctx})
}

func render(style *lipgloss.Style, s string) string {
	if style == nil {
		return s
	}
	return style.Render(s)
}

// navigator is the Navigator handed to views. It carries the span of the
// display that created it so nested displays are traced as children.
type navigator struct {
	c   *Construct
	ctx context.Context
}

func (n navigator) Display(v View) error {
	return n.c.display(n.ctx, v)
}

// Builder configures a Construct.
//
//	c := construct.NewBuilder().
//	    WithTerminal(construct.Stdout()).
//	    WithLogo("Logo").
//	    Build()
type Builder struct {
	terminal       *Terminal
	logo           *string
	clearing       Clearing
	logoStyle      *lipgloss.Style
	titleStyle     *lipgloss.Style
	logger         *slog.Logger
	tracerProvider trace.TracerProvider
}

// NewBuilder creates a Builder with the default configuration.
func NewBuilder() *Builder {
	return &Builder{clearing: Exact()}
}

// WithTerminal sets the output target. Defaults to Stdout.
func (b *Builder) WithTerminal(t *Terminal) *Builder {
	b.terminal = t
	return b
}

// WithLogo sets a banner written above the title of every view.
func (b *Builder) WithLogo(logo string) *Builder {
	b.logo = &logo
	return b
}

// WithClearing sets the clearing strategy. Defaults to Exact.
func (b *Builder) WithClearing(c Clearing) *Builder {
	b.clearing = c
	return b
}

// WithLogoStyle renders the logo with style.
func (b *Builder) WithLogoStyle(style lipgloss.Style) *Builder {
	b.logoStyle = &style
	return b
}

// WithTitleStyle renders view titles with style.
func (b *Builder) WithTitleStyle(style lipgloss.Style) *Builder {
	b.titleStyle = &style
	return b
}

// WithLogger sets the logger used for debug output. Defaults to discarding.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithTracerProvider enables a span per Display. Defaults to a no-op provider.
func (b *Builder) WithTracerProvider(tp trace.TracerProvider) *Builder {
	b.tracerProvider = tp
	return b
}

// Build creates the Construct. The Builder can be reused afterwards; later
// changes do not affect Constructs already built.
func (b *Builder) Build() *Construct {
	terminal := b.terminal
	if terminal == nil {
		terminal = Stdout()
	}
	logger := b.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	tp := b.tracerProvider
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	var logo *string
	if b.logo != nil {
		l := *b.logo
		logo = &l
	}
	return &Construct{
		terminal:   terminal,
		logo:       logo,
		clearing:   b.clearing,
		logoStyle:  b.logoStyle,
		titleStyle: b.titleStyle,
		logger:     logger.With("component", "construct"),
		tracer:     tp.Tracer(tracerName),
	}
}
