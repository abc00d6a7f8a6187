// Package ensnorm implements an ENSIP-15 name normalization engine: the
// driver that splits a name into labels, tokenizes and validates each
// one, and either joins the normalized (or beautified) labels back into
// a string or reports a structured, label-indexed error.
package ensnorm

import (
	"strings"

	"cosmossdk.io/log"

	"github.com/nameforge/ensnorm/codepoint"
	"github.com/nameforge/ensnorm/label"
	"github.com/nameforge/ensnorm/nerror"
	"github.com/nameforge/ensnorm/tables"
	"github.com/nameforge/ensnorm/token"
)

// LabelType is the classification a validated label carries: "ASCII",
// "Emoji", a script group's own name, or "Restricted[<name>]".
type LabelType = label.Type

// labelSeparator is the sole separator accepted on input and produced on
// output (invariant 4 of the data model).
const labelSeparator = "."

// greekGroupName is the literal string the beautify ξ/Ξ substitution
// rule checks a label's group name against. The engine's Greek group is
// named "Grek" (its ISO 15924 script code, like every other group name),
// so this string is never equal to any group name the engine produces:
// the substitution therefore fires unconditionally for every label
// containing ξ, preserving the source rule's literal-string-comparison
// behavior rather than "fixing" it into a check against the Greek group
// specifically. See DESIGN.md.
const greekGroupName = "Greek"

const (
	smallXi     = codepoint.Codepoint(0x03BE)
	capitalXi   = codepoint.Codepoint(0x039E)
)

// Options configures an Engine.
type Options struct {
	logger log.Logger
	tables *tables.Tables
}

// Option mutates an Options value; pass zero or more to New.
type Option func(*Options)

// WithLogger sets the logger an Engine uses for debug-level tracing of
// label decisions (the index and type of each validated label; rejected
// labels are not logged). It is never
// consulted on the data path itself. Default: log.NewNopLogger().
func WithLogger(l log.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithTables overrides the embedded reference data an Engine validates
// against. Default: tables.Default().
func WithTables(t *tables.Tables) Option {
	return func(o *Options) { o.tables = t }
}

// Engine is the normalization driver. Build one with New and reuse it
// across every name a process normalizes; it holds no per-call mutable
// state beyond the scratch buffers of one Normalize/Beautify/Process/
// Tokenize call.
type Engine struct {
	logger    log.Logger
	data      *tables.Tables
	tokenizer *token.Tokenizer
	validator *label.Validator
}

// New builds an Engine from opts, defaulting to tables.Default() and a
// no-op logger: explicit functional options over a global config object.
func New(opts ...Option) *Engine {
	o := &Options{
		logger: log.NewNopLogger(),
		tables: tables.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Engine{
		logger:    o.logger,
		data:      o.tables,
		tokenizer: token.New(o.tables),
		validator: label.New(o.tables),
	}
}

// labelResult is what runLabel hands back to every public entry point:
// the validated result, whose tokens carry both emoji forms, so both
// Normalize's and Beautify's emission rules can be applied without
// re-tokenizing.
type labelResult struct {
	result *label.Result
}

// runLabel tokenizes and validates one label string, stamping idx onto
// any resulting structured error.
func (e *Engine) runLabel(s string, idx int) (labelResult, error) {
	toks, err := e.tokenizer.Tokenize(s)
	if err != nil {
		return labelResult{}, stampIndex(err, idx)
	}
	res, err := e.validator.Validate(toks)
	if err != nil {
		return labelResult{}, stampIndex(err, idx)
	}
	e.logger.Debug("label validated", "index", idx, "type", string(res.Type))
	return labelResult{result: res}, nil
}

func stampIndex(err error, idx int) error {
	if indexer, ok := err.(nerror.LabelIndexer); ok {
		indexer.SetLabelIndex(idx)
	}
	return err
}

func splitLabels(name string) ([]string, error) {
	if name == "" {
		return nil, &nerror.EmptyName{}
	}
	return strings.Split(name, labelSeparator), nil
}

// emitNormalize renders one validated label's normalize-mode form: Text
// tokens as-is, Emoji tokens with FE0F stripped.
func emitNormalize(res *label.Result) string {
	var b strings.Builder
	for _, tk := range res.Tokens {
		switch t := tk.(type) {
		case token.Text:
			b.WriteString(codepoint.Encode(t.CPs))
		case token.Emoji:
			b.WriteString(codepoint.Encode(t.NoFE0F))
		}
	}
	return b.String()
}

// emitBeautify renders one validated label's beautify-mode form: Emoji
// tokens keep their fully-qualified form, and every ξ is replaced by Ξ
// unless the label's group is literally named "Greek" (see
// greekGroupName's doc comment for why this never actually suppresses
// the substitution in this engine).
func emitBeautify(res *label.Result) string {
	substituteXi := res.Type.GroupName() != greekGroupName

	var b strings.Builder
	for _, tk := range res.Tokens {
		switch t := tk.(type) {
		case token.Text:
			cps := t.CPs
			if substituteXi {
				cps = substituteXiCopy(cps)
			}
			b.WriteString(codepoint.Encode(cps))
		case token.Emoji:
			b.WriteString(codepoint.Encode(t.FullyQualified))
		}
	}
	return b.String()
}

func substituteXiCopy(cps []codepoint.Codepoint) []codepoint.Codepoint {
	out := make([]codepoint.Codepoint, len(cps))
	for i, c := range cps {
		if c == smallXi {
			out[i] = capitalXi
			continue
		}
		out[i] = c
	}
	return out
}

// Normalize returns name's canonical normalized form, or a structured
// error annotated with the failing label's 0-based index.
func (e *Engine) Normalize(name string) (string, error) {
	labels, err := splitLabels(name)
	if err != nil {
		return "", err
	}
	out := make([]string, len(labels))
	for i, l := range labels {
		lr, err := e.runLabel(l, i)
		if err != nil {
			return "", err
		}
		out[i] = emitNormalize(lr.result)
	}
	return strings.Join(out, labelSeparator), nil
}

// Beautify returns name's canonical display form (fully-qualified emoji,
// ξ replaced by Ξ per the rule above), or a structured error.
func (e *Engine) Beautify(name string) (string, error) {
	labels, err := splitLabels(name)
	if err != nil {
		return "", err
	}
	out := make([]string, len(labels))
	for i, l := range labels {
		lr, err := e.runLabel(l, i)
		if err != nil {
			return "", err
		}
		out[i] = emitBeautify(lr.result)
	}
	return strings.Join(out, labelSeparator), nil
}

// ProcessedName is the result of Process: every label's validated result
// retained so Normalize/Beautify can be derived without re-tokenizing.
type ProcessedName struct {
	labels []labelResult
}

// Normalize renders the already-validated name in normalize form.
func (p *ProcessedName) Normalize() string {
	out := make([]string, len(p.labels))
	for i, lr := range p.labels {
		out[i] = emitNormalize(lr.result)
	}
	return strings.Join(out, labelSeparator)
}

// Beautify renders the already-validated name in beautify form.
func (p *ProcessedName) Beautify() string {
	out := make([]string, len(p.labels))
	for i, lr := range p.labels {
		out[i] = emitBeautify(lr.result)
	}
	return strings.Join(out, labelSeparator)
}

// LabelTypes returns one LabelType per label, in order.
func (p *ProcessedName) LabelTypes() []LabelType {
	out := make([]LabelType, len(p.labels))
	for i, lr := range p.labels {
		out[i] = lr.result.Type
	}
	return out
}

// Process validates name once and returns a ProcessedName exposing both
// emission forms and the per-label types without re-tokenizing.
func (e *Engine) Process(name string) (*ProcessedName, error) {
	labels, err := splitLabels(name)
	if err != nil {
		return nil, err
	}
	out := make([]labelResult, len(labels))
	for i, l := range labels {
		lr, err := e.runLabel(l, i)
		if err != nil {
			return nil, err
		}
		out[i] = lr
	}
	return &ProcessedName{labels: out}, nil
}

// LabelTokens is one label's raw token stream, for diagnostic use: it
// skips validation entirely (no IllegalMixture, no wholes check, no
// fencing), returning whatever the tokenizer itself classified.
type LabelTokens struct {
	Label  int
	Tokens []token.Token
}

// Tokenize returns the tokenizer's raw output for every label of name,
// without running the validator. A per-label tokenize failure still
// aborts the whole call, annotated with that label's index: the
// tokenizer's own fail-closed contract (empty label, disallowed
// character) applies regardless of whether the validator ever runs.
func (e *Engine) Tokenize(name string) ([]LabelTokens, error) {
	labels, err := splitLabels(name)
	if err != nil {
		return nil, err
	}
	out := make([]LabelTokens, len(labels))
	for i, l := range labels {
		toks, err := e.tokenizer.Tokenize(l)
		if err != nil {
			return nil, stampIndex(err, i)
		}
		out[i] = LabelTokens{Label: i, Tokens: toks}
	}
	return out, nil
}
