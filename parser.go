package modeldesc

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fmukit/modeldesc/encoding"
	"github.com/fmukit/modeldesc/sax"
)

// Parser parses model description documents. A Parser holds only
// configuration; each Parse call builds its own per-parse state, so one
// Parser may be used from multiple goroutines.
type Parser struct {
	logger        *slog.Logger
	strictCharset bool
}

// New creates a new Parser. By default diagnostics are discarded; pass
// WithLogger to receive them.
func New(options ...Option) *Parser {
	p := &Parser{
		logger: nullLogger,
	}
	for _, o := range options {
		o(p)
	}
	return p
}

// Parse reads one model description document from r and returns the
// validated root of its tree. On any structural error, or when a
// declared-type reference does not resolve, no tree is returned.
func (p *Parser) Parse(r io.Reader) (*ModelDescription, error) {
	ctx := newParserCtx(p.logger)

	dec := xml.NewDecoder(r)
	if p.strictCharset {
		dec.CharsetReader = rejectCharset
	} else {
		dec.CharsetReader = encoding.Reader
	}

	if err := sax.Walk(dec, ctx); err != nil {
		line, _ := dec.InputPos()
		perr := ErrParse{Err: err, Line: line}
		p.logger.Error("parse failed", slog.String("error", perr.Error()))
		return nil, perr
	}

	root, ok := ctx.stack.Pop()
	if !ok {
		return nil, ErrEmptyDocument
	}
	if !ctx.stack.IsEmpty() {
		return nil, ErrIllegalStructure{Expected: "a single document root"}
	}
	md, ok := root.(*ModelDescription)
	if !ok {
		return nil, ErrElementTypeMismatch{
			Expected: ElmFMIModelDescription.String(),
			Found:    root.Kind(),
		}
	}

	if err := p.validate(md); err != nil {
		return nil, err
	}
	return md, nil
}

// rejectCharset is the CharsetReader installed in strict mode. The
// decoder consults it only for declarations naming something other than
// UTF-8, so rejecting unconditionally rejects exactly those documents.
func rejectCharset(name string, r io.Reader) (io.Reader, error) {
	return nil, fmt.Errorf("charset %q not allowed, document must be UTF-8", name)
}

// ParseString parses a document held in a string.
func (p *Parser) ParseString(doc string) (*ModelDescription, error) {
	return p.Parse(strings.NewReader(doc))
}

// ParseFile opens and parses the document at path.
func (p *Parser) ParseFile(path string) (*ModelDescription, error) {
	f, err := os.Open(path)
	if err != nil {
		p.logger.Error("cannot open file", slog.String("path", path))
		return nil, err
	}
	defer f.Close()

	p.logger.Info("parse", slog.String("path", path))
	md, err := p.Parse(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return md, nil
}
