package modeldesc

import "log/slog"

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the diagnostics sink. Parse progress is reported at
// info level, unresolved declared types at warn level, and anything that
// aborts a parse at error level.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = l
	}
}

// WithStrictCharset controls how a non-UTF-8 charset declaration is
// handled. By default the document is transcoded to UTF-8; in strict
// mode it fails the parse instead.
func WithStrictCharset(strict bool) Option {
	return func(p *Parser) {
		p.strictCharset = strict
	}
}
