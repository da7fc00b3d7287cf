package cli

import (
	"io"

	"wecom-relay/internal/relay"
	pkgLog "wecom-relay/pkg/log"
)

const (
	banner = "WeCom relay prompt (type exit or quit to leave)"
	prompt = "message> "
)

// Handler runs the interactive prompt loop.
type Handler struct {
	l   pkgLog.Logger
	uc  relay.UseCase
	in  io.Reader
	out io.Writer
}

// New creates a prompt loop reading from in and writing to out.
func New(l pkgLog.Logger, uc relay.UseCase, in io.Reader, out io.Writer) *Handler {
	return &Handler{
		l:   l,
		uc:  uc,
		in:  in,
		out: out,
	}
}
