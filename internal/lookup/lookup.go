package lookup

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"prevclose/internal/polygon"
)

// User-facing lines written to Config.Out.
const (
	Prompt              = "Please input a ticker symbol to get the price of a stock."
	NoMatchMessage      = "The provided input did not match a ticker symbol."
	UnauthorizedMessage = "Need to grab a new token"
)

// ErrInputRead is returned when no ticker line could be read.
var ErrInputRead = errors.New("failed to read input")

// PriceFetcher fetches the previous-close payload for a ticker.
//
//go:generate mockgen -package=lookup_test -destination=mock_price_fetcher_test.go -source=lookup.go PriceFetcher
type PriceFetcher interface {
	PreviousClose(ctx context.Context, ticker string) (*polygon.TickerResponse, error)
}

type Config struct {
	In  io.Reader
	Out io.Writer
	// MaxAttempts is the total number of prompt/request cycles allowed when
	// input does not resolve to a ticker. Defaults to 2.
	MaxAttempts int
	// Logger receives diagnostics. Defaults to discarding them.
	Logger *log.Logger
}

// Session runs the interactive prompt/lookup cycle.
type Session struct {
	cfg     Config
	in      *bufio.Reader
	fetcher PriceFetcher
	// pending carries the result of a read abandoned on cancellation.
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

func New(cfg Config, fetcher PriceFetcher) *Session {
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if cfg.In == nil {
		cfg.In = strings.NewReader("")
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 2
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	return &Session{cfg: cfg, in: bufio.NewReader(cfg.In), fetcher: fetcher}
}

// NormalizeTicker trims whitespace, including the line terminator, and
// upper-cases what is left.
func NormalizeTicker(line string) string {
	return strings.ToUpper(strings.TrimSpace(line))
}

// Run prompts for a ticker and prints its previous close. Input that the API
// does not recognise is reported and re-prompted until MaxAttempts cycles
// have run. A 401 is reported and ends the session without error.
// Input, transport and unexpected status failures are returned.
// End of input before any byte is an ErrInputRead rather than an empty
// ticker, and so is ctx being done while waiting for a line.
func (s *Session) Run(ctx context.Context) error {
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		fmt.Fprintln(s.cfg.Out, Prompt)

		line, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		ticker := NormalizeTicker(line)

		res, err := s.fetcher.PreviousClose(ctx, ticker)
		switch {
		case err == nil:
			info := res.StockInfo()
			fmt.Fprintf(s.cfg.Out, "Price for %s is %s\n", info.Ticker, polygon.FormatPrice(info.Price))
			return nil

		case errors.Is(err, polygon.ErrSchemaMismatch):
			s.cfg.Logger.Printf("attempt %d/%d: %q: %v", attempt, s.cfg.MaxAttempts, ticker, err)
			fmt.Fprintln(s.cfg.Out, NoMatchMessage)

		case errors.Is(err, polygon.ErrUnauthorized):
			s.cfg.Logger.Printf("warning: api key rejected; update POLYGON_API_KEY")
			fmt.Fprintln(s.cfg.Out, UnauthorizedMessage)
			return nil

		default:
			return fmt.Errorf("lookup %q: %w", ticker, err)
		}
	}
	s.cfg.Logger.Printf("no ticker matched after %d attempts", s.cfg.MaxAttempts)
	return nil
}

// readLine blocks for one line of input or until ctx is done. The read runs
// in its own goroutine since io.Reader offers no way to interrupt it.
func (s *Session) readLine(ctx context.Context) (string, error) {
	if s.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := s.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		s.pending = ch
	}

	var r lineResult
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", ErrInputRead, ctx.Err())
	case r = <-s.pending:
		s.pending = nil
	}

	if r.err != nil && !(errors.Is(r.err, io.EOF) && r.line != "") {
		return "", fmt.Errorf("%w: %w", ErrInputRead, r.err)
	}
	return r.line, nil
}
