package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"rollcall/internal/config"
	"rollcall/internal/logging"
	"rollcall/internal/services"
)

// Solver proxies page fetches through a FlareSolverr-compatible endpoint,
// which runs the challenge in a headless browser and returns the settled
// markup.
type Solver struct {
	http    *resty.Client
	logger  *slog.Logger
	url     string
	timeout time.Duration
}

type solverRequest struct {
	Cmd        string `json:"cmd"`
	URL        string `json:"url"`
	MaxTimeout int    `json:"maxTimeout"`
}

type solverResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Solution struct {
		URL      string `json:"url"`
		Status   int    `json:"status"`
		Response string `json:"response"`
	} `json:"solution"`
}

// NewSolver constructs a Solver from configuration.
func NewSolver(cfg *config.Config, logger *slog.Logger) *Solver {
	timeout := time.Duration(cfg.Solver.RequestTimeout) * time.Second
	return &Solver{
		http:    resty.New().SetTimeout(timeout),
		logger:  logger,
		url:     cfg.Solver.URL,
		timeout: timeout,
	}
}

// Get fetches a URL through the solver and returns the settled body.
func (s *Solver) Get(ctx context.Context, target string) (string, error) {
	var parsed solverResponse
	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(solverRequest{
			Cmd:        "request.get",
			URL:        target,
			MaxTimeout: int(s.timeout.Milliseconds()),
		}).
		SetResult(&parsed).
		Post(s.url)
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "fetch", "solver", target, err)
	}
	if resp.StatusCode() != 200 {
		return "", services.Wrap(services.ErrTransient, "fetch", "solver",
			fmt.Sprintf("solver returned status %d", resp.StatusCode()), nil)
	}
	if parsed.Status != "ok" {
		return "", services.Wrap(services.ErrTransient, "fetch", "solver",
			fmt.Sprintf("solver reported %q: %s", parsed.Status, parsed.Message), nil)
	}
	if parsed.Solution.Status >= 400 {
		return "", services.Wrap(services.ErrTransient, "fetch", "solver",
			fmt.Sprintf("solved request returned status %d", parsed.Solution.Status), nil)
	}

	s.logger.Debug("challenge solved",
		logging.String("url", target),
		logging.Int("bytes", len(parsed.Solution.Response)))
	return parsed.Solution.Response, nil
}
