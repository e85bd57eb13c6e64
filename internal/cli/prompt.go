package cli

import (
	"fmt"
	"io"

	"github.com/kilupskalvis/ps1/internal/config"
	"github.com/kilupskalvis/ps1/internal/core"
	"github.com/kilupskalvis/ps1/internal/logging"
	"github.com/kilupskalvis/ps1/internal/style"
	"github.com/kilupskalvis/ps1/internal/sysenv"
	"github.com/kilupskalvis/ps1/internal/vcs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// DiagnosticPrefix starts every line reporting a masked resolution failure
const DiagnosticPrefix = "$PS1 ERROR: "

func runPrompt(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd, config.NewViper())
	if err != nil {
		exitError("%v", err)
	}

	log, err := logging.New(cfg.Debug)
	if err != nil {
		exitError("%v", err)
	}
	defer func() { _ = log.Sync() }()

	st, err := newStyler(cfg)
	if err != nil {
		exitError("%v", err)
	}

	if err := writePrompt(cmd.OutOrStdout(), sysenv.NewOS(), vcs.NewClient(), cfg, st, log); err != nil {
		_ = log.Sync()
		exitError("%v", err)
	}
}

func newStyler(cfg *config.Config) (style.Styler, error) {
	if cfg.NoColor {
		return style.Plain{}, nil
	}
	return style.NewColorStyler(cfg.Theme())
}

// writePrompt runs the pipeline and writes the prompt to w. Masked failures
// are written first, one diagnostic line each. Only failures the policy
// refuses to mask are returned.
func writePrompt(w io.Writer, env sysenv.Environment, opener vcs.Opener, cfg *config.Config, st style.Styler, log *zap.Logger) error {
	res, err := core.Compose(env, cfg.Policy(), log)
	if err != nil {
		return err
	}

	for _, d := range res.Diagnostics {
		fmt.Fprintf(w, "%s%v\n", DiagnosticPrefix, d)
	}

	status := core.InspectRepoStatus(opener, res.Location.CurrentDir, cfg.Discover, log)

	_, err = io.WriteString(w, core.Render(res.Identity, res.Location, status, st))
	return err
}
