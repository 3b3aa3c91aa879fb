// The prodplan command solves the Alpha Manufacturing production plan with
// HiGHS and prints the solution together with a constraint sensitivity
// report on stdout.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/alphamfg/prodplan/logger"
	"github.com/alphamfg/prodplan/lp"
	"github.com/alphamfg/prodplan/planner"
	"github.com/alphamfg/prodplan/report"
	"github.com/alphamfg/prodplan/solve"
)

func main() {
	log := logger.Logger()

	scenario := planner.Default()
	problem, err := scenario.Problem()
	if err != nil {
		log.Fatal().Err(err).Msg("build model")
	}

	if log.Debug().Enabled() {
		var model strings.Builder
		if err := lp.WriteLP(&model, problem); err == nil {
			log.Debug().Msg(model.String())
		}
	}

	solution, err := solve.HiGHS{}.Solve(context.Background(), problem)
	if err != nil {
		log.Fatal().Err(err).Msg("solve")
	}

	analysis := report.Analyze(problem, solution, report.DefaultTolerance)
	if err := analysis.Render(os.Stdout, scenario.AdviceTable()); err != nil {
		log.Fatal().Err(err).Msg("render report")
	}
}
