// Command linsolve is the §6 file-to-file boundary: it reads one LP from
// an input file, solves it, and writes the §6 output format to an output
// file. Invocation is two positional arguments and nothing else -- no
// flags, no environment variables, no stdin/stdout streaming.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"linsolve/normalize"
	"linsolve/parser"
	"linsolve/result"
	"linsolve/simplex"
)

// log mirrors the teacher corpus's global-logger convention (see
// itohio-EasyRobot/pkg/logger): a single caller-annotated zerolog.Logger
// writing to stderr, console-formatted. Stage-transition logs are Debug;
// the final status is Info.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Caller().Logger()

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: linsolve <input-file> <output-file>")
		os.Exit(2)
	}
	inputPath, outputPath := os.Args[1], os.Args[2]

	input, err := os.ReadFile(inputPath)
	if err != nil {
		log.Error().Err(err).Str("path", inputPath).Msg("cannot read input file")
		os.Exit(1)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Fatal().Interface("panic", r).Msg("internal invariant violated")
		}
	}()

	problem, err := parser.ParseProblem(string(input))
	if err != nil {
		if errors.Is(err, parser.ErrParse) {
			log.Error().Err(err).Msg("malformed input")
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("unexpected parse failure")
	}
	log.Debug().Int("constraints", len(problem.Constraints)).Msg("parsed")

	sf, err := normalize.Build(problem)
	if err != nil {
		log.Fatal().Err(err).Msg("standard-form assembly failed")
	}
	log.Debug().Int("rows", len(sf.B)).Int("cols", sf.N+sf.K).Msg("assembled standard form")

	res := simplex.Solve(sf)
	log.Debug().Str("status", res.Status.String()).Msg("solve complete")

	shaped := result.Shape(sf, res)
	output := render(shaped)

	if err := os.WriteFile(outputPath, []byte(output), 0o644); err != nil {
		log.Fatal().Err(err).Str("path", outputPath).Msg("cannot write output file")
	}
	log.Info().Str("status", res.Status.String()).Msg("done")
}

func render(s result.Shaped) string {
	var b []byte
	b = append(b, "Status: "+s.Status.String()+"\n"...)
	if s.Status == simplex.Optimal {
		b = append(b, "Objetivo: "+s.Objective+"\n"...)
		b = append(b, "Solucao:\n"...)
		b = append(b, joinSpace(s.Solution)+"\n"...)
	}
	b = append(b, "Certificado:\n"...)
	b = append(b, joinSpace(s.Certificate)+"\n"...)
	return string(b)
}

func joinSpace(vals []string) string {
	out := ""
	for i, v := range vals {
		if i > 0 {
			out += " "
		}
		out += v
	}
	return out
}
