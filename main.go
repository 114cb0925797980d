package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wmibo/instance"
	"wmibo/solution"
	"wmibo/validate"
)

const (
	exitOK         = 0
	exitInvalid    = 1
	exitParseError = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		solPath  string
		showSoft bool
		code     = exitOK
	)
	cmd := &cobra.Command{
		Use:           "wmibo-validate <instance.wmibo>",
		Short:         "Validate WMIBO solver output against an instance",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pb, sol, err := load(args[0], solPath)
			if err != nil {
				return err
			}
			rep := validate.Validate(pb, sol)
			renderReport(cmd.OutOrStdout(), args[0], sol, rep, showSoft)
			if !rep.OK {
				code = exitInvalid
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&solPath, "sol", "", "path to solver output; reads stdin when omitted")
	cmd.Flags().BoolVar(&showSoft, "show-soft", false, "list indices of violated soft clauses")
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		log.Error(err)
		return exitParseError
	}
	return code
}

func load(instancePath, solPath string) (*instance.Problem, *solution.Assignment, error) {
	f, err := os.Open(instancePath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not open instance")
	}
	defer f.Close()
	pb, err := instance.Parse(f)
	if err != nil {
		return nil, nil, errors.Wrap(err, "instance parse error")
	}

	var in io.Reader = os.Stdin
	if solPath != "" {
		sf, err := os.Open(solPath)
		if err != nil {
			return nil, nil, errors.Wrap(err, "could not open solution")
		}
		defer sf.Close()
		in = sf
	}
	return pb, solution.Parse(in), nil
}
