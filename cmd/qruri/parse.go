package main

import (
	"bufio"
	"encoding/json"
	"io"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/qruri/internal/errorutil"
	"github.com/ghettovoice/qruri/internal/log"
	"github.com/ghettovoice/qruri/internal/util"
	"github.com/ghettovoice/qruri/uri"
)

const errRejectedInput errorutil.Error = "some inputs were rejected"

type parseOptions struct {
	output string
	strict bool
}

type parseResult struct {
	Input    string            `json:"input" yaml:"input"`
	Protocol string            `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	Address  string            `json:"address,omitempty" yaml:"address,omitempty"`
	Params   map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
	ValueWei string            `json:"value_wei,omitempty" yaml:"value_wei,omitempty"`
	Error    string            `json:"error,omitempty" yaml:"error,omitempty"`
}

func newParseCmd() *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Parse payment request URIs given as arguments or as stdin lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errtrace.Wrap(opts.run(cmd, args))
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "yaml", "output format: yaml or json")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit with an error when any input is rejected")
	return cmd
}

func (o *parseOptions) run(cmd *cobra.Command, args []string) error {
	enc, err := newEncoder(cmd.OutOrStdout(), o.output)
	if err != nil {
		return errtrace.Wrap(err)
	}

	inputs := args
	if len(inputs) == 0 {
		if inputs, err = readLines(cmd.InOrStdin()); err != nil {
			return errtrace.Wrap(err)
		}
	}

	results := make([]parseResult, 0, len(inputs))
	var rejected int
	for _, in := range inputs {
		if err := cmd.Context().Err(); err != nil {
			return errtrace.Wrap(err)
		}
		res := parseInput(in)
		if res.Error != "" {
			rejected++
		}
		results = append(results, res)
	}

	if err := enc(results); err != nil {
		return errtrace.Wrap(err)
	}
	if o.strict && rejected > 0 {
		return errtrace.Wrap(errorutil.NewWrapperError(errRejectedInput, "%d of %d", rejected, len(inputs)))
	}
	return nil
}

func parseInput(in string) parseResult {
	res := parseResult{Input: in}

	u, err := uri.Parse(in)
	if err != nil {
		log.Default().Info("input rejected", slog.Any("input", log.StringValue(in)), slog.Any("error", err))
		res.Error = err.Error()
		return res
	}

	res.Protocol = u.Protocol
	res.Address = u.Address
	if len(u.Params) > 0 {
		res.Params = u.Params
	}
	if v, err := u.Value(); err == nil {
		res.ValueWei = v.String()
	}
	log.Default().Debug("input parsed", slog.Any("uri", u))
	return res
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		if line := util.TrimSP(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, errtrace.Wrap(sc.Err())
}

func newEncoder(w io.Writer, format string) (func(v any) error, error) {
	switch util.LCase(format) {
	case "yaml", "yml":
		return func(v any) error {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(v); err != nil {
				return errtrace.Wrap(err)
			}
			return errtrace.Wrap(enc.Close())
		}, nil
	case "json":
		return func(v any) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return errtrace.Wrap(enc.Encode(v))
		}, nil
	default:
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown output format %q", format))
	}
}
