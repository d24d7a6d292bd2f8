package main

import (
	"fmt"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/qruri/gas"
	"github.com/ghettovoice/qruri/internal/errorutil"
	"github.com/ghettovoice/qruri/internal/log"
	"github.com/ghettovoice/qruri/unit"
)

type gasFeeOptions struct {
	price string
	limit string
}

func newGasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gas",
		Short: "Gas settings helpers",
	}
	cmd.AddCommand(newGasFeeCmd(), newGasLimitsCmd())
	return cmd
}

func newGasFeeCmd() *cobra.Command {
	opts := &gasFeeOptions{}

	cmd := &cobra.Command{
		Use:   "fee",
		Short: "Validate a gas price and limit and print the network fee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return errtrace.Wrap(opts.run(cmd))
		},
	}

	cmd.Flags().StringVar(&opts.price, "price", "", "gas price in gwei")
	cmd.Flags().StringVar(&opts.limit, "limit", fmt.Sprint(gas.DefaultLimitMin), "gas limit")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func (o *gasFeeOptions) run(cmd *cobra.Command) error {
	price, priceErr := gas.ParsePriceGwei(o.price)
	limit, limitErr := gas.ParseLimit(o.limit)
	if err := errorutil.Join(priceErr, limitErr); err != nil {
		return errtrace.Wrap(err)
	}

	s := gas.Settings{Price: price, Limit: limit}
	if err := gas.DefaultLimits().Validate(s); err != nil {
		return errtrace.Wrap(err)
	}

	fee := s.NetworkFee()
	log.Default().Debug("network fee computed", slog.Any("settings", s), slog.Any("fee", fee))
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s ETH\n", unit.FormatEther(fee))
	return errtrace.Wrap(err)
}

func newGasLimitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "limits",
		Short: "Print the accepted gas price and limit ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l := gas.DefaultLimits()
			_, err := fmt.Fprintf(cmd.OutOrStdout(),
				"price: %d..%d gwei\nlimit: %s..%s\nmax fee: %s ETH\n",
				l.MinPriceGwei(), l.MaxPriceGwei(),
				l.LimitMin, l.LimitMax,
				unit.FormatEther(l.FeeMax),
			)
			return errtrace.Wrap(err)
		},
	}
}
