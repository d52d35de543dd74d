package cli

import (
	"github.com/amirasaad/propdesc/pkg/descriptor"
	"github.com/amirasaad/propdesc/pkg/record"
	"github.com/spf13/cobra"
)

func (a *App) keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <writable|enumerable|configurable>",
		Short: "List keys whose descriptor flag is set",
		Long: `List the own keys of the record whose named descriptor flag is true, in
key order. An unrecognized flag name matches no key.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.readRecord()
			if err != nil {
				return err
			}
			flag := record.Flag(args[0])
			if !flag.Valid() {
				a.logger.Warn("unrecognized descriptor flag, no key will match", "flag", args[0])
			}
			keys := descriptor.KeysByDescriptor(r, flag)
			a.logger.Debug("filtered keys", "flag", flag, "matched", len(keys), "total", r.Len())
			return a.renderKeys(keys)
		},
	}
}

func (a *App) frozenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frozen",
		Short: "Report whether the record is non-extensible, sealed or frozen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.readRecord()
			if err != nil {
				return err
			}
			return a.renderStatus(r)
		},
	}
}

func (a *App) lockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock <key>",
		Short: "Print a copy of the record with one key made read-only",
		Long: `Print a shallow copy of the record in which the given key is read-only.
A missing key is added with a null value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.readRecord()
			if err != nil {
				return err
			}
			if !r.Has(args[0]) {
				a.logger.Info("key not present, adding null placeholder", "key", args[0])
			}
			return a.renderRecord(descriptor.WithLockedKey(r, args[0]))
		},
	}
}

func (a *App) freezeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "freeze",
		Short: "Print a frozen copy of the record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.readRecord()
			if err != nil {
				return err
			}
			return a.renderRecord(descriptor.FrozenCopy(r))
		},
	}
}

func (a *App) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the descriptor of every key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.readRecord()
			if err != nil {
				return err
			}
			return a.renderDescriptors(r)
		},
	}
}
