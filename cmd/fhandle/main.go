package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/ngicks/go-fsys-helper/fhandle"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type rootOptions struct {
	verbose bool
	tmpDir  string
}

type targetOptions struct {
	fd   int
	mode string
	any  bool
}

func addTargetFlags(flags *pflag.FlagSet, opts *targetOptions, defaultMode string) {
	flags.IntVar(&opts.fd, "fd", -1, "Adopt this descriptor instead of opening a path")
	flags.StringVarP(&opts.mode, "mode", "m", defaultMode, "fopen style mode: r, w, a, r+, w+, a+, optionally with b or x")
	flags.BoolVar(&opts.any, "any", false, "With --fd, accept descriptors that are not regular files")
}

func (o targetOptions) open(args []string) (*fhandle.Handle, error) {
	switch {
	case o.fd >= 0 && len(args) > 0:
		return nil, errors.New("either PATH or --fd must be given, not both")
	case o.fd >= 0 && o.any:
		return fhandle.AdoptAny(o.fd, o.mode)
	case o.fd >= 0:
		return fhandle.Adopt(o.fd, o.mode)
	case len(args) == 1:
		return fhandle.OpenPath(args[0], o.mode)
	}
	return nil, errors.New("PATH or --fd is required")
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "fhandle",
		Short: "Open files and descriptors through transplanted handles",
		Long: `fhandle opens a path or adopts an open descriptor as a file handle
allocated from an anonymous temporary file, then copies data through it.

Examples:
  # Print a file
  fhandle cat ./notes.txt

  # Print whatever descriptor 3 refers to
  fhandle cat --fd 3 3<./notes.txt

  # Replace a file with stdin
  echo hello | fhandle write ./notes.txt

  # Append through an inherited descriptor
  echo more | fhandle write --fd 3 --mode a 3>>./notes.txt`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return fhandle.Init(
				fhandle.TempFile(afero.NewOsFs(), opts.tmpDir),
				fhandle.WithLogger(logger),
			)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every open at debug level")
	cmd.PersistentFlags().StringVar(&opts.tmpDir, "tmpdir", os.TempDir(), "Directory for placeholder temporary files")

	cmd.AddCommand(newCatCmd(), newWriteCmd())
	return cmd
}

func newCatCmd() *cobra.Command {
	var opts targetOptions
	cmd := &cobra.Command{
		Use:   "cat [PATH]",
		Short: "Copy a file or descriptor to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := opts.open(args)
			if err != nil {
				return err
			}
			defer h.Close()
			_, err = io.Copy(cmd.OutOrStdout(), h)
			return err
		},
	}
	addTargetFlags(cmd.Flags(), &opts, "r")
	return cmd
}

func newWriteCmd() *cobra.Command {
	var opts targetOptions
	cmd := &cobra.Command{
		Use:   "write [PATH]",
		Short: "Copy stdin to a file or descriptor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := opts.open(args)
			if err != nil {
				return err
			}
			if _, err := io.Copy(h, cmd.InOrStdin()); err != nil {
				_ = h.Close()
				return err
			}
			return h.Close()
		},
	}
	addTargetFlags(cmd.Flags(), &opts, "w")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
