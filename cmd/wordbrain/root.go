package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vyevs/wordbrain/dictionaries"
	"github.com/vyevs/wordbrain/internal/config"
	"github.com/vyevs/wordbrain/internal/log"
)

// app is what every subcommand needs once flags and config are resolved.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	log *zap.SugaredLogger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}
	var cfgFile string

	root := &cobra.Command{
		Use:          "wordbrain",
		Short:        "Solve falling-letter word grid puzzles",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cfgFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "path to a config file")
	pf.StringP("dict", "d", "", "path to the dictionary file")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlag("dictionary.path", pf.Lookup("dict"))
	_ = a.v.BindPFlag("log.level", pf.Lookup("log-level"))

	root.AddCommand(
		newSolveCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) init(cfgFile string) error {
	cfg, err := config.Load(a.v, cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := log.New(&cfg.Log)
	if err != nil {
		return err
	}
	a.log = logger
	return nil
}

// source picks BigQuery when it is configured and the word file otherwise.
func (a *app) source() dictionaries.Source {
	if bq := a.cfg.Dictionary.BigQuery; bq.Enabled() {
		return dictionaries.BigQuerySource{
			Project:  bq.Project,
			Table:    bq.Table,
			Column:   bq.Column,
			Location: bq.Location,
		}
	}
	return dictionaries.FileSource{Path: a.cfg.Dictionary.Path}
}

// loadDictionary builds the trie, keeping only words of the given lengths
// unless lengths is empty.
func (a *app) loadDictionary(ctx context.Context, lengths []int) (*dictionaries.Trie, error) {
	src := a.source()
	a.log.Debugw("loading dictionary", "source", src, "lengths", lengths)

	d, err := dictionaries.Load(ctx, src, lengths)
	if err != nil {
		return nil, err
	}
	a.log.Infow("dictionary loaded", "words", d.Len())
	return d, nil
}
