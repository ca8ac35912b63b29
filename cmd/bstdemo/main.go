package main

import (
	"os"
	"strings"

	"github.com/g-m-twostay/bstree/Trees"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bstdemo",
		Short: "Build an ordered tree, remove one value and show the tree before and after",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := NewConfig()
			if err := cfg.Parse(cmd.Flags()); err != nil {
				return err
			}
			if err := setupLogger(cfg); err != nil {
				return err
			}
			defer log.Sync()
			return run(cfg)
		},
	}
	addFlags(rootCmd)

	rootCmd.SetOutput(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		rootCmd.Println(err)
		os.Exit(1)
	}
}

func addFlags(cmd *cobra.Command) {
	def := NewConfig()
	cmd.Flags().StringP("config", "c", "", "config file")
	cmd.Flags().IntSlice("values", def.Values, "values inserted in order")
	cmd.Flags().Int("remove", def.Remove, "value removed after the inserts")
	cmd.Flags().StringP("log-level", "L", def.LogLevel, "log level: debug, info, warn, error, fatal")
	cmd.Flags().String("log-format", def.LogFormat, "log format: json, text, console")
}

func setupLogger(cfg *Config) error {
	lg, p, err := log.InitLogger(&log.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	log.ReplaceGlobals(lg, p)
	return nil
}

func run(cfg *Config) error {
	tree := Trees.NewOrdered[int](uint32(len(cfg.Values)))
	for _, v := range cfg.Values {
		added, err := tree.Insert(v)
		if err != nil {
			return err
		}
		if !added {
			log.Debug("value already present", zap.Int("value", v))
		}
	}
	logTree("tree built", tree)

	if err := tree.Remove(cfg.Remove); err != nil {
		if Trees.ErrNotFound.Equal(err) {
			log.Warn("value to remove isn't in the tree", zap.Int("value", cfg.Remove))
			return nil
		}
		return err
	}
	logTree("value removed", tree, zap.Int("removed", cfg.Remove))
	return nil
}

func logTree(msg string, tree *Trees.OrderedTree[int, uint32], fields ...zap.Field) {
	var asc, pre []int
	tree.InOrder(func(v int) bool {
		asc = append(asc, v)
		return true
	})
	next := tree.PreOrder()
	for v, ok := next(); ok; v, ok = next() {
		pre = append(pre, v)
	}
	fields = append(fields,
		zap.Uint32("size", tree.Size()),
		zap.Uint("height", tree.Height()),
		zap.Ints("in-order", asc),
		zap.Ints("pre-order", pre),
		zap.Strings("levels", levels[Trees.Handle[uint32]](tree, tree.LevelOrder)),
	)
	log.Info(msg, fields...)
}

// levels renders every depth of the tree as one row of labels, reading the tree
// through the Inspector view only.
func levels[H any](in Trees.Inspector[H], walk func(func(H, uint) bool)) []string {
	var rows [][]string
	walk(func(h H, d uint) bool {
		if d == uint(len(rows)) {
			rows = append(rows, nil)
		}
		rows[d] = append(rows[d], in.Label(h))
		return true
	})
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = strings.Join(r, " ")
	}
	return out
}
