package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/g-m-twostay/bstree/Trees"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "bstdemo"}
	addFlags(cmd)
	return cmd
}

func TestConfig_Default(t *testing.T) {
	re := require.New(t)
	cmd := newTestCommand()
	re.NoError(cmd.Flags().Parse(nil))
	cfg := NewConfig()
	re.NoError(cfg.Parse(cmd.Flags()))
	re.Equal([]int{10, 6, 4, 16, 7, 12, 20}, cfg.Values)
	re.Equal(10, cfg.Remove)
	re.Equal("info", cfg.LogLevel)
}

func TestConfig_FileAndFlags(t *testing.T) {
	re := require.New(t)
	path := filepath.Join(t.TempDir(), "demo.toml")
	re.NoError(os.WriteFile(path, []byte("values = [3, 1, 2]\nremove = 1\nlog-level = \"debug\"\n"), 0o600))

	cmd := newTestCommand()
	re.NoError(cmd.Flags().Parse([]string{"--config", path, "--remove", "2"}))
	cfg := NewConfig()
	re.NoError(cfg.Parse(cmd.Flags()))
	re.Equal([]int{3, 1, 2}, cfg.Values)
	re.Equal(2, cfg.Remove, "flags override the config file")
	re.Equal("debug", cfg.LogLevel)
}

func TestConfig_Undecoded(t *testing.T) {
	re := require.New(t)
	path := filepath.Join(t.TempDir(), "demo.toml")
	re.NoError(os.WriteFile(path, []byte("valuez = [1]\n"), 0o600))
	cmd := newTestCommand()
	re.NoError(cmd.Flags().Parse([]string{"-c", path}))
	err := NewConfig().Parse(cmd.Flags())
	re.Error(err)
	re.Contains(err.Error(), "valuez")
}

func TestConfig_Invalid(t *testing.T) {
	re := require.New(t)
	cmd := newTestCommand()
	re.NoError(cmd.Flags().Parse([]string{"--log-format", "xml"}))
	re.Error(NewConfig().Parse(cmd.Flags()))
	cfg := NewConfig()
	cfg.Values = nil
	re.Error(cfg.Validate())
}

func TestRun(t *testing.T) {
	re := require.New(t)
	cfg := NewConfig()
	re.NoError(run(cfg))
	cfg.Remove = 99
	re.NoError(run(cfg), "removing an absent value is reported, not failed")
}

func TestLevels(t *testing.T) {
	tree := Trees.NewOrdered[int](uint32(0))
	for _, v := range NewConfig().Values {
		_, _ = tree.Insert(v)
	}
	rows := levels[Trees.Handle[uint32]](tree, tree.LevelOrder)
	require.Equal(t, []string{"10", "6 16", "4 7 12 20"}, rows)
	_ = tree.Remove(10)
	rows = levels[Trees.Handle[uint32]](tree, tree.LevelOrder)
	require.Equal(t, []string{"7", "6 16", "4 12 20"}, rows)
}
