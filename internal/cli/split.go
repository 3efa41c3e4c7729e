package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shinkarenko/dsf-toolkit/cue"
	"github.com/shinkarenko/dsf-toolkit/split"
)

type splitFlags struct {
	output string
	force  bool
	config string
}

func newSplitCommand() *cobra.Command {
	flags := &splitFlags{}

	cmd := &cobra.Command{
		Use:   "split <cue-file>",
		Short: "Split the DSF files referenced by a cue sheet into per-track files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output directory (default: cue sheet directory)")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite existing files")
	cmd.Flags().StringVar(&flags.config, "config", "", "config file (default: dsfsplit.yml next to the cue sheet)")
	return cmd
}

func runSplit(cuePath string, flags *splitFlags) error {
	cuePath, err := filepath.Abs(cuePath)
	if err != nil {
		return err
	}
	dir := filepath.Dir(cuePath)

	cfgPath := flags.config
	if cfgPath == "" {
		cfgPath = filepath.Join(dir, "dsfsplit.yml")
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	outDir := dir
	if cfg.Output != "" {
		outDir = cfg.Output
	}
	if flags.output != "" {
		outDir = flags.output
	}
	overwrite := cfg.Overwrite || flags.force

	f, err := os.Open(cuePath)
	if err != nil {
		return err
	}
	sheet, err := cue.Parse(f)
	f.Close()
	if err != nil {
		return err
	}
	if len(sheet.Files) == 0 {
		return fmt.Errorf("no FILE entries found in cue sheet")
	}

	for _, file := range sheet.Files {
		if len(file.Tracks) == 0 {
			continue
		}
		if err := splitFile(dir, outDir, overwrite, file); err != nil {
			return fmt.Errorf("%s: %w", file.Name, err)
		}
	}
	return nil
}

// splitFile processes one FILE entry: open the source next to the cue
// sheet, split it, and write the tracks. Per-track outputs written
// before an error are left in place.
func splitFile(dir, outDir string, overwrite bool, file cue.File) error {
	log.Infof("processing: %s", file.Name)

	src, err := os.Open(filepath.Join(dir, file.Name))
	if err != nil {
		return err
	}
	defer src.Close()

	s, err := split.Open(src)
	if err != nil {
		return err
	}
	s.Log = log

	h := s.Header
	log.Infof("%.2fs, %s, %d Hz", h.Duration(), h.ChannelType, h.SampleRate)

	sink := &split.DirSink{Dir: outDir, Overwrite: overwrite, Log: log}
	return s.Split(file.Tracks, sink)
}
