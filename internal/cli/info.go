package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinkarenko/dsf-toolkit/dsf"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <dsf-file>",
		Short: "Print the container properties of a DSF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runInfo(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h, err := dsf.ReadHeader(f)
	if err != nil {
		return err
	}

	fmt.Printf("format:       %s\n", h.FormatID)
	fmt.Printf("channels:     %d (%s)\n", h.ChannelCount, h.ChannelType)
	fmt.Printf("sample rate:  %d Hz\n", h.SampleRate)
	fmt.Printf("bit depth:    %d\n", h.BitsPerSample)
	fmt.Printf("samples:      %d per channel\n", h.SampleCount)
	fmt.Printf("duration:     %.2f s\n", h.Duration())
	fmt.Printf("block size:   %d bytes\n", h.BlockSize)
	fmt.Printf("payload:      %d bytes\n", h.DataSize)
	return nil
}
