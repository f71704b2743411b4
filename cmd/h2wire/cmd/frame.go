package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nsheridan/h2wire/pkg/h2wire/http2"
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Decode or build HTTP/2 frames",
}

var frameDecodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Read a hex-encoded stream of HTTP/2 frames from stdin and pretty-print each one",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("h2wire: reading stdin: %w", err)
		}

		raw, err := hex.DecodeString(trimHex(input))
		if err != nil {
			return fmt.Errorf("h2wire: decoding hex input: %w", err)
		}

		fc := http2.NewFrameCodec(cfg).WithLogger(newLogger())

		for len(raw) > 0 {
			if len(raw) < http2.FrameHeaderLen {
				return fmt.Errorf("h2wire: %d trailing byte(s) shorter than a frame header", len(raw))
			}

			var hdr [9]byte
			copy(hdr[:], raw[:9])
			fh := http2.ParseFrameHeader(hdr)
			raw = raw[9:]

			if uint32(len(raw)) < fh.Length {
				return fmt.Errorf("h2wire: frame declares %d-byte payload but only %d remain", fh.Length, len(raw))
			}
			payload := raw[:fh.Length]
			raw = raw[fh.Length:]

			f, err := fc.DecodeFrame(fh, payload)
			if err != nil {
				return fmt.Errorf("h2wire: decoding %s frame: %w", fh.Type, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s stream=%d length=%d flags=%#x\n", f.Type(), f.StreamID(), fh.Length, uint8(fh.Flags))
		}
		return nil
	},
}

type yamlSetting struct {
	ID    uint16 `yaml:"id"`
	Value uint32 `yaml:"value"`
}

var frameDumpSettingsCmd = &cobra.Command{
	Use:   "dump-settings",
	Short: "Read a YAML list of {id, value} settings from stdin and print the encoded SETTINGS frame as hex",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("h2wire: reading stdin: %w", err)
		}

		var parsed []yamlSetting
		if err := yaml.Unmarshal(input, &parsed); err != nil {
			return fmt.Errorf("h2wire: parsing settings list: %w", err)
		}

		settings := make([]http2.Setting, len(parsed))
		for i, s := range parsed {
			settings[i] = http2.Setting{ID: http2.SettingID(s.ID), Value: s.Value}
		}

		fc := http2.NewFrameCodec(http2.DefaultCodecConfig())
		frame := &http2.SettingsFrame{
			FrameHeader: http2.FrameHeader{Type: http2.FrameSettings},
			Settings:    settings,
		}
		wire := fc.EncodeFrame(frame)

		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(wire))
		return nil
	},
}

func init() {
	frameCmd.AddCommand(frameDecodeCmd)
	frameCmd.AddCommand(frameDumpSettingsCmd)
}
