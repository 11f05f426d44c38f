package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pou-arcade/internal/core"
	"github.com/vovakirdan/pou-arcade/internal/storage"
)

var (
	flagSkin  string
	flagAudio string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved settings",
	Long: `Shows the saved skin and audio settings. With flags, changes them first.

Skins: ` + strings.Join(skinNames(), ", ") + `

Examples:
  pou settings
  pou settings --skin panda
  pou settings --audio off`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&flagSkin, "skin", "", "Skin name")
	settingsCmd.Flags().StringVar(&flagAudio, "audio", "", "Audio: on or off")
}

func runSettings(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	s, err := store.LoadSettings()
	if err != nil {
		return err
	}

	var skin, audio *string
	if cmd.Flags().Changed("skin") {
		skin = &flagSkin
	}
	if cmd.Flags().Changed("audio") {
		audio = &flagAudio
	}

	if skin != nil || audio != nil {
		s, err = updateSettings(s, skin, audio)
		if err != nil {
			return err
		}
		if err := store.SaveSettings(s); err != nil {
			return err
		}
	}

	printSettings(cmd.OutOrStdout(), s)
	return nil
}

// updateSettings applies the given changes; nil leaves a value as is.
func updateSettings(s core.Settings, skin, audio *string) (core.Settings, error) {
	if skin != nil {
		v, ok := core.ParseSkin(*skin)
		if !ok {
			return s, fmt.Errorf("unknown skin %q (choose from %s)", *skin, strings.Join(skinNames(), ", "))
		}
		s.Skin = v
	}
	if audio != nil {
		v, err := parseAudio(*audio)
		if err != nil {
			return s, err
		}
		s.AudioEnabled = v
	}
	return s, nil
}

func parseAudio(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid audio value %q (use on or off)", v)
}

func skinNames() []string {
	names := make([]string, core.SkinCount)
	for i := range names {
		names[i] = core.Skin(i).String()
	}
	return names
}

func printSettings(w io.Writer, s core.Settings) {
	audio := "off"
	if s.AudioEnabled {
		audio = "on"
	}
	fmt.Fprintf(w, "Skin:  %s\n", s.Skin)
	fmt.Fprintf(w, "Audio: %s\n", audio)
}
