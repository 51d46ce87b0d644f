package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/invitekit/internal/assets"
	"github.com/ziadkadry99/invitekit/internal/invitation"
)

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Embed local images and music into the invitation file",
}

var mediaSetCmd = &cobra.Command{
	Use:   "set <role> <file>",
	Short: "Embed a local file as main-image, male-photo, female-photo, background or music",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, path := args[0], args[1]
		kind := assets.KindForRole(role)
		if role == "background" {
			kind = assets.MediaImage
		}
		ref, err := assets.LoadFile(path, kind)
		if err != nil {
			return err
		}
		return editInvitation(func(inv invitation.Config) (invitation.Config, error) {
			return setMedia(inv, role, ref)
		})
	},
}

var mediaGalleryCmd = &cobra.Command{
	Use:   "gallery <glob>...",
	Short: "Append every image matching the patterns to the gallery",
	Long:  "Appends images to the gallery in lexical order. Patterns support ** for recursive matches.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var refs []string
		for _, pattern := range args {
			matches, err := assets.ExpandGlob(pattern)
			if err != nil {
				return err
			}
			for _, m := range matches {
				ref, err := assets.LoadFile(m, assets.MediaImage)
				if err != nil {
					return err
				}
				refs = append(refs, ref)
			}
		}
		if len(refs) == 0 {
			return fmt.Errorf("no files match %v", args)
		}
		if err := editInvitation(func(inv invitation.Config) (invitation.Config, error) {
			for _, ref := range refs {
				inv = inv.AddGalleryImage(ref)
			}
			return inv, nil
		}); err != nil {
			return err
		}
		fmt.Printf("Added %d gallery image(s)\n", len(refs))
		return nil
	},
}

var mediaClearCmd = &cobra.Command{
	Use:   "clear <role|gallery-index>",
	Short: "Remove a media slot, or the gallery image at a 1-based index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editInvitation(func(inv invitation.Config) (invitation.Config, error) {
			if n, err := strconv.Atoi(args[0]); err == nil {
				if n < 1 || n > len(inv.GalleryImages) {
					return inv, fmt.Errorf("gallery has %d image(s)", len(inv.GalleryImages))
				}
				return inv.RemoveGalleryImage(n - 1), nil
			}
			return setMedia(inv, args[0], "")
		})
	},
}

func init() {
	mediaCmd.AddCommand(mediaSetCmd, mediaGalleryCmd, mediaClearCmd)
	rootCmd.AddCommand(mediaCmd)
}

// setMedia stores ref in the slot named by role. An empty ref clears it.
func setMedia(inv invitation.Config, role, ref string) (invitation.Config, error) {
	switch role {
	case assets.RoleMainImage:
		return inv.With(func(c *invitation.Config) { c.MainImage = ref }), nil
	case assets.RoleMalePhoto:
		return inv.With(func(c *invitation.Config) { c.MalePhoto = ref }), nil
	case assets.RoleFemalePhoto:
		return inv.With(func(c *invitation.Config) { c.FemalePhoto = ref }), nil
	case assets.RoleMusic:
		return inv.With(func(c *invitation.Config) { c.BackgroundMusic = ref }), nil
	case "background":
		return inv.SetCustomBackground(ref), nil
	}
	return inv, fmt.Errorf("unknown media role %q", role)
}

// editInvitation loads the invitation file, applies fn and saves the result.
func editInvitation(fn func(invitation.Config) (invitation.Config, error)) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	inv, err := loadInvitation(cfg)
	if err != nil {
		return err
	}
	inv, err = fn(inv)
	if err != nil {
		return err
	}
	return inv.Save(cfg.Invitation)
}
